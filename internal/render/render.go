// Package render substitutes {{variable}} placeholders in template text.
package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wb-go/wbf/zlog"
)

var placeholderRe = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// Render replaces every {{name}} token in text with the string form of
// vars[name]. The name is trimmed of surrounding whitespace before lookup.
// Tokens without a matching variable are left in place verbatim and logged
// as a warning. Empty text or an empty variable map returns text unchanged.
func Render(text string, vars map[string]any) string {
	if text == "" || len(vars) == 0 {
		return text
	}

	return placeholderRe.ReplaceAllStringFunc(text, func(token string) string {
		name := strings.TrimSpace(token[2 : len(token)-2])

		value, ok := vars[name]
		if !ok {
			zlog.Logger.Warn().Str("variable", name).Msg("template variable not provided, leaving token as is")
			return token
		}

		return fmt.Sprint(value)
	})
}
