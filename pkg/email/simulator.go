package email

import (
	"errors"
	"math/rand"
	"time"

	"github.com/wb-go/wbf/zlog"
)

// ErrSimulatedFailure is the error returned by failed simulated sends.
var ErrSimulatedFailure = errors.New("simulated delivery failure")

// Simulator fakes an email provider for local and offline runs: it sleeps
// for a configured latency and succeeds with a configured probability.
// A success rate of 0 makes every send fail, which is handy in tests.
type Simulator struct {
	latency     time.Duration
	successRate float64
}

// NewSimulator creates a simulated transport. A non-positive latency
// defaults to 500ms; a success rate outside [0, 1] defaults to 0.9.
func NewSimulator(latency time.Duration, successRate float64) *Simulator {
	if latency <= 0 {
		latency = 500 * time.Millisecond
	}
	if successRate < 0 || successRate > 1 {
		successRate = 0.9
	}

	return &Simulator{
		latency:     latency,
		successRate: successRate,
	}
}

// Send pretends to deliver a message. Safe for concurrent use.
func (s *Simulator) Send(to, subject, _ string) error {
	time.Sleep(s.latency)

	if rand.Float64() < s.successRate {
		zlog.Logger.Info().Str("to", to).Str("subject", subject).Msg("simulated email sent")
		return nil
	}

	zlog.Logger.Warn().Str("to", to).Msg("simulated email failed")

	return ErrSimulatedFailure
}
