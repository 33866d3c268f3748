package router

import (
	"github.com/wb-go/wbf/ginext"

	"notifyr/internal/api/handlers/notification"
	"notifyr/internal/api/handlers/template"
)

// New builds the HTTP router.
func New(notifications *notification.Handler, templates *template.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	n := e.Group("/api/notifications")

	n.POST("", notifications.Create)
	n.GET("", notifications.List)
	n.GET("/stats/today", notifications.Stats)
	n.GET("/recipient/:recipient", notifications.ListByRecipient)
	n.GET("/:id", notifications.Get)
	n.GET("/:id/status", notifications.GetStatus)
	n.POST("/:id/retry", notifications.Retry)

	t := e.Group("/api/templates")

	t.POST("", templates.Create)
	t.GET("", templates.List)
	t.GET("/name/:name", templates.GetByName)
	t.GET("/:id", templates.Get)
	t.PUT("/:id", templates.Update)
	t.DELETE("/:id", templates.Delete)

	return e
}
