// Package frontend serves the embedded dashboard page.
package frontend

import (
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pfdash/backend/web"
)

var templates = template.Must(template.ParseFS(web.TemplatesFS, "templates/*.html"))

// RegisterRoutes registers the dashboard page and its static assets
// with the RouterGroup that is passed.
func RegisterRoutes(r *gin.RouterGroup) {
	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic(err)
	}

	r.GET("/", Get)
	r.StaticFS("/static", http.FS(static))
}

// Get renders the dashboard page. All interaction happens client
// side against the JSON API.
func Get(c *gin.Context) {
	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")

	err := templates.ExecuteTemplate(c.Writer, "dashboard.html", nil)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
