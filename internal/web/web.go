// Package web serves the embedded dashboard page. All data the page shows
// comes from the JSON API; the template itself only carries the markup, the
// styling and the interaction script.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

type Handler struct {
	defaultAnchor time.Time
}

func NewHandler(defaultAnchor time.Time) *Handler {
	return &Handler{defaultAnchor: defaultAnchor}
}

// Register installs the page templates and routes on the engine.
func (h *Handler) Register(r *gin.Engine) {
	tmpl := template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))
	r.SetHTMLTemplate(tmpl)
	r.GET("/", h.Dashboard)
}

// Dashboard renders the single-page shell.
func (h *Handler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html.tmpl", gin.H{
		"DefaultAnchor": h.defaultAnchor.Format("2006-01-02"),
	})
}
