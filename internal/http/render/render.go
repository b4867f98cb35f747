package render

import (
	"bytes"

	"github.com/gin-gonic/gin"

	"github.com/rv-bit/blog-app-6cs028/internal/http/middleware"
	"github.com/rv-bit/blog-app-6cs028/internal/shared/apperr"
	"github.com/rv-bit/blog-app-6cs028/templates"
)

// HTML renders a page template with the request's flash attached. Rendering
// into a buffer first keeps a template error from leaking a half-written body.
func HTML(c *gin.Context, status int, page string, data any) {
	var buf bytes.Buffer
	pd := templates.PageData{
		Flash: middleware.GetFlash(c),
		Data:  data,
	}
	if err := templates.Render(&buf, page, pd); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
