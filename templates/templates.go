package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/rv-bit/blog-app-6cs028/internal/shared/money"
	"github.com/rv-bit/blog-app-6cs028/pkg/view"
)

//go:embed layout.tmpl pages/*.tmpl
var files embed.FS

// PageData wraps every page's view model with the request-scoped extras.
type PageData struct {
	Flash *view.Flash
	Data  any
}

var funcs = template.FuncMap{
	// Catalog currencies come back lowercase; normalise before formatting.
	"money": func(currency string, cents int64) string {
		return money.FormatMinor(strings.ToUpper(currency), cents)
	},
}

var pages = mustParse()

func mustParse() map[string]*template.Template {
	names := []string{
		"product_show",
		"admin_prices",
		"admin_price_form",
		"admin_product_form",
	}
	out := make(map[string]*template.Template, len(names))
	for _, name := range names {
		out[name] = template.Must(
			template.New("layout.tmpl").Funcs(funcs).ParseFS(files, "layout.tmpl", "pages/"+name+".tmpl"),
		)
	}
	return out
}

func Render(w io.Writer, page string, data PageData) error {
	t, ok := pages[page]
	if !ok {
		return fmt.Errorf("templates: unknown page %q", page)
	}
	return t.ExecuteTemplate(w, "layout.tmpl", data)
}
