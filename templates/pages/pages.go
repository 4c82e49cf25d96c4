package pages

import (
	"context"
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/theUncluded/430Frontend/pkg/view"
)

//go:embed *.html
var files embed.FS

var tmpl = template.Must(template.New("pages").ParseFS(files, "*.html"))

func execute(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return tmpl.ExecuteTemplate(w, name, data)
	})
}

// Storefront is the product grid; when vm.CartOpen it also carries the
// cart sidebar and the backdrop that dismisses it.
func Storefront(vm view.StorefrontPage) templ.Component {
	return execute("storefront", vm)
}

type errorVM struct {
	Status     int
	StatusText string
	Message    string
	RequestID  string
	Flash      *view.Flash
}

func Error(status int, msg, requestID string, flash *view.Flash) templ.Component {
	return execute("error", errorVM{
		Status:     status,
		StatusText: http.StatusText(status),
		Message:    msg,
		RequestID:  requestID,
		Flash:      flash,
	})
}
