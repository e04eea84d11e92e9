package web

import (
	"html/template"
	"io/fs"

	"github.com/suyash01/splitease/internal/settlement"
)

var Tmpl *template.Template

func InitTemplates(templatesFS fs.FS) {
	funcMap := template.FuncMap{
		"abs": func(n float64) float64 {
			if n < 0 {
				return -n
			}
			return n
		},
		"amount": settlement.FormatAmount,
	}
	Tmpl = template.Must(template.New("").Funcs(funcMap).ParseFS(templatesFS, "web/templates/*.html"))
}
