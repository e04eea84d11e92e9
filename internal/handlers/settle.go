package handlers

import (
	"errors"
	"net/http"

	"github.com/suyash01/splitease/internal/settlement"
	"github.com/suyash01/splitease/internal/web"
	"go.uber.org/zap"
)

type parseErrorView struct {
	Line    int
	Message string
	Text    string
}

func HandleSettle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "Input too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	res, err := settlement.Settle(r.FormValue("input"))
	if err != nil {
		var perr *settlement.ParseError
		if !errors.As(err, &perr) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		render(w, "error.html", parseErrorView{
			Line:    perr.Line + 1,
			Message: perr.Unwrap().Error(),
			Text:    perr.Text,
		})
		return
	}

	w.Header().Set("HX-Trigger", "settled")
	render(w, "settlement.html", res)
}

func render(w http.ResponseWriter, name string, data any) {
	if err := web.Tmpl.ExecuteTemplate(w, name, data); err != nil {
		zap.L().Error("failed to render template", zap.String("template", name), zap.Error(err))
	}
}
