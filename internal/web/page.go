package web

import (
	_ "embed"
	"html/template"
	"log/slog"
	"net/http"

	"alanya-store/internal/catalog"
)

//go:embed templates/index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

type pageData struct {
	NavLinks []catalog.NavLink
	Sections []catalog.Section
	Delivery []catalog.DeliveryStep
	Contacts []catalog.Contact
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := pageData{
		NavLinks: catalog.NavLinks(),
		Sections: catalog.Sections(),
		Delivery: catalog.DeliverySteps(),
		Contacts: catalog.Contacts(),
	}
	if err := indexTmpl.Execute(w, data); err != nil {
		slog.Error("Failed to render page", "error", err)
	}
}
