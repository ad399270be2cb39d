package net

import (
	_ "embed"
	"html/template"
	"log"
	"net/http"
)

//go:embed page.html
var pageHTML string

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

type pageData struct {
	Title  string
	Width  int
	Height int
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := pageTemplate.Execute(w, pageData{
		Title:  s.cfg.Title,
		Width:  s.cfg.Canvas.Width,
		Height: s.cfg.Canvas.Height,
	})
	if err != nil {
		log.Printf("[WEB] render page: %v", err)
	}
}
