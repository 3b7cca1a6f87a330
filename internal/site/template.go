package site

import (
	"embed"
	"html/template"

	"github.com/bornholm/rentor/internal/ui"
	"github.com/pkg/errors"
)

//go:embed templates/**
var templateFs embed.FS

var templates *template.Template

func init() {
	tmpl, err := ui.Templates(nil, templateFs)
	if err != nil {
		panic(errors.WithStack(err))
	}

	templates = tmpl
}

type IndexTemplateData struct {
	ui.HeadTemplateData
	Navbar ui.NavbarTemplateData
}
