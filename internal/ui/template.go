package ui

import (
	"embed"
	"html/template"
	"io/fs"

	"github.com/Masterminds/sprig/v3"
	"github.com/laher/mergefs"
	"github.com/pkg/errors"
)

//go:embed templates/**
var commonFs embed.FS

// Templates parses the shared layouts together with the views and
// layouts of the given filesystems.
func Templates(funcs template.FuncMap, filesystems ...fs.FS) (*template.Template, error) {
	filesystems = append([]fs.FS{commonFs}, filesystems...)

	templates, err := globTemplates(filesystems, "**/views/*.gohtml", "**/layouts/*.gohtml")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	tmpl := template.New("").Funcs(sprig.FuncMap())

	if funcs != nil {
		tmpl = tmpl.Funcs(funcs)
	}

	tmpl, err = tmpl.ParseFS(mergefs.Merge(filesystems...), templates...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return tmpl, nil
}

// globTemplates matches the patterns against each filesystem on its own.
// Globbing the merged filesystem would walk directories missing from
// some of them.
func globTemplates(filesystems []fs.FS, patterns ...string) ([]string, error) {
	seen := make(map[string]struct{})
	templates := make([]string, 0)

	for _, pattern := range patterns {
		for _, fsys := range filesystems {
			matches, err := fs.Glob(fsys, pattern)
			if err != nil {
				return nil, errors.WithStack(err)
			}

			for _, m := range matches {
				if _, exists := seen[m]; exists {
					continue
				}

				seen[m] = struct{}{}
				templates = append(templates, m)
			}
		}
	}

	return templates, nil
}

type HeadTemplateData struct {
	PageTitle string
}
