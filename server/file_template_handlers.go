package server

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"time"
)

//go:embed templates/*
var templateFiles embed.FS

const layoutTemplate = "layout.html"

// pageTemplates are rendered inside the layout
var pageTemplates = []string{
	"login.html",
	"register.html",
	"dashboard.html",
	"transactions.html",
	"transaction.html",
	"transfer.html",
	"add_money.html",
	"profile.html",
	"change_password.html",
	"forgot_password.html",
	"reset_password.html",
}

// fragmentTemplates are rendered on their own, for in-page updates
var fragmentTemplates = []string{
	"recipient_hint.html",
}

var templateFuncs = template.FuncMap{
	"seconds": func(d time.Duration) int {
		return int(d.Round(time.Second) / time.Second)
	},
	"formatExpiry": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("1/2/2006, 3:04:05 PM")
	},
}

func TemplateFilesFS() fs.FS {
	subFS, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic("Failed to create templates sub filesystem: " + err.Error())
	}
	return subFS
}

// ParseTemplate parses a page template together with the shared layout
func ParseTemplate(name string) (*template.Template, error) {
	return template.New(name).Funcs(templateFuncs).ParseFS(TemplateFilesFS(), layoutTemplate, name)
}

// ParseFragment parses a standalone template
func ParseFragment(name string) (*template.Template, error) {
	content, err := fs.ReadFile(TemplateFilesFS(), name)
	if err != nil {
		return nil, err
	}
	return template.New(name).Funcs(templateFuncs).Parse(string(content))
}

func (s *Server) parseTemplates() error {
	s.templates = make(map[string]*template.Template, len(pageTemplates))
	for _, name := range pageTemplates {
		tmpl, err := ParseTemplate(name)
		if err != nil {
			return fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		s.templates[name] = tmpl
	}
	s.fragments = make(map[string]*template.Template, len(fragmentTemplates))
	for _, name := range fragmentTemplates {
		tmpl, err := ParseFragment(name)
		if err != nil {
			return fmt.Errorf("failed to parse fragment %s: %w", name, err)
		}
		s.fragments[name] = tmpl
	}
	return nil
}
