// Package view renders the HTML pages from embedded templates.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"portfolio-site/internal/domain/profile"
	"portfolio-site/internal/usecase"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	PageHome    = "home"
	PageSkills  = "skills"
	PageContact = "contact"
)

// Base is shared by every page.
type Base struct {
	Page     string
	Title    string
	Identity profile.Identity
	Theme    profile.Theme
}

type HomePage struct {
	Base
	Stats       profile.Stats
	LinkedinURL string
}

type SkillsPage struct {
	Base
	Categories     []usecase.CategoryItem
	Skills         []usecase.SkillItem
	Projects       []profile.Project
	Education      []profile.EducationRecord
	Certifications []profile.Certification
	Workshops      []profile.Workshop
	Hobbies        []profile.Hobby
}

type ContactMethod struct {
	Method      string
	Label       string
	Description string
}

type ContactPage struct {
	Base
	Contact    profile.ContactEndpoints
	Methods    []ContactMethod
	MailtoURL  template.URL
	TelURL     template.URL
	QRDataURL  template.URL
	QRFileName string
}

type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: map[string]*template.Template{}}
	for _, page := range []string{PageHome, PageSkills, PageContact} {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", page, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
