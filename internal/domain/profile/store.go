package profile

import (
	"fmt"
	"regexp"

	"portfolio-site/internal/domain/skill"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Store holds the profile for the lifetime of the process. It has no mutation
// API and every slice it hands out is a copy.
type Store struct {
	p Profile
}

func NewStore(p Profile) *Store {
	return &Store{p: clone(p)}
}

func (s *Store) Identity() Identity        { return s.p.Identity }
func (s *Store) Contact() ContactEndpoints { return s.p.Contact }
func (s *Store) Theme() Theme              { return s.p.Theme }
func (s *Store) Skills() []skill.Skill     { return append([]skill.Skill(nil), s.p.Skills...) }

func (s *Store) Education() []EducationRecord {
	return append([]EducationRecord(nil), s.p.Education...)
}
func (s *Store) Certifications() []Certification {
	return append([]Certification(nil), s.p.Certifications...)
}
func (s *Store) Workshops() []Workshop { return append([]Workshop(nil), s.p.Workshops...) }
func (s *Store) Hobbies() []Hobby      { return append([]Hobby(nil), s.p.Hobbies...) }

func (s *Store) Projects() []Project {
	out := make([]Project, len(s.p.Projects))
	for i, pr := range s.p.Projects {
		pr.Technologies = append([]string(nil), pr.Technologies...)
		out[i] = pr
	}
	return out
}

func (s *Store) SkillsIn(c skill.Category) []skill.Skill {
	return skill.FilterByCategory(s.p.Skills, c)
}

func (s *Store) Stats() Stats {
	return Stats{
		Technologies:   fmt.Sprintf("%d+", len(s.p.Skills)),
		Projects:       len(s.p.Projects),
		Certifications: len(s.p.Certifications),
	}
}

// FileStem turns the display name into a download-safe stem by replacing each
// whitespace run with an underscore.
func (s *Store) FileStem() string {
	return whitespaceRun.ReplaceAllString(s.p.Name, "_")
}

func (s *Store) QRFileName() string {
	return s.FileStem() + "_contact_qr.png"
}

func (s *Store) ResumeFileName() string {
	stem := s.FileStem()
	if stem == "" {
		return "Resume.pdf"
	}
	return stem + "_Resume.pdf"
}

// Snapshot returns a deep copy of the underlying document.
func (s *Store) Snapshot() Profile {
	return clone(s.p)
}

func clone(p Profile) Profile {
	out := p
	out.Skills = append([]skill.Skill(nil), p.Skills...)
	out.Projects = make([]Project, len(p.Projects))
	for i, pr := range p.Projects {
		pr.Technologies = append([]string(nil), pr.Technologies...)
		out.Projects[i] = pr
	}
	out.Education = append([]EducationRecord(nil), p.Education...)
	out.Certifications = append([]Certification(nil), p.Certifications...)
	out.Workshops = append([]Workshop(nil), p.Workshops...)
	out.Hobbies = append([]Hobby(nil), p.Hobbies...)
	return out
}
