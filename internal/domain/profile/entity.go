package profile

import "portfolio-site/internal/domain/skill"

type Identity struct {
	Name         string `json:"name" yaml:"name" validate:"required"`
	Title        string `json:"title" yaml:"title"`
	Bio          string `json:"bio" yaml:"bio"`
	Location     string `json:"location" yaml:"location"`
	ProfilePhoto string `json:"profilePhoto" yaml:"profilePhoto"`
}

type ContactEndpoints struct {
	Email           string `json:"email" yaml:"email" validate:"omitempty,email"`
	PhoneNumber     string `json:"phoneNumber" yaml:"phoneNumber"`
	WhatsappNumber  string `json:"whatsappNumber" yaml:"whatsappNumber"`
	WhatsappMessage string `json:"whatsappMessage" yaml:"whatsappMessage"`
	LinkedinURL     string `json:"linkedinUrl" yaml:"linkedinUrl" validate:"omitempty,url"`
	QRCodeLink      string `json:"qrCodeLink" yaml:"qrCodeLink" validate:"omitempty,url"`
	ResumeURL       string `json:"resumeUrl" yaml:"resumeUrl"`
}

type Project struct {
	Title        string   `json:"title" yaml:"title" validate:"required"`
	Description  string   `json:"description" yaml:"description"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	Category     string   `json:"category" yaml:"category"`
	Icon         string   `json:"icon" yaml:"icon"`
}

type EducationRecord struct {
	Degree      string `json:"degree" yaml:"degree" validate:"required"`
	Field       string `json:"field" yaml:"field"`
	Institution string `json:"institution" yaml:"institution"`
	Duration    string `json:"duration" yaml:"duration"`
	Score       string `json:"score" yaml:"score"`
	Icon        string `json:"icon" yaml:"icon"`
}

type Certification struct {
	Name   string `json:"name" yaml:"name" validate:"required"`
	Issuer string `json:"issuer" yaml:"issuer"`
	Year   string `json:"year" yaml:"year"`
	Icon   string `json:"icon" yaml:"icon"`
}

type Workshop struct {
	Name      string `json:"name" yaml:"name" validate:"required"`
	Organizer string `json:"organizer" yaml:"organizer"`
	Year      string `json:"year" yaml:"year"`
	Icon      string `json:"icon" yaml:"icon"`
}

type Hobby struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	Icon string `json:"icon" yaml:"icon"`
}

type Theme struct {
	Primary       string `json:"primary" yaml:"primary" validate:"omitempty,hexcolor"`
	Secondary     string `json:"secondary" yaml:"secondary" validate:"omitempty,hexcolor"`
	Accent        string `json:"accent" yaml:"accent" validate:"omitempty,hexcolor"`
	Background    string `json:"background" yaml:"background" validate:"omitempty,hexcolor"`
	Surface       string `json:"surface" yaml:"surface" validate:"omitempty,hexcolor"`
	Text          string `json:"text" yaml:"text" validate:"omitempty,hexcolor"`
	TextSecondary string `json:"textSecondary" yaml:"textSecondary" validate:"omitempty,hexcolor"`
}

// Profile is the decoded profile document. It is only used while loading;
// consumers read through Store.
type Profile struct {
	Identity       `yaml:",inline"`
	Contact        ContactEndpoints  `json:"contact" yaml:"contact"`
	Skills         []skill.Skill     `json:"skills" yaml:"skills" validate:"dive"`
	Projects       []Project         `json:"projects" yaml:"projects" validate:"dive"`
	Education      []EducationRecord `json:"education" yaml:"education" validate:"dive"`
	Certifications []Certification   `json:"certifications" yaml:"certifications" validate:"dive"`
	Workshops      []Workshop        `json:"workshops" yaml:"workshops" validate:"dive"`
	Hobbies        []Hobby           `json:"hobbies" yaml:"hobbies" validate:"dive"`
	Theme          Theme             `json:"theme" yaml:"theme"`
}

type Stats struct {
	Technologies   string `json:"technologies"`
	Projects       int    `json:"projects"`
	Certifications int    `json:"certifications"`
}
