package dto

import "portfolio-site/internal/domain/profile"

type ProfileResponse struct {
	Identity profile.Identity         `json:"identity"`
	Contact  profile.ContactEndpoints `json:"contact"`
	Theme    profile.Theme            `json:"theme"`
	Stats    profile.Stats            `json:"stats"`
	Download DownloadLinks            `json:"downloads"`
}

type DownloadLinks struct {
	QRCode         string `json:"qrCode"`
	QRFileName     string `json:"qrFileName"`
	Resume         string `json:"resume"`
	ResumeFileName string `json:"resumeFileName"`
}

type AchievementsResponse struct {
	Certifications []profile.Certification `json:"certifications"`
	Workshops      []profile.Workshop      `json:"workshops"`
}
