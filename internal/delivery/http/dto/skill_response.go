package dto

type SkillResponse struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	CategoryIcon string `json:"categoryIcon"`
	Level        string `json:"level"`
	Tier         string `json:"tier"`
	Percentage   int    `json:"percentage"`
	Icon         string `json:"icon"`
}

type CategoryResponse struct {
	Name   string `json:"name"`
	Icon   string `json:"icon,omitempty"`
	Active bool   `json:"active"`
}
