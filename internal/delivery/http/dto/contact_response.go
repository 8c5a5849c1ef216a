package dto

type ContactURIResponse struct {
	Method      string `json:"method"`
	Label       string `json:"label"`
	Description string `json:"description"`
	URI         string `json:"uri"`
}
