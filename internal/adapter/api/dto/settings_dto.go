package dto

// SettingRequest representa a gravação de uma configuração
type SettingRequest struct {
	Value       string `json:"valor"`
	Type        string `json:"tipo"`
	Description string `json:"descricao"`
	Category    string `json:"categoria"`
}
