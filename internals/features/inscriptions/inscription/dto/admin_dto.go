package dto

import "strings"

// AdminLoginRequest — identifiants du tableau de bord
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *AdminLoginRequest) Normalize() {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
}

// UpdateStatutRequest — transition de statut d'un dossier
type UpdateStatutRequest struct {
	Statut string `json:"statut" validate:"required,oneof=en_attente paye valide"`
}

func (r *UpdateStatutRequest) Normalize() {
	r.Statut = strings.TrimSpace(r.Statut)
}
