package models

import "time"

type Patient struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	Nom           string    `gorm:"size:100;not null" json:"nom"`
	Prenom        string    `gorm:"size:100;not null" json:"prenom"`
	DateNaissance string    `gorm:"type:date" json:"date_naissance"` // Format YYYY-MM-DD
	Telephone     string    `gorm:"size:30" json:"telephone"`
	Email         string    `gorm:"size:100" json:"email"`
	Adresse       string    `gorm:"type:text" json:"adresse"`
	Ville         string    `gorm:"size:100" json:"ville"`
	Sexe          string    `gorm:"size:10" json:"sexe"` // M / F
	GroupeSanguin string    `gorm:"size:10" json:"groupe_sanguin"`
	Allergies     string    `gorm:"type:text" json:"allergies"`
	Antecedents   string    `gorm:"type:text" json:"antecedents"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type PatientInput struct {
	Nom           string `json:"nom" binding:"required"`
	Prenom        string `json:"prenom" binding:"required"`
	DateNaissance string `json:"date_naissance"`
	Telephone     string `json:"telephone"`
	Email         string `json:"email" binding:"omitempty,email"`
	Adresse       string `json:"adresse"`
	Ville         string `json:"ville"`
	Sexe          string `json:"sexe" binding:"omitempty,oneof=M F"`
	GroupeSanguin string `json:"groupe_sanguin"`
	Allergies     string `json:"allergies"`
	Antecedents   string `json:"antecedents"`
}
