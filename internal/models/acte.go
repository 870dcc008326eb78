package models

import "time"

// Acte is a catalog entry: a priced dental procedure offered by the practice.
// Reference data for devis/facture lines; rows keep their identity once referenced.
type Acte struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Code         string    `gorm:"size:30;uniqueIndex" json:"code"`
	Nom          string    `gorm:"size:150;not null" json:"nom"`
	Categorie    string    `gorm:"size:100" json:"categorie"`
	Description  string    `gorm:"type:text" json:"description"`
	Tarif        float64   `gorm:"not null" json:"tarif"`
	DureeMoyenne int       `json:"duree_moyenne"` // minutes
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ActeInput struct {
	Code         string  `json:"code" binding:"required"`
	Nom          string  `json:"nom" binding:"required"`
	Categorie    string  `json:"categorie"`
	Description  string  `json:"description"`
	Tarif        float64 `json:"tarif" binding:"min=0"`
	DureeMoyenne int     `json:"duree_moyenne"`
}
