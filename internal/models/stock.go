package models

import "time"

type Stock struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Nom          string    `gorm:"size:150;not null" json:"nom"`
	Categorie    string    `gorm:"size:100" json:"categorie"`
	Quantite     int       `gorm:"not null;default:0" json:"quantite"`
	Unite        string    `gorm:"size:30" json:"unite"` // boite, piece, flacon...
	SeuilAlerte  int       `gorm:"default:5" json:"seuil_alerte"`
	PrixUnitaire float64   `json:"prix_unitaire"`
	Fournisseur  string    `gorm:"size:150" json:"fournisseur"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type StockInput struct {
	Nom          string  `json:"nom" binding:"required"`
	Categorie    string  `json:"categorie"`
	Quantite     int     `json:"quantite" binding:"min=0"`
	Unite        string  `json:"unite"`
	SeuilAlerte  int     `json:"seuil_alerte" binding:"min=0"`
	PrixUnitaire float64 `json:"prix_unitaire" binding:"min=0"`
	Fournisseur  string  `json:"fournisseur"`
}
