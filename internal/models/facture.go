package models

import "time"

// Facture is a billable document, optionally derived from a devis.
// MontantPaye only ever grows, through recorded paiements; Statut is derived
// from (montant_paye, montant_total) at the storage layer.
type Facture struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Numero       string    `gorm:"size:30;uniqueIndex;not null" json:"numero"` // FAC-2026-0001
	PatientID    uint64    `gorm:"not null;index" json:"patient_id"`
	DevisID      *uint64   `gorm:"index" json:"devis_id"` // originating devis, if any
	MontantTotal float64   `gorm:"not null" json:"montant_total"`
	MontantPaye  float64   `gorm:"not null;default:0" json:"montant_paye"`
	Notes        string    `gorm:"type:text" json:"notes"`
	Statut       string    `gorm:"size:30;default:'en_attente'" json:"statut"` // en_attente, partielle, payee
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Patient   *Patient       `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Lignes    []FactureLigne `gorm:"foreignKey:FactureID" json:"lignes,omitempty"`
	Paiements []Paiement     `gorm:"foreignKey:FactureID" json:"paiements,omitempty"`
}

type FactureLigne struct {
	ID           uint64  `gorm:"primaryKey" json:"id"`
	FactureID    uint64  `gorm:"not null;index" json:"facture_id"`
	ActeID       *uint64 `json:"acte_id"`
	Description  string  `gorm:"size:255" json:"description"`
	Quantite     int     `gorm:"not null" json:"quantite"`
	PrixUnitaire float64 `gorm:"not null" json:"prix_unitaire"`

	Acte *Acte `gorm:"foreignKey:ActeID" json:"acte,omitempty"`
}

// Paiement is append-only: never updated, never deleted.
type Paiement struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	FactureID    uint64    `gorm:"not null;index" json:"facture_id"`
	Montant      float64   `gorm:"not null" json:"montant"`
	ModePaiement string    `gorm:"size:50" json:"mode_paiement"` // especes, carte, cheque, virement, mobile_money
	Reference    string    `gorm:"size:100" json:"reference"`
	Notes        string    `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateFactureInput struct {
	PatientID uint64       `json:"patient_id" binding:"required"`
	DevisID   *uint64      `json:"devis_id"`
	Lignes    []LigneInput `json:"lignes" binding:"required"`
	Notes     string       `json:"notes"`
}

type CreatePaiementInput struct {
	FactureID    uint64  `json:"facture_id" binding:"required"`
	Montant      float64 `json:"montant" binding:"required"`
	ModePaiement string  `json:"mode_paiement" binding:"required"`
	Reference    string  `json:"reference"`
	Notes        string  `json:"notes"`
}
