package models

import "time"

// Devis is a priced treatment plan proposed to a patient, not yet billed.
// Header + lignes are always created together in one transaction.
type Devis struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	Numero        string    `gorm:"size:30;uniqueIndex;not null" json:"numero"` // DEV-2026-0001
	PatientID     uint64    `gorm:"not null;index" json:"patient_id"`
	MontantTotal  float64   `gorm:"not null" json:"montant_total"`
	Notes         string    `gorm:"type:text" json:"notes"`
	ValiditeJours int       `gorm:"default:30" json:"validite_jours"`
	Statut        string    `gorm:"size:30;default:'en_attente'" json:"statut"` // en_attente, accepte, refuse, expire
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Patient *Patient     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Lignes  []DevisLigne `gorm:"foreignKey:DevisID" json:"lignes,omitempty"`
}

// DevisLigne references a catalog acte or carries a free-text description.
// Lines are immutable once the devis exists (no line-edit endpoint).
type DevisLigne struct {
	ID           uint64  `gorm:"primaryKey" json:"id"`
	DevisID      uint64  `gorm:"not null;index" json:"devis_id"`
	ActeID       *uint64 `json:"acte_id"` // pointer: free-text lines have no acte
	Description  string  `gorm:"size:255" json:"description"`
	Quantite     int     `gorm:"not null" json:"quantite"`
	PrixUnitaire float64 `gorm:"not null" json:"prix_unitaire"`

	Acte *Acte `gorm:"foreignKey:ActeID" json:"acte,omitempty"`
}

type LigneInput struct {
	ActeID       *uint64 `json:"acte_id"`
	Description  string  `json:"description"`
	Quantite     int     `json:"quantite" binding:"required"`
	PrixUnitaire float64 `json:"prix_unitaire"`
}

type CreateDevisInput struct {
	PatientID     uint64       `json:"patient_id" binding:"required"`
	Lignes        []LigneInput `json:"lignes" binding:"required"`
	Notes         string       `json:"notes"`
	ValiditeJours int          `json:"validite_jours"`
}
