package models

import "time"

// Ordonnance is a prescription handed to a patient. Numbered like the billing
// documents so the printed copy can be traced back.
type Ordonnance struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Numero    string    `gorm:"size:30;uniqueIndex;not null" json:"numero"` // ORD-2026-0001
	PatientID uint64    `gorm:"not null;index" json:"patient_id"`
	Contenu   string    `gorm:"type:text;not null" json:"contenu"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"created_at"`

	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

type OrdonnanceInput struct {
	PatientID uint64 `json:"patient_id" binding:"required"`
	Contenu   string `json:"contenu" binding:"required"`
	Notes     string `json:"notes"`
}
