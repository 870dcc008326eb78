package models

import "time"

type Appointment struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	PatientID  uint64    `gorm:"not null;index" json:"patient_id"`
	DateRdv    string    `gorm:"type:date;not null;index" json:"date_rdv"` // Format YYYY-MM-DD
	HeureDebut string    `gorm:"size:10" json:"heure_debut"`               // "09:30"
	HeureFin   string    `gorm:"size:10" json:"heure_fin"`
	Motif      string    `gorm:"size:255" json:"motif"`
	Notes      string    `gorm:"type:text" json:"notes"`
	Statut     string    `gorm:"size:30;default:'planifie'" json:"statut"` // planifie, confirme, termine, annule
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Preloaded so the agenda list shows patient names without a second query
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

type AppointmentInput struct {
	PatientID  uint64 `json:"patient_id" binding:"required"`
	DateRdv    string `json:"date_rdv" binding:"required"`
	HeureDebut string `json:"heure_debut"`
	HeureFin   string `json:"heure_fin"`
	Motif      string `json:"motif"`
	Notes      string `json:"notes"`
	Statut     string `json:"statut"`
}
