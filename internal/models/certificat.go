package models

import "time"

type Certificat struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	Numero         string    `gorm:"size:30;uniqueIndex;not null" json:"numero"` // CERT-2026-0001
	PatientID      uint64    `gorm:"not null;index" json:"patient_id"`
	TypeCertificat string    `gorm:"size:100" json:"type_certificat"` // arret_travail, aptitude...
	Contenu        string    `gorm:"type:text" json:"contenu"`
	DateDebut      string    `gorm:"type:date" json:"date_debut"`
	DateFin        string    `gorm:"type:date" json:"date_fin"`
	Notes          string    `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time `json:"created_at"`

	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

type CertificatInput struct {
	PatientID      uint64 `json:"patient_id" binding:"required"`
	TypeCertificat string `json:"type_certificat" binding:"required"`
	Contenu        string `json:"contenu"`
	DateDebut      string `json:"date_debut"`
	DateFin        string `json:"date_fin"`
	Notes          string `json:"notes"`
}
