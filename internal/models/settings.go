package models

import (
	"encoding/json"
	"time"
)

// Settings is a singleton row (id = 1) holding the practice identity.
// Updates are upserts keyed on that fixed id.
type Settings struct {
	ID          uint64          `gorm:"primaryKey" json:"id"`
	CabinetNom  string          `gorm:"size:150" json:"cabinet_nom"`
	Adresse     string          `gorm:"type:text" json:"adresse"`
	Ville       string          `gorm:"size:100" json:"ville"`
	Telephone   string          `gorm:"size:30" json:"telephone"`
	Email       string          `gorm:"size:100" json:"email"`
	Devise      string          `gorm:"size:10;default:'GNF'" json:"devise"`
	Horaires    json.RawMessage `gorm:"type:text" json:"horaires"`
	JoursFeries json.RawMessage `gorm:"type:text" json:"jours_feries"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SettingsID is the fixed key of the singleton row.
const SettingsID uint64 = 1

type SettingsInput struct {
	CabinetNom  string          `json:"cabinet_nom" binding:"required"`
	Adresse     string          `json:"adresse"`
	Ville       string          `json:"ville"`
	Telephone   string          `json:"telephone"`
	Email       string          `json:"email" binding:"omitempty,email"`
	Devise      string          `json:"devise"`
	Horaires    json.RawMessage `json:"horaires"`
	JoursFeries json.RawMessage `json:"jours_feries"`
}
