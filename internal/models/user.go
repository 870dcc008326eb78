package models

import "time"

// User represents the 'users' table. Single-practice app: in practice one admin
// account (the practitioner), but nothing prevents adding an assistant account.
type User struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string    `gorm:"column:password;not null" json:"-"` // never sent back to the frontend
	Nom          string    `gorm:"size:100;not null" json:"nom"`
	Prenom       string    `gorm:"size:100;not null" json:"prenom"`
	Role         string    `gorm:"size:50;default:'admin'" json:"role"`
	Specialite   string    `gorm:"size:100" json:"specialite"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LoginInput captures the login form
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
