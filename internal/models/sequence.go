package models

// DocumentSequence is the numbering counter for one document type and one year.
// Numbers are allocated with a single conditional UPDATE on this row inside the
// creation transaction, so DEV-2026-0007 can never be handed out twice even
// under concurrent creations.
type DocumentSequence struct {
	ID             uint64 `gorm:"primaryKey"`
	DocType        string `gorm:"size:20;not null;uniqueIndex:idx_doc_sequence"`
	Annee          int    `gorm:"not null;uniqueIndex:idx_doc_sequence"`
	DerniereValeur int64  `gorm:"not null;default:0"`
}
