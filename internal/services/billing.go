package services

import (
	"errors"
	"fmt"
	"time"

	"dentalcare-backend/internal/models"

	"gorm.io/gorm"
)

// Billing errors surfaced to the handlers; everything else is a persistence
// failure that gets logged and answered with a generic message.
var (
	ErrPatientIntrouvable = errors.New("patient introuvable")
	ErrDevisIntrouvable   = errors.New("devis introuvable")
	ErrFactureIntrouvable = errors.New("facture introuvable")
	ErrLignesVides        = errors.New("au moins une ligne est requise")
	ErrLigneInvalide      = errors.New("ligne invalide: quantité > 0 et prix unitaire >= 0 requis")
	ErrMontantInvalide    = errors.New("montant invalide")
)

// BillingService owns the devis/facture/paiement lifecycle: numbering, total
// computation, atomic header+lignes creation and payment-driven status updates.
type BillingService struct {
	DB *gorm.DB
}

func NewBillingService(db *gorm.DB) *BillingService {
	return &BillingService{DB: db}
}

// NextNumero allocates the next number of a (prefix, year) sequence and
// formats it, e.g. DEV-2026-0012. The increment is a single conditional
// UPDATE on the counter row; the row lock it takes holds until the enclosing
// transaction commits, so allocation is linearized per document type per year.
// The first allocation of a period inserts the row; losing that insert race
// falls back to the increment.
func NextNumero(tx *gorm.DB, prefix string, year int) (string, error) {
	res := tx.Model(&models.DocumentSequence{}).
		Where("doc_type = ? AND annee = ?", prefix, year).
		Update("derniere_valeur", gorm.Expr("derniere_valeur + 1"))
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		seq := models.DocumentSequence{DocType: prefix, Annee: year, DerniereValeur: 1}
		if err := tx.Create(&seq).Error; err == nil {
			return fmt.Sprintf("%s-%d-%04d", prefix, year, seq.DerniereValeur), nil
		}
		// Another transaction created the row first; increment it instead.
		res = tx.Model(&models.DocumentSequence{}).
			Where("doc_type = ? AND annee = ?", prefix, year).
			Update("derniere_valeur", gorm.Expr("derniere_valeur + 1"))
		if res.Error != nil {
			return "", res.Error
		}
		if res.RowsAffected == 0 {
			return "", fmt.Errorf("allocation numéro %s-%d impossible", prefix, year)
		}
	}

	var seq models.DocumentSequence
	if err := tx.Where("doc_type = ? AND annee = ?", prefix, year).First(&seq).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d-%04d", prefix, year, seq.DerniereValeur), nil
}

// TotalLignes sums quantité × prix unitaire over the requested lines.
func TotalLignes(lignes []models.LigneInput) float64 {
	var total float64
	for _, l := range lignes {
		total += float64(l.Quantite) * l.PrixUnitaire
	}
	return total
}

func validerLignes(lignes []models.LigneInput) error {
	if len(lignes) == 0 {
		return ErrLignesVides
	}
	for _, l := range lignes {
		if l.Quantite <= 0 || l.PrixUnitaire < 0 {
			return ErrLigneInvalide
		}
	}
	return nil
}

func patientExiste(tx *gorm.DB, patientID uint64) error {
	var count int64
	if err := tx.Model(&models.Patient{}).Where("id = ?", patientID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrPatientIntrouvable
	}
	return nil
}

// CreateDevis persists a devis with its lignes, all-or-nothing. Validation
// happens before any write: a devis for an unknown patient leaves no header.
func (s *BillingService) CreateDevis(in models.CreateDevisInput) (*models.Devis, error) {
	if err := validerLignes(in.Lignes); err != nil {
		return nil, err
	}
	validite := in.ValiditeJours
	if validite <= 0 {
		validite = 30
	}

	var devis models.Devis
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := patientExiste(tx, in.PatientID); err != nil {
			return err
		}
		numero, err := NextNumero(tx, "DEV", time.Now().Year())
		if err != nil {
			return err
		}
		devis = models.Devis{
			Numero:        numero,
			PatientID:     in.PatientID,
			MontantTotal:  TotalLignes(in.Lignes),
			Notes:         in.Notes,
			ValiditeJours: validite,
			Statut:        "en_attente",
		}
		if err := tx.Create(&devis).Error; err != nil {
			return err
		}
		lignes := make([]models.DevisLigne, 0, len(in.Lignes))
		for _, l := range in.Lignes {
			lignes = append(lignes, models.DevisLigne{
				DevisID:      devis.ID,
				ActeID:       l.ActeID,
				Description:  l.Description,
				Quantite:     l.Quantite,
				PrixUnitaire: l.PrixUnitaire,
			})
		}
		return tx.Create(&lignes).Error
	})
	if err != nil {
		return nil, err
	}
	return &devis, nil
}

// CreateFacture mirrors CreateDevis with the FAC prefix, montant_paye starting
// at zero and an optional link to the originating devis.
func (s *BillingService) CreateFacture(in models.CreateFactureInput) (*models.Facture, error) {
	if err := validerLignes(in.Lignes); err != nil {
		return nil, err
	}

	var facture models.Facture
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := patientExiste(tx, in.PatientID); err != nil {
			return err
		}
		numero, err := NextNumero(tx, "FAC", time.Now().Year())
		if err != nil {
			return err
		}
		facture = models.Facture{
			Numero:       numero,
			PatientID:    in.PatientID,
			DevisID:      in.DevisID,
			MontantTotal: TotalLignes(in.Lignes),
			MontantPaye:  0,
			Notes:        in.Notes,
			Statut:       "en_attente",
		}
		if err := tx.Create(&facture).Error; err != nil {
			return err
		}
		lignes := make([]models.FactureLigne, 0, len(in.Lignes))
		for _, l := range in.Lignes {
			lignes = append(lignes, models.FactureLigne{
				FactureID:    facture.ID,
				ActeID:       l.ActeID,
				Description:  l.Description,
				Quantite:     l.Quantite,
				PrixUnitaire: l.PrixUnitaire,
			})
		}
		return tx.Create(&lignes).Error
	})
	if err != nil {
		return nil, err
	}
	return &facture, nil
}

// ConvertDevis builds a facture from an existing devis, copying its lignes
// server-side so the two documents cannot drift apart.
func (s *BillingService) ConvertDevis(devisID uint64) (*models.Facture, error) {
	var devis models.Devis
	if err := s.DB.Preload("Lignes").First(&devis, devisID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDevisIntrouvable
		}
		return nil, err
	}

	lignes := make([]models.LigneInput, 0, len(devis.Lignes))
	for _, l := range devis.Lignes {
		lignes = append(lignes, models.LigneInput{
			ActeID:       l.ActeID,
			Description:  l.Description,
			Quantite:     l.Quantite,
			PrixUnitaire: l.PrixUnitaire,
		})
	}

	return s.CreateFacture(models.CreateFactureInput{
		PatientID: devis.PatientID,
		DevisID:   &devis.ID,
		Lignes:    lignes,
		Notes:     devis.Notes,
	})
}

// RecordPaiement appends a paiement and applies it to the facture in one
// transaction. The increment and the status derivation run as a single UPDATE
// evaluated by the database from the post-increment montant_paye, so two
// concurrent payments can neither lose an increment nor compute the status
// from a stale value.
func (s *BillingService) RecordPaiement(in models.CreatePaiementInput) (*models.Paiement, error) {
	if in.Montant <= 0 {
		return nil, ErrMontantInvalide
	}

	var paiement models.Paiement
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Facture{}).Where("id = ?", in.FactureID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrFactureIntrouvable
		}

		paiement = models.Paiement{
			FactureID:    in.FactureID,
			Montant:      in.Montant,
			ModePaiement: in.ModePaiement,
			Reference:    in.Reference,
			Notes:        in.Notes,
		}
		if err := tx.Create(&paiement).Error; err != nil {
			return err
		}

		return tx.Exec(`
			UPDATE factures
			SET montant_paye = montant_paye + ?,
			    statut = CASE
			      WHEN montant_paye + ? >= montant_total THEN 'payee'
			      WHEN montant_paye + ? > 0 THEN 'partielle'
			      ELSE statut
			    END,
			    updated_at = ?
			WHERE id = ?`,
			in.Montant, in.Montant, in.Montant, time.Now(), in.FactureID).Error
	})
	if err != nil {
		return nil, err
	}
	return &paiement, nil
}
