package services

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"dentalcare-backend/internal/config"
	"dentalcare-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupBillingDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	// A single connection serializes transactions the way Postgres row locks
	// would, so the concurrency tests exercise the allocation logic itself.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return db
}

func seedPatient(t *testing.T, db *gorm.DB) models.Patient {
	t.Helper()
	patient := models.Patient{Nom: "Camara", Prenom: "Aissatou", Telephone: "+224 620 00 00 00"}
	require.NoError(t, db.Create(&patient).Error)
	return patient
}

func deuxLignes(q1 int, p1 float64, q2 int, p2 float64) []models.LigneInput {
	return []models.LigneInput{
		{Description: "Couronne céramique", Quantite: q1, PrixUnitaire: p1},
		{Description: "Implant", Quantite: q2, PrixUnitaire: p2},
	}
}

func TestCreateDevisComputesTotalAndNumero(t *testing.T) {
	db := setupBillingDB(t)
	patient := seedPatient(t, db)
	svc := NewBillingService(db)

	devis, err := svc.CreateDevis(models.CreateDevisInput{
		PatientID: patient.ID,
		Lignes:    deuxLignes(1, 650000, 2, 800000),
		Notes:     "plan de traitement",
	})
	require.NoError(t, err)

	assert.Equal(t, float64(2250000), devis.MontantTotal)
	assert.Equal(t, fmt.Sprintf("DEV-%d-0001", time.Now().Year()), devis.Numero)
	assert.Equal(t, "en_attente", devis.Statut)
	assert.Equal(t, 30, devis.ValiditeJours) // default when absent

	var lignes []models.DevisLigne
	require.NoError(t, db.Where("devis_id = ?", devis.ID).Find(&lignes).Error)
	assert.Len(t, lignes, 2)
}

func TestCreateDevisUnknownPatientPersistsNothing(t *testing.T) {
	db := setupBillingDB(t)
	svc := NewBillingService(db)

	_, err := svc.CreateDevis(models.CreateDevisInput{
		PatientID: 9999,
		Lignes:    deuxLignes(1, 1000, 1, 2000),
	})
	require.ErrorIs(t, err, ErrPatientIntrouvable)

	var count int64
	require.NoError(t, db.Model(&models.Devis{}).Count(&count).Error)
	assert.Zero(t, count, "no header may survive a failed creation")
}

func TestCreateDevisValidation(t *testing.T) {
	db := setupBillingDB(t)
	patient := seedPatient(t, db)
	svc := NewBillingService(db)

	_, err := svc.CreateDevis(models.CreateDevisInput{PatientID: patient.ID})
	assert.ErrorIs(t, err, ErrLignesVides)

	_, err = svc.CreateDevis(models.CreateDevisInput{
		PatientID: patient.ID,
		Lignes:    []models.LigneInput{{Description: "x", Quantite: 0, PrixUnitaire: 100}},
	})
	assert.ErrorIs(t, err, ErrLigneInvalide)

	_, err = svc.CreateDevis(models.CreateDevisInput{
		PatientID: patient.ID,
		Lignes:    []models.LigneInput{{Description: "x", Quantite: 1, PrixUnitaire: -1}},
	})
	assert.ErrorIs(t, err, ErrLigneInvalide)
}

func TestNumerosSequentialPerTypeAndYear(t *testing.T) {
	db := setupBillingDB(t)
	patient := seedPatient(t, db)
	svc := NewBillingService(db)
	year := time.Now().Year()

	for i := 1; i <= 3; i++ {
		devis, err := svc.CreateDevis(models.CreateDevisInput{
			PatientID: patient.ID,
			Lignes:    deuxLignes(1, 1000, 1, 2000),
		})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("DEV-%d-%04d", year, i), devis.Numero)
	}

	// The facture sequence is independent of the devis sequence.
	facture, err := svc.CreateFacture(models.CreateFactureInput{
		PatientID: patient.ID,
		Lignes:    deuxLignes(1, 1000, 1, 2000),
	})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("FAC-%d-0001", year), facture.Numero)
}

func TestNumeroSequencesIndependentPerYear(t *testing.T) {
	db := setupBillingDB(t)

	alloc := func(year int) string {
		var numero string
		err := db.Transaction(func(tx *gorm.DB) error {
			var err error
			numero, err = NextNumero(tx, "DEV", year)
			return err
		})
		require.NoError(t, err)
		return numero
	}

	assert.Equal(t, "DEV-2025-0001", alloc(2025))
	assert.Equal(t, "DEV-2025-0002", alloc(2025))
	assert.Equal(t, "DEV-2026-0001", alloc(2026))
}

func TestConcurrentCreationsYieldDistinctNumeros(t *testing.T) {
	db := setupBillingDB(t)
	patient := seedPatient(t, db)
	svc := NewBillingService(db)

	const n = 8
	numeros := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			devis, err := svc.CreateDevis(models.CreateDevisInput{
				PatientID: patient.ID,
				Lignes:    deuxLignes(1, 1000, 1, 2000),
			})
			if err != nil {
				t.Errorf("création concurrente: %v", err)
				return
			}
			numeros <- devis.Numero
		}()
	}
	wg.Wait()
	close(numeros)

	seen := make(map[string]bool)
	for numero := range numeros {
		assert.False(t, seen[numero], "numéro dupliqué: %s", numero)
		seen[numero] = true
	}
	assert.Len(t, seen, n)
}

func TestRecordPaiementStatusTransitions(t *testing.T) {
	db := setupBillingDB(t)
	patient := seedPatient(t, db)
	svc := NewBillingService(db)

	facture, err := svc.CreateFacture(models.CreateFactureInput{
		PatientID: patient.ID,
		Lignes:    []models.LigneInput{{Description: "Soins", Quantite: 1, PrixUnitaire: 450000}},
	})
	require.NoError(t, err)
	assert.Equal(t, "en_attente", facture.Statut)
	assert.Zero(t, facture.MontantPaye)

	_, err = svc.RecordPaiement(models.CreatePaiementInput{
		FactureID: facture.ID, Montant: 200000, ModePaiement: "especes",
	})
	require.NoError(t, err)

	var reloaded models.Facture
	require.NoError(t, db.First(&reloaded, facture.ID).Error)
	assert.Equal(t, "partielle", reloaded.Statut)
	assert.Equal(t, float64(200000), reloaded.MontantPaye)

	// Second payment lands exactly on the total: boundary must read "payee".
	_, err = svc.RecordPaiement(models.CreatePaiementInput{
		FactureID: facture.ID, Montant: 250000, ModePaiement: "carte",
	})
	require.NoError(t, err)

	require.NoError(t, db.First(&reloaded, facture.ID).Error)
	assert.Equal(t, "payee", reloaded.Statut)
	assert.Equal(t, float64(450000), reloaded.MontantPaye)
}

func TestRecordPaiementValidation(t *testing.T) {
	db := setupBillingDB(t)
	svc := NewBillingService(db)

	_, err := svc.RecordPaiement(models.CreatePaiementInput{FactureID: 1, Montant: 0})
	assert.ErrorIs(t, err, ErrMontantInvalide)

	_, err = svc.RecordPaiement(models.CreatePaiementInput{FactureID: 42, Montant: 1000})
	assert.ErrorIs(t, err, ErrFactureIntrouvable)

	var count int64
	require.NoError(t, db.Model(&models.Paiement{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestConcurrentPaiementsLoseNoIncrement(t *testing.T) {
	db := setupBillingDB(t)
	patient := seedPatient(t, db)
	svc := NewBillingService(db)

	facture, err := svc.CreateFacture(models.CreateFactureInput{
		PatientID: patient.ID,
		Lignes:    []models.LigneInput{{Description: "Prothèse", Quantite: 1, PrixUnitaire: 500000}},
	})
	require.NoError(t, err)

	montants := []float64{150000, 250000}
	var wg sync.WaitGroup
	for _, m := range montants {
		wg.Add(1)
		go func(montant float64) {
			defer wg.Done()
			if _, err := svc.RecordPaiement(models.CreatePaiementInput{
				FactureID: facture.ID, Montant: montant, ModePaiement: "virement",
			}); err != nil {
				t.Errorf("paiement concurrent: %v", err)
			}
		}(m)
	}
	wg.Wait()

	var reloaded models.Facture
	require.NoError(t, db.First(&reloaded, facture.ID).Error)
	assert.Equal(t, float64(400000), reloaded.MontantPaye)
	assert.Equal(t, "partielle", reloaded.Statut)
}

func TestConvertDevisScenario(t *testing.T) {
	db := setupBillingDB(t)
	patient := seedPatient(t, db)
	svc := NewBillingService(db)

	devis, err := svc.CreateDevis(models.CreateDevisInput{
		PatientID: patient.ID,
		Lignes:    deuxLignes(1, 650000, 2, 800000),
	})
	require.NoError(t, err)
	require.Equal(t, float64(2250000), devis.MontantTotal)

	facture, err := svc.ConvertDevis(devis.ID)
	require.NoError(t, err)
	assert.Equal(t, devis.MontantTotal, facture.MontantTotal)
	assert.Equal(t, devis.PatientID, facture.PatientID)
	require.NotNil(t, facture.DevisID)
	assert.Equal(t, devis.ID, *facture.DevisID)
	assert.Zero(t, facture.MontantPaye)
	assert.Equal(t, "en_attente", facture.Statut)

	var lignes []models.FactureLigne
	require.NoError(t, db.Where("facture_id = ?", facture.ID).Find(&lignes).Error)
	assert.Len(t, lignes, 2)

	_, err = svc.RecordPaiement(models.CreatePaiementInput{
		FactureID: facture.ID, Montant: 2250000, ModePaiement: "virement",
	})
	require.NoError(t, err)

	var reloaded models.Facture
	require.NoError(t, db.First(&reloaded, facture.ID).Error)
	assert.Equal(t, "payee", reloaded.Statut)
	assert.Equal(t, float64(2250000), reloaded.MontantPaye)

	_, err = svc.ConvertDevis(9999)
	assert.ErrorIs(t, err, ErrDevisIntrouvable)
}
