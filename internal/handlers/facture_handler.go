package handlers

import (
	"errors"
	"log"
	"net/http"

	"dentalcare-backend/internal/config"
	"dentalcare-backend/internal/models"
	"dentalcare-backend/internal/services"
	"dentalcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetFactures(c *gin.Context) {
	var factures []models.Facture
	query := config.DB.Preload("Patient").Order("created_at desc")

	// Optional filter: ?statut=en_attente
	if statut := c.Query("statut"); statut != "" {
		query = query.Where("statut = ?", statut)
	}

	if err := query.Find(&factures).Error; err != nil {
		log.Printf("[Factures] liste: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Liste des factures", factures)
}

func GetFacture(c *gin.Context) {
	var facture models.Facture
	err := config.DB.Preload("Patient").Preload("Lignes.Acte").Preload("Paiements").
		First(&facture, utils.ParseID(c.Param("id"))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.APIResponse(c, http.StatusNotFound, false, "Facture non trouvée", nil)
			return
		}
		log.Printf("[Factures] lecture: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Détail de la facture", facture)
}

func CreateFacture(c *gin.Context) {
	var input models.CreateFactureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Données facture invalides", err.Error())
		return
	}

	facture, err := services.NewBillingService(config.DB).CreateFacture(input)
	if err != nil {
		billingError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Facture créée", facture)
}

// GetFacturePDF streams the facture as a PDF download, with the amount already
// paid and the outstanding balance.
func GetFacturePDF(c *gin.Context) {
	var facture models.Facture
	err := config.DB.Preload("Patient").Preload("Lignes.Acte").
		First(&facture, utils.ParseID(c.Param("id"))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.APIResponse(c, http.StatusNotFound, false, "Facture non trouvée", nil)
			return
		}
		log.Printf("[Factures] lecture: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}

	servePDF(c, "FACTURE", facture.Numero, facture.Patient, factureLignes(facture.Lignes), facture.MontantTotal, facture.MontantPaye, facture.Notes, facture.CreatedAt)
}
