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

func GetDevisList(c *gin.Context) {
	var devis []models.Devis
	if err := config.DB.Preload("Patient").Order("created_at desc").Find(&devis).Error; err != nil {
		log.Printf("[Devis] liste: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Liste des devis", devis)
}

func GetDevis(c *gin.Context) {
	var devis models.Devis
	err := config.DB.Preload("Patient").Preload("Lignes.Acte").
		First(&devis, utils.ParseID(c.Param("id"))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.APIResponse(c, http.StatusNotFound, false, "Devis non trouvé", nil)
			return
		}
		log.Printf("[Devis] lecture: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Détail du devis", devis)
}

func CreateDevis(c *gin.Context) {
	var input models.CreateDevisInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Données devis invalides", err.Error())
		return
	}

	devis, err := services.NewBillingService(config.DB).CreateDevis(input)
	if err != nil {
		billingError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Devis créé", devis)
}

// ConvertDevisToFacture builds a facture from the devis, copying its lignes.
func ConvertDevisToFacture(c *gin.Context) {
	facture, err := services.NewBillingService(config.DB).ConvertDevis(utils.ParseID(c.Param("id")))
	if err != nil {
		billingError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Facture créée à partir du devis", facture)
}

// GetDevisPDF streams the devis as a PDF download.
func GetDevisPDF(c *gin.Context) {
	var devis models.Devis
	err := config.DB.Preload("Patient").Preload("Lignes.Acte").
		First(&devis, utils.ParseID(c.Param("id"))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.APIResponse(c, http.StatusNotFound, false, "Devis non trouvé", nil)
			return
		}
		log.Printf("[Devis] lecture: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}

	servePDF(c, "DEVIS", devis.Numero, devis.Patient, devisLignes(devis.Lignes), devis.MontantTotal, 0, devis.Notes, devis.CreatedAt)
}
