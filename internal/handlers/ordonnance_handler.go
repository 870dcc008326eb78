package handlers

import (
	"log"
	"net/http"
	"time"

	"dentalcare-backend/internal/config"
	"dentalcare-backend/internal/models"
	"dentalcare-backend/internal/services"
	"dentalcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetOrdonnances(c *gin.Context) {
	var ordonnances []models.Ordonnance
	if err := config.DB.Preload("Patient").Order("created_at desc").Find(&ordonnances).Error; err != nil {
		log.Printf("[Ordonnances] liste: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Liste des ordonnances", ordonnances)
}

// CreateOrdonnance numbers the prescription through the shared document
// sequence (ORD-<année>-<n>) inside the creation transaction.
func CreateOrdonnance(c *gin.Context) {
	var input models.OrdonnanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Données ordonnance invalides", err.Error())
		return
	}

	var count int64
	if err := config.DB.Model(&models.Patient{}).Where("id = ?", input.PatientID).Count(&count).Error; err != nil {
		log.Printf("[Ordonnances] patient: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	if count == 0 {
		utils.APIResponse(c, http.StatusNotFound, false, "Patient non trouvé", nil)
		return
	}

	var ordonnance models.Ordonnance
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		numero, err := services.NextNumero(tx, "ORD", time.Now().Year())
		if err != nil {
			return err
		}
		ordonnance = models.Ordonnance{
			Numero:    numero,
			PatientID: input.PatientID,
			Contenu:   input.Contenu,
			Notes:     input.Notes,
		}
		return tx.Create(&ordonnance).Error
	})
	if err != nil {
		log.Printf("[Ordonnances] création: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Ordonnance créée", ordonnance)
}
