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

func GetCertificats(c *gin.Context) {
	var certificats []models.Certificat
	if err := config.DB.Preload("Patient").Order("created_at desc").Find(&certificats).Error; err != nil {
		log.Printf("[Certificats] liste: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Liste des certificats", certificats)
}

func CreateCertificat(c *gin.Context) {
	var input models.CertificatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Données certificat invalides", err.Error())
		return
	}

	var count int64
	if err := config.DB.Model(&models.Patient{}).Where("id = ?", input.PatientID).Count(&count).Error; err != nil {
		log.Printf("[Certificats] patient: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	if count == 0 {
		utils.APIResponse(c, http.StatusNotFound, false, "Patient non trouvé", nil)
		return
	}

	var certificat models.Certificat
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		numero, err := services.NextNumero(tx, "CERT", time.Now().Year())
		if err != nil {
			return err
		}
		certificat = models.Certificat{
			Numero:         numero,
			PatientID:      input.PatientID,
			TypeCertificat: input.TypeCertificat,
			Contenu:        input.Contenu,
			DateDebut:      input.DateDebut,
			DateFin:        input.DateFin,
			Notes:          input.Notes,
		}
		return tx.Create(&certificat).Error
	})
	if err != nil {
		log.Printf("[Certificats] création: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Certificat créé", certificat)
}
