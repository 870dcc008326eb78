package handlers

import (
	"log"
	"net/http"

	"dentalcare-backend/internal/config"
	"dentalcare-backend/internal/models"
	"dentalcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

func GetSettings(c *gin.Context) {
	var settings models.Settings
	if err := config.DB.First(&settings, models.SettingsID).Error; err != nil {
		// Seeded at startup; an empty row here just means a fresh database.
		utils.APIResponse(c, http.StatusOK, true, "Paramètres du cabinet", models.Settings{ID: models.SettingsID})
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Paramètres du cabinet", settings)
}

// UpdateSettings upserts the singleton row keyed on the fixed id.
func UpdateSettings(c *gin.Context) {
	var input models.SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Données paramètres invalides", err.Error())
		return
	}

	settings := models.Settings{
		ID:          models.SettingsID,
		CabinetNom:  input.CabinetNom,
		Adresse:     input.Adresse,
		Ville:       input.Ville,
		Telephone:   input.Telephone,
		Email:       input.Email,
		Devise:      input.Devise,
		Horaires:    input.Horaires,
		JoursFeries: input.JoursFeries,
	}

	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&settings).Error
	if err != nil {
		log.Printf("[Settings] maj: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Paramètres enregistrés", settings)
}
