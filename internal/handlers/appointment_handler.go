package handlers

import (
	"errors"
	"log"
	"net/http"

	"dentalcare-backend/internal/config"
	"dentalcare-backend/internal/models"
	"dentalcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAppointments lists the agenda, most recent day first, with the patient
// preloaded so the list can show names and phone numbers.
func GetAppointments(c *gin.Context) {
	var appointments []models.Appointment
	query := config.DB.Preload("Patient").Order("date_rdv desc, heure_debut asc")

	// Optional day filter: ?date=2026-08-28
	if date := c.Query("date"); date != "" {
		query = query.Where("date_rdv = ?", date)
	}

	if err := query.Find(&appointments).Error; err != nil {
		log.Printf("[RDV] liste: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Liste des rendez-vous", appointments)
}

func CreateAppointment(c *gin.Context) {
	var input models.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Données rendez-vous invalides", err.Error())
		return
	}

	var count int64
	if err := config.DB.Model(&models.Patient{}).Where("id = ?", input.PatientID).Count(&count).Error; err != nil {
		log.Printf("[RDV] patient: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	if count == 0 {
		utils.APIResponse(c, http.StatusNotFound, false, "Patient non trouvé", nil)
		return
	}

	statut := input.Statut
	if statut == "" {
		statut = "planifie"
	}

	rdv := models.Appointment{
		PatientID:  input.PatientID,
		DateRdv:    input.DateRdv,
		HeureDebut: input.HeureDebut,
		HeureFin:   input.HeureFin,
		Motif:      input.Motif,
		Notes:      input.Notes,
		Statut:     statut,
	}

	if err := config.DB.Create(&rdv).Error; err != nil {
		log.Printf("[RDV] création: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Rendez-vous créé", rdv)
}

func UpdateAppointment(c *gin.Context) {
	var rdv models.Appointment
	if err := config.DB.First(&rdv, utils.ParseID(c.Param("id"))).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.APIResponse(c, http.StatusNotFound, false, "Rendez-vous non trouvé", nil)
			return
		}
		log.Printf("[RDV] lecture: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}

	var input models.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Données rendez-vous invalides", err.Error())
		return
	}

	rdv.PatientID = input.PatientID
	rdv.DateRdv = input.DateRdv
	rdv.HeureDebut = input.HeureDebut
	rdv.HeureFin = input.HeureFin
	rdv.Motif = input.Motif
	rdv.Notes = input.Notes
	if input.Statut != "" {
		rdv.Statut = input.Statut
	}

	if err := config.DB.Save(&rdv).Error; err != nil {
		log.Printf("[RDV] maj: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Rendez-vous mis à jour", rdv)
}

func DeleteAppointment(c *gin.Context) {
	if err := config.DB.Delete(&models.Appointment{}, utils.ParseID(c.Param("id"))).Error; err != nil {
		log.Printf("[RDV] suppression: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Rendez-vous supprimé", nil)
}
