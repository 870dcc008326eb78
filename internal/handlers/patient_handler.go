package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"dentalcare-backend/internal/config"
	"dentalcare-backend/internal/models"
	"dentalcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetPatients(c *gin.Context) {
	var patients []models.Patient
	if err := config.DB.Order("created_at desc").Find(&patients).Error; err != nil {
		log.Printf("[Patients] liste: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Liste des patients", patients)
}

func GetPatient(c *gin.Context) {
	var patient models.Patient
	if err := config.DB.First(&patient, utils.ParseID(c.Param("id"))).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.APIResponse(c, http.StatusNotFound, false, "Patient non trouvé", nil)
			return
		}
		log.Printf("[Patients] lecture: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Fiche patient", patient)
}

func CreatePatient(c *gin.Context) {
	var input models.PatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Données patient invalides", err.Error())
		return
	}

	patient := models.Patient{
		Nom:           input.Nom,
		Prenom:        input.Prenom,
		DateNaissance: input.DateNaissance,
		Telephone:     input.Telephone,
		Email:         input.Email,
		Adresse:       input.Adresse,
		Ville:         input.Ville,
		Sexe:          input.Sexe,
		GroupeSanguin: input.GroupeSanguin,
		Allergies:     input.Allergies,
		Antecedents:   input.Antecedents,
	}

	if err := config.DB.Create(&patient).Error; err != nil {
		log.Printf("[Patients] création: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Patient créé", patient)
}

func UpdatePatient(c *gin.Context) {
	var patient models.Patient
	if err := config.DB.First(&patient, utils.ParseID(c.Param("id"))).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.APIResponse(c, http.StatusNotFound, false, "Patient non trouvé", nil)
			return
		}
		log.Printf("[Patients] lecture: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}

	var input models.PatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Données patient invalides", err.Error())
		return
	}

	patient.Nom = input.Nom
	patient.Prenom = input.Prenom
	patient.DateNaissance = input.DateNaissance
	patient.Telephone = input.Telephone
	patient.Email = input.Email
	patient.Adresse = input.Adresse
	patient.Ville = input.Ville
	patient.Sexe = input.Sexe
	patient.GroupeSanguin = input.GroupeSanguin
	patient.Allergies = input.Allergies
	patient.Antecedents = input.Antecedents

	if err := config.DB.Save(&patient).Error; err != nil {
		log.Printf("[Patients] maj: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Patient mis à jour", patient)
}

func DeletePatient(c *gin.Context) {
	if err := config.DB.Delete(&models.Patient{}, utils.ParseID(c.Param("id"))).Error; err != nil {
		log.Printf("[Patients] suppression: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Patient supprimé", nil)
}

// ExportPatientsCSV streams the patient list as a CSV download.
func ExportPatientsCSV(c *gin.Context) {
	var patients []models.Patient
	if err := config.DB.Order("nom, prenom").Find(&patients).Error; err != nil {
		log.Printf("[Patients] export: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}

	filename := fmt.Sprintf("patients-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "text/csv; charset=utf-8")

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"nom", "prenom", "date_naissance", "telephone", "email", "ville", "groupe_sanguin"})
	for _, p := range patients {
		_ = w.Write([]string{p.Nom, p.Prenom, p.DateNaissance, p.Telephone, p.Email, p.Ville, p.GroupeSanguin})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Printf("[Patients] export: %v", err)
	}
}
