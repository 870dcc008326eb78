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

func GetActes(c *gin.Context) {
	var actes []models.Acte
	if err := config.DB.Order("categorie, nom").Find(&actes).Error; err != nil {
		log.Printf("[Actes] liste: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Catalogue des actes", actes)
}

func CreateActe(c *gin.Context) {
	var input models.ActeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Données acte invalides", err.Error())
		return
	}

	acte := models.Acte{
		Code:         input.Code,
		Nom:          input.Nom,
		Categorie:    input.Categorie,
		Description:  input.Description,
		Tarif:        input.Tarif,
		DureeMoyenne: input.DureeMoyenne,
	}

	if err := config.DB.Create(&acte).Error; err != nil {
		log.Printf("[Actes] création: %v", err)
		utils.APIResponse(c, http.StatusBadRequest, false, "Code acte déjà utilisé", nil)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Acte créé", acte)
}

func UpdateActe(c *gin.Context) {
	var acte models.Acte
	if err := config.DB.First(&acte, utils.ParseID(c.Param("id"))).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.APIResponse(c, http.StatusNotFound, false, "Acte non trouvé", nil)
			return
		}
		log.Printf("[Actes] lecture: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}

	var input models.ActeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Données acte invalides", err.Error())
		return
	}

	acte.Code = input.Code
	acte.Nom = input.Nom
	acte.Categorie = input.Categorie
	acte.Description = input.Description
	acte.Tarif = input.Tarif
	acte.DureeMoyenne = input.DureeMoyenne

	if err := config.DB.Save(&acte).Error; err != nil {
		log.Printf("[Actes] maj: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Acte mis à jour", acte)
}
