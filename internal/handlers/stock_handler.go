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

func GetStock(c *gin.Context) {
	var articles []models.Stock
	if err := config.DB.Order("nom").Find(&articles).Error; err != nil {
		log.Printf("[Stock] liste: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "État du stock", articles)
}

func CreateStock(c *gin.Context) {
	var input models.StockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Données stock invalides", err.Error())
		return
	}

	article := models.Stock{
		Nom:          input.Nom,
		Categorie:    input.Categorie,
		Quantite:     input.Quantite,
		Unite:        input.Unite,
		SeuilAlerte:  input.SeuilAlerte,
		PrixUnitaire: input.PrixUnitaire,
		Fournisseur:  input.Fournisseur,
	}

	if err := config.DB.Create(&article).Error; err != nil {
		log.Printf("[Stock] création: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Article ajouté au stock", article)
}

func UpdateStock(c *gin.Context) {
	var article models.Stock
	if err := config.DB.First(&article, utils.ParseID(c.Param("id"))).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.APIResponse(c, http.StatusNotFound, false, "Article non trouvé", nil)
			return
		}
		log.Printf("[Stock] lecture: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}

	var input models.StockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Données stock invalides", err.Error())
		return
	}

	article.Nom = input.Nom
	article.Categorie = input.Categorie
	article.Quantite = input.Quantite
	article.Unite = input.Unite
	article.SeuilAlerte = input.SeuilAlerte
	article.PrixUnitaire = input.PrixUnitaire
	article.Fournisseur = input.Fournisseur

	if err := config.DB.Save(&article).Error; err != nil {
		log.Printf("[Stock] maj: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Article mis à jour", article)
}
