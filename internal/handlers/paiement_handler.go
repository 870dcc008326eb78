package handlers

import (
	"log"
	"net/http"

	"dentalcare-backend/internal/config"
	"dentalcare-backend/internal/models"
	"dentalcare-backend/internal/services"
	"dentalcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CreatePaiement records a payment against a facture. The ledger applies the
// amount and recomputes the facture status atomically.
func CreatePaiement(c *gin.Context) {
	var input models.CreatePaiementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Données paiement invalides", err.Error())
		return
	}

	paiement, err := services.NewBillingService(config.DB).RecordPaiement(input)
	if err != nil {
		billingError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Paiement enregistré", paiement)
}

// GetPaiements lists payments, optionally for one facture: ?facture_id=12
func GetPaiements(c *gin.Context) {
	var paiements []models.Paiement
	query := config.DB.Order("created_at desc")

	if factureID := c.Query("facture_id"); factureID != "" {
		query = query.Where("facture_id = ?", utils.ParseID(factureID))
	}

	if err := query.Find(&paiements).Error; err != nil {
		log.Printf("[Paiements] liste: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Liste des paiements", paiements)
}
