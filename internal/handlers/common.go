package handlers

import (
	"errors"
	"log"
	"net/http"

	"dentalcare-backend/internal/services"
	"dentalcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// billingError maps ledger errors onto the response taxonomy: validation → 400
// with the message, not-found → 404, anything else → logged server-side and
// answered with a generic 500 so internals never leak to the caller.
func billingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPatientIntrouvable),
		errors.Is(err, services.ErrDevisIntrouvable),
		errors.Is(err, services.ErrFactureIntrouvable):
		utils.APIResponse(c, http.StatusNotFound, false, err.Error(), nil)
	case errors.Is(err, services.ErrLignesVides),
		errors.Is(err, services.ErrLigneInvalide),
		errors.Is(err, services.ErrMontantInvalide):
		utils.APIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
	default:
		log.Printf("[Billing] %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
	}
}
