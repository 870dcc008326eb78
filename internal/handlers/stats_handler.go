package handlers

import (
	"log"
	"net/http"
	"time"

	"dentalcare-backend/internal/config"
	"dentalcare-backend/internal/models"
	"dentalcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetStats feeds the dashboard: today's and next-7-days appointments, patient
// count, collected revenue this month, outstanding receivables and stock
// alerts. Date windows are computed here so the SQL stays portable.
func GetStats(c *gin.Context) {
	now := time.Now()
	today := now.Format("2006-01-02")
	weekEnd := now.AddDate(0, 0, 7).Format("2006-01-02")
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	fail := func(err error) {
		log.Printf("[Stats] agrégat: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
	}

	var rdvToday, totalPatients, rdvWeek, stockAlerte int64
	if err := config.DB.Model(&models.Appointment{}).Where("date_rdv = ?", today).Count(&rdvToday).Error; err != nil {
		fail(err)
		return
	}
	if err := config.DB.Model(&models.Patient{}).Count(&totalPatients).Error; err != nil {
		fail(err)
		return
	}
	if err := config.DB.Model(&models.Appointment{}).
		Where("date_rdv >= ? AND date_rdv < ?", today, weekEnd).Count(&rdvWeek).Error; err != nil {
		fail(err)
		return
	}
	if err := config.DB.Model(&models.Stock{}).Where("quantite <= seuil_alerte").Count(&stockAlerte).Error; err != nil {
		fail(err)
		return
	}

	type somme struct {
		Total float64
	}
	var caMonth, impayes somme
	if err := config.DB.Model(&models.Facture{}).
		Where("created_at >= ? AND created_at < ?", monthStart, monthEnd).
		Select("COALESCE(SUM(montant_paye), 0) as total").
		Scan(&caMonth).Error; err != nil {
		fail(err)
		return
	}
	if err := config.DB.Model(&models.Facture{}).
		Where("statut <> ?", "payee").
		Select("COALESCE(SUM(montant_total - montant_paye), 0) as total").
		Scan(&impayes).Error; err != nil {
		fail(err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Statistiques du cabinet", gin.H{
		"rdv_today":      rdvToday,
		"total_patients": totalPatients,
		"ca_month":       caMonth.Total,
		"impayes":        impayes.Total,
		"rdv_week":       rdvWeek,
		"stock_alerte":   stockAlerte,
	})
}
