package routes

import (
	"dentalcare-backend/internal/handlers"
	"dentalcare-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	// Public: session open/close and liveness
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)
	r.GET("/api/health", handlers.Health)

	// Everything under /api (except health) requires a valid session
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/me", handlers.Me)

		api.GET("/patients", handlers.GetPatients)
		api.POST("/patients", handlers.CreatePatient)
		api.GET("/patients/export", handlers.ExportPatientsCSV)
		api.GET("/patients/:id", handlers.GetPatient)
		api.PUT("/patients/:id", handlers.UpdatePatient)
		api.DELETE("/patients/:id", handlers.DeletePatient)

		api.GET("/appointments", handlers.GetAppointments)
		api.POST("/appointments", handlers.CreateAppointment)
		api.PUT("/appointments/:id", handlers.UpdateAppointment)
		api.DELETE("/appointments/:id", handlers.DeleteAppointment)

		api.GET("/actes", handlers.GetActes)
		api.POST("/actes", handlers.CreateActe)
		api.PUT("/actes/:id", handlers.UpdateActe)

		api.GET("/devis", handlers.GetDevisList)
		api.POST("/devis", handlers.CreateDevis)
		api.GET("/devis/:id", handlers.GetDevis)
		api.POST("/devis/:id/facture", handlers.ConvertDevisToFacture)
		api.GET("/devis/:id/pdf", handlers.GetDevisPDF)

		api.GET("/factures", handlers.GetFactures)
		api.POST("/factures", handlers.CreateFacture)
		api.GET("/factures/:id", handlers.GetFacture)
		api.GET("/factures/:id/pdf", handlers.GetFacturePDF)

		api.POST("/paiements", handlers.CreatePaiement)
		api.GET("/paiements", handlers.GetPaiements)

		api.GET("/stock", handlers.GetStock)
		api.POST("/stock", handlers.CreateStock)
		api.PUT("/stock/:id", handlers.UpdateStock)

		api.GET("/ordonnances", handlers.GetOrdonnances)
		api.POST("/ordonnances", handlers.CreateOrdonnance)

		api.GET("/certificats", handlers.GetCertificats)
		api.POST("/certificats", handlers.CreateCertificat)

		api.GET("/stats", handlers.GetStats)

		api.GET("/settings", handlers.GetSettings)
		api.PUT("/settings", handlers.UpdateSettings)
	}
}
