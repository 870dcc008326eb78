package handlers

import (
	"log"
	"net/http"
	"time"

	"dentalcare-backend/internal/config"
	"dentalcare-backend/internal/models"
	"dentalcare-backend/pkg/pdfgen"
	"dentalcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func devisLignes(lignes []models.DevisLigne) []pdfgen.Ligne {
	out := make([]pdfgen.Ligne, 0, len(lignes))
	for _, l := range lignes {
		out = append(out, pdfgen.Ligne{
			Description:  ligneLabel(l.Description, l.Acte),
			Quantite:     l.Quantite,
			PrixUnitaire: l.PrixUnitaire,
		})
	}
	return out
}

func factureLignes(lignes []models.FactureLigne) []pdfgen.Ligne {
	out := make([]pdfgen.Ligne, 0, len(lignes))
	for _, l := range lignes {
		out = append(out, pdfgen.Ligne{
			Description:  ligneLabel(l.Description, l.Acte),
			Quantite:     l.Quantite,
			PrixUnitaire: l.PrixUnitaire,
		})
	}
	return out
}

// ligneLabel prefers the free-text description, falling back to the catalog name.
func ligneLabel(description string, acte *models.Acte) string {
	if description != "" {
		return description
	}
	if acte != nil {
		return acte.Nom
	}
	return "Acte"
}

// servePDF renders a devis/facture through pdfgen, stamped with the practice
// identity from settings, and streams it as a download.
func servePDF(c *gin.Context, titre, numero string, patient *models.Patient, lignes []pdfgen.Ligne, total, paye float64, notes string, date time.Time) {
	var settings models.Settings
	if err := config.DB.First(&settings, models.SettingsID).Error; err != nil {
		log.Printf("[PDF] settings: %v", err)
	}
	devise := settings.Devise
	if devise == "" {
		devise = "GNF"
	}

	patientNom := ""
	if patient != nil {
		patientNom = patient.Prenom + " " + patient.Nom
	}

	doc := pdfgen.Document{
		Titre:  titre,
		Numero: numero,
		Date:   date.Format("02/01/2006"),
		Cabinet: pdfgen.Cabinet{
			Nom:       settings.CabinetNom,
			Adresse:   settings.Adresse,
			Ville:     settings.Ville,
			Telephone: settings.Telephone,
			Email:     settings.Email,
		},
		Patient: patientNom,
		Lignes:  lignes,
		Total:   total,
		Paye:    paye,
		Devise:  devise,
		Notes:   notes,
	}

	data, err := pdfgen.Render(doc)
	if err != nil {
		log.Printf("[PDF] rendu %s: %v", numero, err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+numero+".pdf")
	c.Data(http.StatusOK, "application/pdf", data)
}
