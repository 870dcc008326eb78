// Package pdfgen renders devis and factures as printable PDF documents.
package pdfgen

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

type Cabinet struct {
	Nom       string
	Adresse   string
	Ville     string
	Telephone string
	Email     string
}

type Ligne struct {
	Description  string
	Quantite     int
	PrixUnitaire float64
}

// Document carries everything a devis or facture printout needs.
type Document struct {
	Titre   string // "DEVIS" or "FACTURE"
	Numero  string
	Date    string
	Cabinet Cabinet
	Patient string
	Lignes  []Ligne
	Total   float64
	Paye    float64 // factures only; ignored when zero
	Devise  string
	Notes   string
}

// Render builds the PDF and returns its bytes.
func Render(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; accented French text must go through the translator.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Header: practice identity on the left, document number on the right
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(120, 8, tr(doc.Cabinet.Nom))
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, fmt.Sprintf("%s %s", doc.Titre, doc.Numero), "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(120, 5, tr(doc.Cabinet.Adresse+", "+doc.Cabinet.Ville))
	pdf.CellFormat(0, 5, "Date : "+doc.Date, "", 1, "R", false, 0, "")
	pdf.Cell(120, 5, tr(doc.Cabinet.Telephone+"  "+doc.Cabinet.Email))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, tr("Patient : "+doc.Patient))
	pdf.Ln(10)

	// Line table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(95, 7, tr("Désignation"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 7, tr("Qté"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "P.U.", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 7, "Montant", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, l := range doc.Lignes {
		montant := float64(l.Quantite) * l.PrixUnitaire
		pdf.CellFormat(95, 7, tr(l.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", l.Quantite), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 7, formatMontant(l.PrixUnitaire, doc.Devise), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, formatMontant(montant, doc.Devise), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(150, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, formatMontant(doc.Total, doc.Devise), "1", 1, "R", false, 0, "")

	if doc.Paye > 0 {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(150, 7, tr("Déjà payé"), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, formatMontant(doc.Paye, doc.Devise), "1", 1, "R", false, 0, "")
		pdf.CellFormat(150, 7, tr("Reste à payer"), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, formatMontant(doc.Total-doc.Paye, doc.Devise), "1", 1, "R", false, 0, "")
	}

	if doc.Notes != "" {
		pdf.Ln(8)
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(0, 5, tr("Notes : "+doc.Notes), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatMontant(v float64, devise string) string {
	return fmt.Sprintf("%.0f %s", v, devise)
}
