package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dentalcare-backend/internal/config"
	"dentalcare-backend/internal/models"
	"dentalcare-backend/internal/routes"
	"dentalcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestRouter wires a fresh in-memory database into the global pool and
// returns the full router plus a valid session token.
func setupTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	config.DB = db

	hash, err := utils.HashPassword("Admin123!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := models.User{
		Email:        "admin@dentcab.com",
		PasswordHash: hash,
		Nom:          "Diallo",
		Prenom:       "Mamadou",
		Role:         "admin",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	r := gin.New()
	routes.SetupRoutes(r)
	return r, token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp struct {
		Success bool           `json:"success"`
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v body=%s", err, w.Body.String())
	}
	return resp.Data
}

func TestLoginSetsSessionCookie(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/login", "", gin.H{
		"email": "admin@dentcab.com", "password": "mauvais",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/login", "", gin.H{
		"email": "admin@dentcab.com", "password": "Admin123!",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	setCookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, "token=") || !strings.Contains(setCookie, "HttpOnly") {
		t.Fatalf("expected HttpOnly session cookie, got %q", setCookie)
	}
	data := decodeData(t, w)
	if data["token"] == nil {
		t.Fatalf("missing token in response: %v", data)
	}
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	r, token := setupTestRouter(t)

	if w := doJSON(t, r, http.MethodGet, "/api/patients", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/patients", "nimporte.quoi", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with garbage token, got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/patients", token, nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", w.Code)
	}
}

func TestSessionCookieAccepted(t *testing.T) {
	r, token := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	data := decodeData(t, w)
	if data["email"] != "admin@dentcab.com" {
		t.Fatalf("unexpected identity: %v", data)
	}
}

func TestPatientCRUD(t *testing.T) {
	r, token := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/patients", token, gin.H{
		"nom": "Bah", "prenom": "Fatou", "telephone": "+224 621 11 11 11", "sexe": "F",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	id := uint64(decodeData(t, w)["id"].(float64))

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/patients/%d", id), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200 got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/patients/%d", id), token, gin.H{
		"nom": "Bah", "prenom": "Fatoumata", "ville": "Conakry",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	if decodeData(t, w)["prenom"] != "Fatoumata" {
		t.Fatalf("update not applied: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/patients/%d", id), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200 got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/patients/%d", id), token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}

	// Validation: nom/prenom are required
	w = doJSON(t, r, http.MethodPost, "/api/patients", token, gin.H{"nom": "Seul"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing prenom, got %d", w.Code)
	}
}

func TestDevisEndToEnd(t *testing.T) {
	r, token := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/patients", token, gin.H{"nom": "Sylla", "prenom": "Ibrahima"})
	patientID := uint64(decodeData(t, w)["id"].(float64))

	w = doJSON(t, r, http.MethodPost, "/api/devis", token, gin.H{
		"patient_id": patientID,
		"lignes": []gin.H{
			{"description": "Couronne", "quantite": 1, "prix_unitaire": 650000},
			{"description": "Implant", "quantite": 2, "prix_unitaire": 800000},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("devis: expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	data := decodeData(t, w)
	if data["montant_total"].(float64) != 2250000 {
		t.Fatalf("unexpected total: %v", data["montant_total"])
	}
	devisID := uint64(data["id"].(float64))

	// Conversion copies the lignes server-side
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/devis/%d/facture", devisID), token, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("conversion: expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	facture := decodeData(t, w)
	if facture["montant_total"].(float64) != 2250000 || facture["statut"] != "en_attente" {
		t.Fatalf("unexpected facture: %v", facture)
	}
	factureID := uint64(facture["id"].(float64))

	w = doJSON(t, r, http.MethodPost, "/api/paiements", token, gin.H{
		"facture_id": factureID, "montant": 2250000, "mode_paiement": "virement",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("paiement: expected 201 got %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/factures/%d", factureID), token, nil)
	reloaded := decodeData(t, w)
	if reloaded["statut"] != "payee" || reloaded["montant_paye"].(float64) != 2250000 {
		t.Fatalf("unexpected statut after paiement: %v", reloaded)
	}

	// Unknown patient never persists a header
	w = doJSON(t, r, http.MethodPost, "/api/devis", token, gin.H{
		"patient_id": 9999,
		"lignes":     []gin.H{{"description": "X", "quantite": 1, "prix_unitaire": 100}},
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown patient, got %d", w.Code)
	}
}

func TestLoginStorageErrorIsServerError(t *testing.T) {
	r, _ := setupTestRouter(t)

	if err := config.DB.Migrator().DropTable(&models.User{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	w := doJSON(t, r, http.MethodPost, "/login", "", gin.H{
		"email": "admin@dentcab.com", "password": "Admin123!",
	})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on storage failure, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestCreateAppointmentPatientGuard(t *testing.T) {
	r, token := setupTestRouter(t)

	// Unknown patient is a 404, nothing persisted
	w := doJSON(t, r, http.MethodPost, "/api/appointments", token, gin.H{
		"patient_id": 9999, "date_rdv": "2026-09-01", "heure_debut": "09:00",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown patient, got %d", w.Code)
	}

	// A failing existence check is a 500, not a silent pass-through
	if err := config.DB.Migrator().DropTable(&models.Patient{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}
	w = doJSON(t, r, http.MethodPost, "/api/appointments", token, gin.H{
		"patient_id": 1, "date_rdv": "2026-09-01", "heure_debut": "09:00",
	})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on storage failure, got %d body=%s", w.Code, w.Body.String())
	}

	var count int64
	if err := config.DB.Model(&models.Appointment{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no appointment persisted, got %d", count)
	}
}

func TestExportPatientsCSV(t *testing.T) {
	r, token := setupTestRouter(t)

	patient := models.Patient{Nom: "Barry", Prenom: "Ousmane", Ville: "Kindia"}
	if err := config.DB.Create(&patient).Error; err != nil {
		t.Fatalf("seed patient: %v", err)
	}

	w := doJSON(t, r, http.MethodGet, "/api/patients/export", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("expected text/csv, got %q", ct)
	}
	body := w.Body.String()
	if !strings.HasPrefix(body, "nom,prenom,") || !strings.Contains(body, "Barry,Ousmane") {
		t.Fatalf("unexpected CSV body: %q", body)
	}
}
