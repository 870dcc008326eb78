package handlers

import (
	"errors"
	"log"
	"net/http"

	"dentalcare-backend/internal/config"
	"dentalcare-backend/internal/middleware"
	"dentalcare-backend/internal/models"
	"dentalcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Login checks credentials and opens a 24h session: HTTP-only cookie for the
// web UI, plus the raw token for API clients using a Bearer header.
func Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Email et mot de passe requis", nil)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Email ou mot de passe incorrect", nil)
			return
		}
		log.Printf("[Auth] connexion: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}

	if !utils.CheckPassword(input.Password, user.PasswordHash) {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Email ou mot de passe incorrect", nil)
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erreur serveur", nil)
		return
	}

	c.SetCookie(middleware.CookieName, token, int(utils.TokenTTL.Seconds()), "/", "", false, true)

	utils.APIResponse(c, http.StatusOK, true, "Connexion réussie", gin.H{
		"token": token,
		"user": gin.H{
			"id":     user.ID,
			"email":  user.Email,
			"nom":    user.Nom,
			"prenom": user.Prenom,
			"role":   user.Role,
		},
	})
}

// Logout clears the session cookie.
func Logout(c *gin.Context) {
	c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true)
	utils.APIResponse(c, http.StatusOK, true, "Déconnexion réussie", nil)
}

// Me returns the identity carried by the verified session.
func Me(c *gin.Context) {
	utils.APIResponse(c, http.StatusOK, true, "Utilisateur connecté", gin.H{
		"id":     c.GetUint64("userID"),
		"email":  c.GetString("userEmail"),
		"nom":    c.GetString("userNom"),
		"prenom": c.GetString("userPrenom"),
		"role":   c.GetString("userRole"),
	})
}

// Health pings the database.
func Health(c *gin.Context) {
	if err := config.DB.Exec("SELECT 1").Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "database": "disconnected"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "connected"})
}
