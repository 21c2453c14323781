package user

import (
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"

	"venda_back_end/internal/auth"
	"venda_back_end/internal/utils"
)

// ================== AUTH SOCIALE ==================

func baseURL() string {
	if v := os.Getenv("BASE_URL"); v != "" {
		return v
	}
	return "http://localhost:8080"
}

// BeginAuth redirige vers la page de consentement du provider via goth.
func (h *Handler) BeginAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "aucun provider spécifié"})
		return
	}

	q := c.Request.URL.Query()
	q.Set("provider", provider)
	c.Request.URL.RawQuery = q.Encode()
	gothic.BeginAuthHandler(c.Writer, c.Request)
}

// CallbackAuth échange le code d'autorisation, récupère le profil, rattache ou
// crée l'utilisateur, puis redirige vers le front avec un JWT.
func (h *Handler) CallbackAuth(c *gin.Context) {
	provider := c.Param("provider")
	code := c.Query("code")
	if provider == "" || code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètres OAuth invalides"})
		return
	}

	p, ok := auth.Provider(provider, baseURL()+"/api/auth/oauth/"+provider+"/callback")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provider non supporté"})
		return
	}

	ctx := c.Request.Context()
	token, err := p.Exchange(ctx, code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Échange du code OAuth refusé"})
		return
	}

	info, err := p.FetchUser(ctx, token)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur récupération profil " + provider})
		return
	}

	user, err := h.Users.FindOrCreateOAuthUser(provider, info.ID, info.Email, info.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}

	jwtToken, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	redirectURI := os.Getenv("FRONTEND_URL")
	if redirectURI == "" {
		redirectURI = "http://localhost:3000"
	}

	sep := "?"
	if strings.Contains(redirectURI, "?") {
		sep = "&"
	}
	final := redirectURI + sep + "token=" + url.QueryEscape(jwtToken)
	log.Printf("✅ Connexion %s réussie pour %s", provider, info.Email)
	c.Redirect(http.StatusTemporaryRedirect, final)
}
