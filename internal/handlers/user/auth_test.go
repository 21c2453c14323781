package user

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venda_back_end/internal/middleware"
	"venda_back_end/internal/store"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewHandler(store.NewMemoryUserStore())
	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	r.GET("/api/auth/me", middleware.AuthRequired(), h.Me)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerPayload() map[string]any {
	return map[string]any{
		"name":     "Léa",
		"email":    "lea@venda.example",
		"password": "motdepasse123",
	}
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		r := setupRouter(t)

		w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", registerPayload())
		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Token string `json:"token"`
			User  struct {
				ID    string `json:"user_id"`
				Email string `json:"email"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.NotEmpty(t, resp.User.ID)

		// Le hash ne doit jamais apparaître dans la réponse
		assert.NotContains(t, w.Body.String(), "argon2id")
	})

	t.Run("DuplicateEmailConflict", func(t *testing.T) {
		r := setupRouter(t)

		w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", registerPayload())
		require.Equal(t, http.StatusCreated, w.Code)

		payload := registerPayload()
		payload["email"] = "LEA@venda.example"
		w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", payload)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("MissingFieldsRejected", func(t *testing.T) {
		r := setupRouter(t)

		w := doJSON(t, r, http.MethodPost, "/api/auth/register", "",
			map[string]any{"email": "lea@venda.example"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoginEndpoint(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", registerPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("CorrectCredentials", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]any{
			"email":    "lea@venda.example",
			"password": "motdepasse123",
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]any{
			"email":    "lea@venda.example",
			"password": "mauvais",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]any{
			"email":    "inconnu@venda.example",
			"password": "motdepasse123",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestMeEndpoint(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", registerPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	t.Run("WithToken", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/auth/me", resp.Token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "lea@venda.example")
	})

	t.Run("WithoutToken", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
