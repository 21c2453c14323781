package product

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venda_back_end/internal/store"
	"venda_back_end/internal/validation"
)

// Handler porte le store produits injecté à la construction — pas de singleton
// de package, une seule instance construite dans main.
type Handler struct {
	Store *store.ProductStore
}

func NewHandler(s *store.ProductStore) *Handler {
	return &Handler{Store: s}
}

// GetAllProducts retourne tout le catalogue, chaque produit décoré de min_price,
// dans l'ordre d'insertion. Pas de pagination.
func (h *Handler) GetAllProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.List())
}

func (h *Handler) GetProduct(c *gin.Context) {
	p, err := h.Store.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit non trouvé"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var input validation.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides: " + err.Error()})
		return
	}

	if verrs := validation.ValidateProduct(input); verrs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": verrs})
		return
	}

	p, err := h.Store.Create(input.Product())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création produit: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, p)
}
