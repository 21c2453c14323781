package product

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"venda_back_end/internal/store"
	"venda_back_end/internal/validation"
)

func (h *Handler) UpdateProduct(c *gin.Context) {
	var input validation.ProductPatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides: " + err.Error()})
		return
	}

	if verrs := validation.ValidateProductPatch(input); verrs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": verrs})
		return
	}

	p, err := h.Store.Update(c.Param("id"), input.Patch())
	if errors.Is(err, store.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit non trouvé"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la mise à jour"})
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	ok, err := h.Store.Delete(c.Param("id"))
	if errors.Is(err, store.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit non trouvé"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la suppression"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit supprimé avec succès",
		"deleted": ok,
	})
}
