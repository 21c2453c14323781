package store

import (
	"time"

	"github.com/google/uuid"

	"venda_back_end/internal/models"
)

// seedProducts fournit un catalogue d'exemple écrit au premier accès quand le
// document n'existe pas encore, pour que le système soit utilisable sans setup.
func seedProducts() []models.Product {
	now := time.Now().UTC()
	qty := 25
	compareAt := 29.90

	return []models.Product{
		{
			ID:          uuid.NewString(),
			Title:       "T-shirt Venda classique",
			Body:        "<p>Le t-shirt Venda en coton bio, coupe droite, sérigraphié à la main dans notre atelier de Bruxelles.</p>",
			Vendor:      "Venda",
			ProductType: "Vêtements",
			Tags:        []string{"coton", "unisexe", "nouveauté"},
			Options: []models.ProductOption{
				{ID: uuid.NewString(), Name: "Taille", Values: []string{"S", "M", "L", "XL"}},
				{ID: uuid.NewString(), Name: "Couleur", Values: []string{"Noir", "Blanc"}},
			},
			Images: []models.ProductImage{
				{
					ID:     uuid.NewString(),
					Src:    "https://cdn.venda.example/products/tshirt-classique.jpg",
					Alt:    "T-shirt Venda classique noir",
					Width:  1200,
					Height: 1200,
				},
			},
			Variants: []models.ProductVariant{
				{
					ID:                uuid.NewString(),
					Title:             "M / Noir",
					SKU:               "VENDA-TS-M-NOIR",
					Price:             24.90,
					CompareAtPrice:    &compareAt,
					InventoryQuantity: &qty,
					Attributes:        map[string]string{"Taille": "M", "Couleur": "Noir"},
				},
				{
					ID:         uuid.NewString(),
					Title:      "L / Blanc",
					SKU:        "VENDA-TS-L-BLANC",
					Price:      22.90,
					Attributes: map[string]string{"Taille": "L", "Couleur": "Blanc"},
				},
			},
			CreatedAt:   now,
			UpdatedAt:   now,
			PublishedAt: now,
		},
	}
}
