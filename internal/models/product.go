package models

import "time"

type Product struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Body        string           `json:"body_html,omitempty"`
	Vendor      string           `json:"vendor"`
	ProductType string           `json:"product_type,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
	Options     []ProductOption  `json:"options,omitempty"`
	Images      []ProductImage   `json:"images,omitempty"`
	Variants    []ProductVariant `json:"variants"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	PublishedAt time.Time        `json:"published_at"`
}

type ProductOption struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type ProductImage struct {
	ID     string `json:"id"`
	Src    string `json:"src"`
	Alt    string `json:"alt,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

type ProductVariant struct {
	ID                string            `json:"id"`
	Title             string            `json:"title,omitempty"`
	SKU               string            `json:"sku,omitempty"`
	Price             float64           `json:"price"`
	CompareAtPrice    *float64          `json:"compare_at_price,omitempty"`
	InventoryQuantity *int              `json:"inventory_quantity,omitempty"`
	RequiresShipping  *bool             `json:"requires_shipping,omitempty"`
	Taxable           *bool             `json:"taxable,omitempty"`
	Attributes        map[string]string `json:"attributes,omitempty"`
}

// ProductListItem décore un produit avec le prix minimum calculé sur ses variantes.
// Utilisé uniquement pour le listing — jamais persisté.
type ProductListItem struct {
	Product
	MinPrice float64 `json:"min_price"`
}

// MinVariantPrice retourne le prix le plus bas parmi les variantes (0 si aucune).
func (p Product) MinVariantPrice() float64 {
	if len(p.Variants) == 0 {
		return 0
	}
	min := p.Variants[0].Price
	for _, v := range p.Variants[1:] {
		if v.Price < min {
			min = v.Price
		}
	}
	return min
}

// ProductPatch représente une mise à jour partielle : les champs nil sont conservés
// tels quels par le store, jamais remis à zéro.
type ProductPatch struct {
	Title       *string           `json:"title"`
	Body        *string           `json:"body_html"`
	Vendor      *string           `json:"vendor"`
	ProductType *string           `json:"product_type"`
	Tags        *[]string         `json:"tags"`
	Options     *[]ProductOption  `json:"options"`
	Images      *[]ProductImage   `json:"images"`
	Variants    *[]ProductVariant `json:"variants"`
	PublishedAt *time.Time        `json:"published_at"`
}
