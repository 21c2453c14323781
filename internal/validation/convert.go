package validation

import "venda_back_end/internal/models"

// Product convertit un payload validé en produit (sans id ni timestamps,
// c'est le store qui les attribue).
func (in ProductInput) Product() models.Product {
	p := models.Product{
		Title:       in.Title,
		Body:        in.Body,
		Vendor:      in.Vendor,
		ProductType: in.ProductType,
		Tags:        in.Tags,
		Options:     options(in.Options),
		Images:      images(in.Images),
		Variants:    variants(in.Variants),
	}
	if in.PublishedAt != nil {
		p.PublishedAt = *in.PublishedAt
	}
	return p
}

// Patch convertit un payload partiel validé en patch pour le store.
func (in ProductPatchInput) Patch() models.ProductPatch {
	patch := models.ProductPatch{
		Title:       in.Title,
		Body:        in.Body,
		Vendor:      in.Vendor,
		ProductType: in.ProductType,
		Tags:        in.Tags,
		PublishedAt: in.PublishedAt,
	}
	if in.Options != nil {
		opts := options(*in.Options)
		patch.Options = &opts
	}
	if in.Images != nil {
		imgs := images(*in.Images)
		patch.Images = &imgs
	}
	if in.Variants != nil {
		vars := variants(*in.Variants)
		patch.Variants = &vars
	}
	return patch
}

func options(in []OptionInput) []models.ProductOption {
	if in == nil {
		return nil
	}
	out := make([]models.ProductOption, len(in))
	for i, o := range in {
		out[i] = models.ProductOption{ID: o.ID, Name: o.Name, Values: o.Values}
	}
	return out
}

func images(in []ImageInput) []models.ProductImage {
	if in == nil {
		return nil
	}
	out := make([]models.ProductImage, len(in))
	for i, img := range in {
		out[i] = models.ProductImage{
			ID:     img.ID,
			Src:    img.Src,
			Alt:    img.Alt,
			Width:  img.Width,
			Height: img.Height,
		}
	}
	return out
}

func variants(in []VariantInput) []models.ProductVariant {
	if in == nil {
		return nil
	}
	out := make([]models.ProductVariant, len(in))
	for i, v := range in {
		out[i] = models.ProductVariant{
			ID:                v.ID,
			Title:             v.Title,
			SKU:               v.SKU,
			Price:             v.Price,
			CompareAtPrice:    v.CompareAtPrice,
			InventoryQuantity: v.InventoryQuantity,
			RequiresShipping:  v.RequiresShipping,
			Taxable:           v.Taxable,
			Attributes:        v.Attributes,
		}
	}
	return out
}
