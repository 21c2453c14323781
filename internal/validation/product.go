package validation

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Errors est un rapport de validation structuré, indexé par champ.
// C'est une valeur de retour normale, jamais un panic.
type Errors map[string][]string

func (e Errors) Error() string {
	return fmt.Sprintf("validation échouée sur %d champ(s)", len(e))
}

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Utilise le nom du tag json dans les rapports d'erreur
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return v
}

type OptionInput struct {
	ID     string   `json:"id"`
	Name   string   `json:"name" validate:"required"`
	Values []string `json:"values" validate:"required,min=1,dive,required"`
}

type ImageInput struct {
	ID     string `json:"id"`
	Src    string `json:"src" validate:"required,url"`
	Alt    string `json:"alt"`
	Width  int    `json:"width" validate:"omitempty,gte=0"`
	Height int    `json:"height" validate:"omitempty,gte=0"`
}

type VariantInput struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	SKU               string            `json:"sku"`
	Price             float64           `json:"price" validate:"gt=0"`
	CompareAtPrice    *float64          `json:"compare_at_price" validate:"omitnil,gt=0"`
	InventoryQuantity *int              `json:"inventory_quantity" validate:"omitnil,gte=0"`
	RequiresShipping  *bool             `json:"requires_shipping"`
	Taxable           *bool             `json:"taxable"`
	Attributes        map[string]string `json:"attributes"`
}

type ProductInput struct {
	Title       string         `json:"title" validate:"required"`
	Body        string         `json:"body_html" validate:"omitempty,min=50"`
	Vendor      string         `json:"vendor" validate:"required"`
	ProductType string         `json:"product_type"`
	Tags        []string       `json:"tags"`
	Options     []OptionInput  `json:"options" validate:"dive"`
	Images      []ImageInput   `json:"images" validate:"dive"`
	Variants    []VariantInput `json:"variants" validate:"required,min=1,dive"`
	PublishedAt *time.Time     `json:"published_at"`
}

// ProductPatchInput a la même forme que ProductInput mais tout y est optionnel :
// un champ nil est conservé tel quel par le store (sémantique de mise à jour partielle).
type ProductPatchInput struct {
	Title       *string         `json:"title" validate:"omitnil,min=1"`
	Body        *string         `json:"body_html" validate:"omitnil,min=50"`
	Vendor      *string         `json:"vendor" validate:"omitnil,min=1"`
	ProductType *string         `json:"product_type"`
	Tags        *[]string       `json:"tags"`
	Options     *[]OptionInput  `json:"options" validate:"omitnil,dive"`
	Images      *[]ImageInput   `json:"images" validate:"omitnil,dive"`
	Variants    *[]VariantInput `json:"variants" validate:"omitnil,min=1,dive"`
	PublishedAt *time.Time      `json:"published_at"`
}

// ValidateProduct valide un payload de création.
func ValidateProduct(in ProductInput) Errors {
	return collect(validate.Struct(in))
}

// ValidateProductPatch valide un payload de mise à jour partielle.
func ValidateProductPatch(in ProductPatchInput) Errors {
	return collect(validate.Struct(in))
}

func collect(err error) Errors {
	if err == nil {
		return nil
	}

	report := Errors{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		report.Add("_", err.Error())
		return report
	}

	for _, fe := range verrs {
		report.Add(fieldPath(fe), message(fe))
	}
	return report
}

// fieldPath transforme "ProductInput.variants[0].price" en "variants[0].price"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "champ obligatoire"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("doit contenir au moins %s caractères", fe.Param())
		}
		return fmt.Sprintf("doit contenir au moins %s élément(s)", fe.Param())
	case "gt":
		return fmt.Sprintf("doit être strictement supérieur à %s", fe.Param())
	case "gte":
		return fmt.Sprintf("doit être supérieur ou égal à %s", fe.Param())
	case "url":
		return "URL invalide"
	default:
		return "valeur invalide"
	}
}
