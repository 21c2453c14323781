package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"venda_back_end/internal/models"
)

// ProductStore persiste l'intégralité du catalogue dans un seul document JSON.
// Chaque opération relit le document en entier et les mutations le réécrivent en
// entier (read-modify-write complet, pas de cache entre deux opérations).
//
// Aucun verrou entre requêtes concurrentes : deux écritures simultanées se
// terminent en last-writer-wins au niveau du fichier. Compromis assumé pour un
// store mono-processus.
type ProductStore struct {
	path string
}

func NewProductStore(path string) *ProductStore {
	return &ProductStore{path: path}
}

// load relit le document complet. Fichier absent → initialisation avec le seed.
// JSON corrompu ou illisible → collection vide plutôt qu'une erreur (on privilégie
// la disponibilité sur la cohérence pour ce store de démo).
func (s *ProductStore) load() []models.Product {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		products := seedProducts()
		if err := s.save(products); err != nil {
			log.Printf("⚠️ Impossible d'écrire le seed dans %s: %v", s.path, err)
		}
		return products
	}
	if err != nil {
		log.Printf("⚠️ Lecture de %s impossible: %v — collection vide", s.path, err)
		return nil
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		log.Printf("⚠️ JSON corrompu dans %s: %v — collection vide", s.path, err)
		return nil
	}
	return products
}

func (s *ProductStore) save(products []models.Product) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// List retourne tous les produits dans l'ordre du fichier (ordre d'insertion),
// chacun décoré du prix minimum de ses variantes.
func (s *ProductStore) List() []models.ProductListItem {
	products := s.load()
	items := make([]models.ProductListItem, len(products))
	for i, p := range products {
		items[i] = models.ProductListItem{Product: p, MinPrice: p.MinVariantPrice()}
	}
	return items
}

// GetByID retourne le produit demandé ou ErrProductNotFound. Aucun effet de bord.
func (s *ProductStore) GetByID(id string) (models.Product, error) {
	for _, p := range s.load() {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Create attribue un id aléatoire au produit et à chaque variante/option/image
// qui n'en a pas, pose les timestamps, ajoute en fin de collection et persiste.
func (s *ProductStore) Create(p models.Product) (models.Product, error) {
	now := time.Now().UTC()

	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.PublishedAt.IsZero() {
		p.PublishedAt = now
	}

	for i := range p.Variants {
		if p.Variants[i].ID == "" {
			p.Variants[i].ID = uuid.NewString()
		}
	}
	for i := range p.Options {
		if p.Options[i].ID == "" {
			p.Options[i].ID = uuid.NewString()
		}
	}
	for i := range p.Images {
		if p.Images[i].ID == "" {
			p.Images[i].ID = uuid.NewString()
		}
	}

	products := append(s.load(), p)
	if err := s.save(products); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Update fusionne le patch sur le produit existant : les champs nil du patch sont
// conservés tels quels, jamais remis à zéro. Bump updated_at puis persiste.
func (s *ProductStore) Update(id string, patch models.ProductPatch) (models.Product, error) {
	products := s.load()

	idx := -1
	for i, p := range products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Product{}, ErrProductNotFound
	}

	p := products[idx]

	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Body != nil {
		p.Body = *patch.Body
	}
	if patch.Vendor != nil {
		p.Vendor = *patch.Vendor
	}
	if patch.ProductType != nil {
		p.ProductType = *patch.ProductType
	}
	if patch.Tags != nil {
		p.Tags = *patch.Tags
	}
	if patch.Options != nil {
		p.Options = *patch.Options
		for i := range p.Options {
			if p.Options[i].ID == "" {
				p.Options[i].ID = uuid.NewString()
			}
		}
	}
	if patch.Images != nil {
		p.Images = *patch.Images
		for i := range p.Images {
			if p.Images[i].ID == "" {
				p.Images[i].ID = uuid.NewString()
			}
		}
	}
	if patch.Variants != nil {
		// Copie : le patch reste une valeur d'entrée, on n'écrit pas les ids
		// attribués dans la slice de l'appelant.
		incoming := append([]models.ProductVariant(nil), (*patch.Variants)...)
		// Réutilisation positionnelle des ids de variantes : une variante entrante
		// sans id explicite reprend l'id de la variante stockée au même index.
		// Au-delà de la liste stockée, id neuf. Un appelant qui veut préserver une
		// variante précise doit donc envoyer son id explicitement.
		for i := range incoming {
			if incoming[i].ID != "" {
				continue
			}
			if i < len(p.Variants) {
				incoming[i].ID = p.Variants[i].ID
			} else {
				incoming[i].ID = uuid.NewString()
			}
		}
		p.Variants = incoming
	}
	if patch.PublishedAt != nil {
		p.PublishedAt = *patch.PublishedAt
	}

	p.UpdatedAt = time.Now().UTC()
	products[idx] = p

	if err := s.save(products); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Delete retire le produit de la collection et persiste. ErrProductNotFound si absent,
// sans toucher au fichier.
func (s *ProductStore) Delete(id string) (bool, error) {
	products := s.load()

	idx := -1
	for i, p := range products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, ErrProductNotFound
	}

	products = append(products[:idx], products[idx+1:]...)
	if err := s.save(products); err != nil {
		return false, err
	}
	return true, nil
}
