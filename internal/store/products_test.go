package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venda_back_end/internal/models"
)

// newProductStore retourne un store vide sur un fichier temporaire (le seed ne
// s'applique qu'aux fichiers absents, donc on écrit une collection vide).
func newProductStore(t *testing.T) *ProductStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))
	return NewProductStore(path)
}

func sampleProduct() models.Product {
	return models.Product{
		Title:  "Mug émaillé",
		Vendor: "Venda",
		Tags:   []string{"cuisine"},
		Options: []models.ProductOption{
			{Name: "Contenance", Values: []string{"30cl", "50cl"}},
		},
		Variants: []models.ProductVariant{
			{Title: "30cl", SKU: "MUG-30", Price: 12.50},
			{Title: "50cl", SKU: "MUG-50", Price: 14.90},
		},
	}
}

func TestProductStoreCreate(t *testing.T) {
	t.Run("AssignsIDsAndTimestamps", func(t *testing.T) {
		s := newProductStore(t)

		created, err := s.Create(sampleProduct())
		require.NoError(t, err)

		assert.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.Equal(t, created.CreatedAt, created.UpdatedAt)
		assert.Equal(t, created.CreatedAt, created.PublishedAt)

		seen := map[string]bool{created.ID: true}
		for _, v := range created.Variants {
			require.NotEmpty(t, v.ID)
			assert.False(t, seen[v.ID], "id de variante dupliqué: %s", v.ID)
			seen[v.ID] = true
		}
		for _, o := range created.Options {
			assert.NotEmpty(t, o.ID)
		}
	})

	t.Run("UniqueIDsAcrossStore", func(t *testing.T) {
		s := newProductStore(t)

		first, err := s.Create(sampleProduct())
		require.NoError(t, err)
		second, err := s.Create(sampleProduct())
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		assert.NotEqual(t, first.Variants[0].ID, second.Variants[0].ID)
	})

	t.Run("KeepsProvidedVariantID", func(t *testing.T) {
		s := newProductStore(t)

		p := sampleProduct()
		p.Variants[0].ID = "variant-fixe"
		created, err := s.Create(p)
		require.NoError(t, err)

		assert.Equal(t, "variant-fixe", created.Variants[0].ID)
		assert.NotEmpty(t, created.Variants[1].ID)
	})
}

func TestProductStoreList(t *testing.T) {
	t.Run("MinPriceIsLowestVariantPrice", func(t *testing.T) {
		s := newProductStore(t)

		created, err := s.Create(sampleProduct())
		require.NoError(t, err)

		items := s.List()
		require.Len(t, items, 1)
		assert.Equal(t, created.ID, items[0].ID)
		assert.Equal(t, 12.50, items[0].MinPrice)
	})

	t.Run("InsertionOrderPreserved", func(t *testing.T) {
		s := newProductStore(t)

		titles := []string{"Premier", "Deuxième", "Troisième"}
		for _, title := range titles {
			p := sampleProduct()
			p.Title = title
			_, err := s.Create(p)
			require.NoError(t, err)
		}

		items := s.List()
		require.Len(t, items, 3)
		for i, title := range titles {
			assert.Equal(t, title, items[i].Title)
		}
	})
}

func TestProductStoreGetByID(t *testing.T) {
	s := newProductStore(t)

	created, err := s.Create(sampleProduct())
	require.NoError(t, err)

	got, err := s.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)

	_, err = s.GetByID("inexistant")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductStoreUpdate(t *testing.T) {
	t.Run("EmptyPatchOnlyBumpsUpdatedAt", func(t *testing.T) {
		s := newProductStore(t)

		created, err := s.Create(sampleProduct())
		require.NoError(t, err)

		updated, err := s.Update(created.ID, models.ProductPatch{})
		require.NoError(t, err)

		assert.Equal(t, created.Title, updated.Title)
		assert.Equal(t, created.Vendor, updated.Vendor)
		assert.Equal(t, created.Tags, updated.Tags)
		assert.Equal(t, created.Variants, updated.Variants)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.Equal(t, created.PublishedAt, updated.PublishedAt)
		assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	})

	t.Run("PartialFieldsMerged", func(t *testing.T) {
		s := newProductStore(t)

		created, err := s.Create(sampleProduct())
		require.NoError(t, err)

		title := "Mug émaillé — édition limitée"
		updated, err := s.Update(created.ID, models.ProductPatch{Title: &title})
		require.NoError(t, err)

		assert.Equal(t, title, updated.Title)
		// Les champs absents du patch restent inchangés
		assert.Equal(t, created.Vendor, updated.Vendor)
		assert.Equal(t, created.Variants, updated.Variants)
	})

	t.Run("VariantIDReusedByPosition", func(t *testing.T) {
		s := newProductStore(t)

		created, err := s.Create(sampleProduct())
		require.NoError(t, err)

		incoming := []models.ProductVariant{
			{Title: "30cl nouveau prix", Price: 13.50},
			{Title: "50cl nouveau prix", Price: 15.90},
			{Title: "75cl", Price: 18.90},
		}
		updated, err := s.Update(created.ID, models.ProductPatch{Variants: &incoming})
		require.NoError(t, err)

		require.Len(t, updated.Variants, 3)
		assert.Equal(t, created.Variants[0].ID, updated.Variants[0].ID)
		assert.Equal(t, created.Variants[1].ID, updated.Variants[1].ID)
		// Au-delà de la liste stockée : id neuf
		assert.NotEmpty(t, updated.Variants[2].ID)
		assert.NotEqual(t, created.Variants[0].ID, updated.Variants[2].ID)
		assert.NotEqual(t, created.Variants[1].ID, updated.Variants[2].ID)
	})

	t.Run("PatchSliceNotMutated", func(t *testing.T) {
		s := newProductStore(t)

		created, err := s.Create(sampleProduct())
		require.NoError(t, err)

		incoming := []models.ProductVariant{{Title: "30cl", Price: 13.50}}
		_, err = s.Update(created.ID, models.ProductPatch{Variants: &incoming})
		require.NoError(t, err)

		// Les ids attribués ne doivent pas être réécrits dans la slice de l'appelant
		assert.Empty(t, incoming[0].ID)
	})

	t.Run("ExplicitVariantIDKept", func(t *testing.T) {
		s := newProductStore(t)

		created, err := s.Create(sampleProduct())
		require.NoError(t, err)

		// La variante avec id explicite le garde, même déplacée en position 0
		incoming := []models.ProductVariant{
			{ID: created.Variants[1].ID, Title: "50cl", Price: 14.90},
		}
		updated, err := s.Update(created.ID, models.ProductPatch{Variants: &incoming})
		require.NoError(t, err)

		require.Len(t, updated.Variants, 1)
		assert.Equal(t, created.Variants[1].ID, updated.Variants[0].ID)
	})

	t.Run("UnknownIDReturnsNotFound", func(t *testing.T) {
		s := newProductStore(t)

		_, err := s.Update("inexistant", models.ProductPatch{})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestProductStoreDelete(t *testing.T) {
	t.Run("DeletedProductIsGone", func(t *testing.T) {
		s := newProductStore(t)

		created, err := s.Create(sampleProduct())
		require.NoError(t, err)

		ok, err := s.Delete(created.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		_, err = s.GetByID(created.ID)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("UnknownIDLeavesCollectionUntouched", func(t *testing.T) {
		s := newProductStore(t)

		_, err := s.Create(sampleProduct())
		require.NoError(t, err)

		_, err = s.Delete("inexistant")
		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.Len(t, s.List(), 1)
	})
}

func TestProductStorePersistence(t *testing.T) {
	t.Run("SeedWrittenOnFirstAccess", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "products.json")
		s := NewProductStore(path)

		items := s.List()
		require.NotEmpty(t, items, "le seed doit rendre le store utilisable sans setup")
		assert.FileExists(t, path)
	})

	t.Run("MalformedJSONDegradesToEmpty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "products.json")
		require.NoError(t, os.WriteFile(path, []byte("{pas du json"), 0o644))

		s := NewProductStore(path)
		assert.Empty(t, s.List())
	})

	t.Run("RoundTrip", func(t *testing.T) {
		s := newProductStore(t)

		created, err := s.Create(sampleProduct())
		require.NoError(t, err)

		// Relecture par un second store sur le même fichier : champ pour champ
		reread := NewProductStore(s.path)
		got, err := reread.GetByID(created.ID)
		require.NoError(t, err)

		data1, err := json.Marshal(created)
		require.NoError(t, err)
		data2, err := json.Marshal(got)
		require.NoError(t, err)
		assert.JSONEq(t, string(data1), string(data2))
	})
}
