package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// ProductsFile retourne le chemin du document JSON des produits.
func ProductsFile() string {
	if v := os.Getenv("PRODUCTS_FILE"); v != "" {
		return v
	}
	return "data/products.json"
}

// UsersFile retourne le chemin du document JSON des utilisateurs.
func UsersFile() string {
	if v := os.Getenv("USERS_FILE"); v != "" {
		return v
	}
	return "data/users.json"
}
