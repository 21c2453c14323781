package store

import "errors"

var (
	// ErrProductNotFound est retourné quand l'id demandé n'existe pas dans le catalogue.
	ErrProductNotFound = errors.New("produit introuvable")

	// ErrUserExists est retourné quand un email (insensible à la casse) est déjà pris.
	ErrUserExists = errors.New("un compte avec cet email existe déjà")

	// ErrInvalidCredentials couvre à la fois l'email inconnu et le mauvais mot de
	// passe : le login échoue fermé, sans distinguer les deux cas.
	ErrInvalidCredentials = errors.New("email ou mot de passe incorrect")
)
