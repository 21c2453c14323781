package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"venda_back_end/internal/models"
	"venda_back_end/internal/utils"
)

// UserStore est le contrat commun aux deux variantes de persistance (mémoire pure
// et fichier JSON). Le hash de mot de passe ne sort jamais de cette couche.
type UserStore interface {
	CreateUser(name, email, password string) (models.User, error)
	FindUserByEmail(email string) (models.User, bool)
	VerifyUserCredentials(email, password string) (models.User, error)
	FindOrCreateOAuthUser(provider, providerID, email, name string) (models.User, error)
}

// Hash factice comparé quand l'email est inconnu, pour que le login échoue en
// temps comparable avec et sans compte existant.
var dummyHash, _ = utils.HashPassword(uuid.NewString())

// ================== VARIANTE MÉMOIRE ==================

type MemoryUserStore struct {
	users []models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{}
}

func (s *MemoryUserStore) CreateUser(name, email, password string) (models.User, error) {
	if _, ok := s.FindUserByEmail(email); ok {
		return models.User{}, ErrUserExists
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         "customer",
		Provider:     "local",
	}
	s.users = append(s.users, user)
	return user, nil
}

// FindUserByEmail cherche sans tenir compte de la casse de l'email.
func (s *MemoryUserStore) FindUserByEmail(email string) (models.User, bool) {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}

// VerifyUserCredentials échoue fermé : email inconnu et mauvais mot de passe
// produisent la même erreur, après une comparaison de hash dans les deux cas.
func (s *MemoryUserStore) VerifyUserCredentials(email, password string) (models.User, error) {
	user, ok := s.FindUserByEmail(email)
	if !ok {
		utils.VerifyPassword(password, dummyHash)
		return models.User{}, ErrInvalidCredentials
	}

	match, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil || !match {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *MemoryUserStore) FindOrCreateOAuthUser(provider, providerID, email, name string) (models.User, error) {
	for _, u := range s.users {
		if u.Provider == provider && u.ProviderID == providerID {
			return u, nil
		}
	}

	// Compte local existant avec le même email → on rattache le provider
	if user, ok := s.FindUserByEmail(email); ok {
		for i := range s.users {
			if s.users[i].ID == user.ID {
				s.users[i].Provider = provider
				s.users[i].ProviderID = providerID
				s.users[i].Name = name
				return s.users[i], nil
			}
		}
	}

	user := models.User{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		Role:       "customer",
		Provider:   provider,
		ProviderID: providerID,
	}
	s.users = append(s.users, user)
	return user, nil
}

// ================== VARIANTE FICHIER ==================

// Représentation sur disque : le hash y figure, contrairement au JSON exposé
// par l'API.
type userRecord struct {
	ID           string `json:"id"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash,omitempty"`
	Role         string `json:"role,omitempty"`
	Provider     string `json:"provider,omitempty"`
	ProviderID   string `json:"providerId,omitempty"`
}

// FileUserStore charge le document une seule fois à la construction, sert ensuite
// depuis la mémoire et réécrit le fichier complet à chaque mutation.
type FileUserStore struct {
	path string
	mem  *MemoryUserStore
}

func NewFileUserStore(path string) *FileUserStore {
	s := &FileUserStore{path: path, mem: NewMemoryUserStore()}
	s.load()
	return s
}

func (s *FileUserStore) load() {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		log.Printf("⚠️ Lecture de %s impossible: %v — liste vide", s.path, err)
		return
	}

	var records []userRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("⚠️ JSON corrompu dans %s: %v — liste vide", s.path, err)
		return
	}

	for _, r := range records {
		s.mem.users = append(s.mem.users, models.User{
			ID:           r.ID,
			Name:         r.Name,
			Email:        r.Email,
			PasswordHash: r.PasswordHash,
			Role:         r.Role,
			Provider:     r.Provider,
			ProviderID:   r.ProviderID,
		})
	}
}

func (s *FileUserStore) persist() error {
	records := make([]userRecord, len(s.mem.users))
	for i, u := range s.mem.users {
		records[i] = userRecord{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: u.PasswordHash,
			Role:         u.Role,
			Provider:     u.Provider,
			ProviderID:   u.ProviderID,
		}
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// snapshot copie la liste courante pour pouvoir revenir en arrière si l'écriture
// échoue : soit l'opération réussit en entier, soit l'état antérieur est conservé.
func (s *MemoryUserStore) snapshot() []models.User {
	return append([]models.User(nil), s.users...)
}

func (s *FileUserStore) CreateUser(name, email, password string) (models.User, error) {
	prev := s.mem.snapshot()
	user, err := s.mem.CreateUser(name, email, password)
	if err != nil {
		return models.User{}, err
	}
	if err := s.persist(); err != nil {
		s.mem.users = prev
		return models.User{}, err
	}
	return user, nil
}

func (s *FileUserStore) FindUserByEmail(email string) (models.User, bool) {
	return s.mem.FindUserByEmail(email)
}

func (s *FileUserStore) VerifyUserCredentials(email, password string) (models.User, error) {
	return s.mem.VerifyUserCredentials(email, password)
}

func (s *FileUserStore) FindOrCreateOAuthUser(provider, providerID, email, name string) (models.User, error) {
	prev := s.mem.snapshot()
	user, err := s.mem.FindOrCreateOAuthUser(provider, providerID, email, name)
	if err != nil {
		return models.User{}, err
	}
	if err := s.persist(); err != nil {
		s.mem.users = prev
		return models.User{}, err
	}
	return user, nil
}
