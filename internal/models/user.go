package models

type User struct {
	ID           string `json:"user_id"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role,omitempty"`
	Provider     string `json:"provider,omitempty"`
	ProviderID   string `json:"-"`
}

// PublicUser est la projection exposée aux clients : jamais de hash dedans.
type PublicUser struct {
	ID    string `json:"user_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
