package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/google"
)

type OAuthProvider struct {
	Name        string
	Config      *oauth2.Config
	UserInfoURL string
}

// UserInfo est le profil minimal renvoyé par les providers après échange du code.
type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Provider construit la configuration OAuth du provider demandé depuis les
// variables d'environnement. Retourne false si le provider est inconnu.
func Provider(name, callbackURL string) (*OAuthProvider, bool) {
	switch name {
	case "google":
		return &OAuthProvider{
			Name: "google",
			Config: &oauth2.Config{
				ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
				ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
				RedirectURL:  callbackURL,
				Scopes: []string{
					"https://www.googleapis.com/auth/userinfo.email",
					"https://www.googleapis.com/auth/userinfo.profile",
				},
				Endpoint: google.Endpoint,
			},
			UserInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
		}, true
	case "facebook":
		return &OAuthProvider{
			Name: "facebook",
			Config: &oauth2.Config{
				ClientID:     os.Getenv("FACEBOOK_CLIENT_ID"),
				ClientSecret: os.Getenv("FACEBOOK_CLIENT_SECRET"),
				RedirectURL:  callbackURL,
				Scopes:       []string{"email", "public_profile"},
				Endpoint:     facebook.Endpoint,
			},
			UserInfoURL: "https://graph.facebook.com/me?fields=id,name,email",
		}, true
	}
	return nil, false
}

func (p *OAuthProvider) GetAuthURL(state string) string {
	return p.Config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (p *OAuthProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return p.Config.Exchange(ctx, code)
}

// FetchUser récupère le profil via le token fraîchement échangé.
func (p *OAuthProvider) FetchUser(ctx context.Context, token *oauth2.Token) (UserInfo, error) {
	resp, err := p.Config.Client(ctx, token).Get(p.UserInfoURL)
	if err != nil {
		return UserInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return UserInfo{}, fmt.Errorf("provider %s: statut %d", p.Name, resp.StatusCode)
	}

	var info UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return UserInfo{}, err
	}
	return info, nil
}
