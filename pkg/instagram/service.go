package instagram

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
)

// Endpoint is the Instagram Basic Display OAuth2 endpoint.
var Endpoint = oauth2.Endpoint{
	AuthURL:  "https://api.instagram.com/oauth/authorize",
	TokenURL: "https://api.instagram.com/oauth/access_token",
}

// Service wraps the Instagram OAuth code-exchange flow.
type Service struct {
	oauth *oauth2.Config
}

func NewService(clientID, clientSecret, redirectURI string) *Service {
	return &Service{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Scopes:       []string{"user_profile", "user_media"},
			Endpoint:     Endpoint,
		},
	}
}

// AuthURL returns the URL the client should open to authorize the app.
func (s *Service) AuthURL(state string) string {
	return s.oauth.AuthCodeURL(state)
}

// Exchange trades an authorization code for an access token and the
// Instagram user id it belongs to. Instagram returns user_id alongside
// the token as an extra field, either numeric or string depending on the
// API version.
func (s *Service) Exchange(ctx context.Context, code string) (userID, accessToken string, err error) {
	tok, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return "", "", fmt.Errorf("instagram code exchange failed: %w", err)
	}

	switch id := tok.Extra("user_id").(type) {
	case string:
		userID = id
	case float64:
		userID = fmt.Sprintf("%.0f", id)
	}
	if userID == "" {
		return "", "", fmt.Errorf("instagram token response missing user_id")
	}

	return userID, tok.AccessToken, nil
}
