package config

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// KeyringService is the service name under which tokens are stored in the OS keyring.
const KeyringService = "heat-cli"

// Keyring stores auth tokens per orchestration API URL.
type Keyring interface {
	Token(url string) (string, error)
	SetToken(url, token string) error
	DeleteToken(url string) error
}

// TokenStore looks up auth tokens in the OS keyring, they are stored per orchestration API URL.
type TokenStore struct {
	service string
}

// NewTokenStore returns a token store backed by the OS keyring.
func NewTokenStore() *TokenStore {
	return &TokenStore{service: KeyringService}
}

// Token returns the token stored for the given URL. A missing entry is not an error,
// an empty string is returned instead.
func (s *TokenStore) Token(url string) (string, error) {
	token, err := keyring.Get(s.service, url)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	return token, err
}

// SetToken stores a token for the given URL.
func (s *TokenStore) SetToken(url, token string) error {
	return keyring.Set(s.service, url, token)
}

// DeleteToken removes the token stored for the given URL, if any.
func (s *TokenStore) DeleteToken(url string) error {
	err := keyring.Delete(s.service, url)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
