package services

import (
	"sync"

	"github.com/google/uuid"

	"teamboard/internal/config"
)

// AuthService issues opaque session tokens for passwords matching the
// configured list. Tokens live in memory only; a restart signs everyone out.
type AuthService struct {
	store *config.Store

	mu     sync.RWMutex
	tokens map[string]bool
}

// NewAuthService creates an auth service backed by the config store's
// password list.
func NewAuthService(store *config.Store) *AuthService {
	return &AuthService{
		store:  store,
		tokens: make(map[string]bool),
	}
}

// Login checks password against the configured list and issues a token.
func (s *AuthService) Login(password string) (string, error) {
	if !s.store.CheckPassword(password) {
		return "", ErrInvalidPassword
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = true
	s.mu.Unlock()
	return token, nil
}

// Valid reports whether token was issued by this process.
func (s *AuthService) Valid(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens[token]
}

// Logout revokes a token. Unknown tokens are ignored.
func (s *AuthService) Logout(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
