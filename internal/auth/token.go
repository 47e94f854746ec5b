package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Static errors for err113 compliance.
var (
	ErrNoTokenForKey = errors.New("no token configured for key")
)

// TokenSource resolves a Bearer token for a token key. The empty key selects
// the app access token; routes that act on behalf of a user carry a
// "user:<id>" key.
type TokenSource interface {
	Token(ctx context.Context, key string) (string, error)
}

// StaticTokenSource returns one fixed token for every key.
type StaticTokenSource struct {
	token string
}

// NewStaticTokenSource creates a token source around a fixed token.
func NewStaticTokenSource(token string) *StaticTokenSource {
	return &StaticTokenSource{token: token}
}

// Token returns the fixed token regardless of key.
func (s *StaticTokenSource) Token(ctx context.Context, key string) (string, error) {
	if s.token == "" {
		return "", fmt.Errorf("%w: %q", ErrNoTokenForKey, key)
	}

	return s.token, nil
}

// TokenStore holds an app token plus per-key user tokens. Tokens can be
// swapped at runtime, so access is guarded for concurrent request use.
type TokenStore struct {
	mu       sync.RWMutex
	appToken string
	tokens   map[string]string
}

// NewTokenStore creates a token store with an app token and optional
// per-key user tokens.
func NewTokenStore(appToken string, userTokens map[string]string) *TokenStore {
	tokens := make(map[string]string, len(userTokens))
	for key, token := range userTokens {
		tokens[key] = token
	}

	return &TokenStore{
		appToken: appToken,
		tokens:   tokens,
	}
}

// Token resolves the token for key, falling back to the app token for the
// empty key.
func (s *TokenStore) Token(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if key == "" {
		if s.appToken == "" {
			return "", fmt.Errorf("%w: app token", ErrNoTokenForKey)
		}

		return s.appToken, nil
	}

	token, ok := s.tokens[key]
	if !ok || token == "" {
		return "", fmt.Errorf("%w: %q", ErrNoTokenForKey, key)
	}

	return token, nil
}

// SetAppToken replaces the app token.
func (s *TokenStore) SetAppToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appToken = token
}

// SetToken stores or replaces the token for key.
func (s *TokenStore) SetToken(key, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[key] = token
}

// RemoveToken drops the token for key.
func (s *TokenStore) RemoveToken(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, key)
}
