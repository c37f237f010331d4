// Package token issues and checks the edit tokens that gate every
// favorite-list mutation. A token is bound to a user, an action, and
// (for single-page toggles) a title key, so a token leaked from one
// form cannot be replayed against another.
package token

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenMismatch is the hard failure for any token that does not
// check out: wrong user, wrong action, wrong title, expired, or
// malformed. Callers must reject the mutation outright.
var ErrTokenMismatch = errors.New("token mismatch")

// Actions a token can authorize.
const (
	ActionFavorite   = "favorite"
	ActionUnfavorite = "unfavorite"
	ActionListEdit   = "favoritelistedit"
)

type editClaims struct {
	Action   string `json:"act"`
	TitleKey string `json:"page,omitempty"`
	jwt.RegisteredClaims
}

// Service signs and validates edit tokens with per-user secrets.
type Service struct {
	store SecretStore
	ttl   time.Duration
}

func NewService(store SecretStore, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{store: store, ttl: ttl}
}

// Issue mints a token for one user/action/title binding. titleKey is
// empty for list-edit tokens.
func (s *Service) Issue(ctx context.Context, userID int64, action, titleKey string) (string, error) {
	if s == nil || s.store == nil {
		return "", fmt.Errorf("token service is not configured")
	}
	if userID <= 0 {
		return "", fmt.Errorf("invalid user id %d", userID)
	}
	secret, err := s.store.Secret(ctx, userID)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	claims := editClaims{
		Action:   action,
		TitleKey: titleKey,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Check validates a caller-supplied token against the expected
// user/action/title binding. Any failure mode collapses into
// ErrTokenMismatch.
func (s *Service) Check(ctx context.Context, userID int64, action, titleKey, tok string) error {
	if s == nil || s.store == nil {
		return fmt.Errorf("token service is not configured")
	}
	if userID <= 0 || tok == "" {
		return ErrTokenMismatch
	}
	secret, err := s.store.Secret(ctx, userID)
	if err != nil {
		return err
	}

	var claims editClaims
	parsed, err := jwt.ParseWithClaims(tok, &claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return ErrTokenMismatch
	}
	if claims.Subject != strconv.FormatInt(userID, 10) {
		return ErrTokenMismatch
	}
	if claims.Action != action || claims.TitleKey != titleKey {
		return ErrTokenMismatch
	}
	return nil
}
