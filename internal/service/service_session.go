package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/hashtrack/internal/adapter"
	"github.com/MKhiriev/hashtrack/internal/logger"
	"github.com/MKhiriev/hashtrack/internal/store"
	"github.com/MKhiriev/hashtrack/internal/utils"
	"github.com/MKhiriev/hashtrack/models"
)

type sessionService struct {
	adapter adapter.ServerAdapter
	tokens  store.TokenStore
	logger  *logger.Logger
}

func NewSessionService(serverAdapter adapter.ServerAdapter, tokens store.TokenStore, logger *logger.Logger) SessionService {
	return &sessionService{adapter: serverAdapter, tokens: tokens, logger: logger.GetChildLogger("session")}
}

// Login sends the credentials unauthenticated. When the service omits the
// expiry it is taken from the token's exp claim if the token is a JWT.
func (s *sessionService) Login(ctx context.Context, email, password string) (models.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.Session{}, ErrInvalidCredentials
	}

	session, err := s.adapter.CreateSession(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}
	if session.Token == "" {
		return models.Session{}, fmt.Errorf("login: %w", &adapter.APIError{Kind: adapter.ErrMalformed, Message: "empty token"})
	}

	if session.ExpiresAt == nil {
		if exp, err := session.ClaimsExpiry(); err == nil {
			session.ExpiresAt = &exp
		}
	}

	s.logger.Info().
		Str("email", email).
		Str("token", utils.TokenPreview(session.Token)).
		Msg("login succeeded")

	return session, nil
}

func (s *sessionService) Logout() error {
	if err := s.tokens.Clear(); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	s.logger.Info().Msg("logged out")
	return nil
}

func (s *sessionService) Status(ctx context.Context) (models.User, error) {
	user, err := s.adapter.CurrentUser(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("status: %w", err)
	}
	return user, nil
}

func (s *sessionService) LoggedIn() bool {
	_, ok := s.tokens.Load()
	return ok
}
