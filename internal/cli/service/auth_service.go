package service

import (
	"errors"
	"fmt"

	"ResumeBuilder/internal/cli/repo"
	"ResumeBuilder/internal/middleware"
)

// AuthService описывает юзкейс-уровень аутентификации для CLI.
type AuthService interface {
	// Login выдаёт токен владельцу и сохраняет его локально.
	Login(owner string) error

	// Logout очищает локальный контекст аутентификации.
	Logout() error

	// CurrentUser возвращает текущего владельца, если он установлен.
	CurrentUser() (string, error)

	// Token возвращает сохранённый токен.
	Token() (string, error)
}

// DevAuthService подписывает токены общим секретом сервера.
// Идентичность вне системы, поэтому для разработки токен выпускается локально.
type DevAuthService struct {
	store  repo.AuthStore
	secret string
}

func NewDevAuthService(store repo.AuthStore, secret string) *DevAuthService {
	return &DevAuthService{store: store, secret: secret}
}

func (s *DevAuthService) Login(owner string) error {
	if owner == "" {
		return errors.New("empty owner")
	}
	token, err := middleware.IssueToken(owner, s.secret)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}
	if err := s.store.Save(token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return s.store.SaveOwner(owner)
}

func (s *DevAuthService) Logout() error {
	return s.store.Clear()
}

func (s *DevAuthService) CurrentUser() (string, error) {
	return s.store.LoadOwner()
}

func (s *DevAuthService) Token() (string, error) {
	tok, err := s.store.Load()
	if err != nil {
		return "", fmt.Errorf("not logged in (run 'login <owner>'): %w", err)
	}
	return tok, nil
}

var _ AuthService = (*DevAuthService)(nil)
