package services

import (
	"context"
	"dan_assistant/internal/models"
	"dan_assistant/internal/store"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// AuthService gates the admin dashboard. Access lives in a single in-memory
// session flag: no token, no expiry, reset on restart. Credentials are stored
// and compared as plain text unless bcrypt mode is enabled.
type AuthService interface {
	Login(username, password string) bool
	Logout()
	LoggedIn() bool
	UpdateCredentials(ctx context.Context, username, password string) error
}

type authService struct {
	store     store.Store
	logger    *slog.Logger
	useBcrypt bool

	mu       sync.Mutex
	auth     models.AdminAuth
	loggedIn bool
}

func NewAuthService(ctx context.Context, st store.Store, logger *slog.Logger, useBcrypt bool) AuthService {
	s := &authService{store: st, logger: logger, useBcrypt: useBcrypt, auth: models.DefaultAdminAuth()}

	data, err := st.Get(ctx, store.KeyAdminAuth)
	if err == nil {
		var auth models.AdminAuth
		if err := json.Unmarshal(data, &auth); err != nil {
			logger.Warn("stored admin credentials are malformed, falling back to defaults", "error", err)
		} else {
			s.auth = auth
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		logger.Warn("failed to load admin credentials, using defaults", "error", err)
	}

	return s
}

func (s *authService) Login(username, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if username != s.auth.Username {
		return false
	}
	// In bcrypt mode the store may still hold a plaintext password (fresh
	// store defaults, or a pair written before the mode was enabled); only a
	// credential update writes a hash. Compare plaintext until then so the
	// admin can log in and rotate the pair.
	if s.useBcrypt && isBcryptHash(s.auth.Password) {
		if bcrypt.CompareHashAndPassword([]byte(s.auth.Password), []byte(password)) != nil {
			return false
		}
	} else if password != s.auth.Password {
		return false
	}

	s.loggedIn = true
	return true
}

func isBcryptHash(password string) bool {
	_, err := bcrypt.Cost([]byte(password))
	return err == nil
}

func (s *authService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = false
}

func (s *authService) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn
}

func (s *authService) UpdateCredentials(ctx context.Context, username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := password
	if s.useBcrypt {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		stored = string(hash)
	}

	auth := models.AdminAuth{Username: username, Password: stored}
	data, err := json.Marshal(auth)
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}
	if err := s.store.Set(ctx, store.KeyAdminAuth, data); err != nil {
		return fmt.Errorf("persist credentials: %w", err)
	}

	s.auth = auth
	return nil
}
