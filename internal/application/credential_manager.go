package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/chatline/internal/domain"
	"github.com/bnema/chatline/internal/ports"
	"github.com/rs/zerolog"
)

const (
	registrationFallback = "registration failed"
	loginFallback        = "login failed"
)

type CredentialManagerConfig struct {
	Policy    domain.RevalidationPolicy
	Inspector ports.TokenInspector
	Clock     ports.Clock
	Logger    zerolog.Logger
}

// CredentialManager owns the single stored credential of a client context and
// the outbound authorization header derived from it.
type CredentialManager struct {
	api       ports.IdentityAPI
	store     ports.SecretStore
	profiles  ports.ProfileRepository
	headers   ports.HeaderState
	inspector ports.TokenInspector
	clock     ports.Clock
	policy    domain.RevalidationPolicy
	logger    zerolog.Logger
}

func NewCredentialManager(api ports.IdentityAPI, store ports.SecretStore, profiles ports.ProfileRepository, headers ports.HeaderState, cfg CredentialManagerConfig) *CredentialManager {
	if cfg.Clock == nil {
		cfg.Clock = ports.SystemClock{}
	}
	if cfg.Policy == "" {
		cfg.Policy = domain.RevalidateNever
	}

	return &CredentialManager{
		api:       api,
		store:     store,
		profiles:  profiles,
		headers:   headers,
		inspector: cfg.Inspector,
		clock:     cfg.Clock,
		policy:    cfg.Policy,
		logger:    cfg.Logger,
	}
}

// Register creates an account and returns the raw response body. It never
// stores a credential; callers log in separately.
func (m *CredentialManager) Register(ctx context.Context, cmd RegisterCommand) ([]byte, error) {
	body, err := m.api.Register(ctx, cmd.Credentials())
	if err != nil {
		reason := domain.FailureReason(err, registrationFallback)
		m.logger.Warn().Str("username", cmd.Username).Str("reason", reason).Msg("registration rejected")
		return nil, &domain.RegistrationError{Reason: reason, Err: err}
	}

	m.logger.Info().Str("username", cmd.Username).Msg("registered")
	return body, nil
}

// Login exchanges credentials for a token, stores it under the well-known key
// and arms the outbound authorization header.
func (m *CredentialManager) Login(ctx context.Context, cmd LoginCommand) (domain.LoginResponse, error) {
	resp, err := m.api.Login(ctx, cmd.Credentials())
	if err != nil {
		reason := domain.FailureReason(err, loginFallback)
		m.logger.Warn().Str("username", cmd.Username).Str("reason", reason).Msg("login rejected")
		return domain.LoginResponse{}, &domain.LoginError{Reason: reason, Err: err}
	}
	if resp.Token == "" {
		return domain.LoginResponse{}, &domain.LoginError{Reason: domain.ErrMissingToken.Error(), Err: domain.ErrMissingToken}
	}

	if err := m.store.Put(ctx, domain.TokenKey, resp.Token); err != nil {
		storeErr := fmt.Errorf("store token: %w", err)
		return domain.LoginResponse{}, &domain.LoginError{Reason: domain.FailureReason(storeErr, loginFallback), Err: storeErr}
	}
	m.headers.Arm(resp.Token)

	m.logger.Info().Str("username", resp.User.Username).Msg("logged in")
	return resp, nil
}

// GetToken returns the stored token. Storage failures read as absent.
func (m *CredentialManager) GetToken(ctx context.Context) (string, bool) {
	token, err := m.store.Get(ctx, domain.TokenKey)
	if err != nil {
		if !errors.Is(err, domain.ErrSecretNotFound) {
			m.logger.Warn().Err(err).Msg("read stored token")
		}
		return "", false
	}
	if token == "" {
		return "", false
	}

	return token, true
}

// IsAuthenticated reports whether a token is stored. Under the expiry policy a
// JWT whose exp has passed does not count; opaque tokens are trusted.
func (m *CredentialManager) IsAuthenticated(ctx context.Context) bool {
	token, ok := m.GetToken(ctx)
	if !ok {
		return false
	}
	if m.policy != domain.RevalidateExpiry || m.inspector == nil {
		return true
	}

	info, err := m.inspector.Inspect(token)
	if err != nil {
		return true
	}
	if info.Expired(m.clock.Now()) {
		m.logger.Debug().Time("expires_at", info.ExpiresAt).Msg("stored token expired")
		return false
	}

	return true
}

// Restore arms the authorization header from a previously stored token.
func (m *CredentialManager) Restore(ctx context.Context) bool {
	token, ok := m.GetToken(ctx)
	if !ok {
		return false
	}

	m.headers.Arm(token)
	return true
}

func (m *CredentialManager) ClearCredential(ctx context.Context) error {
	m.headers.Disarm()

	if err := m.store.Delete(ctx, domain.TokenKey); err != nil && !errors.Is(err, domain.ErrSecretNotFound) {
		return fmt.Errorf("delete stored token: %w", err)
	}

	return nil
}

// Logout clears the credential and the cached user profile.
func (m *CredentialManager) Logout(ctx context.Context) error {
	var errs error
	if err := m.ClearCredential(ctx); err != nil {
		errs = errors.Join(errs, err)
	}
	if err := m.profiles.Delete(ctx); err != nil {
		errs = errors.Join(errs, fmt.Errorf("delete profile: %w", err))
	}
	if errs != nil {
		return errs
	}

	m.logger.Info().Msg("logged out")
	return nil
}

func (m *CredentialManager) SaveProfile(ctx context.Context, user domain.User) error {
	profile := domain.Profile{User: user, SavedAt: m.clock.Now().UTC()}
	if err := m.profiles.Save(ctx, profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	return nil
}

func (m *CredentialManager) Profile(ctx context.Context) (domain.Profile, error) {
	profile, err := m.profiles.Get(ctx)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("get profile: %w", err)
	}

	return profile, nil
}

func (m *CredentialManager) TokenInfo(ctx context.Context) (domain.TokenInfo, error) {
	token, ok := m.GetToken(ctx)
	if !ok {
		return domain.TokenInfo{}, domain.ErrNotAuthenticated
	}
	if m.inspector == nil {
		return domain.TokenInfo{}, errors.New("token inspector is not configured")
	}

	info, err := m.inspector.Inspect(token)
	if err != nil {
		return domain.TokenInfo{}, fmt.Errorf("inspect token: %w", err)
	}

	return info, nil
}

// Status gathers what the status view shows about the current credential.
func (m *CredentialManager) Status(ctx context.Context) (SessionStatus, error) {
	status := SessionStatus{
		Authenticated: m.IsAuthenticated(ctx),
		Policy:        m.policy,
	}
	_, status.TokenStored = m.GetToken(ctx)

	profile, err := m.profiles.Get(ctx)
	switch {
	case err == nil:
		status.Profile = &profile
	case !errors.Is(err, domain.ErrProfileNotFound):
		return SessionStatus{}, fmt.Errorf("get profile: %w", err)
	}

	if status.TokenStored && m.inspector != nil {
		if info, err := m.TokenInfo(ctx); err == nil {
			status.Token = &info
			status.Expired = info.Expired(m.clock.Now())
		}
	}

	return status, nil
}
