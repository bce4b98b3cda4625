package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/skillverse/internal/common"
	"github.com/dmitrijs2005/skillverse/internal/cryptox"
	"github.com/dmitrijs2005/skillverse/internal/kv"
	"github.com/dmitrijs2005/skillverse/internal/logging"
	"github.com/dmitrijs2005/skillverse/internal/models"
	"github.com/dmitrijs2005/skillverse/internal/repositories/session"
	"github.com/dmitrijs2005/skillverse/internal/repositories/users"
)

// AuthService manages the account directory and the current session.
//
// Contract:
//   - Register: create an account and sign it in.
//   - Login: verify the password digest and replace the session.
//   - ResetPassword: replace the digest; the caller must log in again.
//   - Logout: drop the session; idempotent.
//   - CurrentUser / UpdateUser and the settings helpers act on the session.
//
// Policy checks (password strength, email shape) belong to the caller.
type AuthService struct {
	store    kv.Store
	digester cryptox.Digester
	log      logging.Logger
	now      func() time.Time
}

func NewAuthService(store kv.Store, digester cryptox.Digester, log logging.Logger) *AuthService {
	if log == nil {
		log = logging.Nop()
	}
	return &AuthService{store: store, digester: digester, log: log, now: time.Now}
}

// Register returns common.ErrConflict when the normalized email is taken.
func (a *AuthService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	email = NormalizeEmail(email)

	digest, err := a.digester.Digest([]byte(password))
	if err != nil {
		return models.User{}, fmt.Errorf("digest password: %w", err)
	}

	rec := models.UserRecord{
		User: models.User{
			Username:     username,
			Email:        email,
			EnrolledDate: a.now().UTC(),
			Settings:     models.DefaultSettings(username),
		},
		Password: digest,
	}

	err = a.store.Atomic(ctx, func(ctx context.Context, r kv.Repository) error {
		dir := users.New(r)
		_, exists, err := dir.Get(ctx, email)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("register %s: %w", email, common.ErrConflict)
		}
		if err := dir.Put(ctx, rec); err != nil {
			return err
		}
		return session.New(r).Set(ctx, rec)
	})
	if err != nil {
		a.log.Warn(ctx, "registration failed", "email", email, "error", err)
		return models.User{}, err
	}

	a.log.Info(ctx, "user registered", "email", email)
	return rec.Public(), nil
}

// Login returns common.ErrNotFound for an unknown email and
// common.ErrInvalidCredential when the digest does not verify.
func (a *AuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	email = NormalizeEmail(email)

	rec, ok, err := users.New(a.store).Get(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		a.log.Info(ctx, "login failed", "email", email, "reason", "not_found")
		return models.User{}, fmt.Errorf("login %s: %w", email, common.ErrNotFound)
	}
	if !a.digester.Verify(rec.Password, []byte(password)) {
		a.log.Info(ctx, "login failed", "email", email, "reason", "bad_password")
		return models.User{}, fmt.Errorf("login %s: %w", email, common.ErrInvalidCredential)
	}

	if err := session.New(a.store).Set(ctx, rec); err != nil {
		return models.User{}, err
	}

	a.log.Info(ctx, "user logged in", "email", email)
	return rec.Public(), nil
}

// ResetPassword stores a new digest for email. It does not create a session.
func (a *AuthService) ResetPassword(ctx context.Context, email, newPassword string) (string, error) {
	email = NormalizeEmail(email)

	digest, err := a.digester.Digest([]byte(newPassword))
	if err != nil {
		return "", fmt.Errorf("digest password: %w", err)
	}

	err = a.store.Atomic(ctx, func(ctx context.Context, r kv.Repository) error {
		dir := users.New(r)
		rec, ok, err := dir.Get(ctx, email)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("reset password %s: %w", email, common.ErrNotFound)
		}
		rec.Password = digest
		return dir.Put(ctx, rec)
	})
	if err != nil {
		a.log.Info(ctx, "password reset failed", "email", email, "error", err)
		return "", err
	}

	a.log.Info(ctx, "password reset", "email", email)
	return MsgPasswordUpdated, nil
}

func (a *AuthService) Logout(ctx context.Context) error {
	return session.New(a.store).Delete(ctx)
}

// CurrentUser reads the session. The digest is never returned.
func (a *AuthService) CurrentUser(ctx context.Context) (models.User, bool, error) {
	rec, ok, err := session.New(a.store).Get(ctx)
	if err != nil || !ok {
		return models.User{}, false, err
	}
	return rec.Public(), true, nil
}

// UpdateUser overwrites the session with user and patches the directory
// entry of the same email, keeping its stored digest. When the directory
// has no such entry only the session is written.
func (a *AuthService) UpdateUser(ctx context.Context, user models.User) error {
	user.Email = NormalizeEmail(user.Email)

	return a.store.Atomic(ctx, func(ctx context.Context, r kv.Repository) error {
		dir := users.New(r)
		existing, ok, err := dir.Get(ctx, user.Email)
		if err != nil {
			return err
		}

		rec := models.UserRecord{User: user}
		if ok {
			rec.Password = existing.Password
			if err := dir.Put(ctx, rec); err != nil {
				return err
			}
		}
		return session.New(r).Set(ctx, rec)
	})
}

// UpdateSettings applies u to the signed-in user's settings.
func (a *AuthService) UpdateSettings(ctx context.Context, u models.SettingsUpdate) (models.User, error) {
	if err := u.Validate(); err != nil {
		return models.User{}, err
	}

	user, ok, err := a.CurrentUser(ctx)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, common.ErrNoSession
	}

	user.Settings = u.Apply(user.Settings)
	if err := a.UpdateUser(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// CompleteOnboarding stores the questionnaire answers and marks onboarding
// as done.
func (a *AuthService) CompleteOnboarding(ctx context.Context, answers models.SettingsUpdate) (models.User, error) {
	answers.OnboardingCompleted = models.Ptr(true)
	user, err := a.UpdateSettings(ctx, answers)
	if err == nil {
		a.log.Info(ctx, "onboarding completed", "email", user.Email)
	}
	return user, err
}

func (a *AuthService) MarkTourSeen(ctx context.Context) (models.User, error) {
	return a.UpdateSettings(ctx, models.SettingsUpdate{HasSeenTour: models.Ptr(true)})
}
