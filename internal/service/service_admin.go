package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/MKhiriev/go-leave-desk/internal/store"
	"github.com/MKhiriev/go-leave-desk/models"
)

type adminService struct {
	users       store.UserRepository
	accessCodes store.AccessCodeRepository

	now func() time.Time

	logger *logger.Logger
}

func NewAdminService(storages *store.Storages, logger *logger.Logger) AdminService {
	return &adminService{
		users:       storages.UserRepository,
		accessCodes: storages.AccessCodeRepository,
		now:         func() time.Time { return time.Now().UTC() },
		logger:      logger,
	}
}

// CreateAccessCode adds an active code with zero uses to the ledger.
func (s *adminService) CreateAccessCode(ctx context.Context, code models.AccessCode) (models.AccessCode, error) {
	code.IsActive = true
	code.CurrentUses = 0
	code.CreatedAt = s.now()

	created, err := s.accessCodes.CreateAccessCode(ctx, code)
	if errors.Is(err, store.ErrAccessCodeAlreadyExists) {
		return models.AccessCode{}, ErrAccessCodeExists
	}
	if err != nil {
		return models.AccessCode{}, s.storeFailure(ctx, "adminService.CreateAccessCode", err)
	}

	return created, nil
}

func (s *adminService) ListAccessCodes(ctx context.Context) ([]models.AccessCode, error) {
	codes, err := s.accessCodes.ListAccessCodes(ctx)
	if err != nil {
		return nil, s.storeFailure(ctx, "adminService.ListAccessCodes", err)
	}
	return codes, nil
}

func (s *adminService) DeactivateAccessCode(ctx context.Context, code string) error {
	err := s.accessCodes.DeactivateAccessCode(ctx, code)
	if errors.Is(err, store.ErrAccessCodeNotFound) {
		return ErrAccessCodeNotFound
	}
	if err != nil {
		return s.storeFailure(ctx, "adminService.DeactivateAccessCode", err)
	}

	logger.FromContext(ctx).Info().Str("func", "adminService.DeactivateAccessCode").Str("code", code).Msg("access code deactivated")
	return nil
}

// SetSubscriptionExpiry sets or, with a nil expiry, clears the subscription
// of userID. The cached access level is recomputed from the new state.
func (s *adminService) SetSubscriptionExpiry(ctx context.Context, userID int64, expiry *time.Time) (models.User, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, s.storeFailure(ctx, "adminService.SetSubscriptionExpiry", err)
	}

	if expiry != nil {
		utc := expiry.UTC()
		expiry = &utc
	}
	user.SubscriptionExpiry = expiry
	user.AccessLevel = user.EffectiveAccessLevel(s.now())

	err = s.users.SetSubscriptionExpiry(ctx, userID, expiry, user.AccessLevel)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, s.storeFailure(ctx, "adminService.SetSubscriptionExpiry", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "adminService.SetSubscriptionExpiry").
		Int64("user_id", userID).
		Str("access_level", string(user.AccessLevel)).
		Msg("subscription updated")
	return user, nil
}

// SetAdmin grants or revokes administrator rights. On revocation the cached
// access level falls back to whatever the user's trial or subscription
// still grants.
func (s *adminService) SetAdmin(ctx context.Context, email string, isAdmin bool) error {
	email = normalizeEmail(email)
	user, err := s.users.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return s.storeFailure(ctx, "adminService.SetAdmin", err)
	}

	user.IsAdmin = isAdmin
	level := user.EffectiveAccessLevel(s.now())

	err = s.users.SetAdmin(ctx, email, isAdmin, level)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return s.storeFailure(ctx, "adminService.SetAdmin", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "adminService.SetAdmin").
		Str("email", email).
		Bool("is_admin", isAdmin).
		Str("access_level", string(level)).
		Msg("admin flag changed")
	return nil
}

func (s *adminService) storeFailure(ctx context.Context, funcName string, err error) error {
	logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("storage call failed")
	return fmt.Errorf("%w: %w", ErrStoreFailure, err)
}
