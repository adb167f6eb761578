package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-leave-desk/internal/config"
	"github.com/MKhiriev/go-leave-desk/internal/validators"
	"github.com/MKhiriev/go-leave-desk/models"
)

// AuthValidationService rejects malformed input with ErrValidation before it
// reaches the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(cfg config.Auth) AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewAccountValidator(validators.AccountPolicy{
			MinPasswordLength: cfg.MinPasswordLength,
			MinNameLength:     cfg.MinNameLength,
		}),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegistrationRequest) (models.Registration, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Registration{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) VerifyEmail(ctx context.Context, token string) (string, error) {
	if err := v.validator.Validate(ctx, models.VerifyEmailRequest{Token: token}); err != nil {
		// a malformed token can never match a stored one
		return "", ErrInvalidOrExpiredToken
	}
	return v.inner.VerifyEmail(ctx, token)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) Logout(ctx context.Context, sessionToken string) error {
	return v.inner.Logout(ctx, sessionToken)
}

func (v *AuthValidationService) RequestPasswordReset(ctx context.Context, email string) error {
	if err := v.validator.Validate(ctx, models.ForgotPasswordRequest{Email: email}); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.RequestPasswordReset(ctx, email)
}

func (v *AuthValidationService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if err := v.validator.Validate(ctx, req, validators.FieldNewPassword); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := v.validator.Validate(ctx, req, validators.FieldToken); err != nil {
		return ErrInvalidOrExpiredToken
	}
	return v.inner.ResetPassword(ctx, req)
}

func (v *AuthValidationService) GetCurrentUser(ctx context.Context, sessionToken string) (models.User, error) {
	return v.inner.GetCurrentUser(ctx, sessionToken)
}

func (v *AuthValidationService) HasAccess(user models.User) bool {
	return v.inner.HasAccess(user)
}

func (v *AuthValidationService) IssueCSRFToken(ctx context.Context, sessionToken string) (string, error) {
	return v.inner.IssueCSRFToken(ctx, sessionToken)
}

func (v *AuthValidationService) ValidateCSRFToken(ctx context.Context, sessionToken, csrfToken string) error {
	return v.inner.ValidateCSRFToken(ctx, sessionToken, csrfToken)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

// AdminValidationService validates back-office input.
type AdminValidationService struct {
	inner     AdminService
	validator validators.Validator
	accounts  validators.Validator
}

func NewAdminValidationService() AdminServiceWrapper {
	return &AdminValidationService{
		validator: validators.NewAccessCodeValidator(),
		accounts:  validators.NewAccountValidator(validators.AccountPolicy{}),
	}
}

func (v *AdminValidationService) CreateAccessCode(ctx context.Context, code models.AccessCode) (models.AccessCode, error) {
	if err := v.validator.Validate(ctx, code); err != nil {
		return models.AccessCode{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.CreateAccessCode(ctx, code)
}

func (v *AdminValidationService) ListAccessCodes(ctx context.Context) ([]models.AccessCode, error) {
	return v.inner.ListAccessCodes(ctx)
}

func (v *AdminValidationService) DeactivateAccessCode(ctx context.Context, code string) error {
	if err := v.validator.Validate(ctx, models.AccessCode{Code: code}, validators.FieldCode); err != nil {
		return ErrAccessCodeNotFound
	}
	return v.inner.DeactivateAccessCode(ctx, code)
}

func (v *AdminValidationService) SetSubscriptionExpiry(ctx context.Context, userID int64, expiry *time.Time) (models.User, error) {
	if userID <= 0 {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidUserID)
	}
	return v.inner.SetSubscriptionExpiry(ctx, userID, expiry)
}

func (v *AdminValidationService) SetAdmin(ctx context.Context, email string, isAdmin bool) error {
	if err := v.accounts.Validate(ctx, models.ForgotPasswordRequest{Email: email}); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.SetAdmin(ctx, email, isAdmin)
}

func (v *AdminValidationService) Wrap(wrapped AdminService) AdminService {
	v.inner = wrapped
	return v
}
