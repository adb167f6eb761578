package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-leave-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AuthServiceWrapper,AdminServiceWrapper

// AuthService is the account lifecycle: registration, verification, login
// sessions, password reset and access evaluation.
type AuthService interface {
	Register(ctx context.Context, req models.RegistrationRequest) (models.Registration, error)
	// VerifyEmail consumes a verification token and returns the email of the
	// created account.
	VerifyEmail(ctx context.Context, token string) (string, error)
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
	Logout(ctx context.Context, sessionToken string) error

	// RequestPasswordReset never reveals whether the account exists; only
	// validation errors are returned.
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error

	GetCurrentUser(ctx context.Context, sessionToken string) (models.User, error)
	HasAccess(user models.User) bool

	IssueCSRFToken(ctx context.Context, sessionToken string) (string, error)
	ValidateCSRFToken(ctx context.Context, sessionToken, csrfToken string) error
}

// AdminService is the back-office surface: access codes and subscriptions.
type AdminService interface {
	CreateAccessCode(ctx context.Context, code models.AccessCode) (models.AccessCode, error)
	ListAccessCodes(ctx context.Context) ([]models.AccessCode, error)
	DeactivateAccessCode(ctx context.Context, code string) error
	SetSubscriptionExpiry(ctx context.Context, userID int64, expiry *time.Time) (models.User, error)
	SetAdmin(ctx context.Context, email string, isAdmin bool) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper decorates an AuthService, e.g. with validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// AdminServiceWrapper decorates an AdminService.
type AdminServiceWrapper interface {
	Wrap(AdminService) AdminService
}
