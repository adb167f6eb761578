package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-leave-desk/internal/config"
	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/MKhiriev/go-leave-desk/internal/metrics"
	"github.com/MKhiriev/go-leave-desk/internal/notify"
	"github.com/MKhiriev/go-leave-desk/internal/ratelimit"
	"github.com/MKhiriev/go-leave-desk/internal/store"
	"github.com/MKhiriev/go-leave-desk/internal/utils"
	"github.com/MKhiriev/go-leave-desk/models"
)

// dummyPassword is hashed once at construction; logins for unknown emails are
// compared against it so that they cost one bcrypt comparison as well.
const dummyPassword = "leave-desk-timing-equalizer"

// authService is the concrete implementation of AuthService.
//
// Persistence goes through the store repositories, failed logins through a
// ratelimit.Limiter and outgoing mail through a notify.Gateway. Every token
// handed to a client is random hex; only its HMAC-SHA256 under tokenHashKey
// is stored.
type authService struct {
	users    store.UserRepository
	pending  store.PendingVerificationRepository
	sessions store.SessionRepository
	resets   store.PasswordResetRepository

	limiter  ratelimit.Limiter
	notifier notify.Gateway

	policy config.Auth

	// tokenHashKey keys the hashes of verification, session and reset tokens.
	tokenHashKey string

	csrfSignKey  string
	csrfIssuer   string
	csrfDuration time.Duration

	// baseURL is the public origin used in email links.
	baseURL string

	dummyHash string

	// now is the service clock. Always UTC.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the repositories in
// storages, the limiter and the notification gateway.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	storages *store.Storages,
	limiter ratelimit.Limiter,
	notifier notify.Gateway,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) AuthService {
	dummyHash, err := utils.HashPassword(dummyPassword, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Err(err).Str("func", "NewAuthService").Msg("failed to prepare dummy password hash")
	}

	return &authService{
		users:        storages.UserRepository,
		pending:      storages.PendingVerificationRepository,
		sessions:     storages.SessionRepository,
		resets:       storages.PasswordResetRepository,
		limiter:      limiter,
		notifier:     notifier,
		policy:       cfg.Auth,
		tokenHashKey: cfg.App.TokenHashKey,
		csrfSignKey:  cfg.App.CSRFSignKey,
		csrfIssuer:   cfg.App.CSRFIssuer,
		csrfDuration: cfg.App.CSRFTokenDuration,
		baseURL:      strings.TrimRight(cfg.App.BaseURL, "/"),
		dummyHash:    dummyHash,
		now:          func() time.Time { return time.Now().UTC() },
		logger:       logger,
	}
}

// Register stores a pending verification and emails the verification link.
// No user row is created here.
//
// Returns:
//   - ErrDuplicateEmail if a verified account holds the email.
//   - ErrPendingVerificationExists if an unexpired registration holds it.
//   - ErrInvalidAccessCode if a code was given and the ledger refused it.
//   - ErrStoreFailure wrapping any other storage error.
//
// The email is sent once; a send failure is logged and does not fail the
// registration.
func (s *authService) Register(ctx context.Context, req models.RegistrationRequest) (models.Registration, error) {
	log := logger.FromContext(ctx)
	now := s.now()
	email := normalizeEmail(req.Email)

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return models.Registration{}, s.storeFailure(ctx, "authService.Register", "register", err)
	}
	if exists {
		metrics.RecordAuthOperation("register", metrics.OutcomeFailure)
		return models.Registration{}, ErrDuplicateEmail
	}

	live, err := s.pending.HasLivePendingVerification(ctx, email, now)
	if err != nil {
		return models.Registration{}, s.storeFailure(ctx, "authService.Register", "register", err)
	}
	if live {
		metrics.RecordAuthOperation("register", metrics.OutcomeFailure)
		return models.Registration{}, ErrPendingVerificationExists
	}

	passwordHash, err := utils.HashPassword(req.Password, s.policy.BcryptCost)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("failed to hash password")
		return models.Registration{}, fmt.Errorf("register: %w", err)
	}

	token, err := utils.GenerateToken(utils.VerificationTokenBytes)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("failed to generate verification token")
		return models.Registration{}, fmt.Errorf("register: %w", err)
	}

	pending := models.PendingVerification{
		Email:        email,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PasswordHash: passwordHash,
		TokenHash:    utils.HashString(token, s.tokenHashKey),
		TrialExpiry:  now.Add(s.policy.TrialDuration),
		AccessLevel:  models.AccessLevelTrial,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.policy.PendingVerificationTTL),
	}

	accessCode := strings.TrimSpace(req.AccessCode)
	stored, redeemed, err := s.pending.CreatePendingVerification(ctx, pending, accessCode, now)
	if accessCode != "" {
		recordRedemption(err)
	}
	switch {
	case errors.Is(err, store.ErrAccessCodeNotRedeemable):
		metrics.RecordAuthOperation("register", metrics.OutcomeFailure)
		return models.Registration{}, ErrInvalidAccessCode
	case errors.Is(err, store.ErrPendingVerificationExists):
		metrics.RecordAuthOperation("register", metrics.OutcomeFailure)
		return models.Registration{}, ErrPendingVerificationExists
	case err != nil:
		return models.Registration{}, s.storeFailure(ctx, "authService.Register", "register", err)
	}

	registration := models.Registration{
		Email:             stored.Email,
		VerificationToken: token,
		TrialExpiry:       stored.TrialExpiry,
		AccessLevel:       stored.AccessLevel,
	}
	if stored.AccessCode != nil {
		registration.AccessCodeSummary = redeemed.Summary()
	}

	verification := notify.VerificationEmail{
		To:                stored.Email,
		FirstName:         stored.FirstName,
		Link:              s.link("/verify", token),
		AccessCodeSummary: registration.AccessCodeSummary,
		TrialExpiry:       stored.TrialExpiry,
	}
	if stored.AccessCode != nil {
		verification.AccessCode = *stored.AccessCode
	}
	if err := s.notifier.SendVerification(ctx, verification); err != nil {
		log.Warn().Err(err).Str("func", "authService.Register").Str("email", stored.Email).Msg("verification email was not sent")
	}

	metrics.RecordAuthOperation("register", metrics.OutcomeSuccess)
	log.Info().Str("func", "authService.Register").Str("email", stored.Email).Str("access_level", string(stored.AccessLevel)).Msg("registration pending verification")
	return registration, nil
}

// VerifyEmail turns the pending registration for token into a verified user.
//
// Returns ErrInvalidOrExpiredToken for unknown, expired or already used
// tokens and ErrDuplicateEmail if the email was taken in the meantime.
func (s *authService) VerifyEmail(ctx context.Context, token string) (string, error) {
	user, err := s.pending.ConsumePendingVerification(ctx, utils.HashString(token, s.tokenHashKey), s.now())
	switch {
	case errors.Is(err, store.ErrPendingVerificationNotFound):
		metrics.RecordAuthOperation("verify_email", metrics.OutcomeFailure)
		return "", ErrInvalidOrExpiredToken
	case errors.Is(err, store.ErrEmailAlreadyExists):
		metrics.RecordAuthOperation("verify_email", metrics.OutcomeFailure)
		return "", ErrDuplicateEmail
	case err != nil:
		return "", s.storeFailure(ctx, "authService.VerifyEmail", "verify_email", err)
	}

	metrics.RecordAuthOperation("verify_email", metrics.OutcomeSuccess)
	return user.Email, nil
}

// Login checks the credentials and opens a session.
//
// The rate limiter is consulted before anything else and keyed by the
// normalized email. Unknown emails and wrong passwords are both reported as
// ErrInvalidCredentials and both count as a failure. A correct password on
// an unverified account yields ErrEmailNotVerified.
func (s *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	log := logger.FromContext(ctx)
	now := s.now()
	email := normalizeEmail(req.Email)

	limited, err := s.limiter.IsLimited(ctx, email)
	if err != nil {
		log.Warn().Err(err).Str("func", "authService.Login").Msg("rate limiter unavailable, allowing attempt")
	}
	if limited {
		metrics.RecordAuthOperation("login", metrics.OutcomeLimited)
		return models.LoginResult{}, ErrRateLimited
	}

	user, err := s.users.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		_, _ = utils.CheckPassword(s.dummyHash, req.Password)
		s.recordFailure(ctx, email)
		return models.LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.LoginResult{}, s.storeFailure(ctx, "authService.Login", "login", err)
	}

	ok, err := utils.CheckPassword(user.PasswordHash, req.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Int64("user_id", user.UserID).Msg("stored password hash is unusable")
	}
	if !ok {
		s.recordFailure(ctx, email)
		return models.LoginResult{}, ErrInvalidCredentials
	}

	if !user.EmailVerified {
		metrics.RecordAuthOperation("login", metrics.OutcomeFailure)
		return models.LoginResult{}, ErrEmailNotVerified
	}

	token, err := utils.GenerateToken(utils.SessionTokenBytes)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("failed to generate session token")
		return models.LoginResult{}, fmt.Errorf("login: %w", err)
	}

	ttl := s.policy.SessionTTL
	if req.RememberMe {
		ttl = s.policy.RememberMeSessionTTL
	}

	session, err := s.sessions.CreateSession(ctx, models.Session{
		TokenHash: utils.HashString(token, s.tokenHashKey),
		UserID:    user.UserID,
		ExpiresAt: now.Add(ttl),
		IPAddress: req.IPAddress,
		UserAgent: req.UserAgent,
		CreatedAt: now,
	})
	if err != nil {
		return models.LoginResult{}, s.storeFailure(ctx, "authService.Login", "login", err)
	}

	if err := s.users.UpdateLastLogin(ctx, user.UserID, now); err != nil {
		log.Warn().Err(err).Str("func", "authService.Login").Int64("user_id", user.UserID).Msg("failed to update last login")
	} else {
		user.LastLoginAt = &now
	}

	if err := s.limiter.Clear(ctx, email); err != nil {
		log.Warn().Err(err).Str("func", "authService.Login").Msg("failed to clear failed login counter")
	}

	metrics.RecordAuthOperation("login", metrics.OutcomeSuccess)
	log.Info().Str("func", "authService.Login").Int64("user_id", user.UserID).Bool("remember_me", req.RememberMe).Msg("user logged in")

	return models.LoginResult{
		User:         user,
		SessionToken: token,
		ExpiresAt:    session.ExpiresAt,
	}, nil
}

// Logout deletes the session of sessionToken. An empty or unknown token is
// not an error.
func (s *authService) Logout(ctx context.Context, sessionToken string) error {
	if sessionToken == "" {
		return nil
	}
	if err := s.sessions.DeleteSession(ctx, utils.HashString(sessionToken, s.tokenHashKey)); err != nil {
		return s.storeFailure(ctx, "authService.Logout", "logout", err)
	}
	metrics.RecordAuthOperation("logout", metrics.OutcomeSuccess)
	return nil
}

// RequestPasswordReset emails a reset link to a verified account unless an
// unused request younger than the cooldown already exists. Every failure is
// logged and swallowed.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)
	now := s.now()
	email = normalizeEmail(email)

	user, err := s.users.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("func", "authService.RequestPasswordReset").Msg("reset requested for unknown email")
		return nil
	}
	if err != nil {
		log.Err(err).Str("func", "authService.RequestPasswordReset").Msg("failed to look up user")
		return nil
	}
	if !user.EmailVerified {
		return nil
	}

	existing, err := s.resets.FindPasswordResetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.UsedAt == nil && existing.CreatedAt.After(now.Add(-s.policy.PasswordResetCooldown)) {
			log.Info().Str("func", "authService.RequestPasswordReset").Int64("user_id", user.UserID).Msg("reset request suppressed by cooldown")
			return nil
		}
	case !errors.Is(err, store.ErrPasswordResetNotFound):
		log.Err(err).Str("func", "authService.RequestPasswordReset").Msg("failed to look up previous reset request")
		return nil
	}

	token, err := utils.GenerateToken(utils.ResetTokenBytes)
	if err != nil {
		log.Err(err).Str("func", "authService.RequestPasswordReset").Msg("failed to generate reset token")
		return nil
	}

	reset := models.PasswordReset{
		Email:     email,
		TokenHash: utils.HashString(token, s.tokenHashKey),
		ExpiresAt: now.Add(s.policy.PasswordResetTTL),
		CreatedAt: now,
	}
	if err := s.resets.UpsertPasswordReset(ctx, reset); err != nil {
		log.Err(err).Str("func", "authService.RequestPasswordReset").Msg("failed to store reset request")
		return nil
	}

	err = s.notifier.SendPasswordReset(ctx, notify.PasswordResetEmail{
		To:        email,
		FirstName: user.FirstName,
		Link:      s.link("/reset-password", token),
		ExpiresAt: reset.ExpiresAt,
	})
	if err != nil {
		log.Warn().Err(err).Str("func", "authService.RequestPasswordReset").Int64("user_id", user.UserID).Msg("reset email was not sent")
	}

	metrics.RecordAuthOperation("request_password_reset", metrics.OutcomeSuccess)
	return nil
}

// ResetPassword stores a new password for the owner of req.Token and revokes
// all of their sessions. Unknown, expired or used tokens yield
// ErrInvalidOrExpiredToken.
func (s *authService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)

	passwordHash, err := utils.HashPassword(req.NewPassword, s.policy.BcryptCost)
	if err != nil {
		log.Err(err).Str("func", "authService.ResetPassword").Msg("failed to hash password")
		return fmt.Errorf("reset password: %w", err)
	}

	userID, err := s.resets.ConsumePasswordReset(ctx, utils.HashString(req.Token, s.tokenHashKey), passwordHash, s.now())
	switch {
	case errors.Is(err, store.ErrPasswordResetNotFound), errors.Is(err, store.ErrNoUserWasFound):
		metrics.RecordAuthOperation("reset_password", metrics.OutcomeFailure)
		return ErrInvalidOrExpiredToken
	case err != nil:
		return s.storeFailure(ctx, "authService.ResetPassword", "reset_password", err)
	}

	metrics.RecordAuthOperation("reset_password", metrics.OutcomeSuccess)
	log.Info().Str("func", "authService.ResetPassword").Int64("user_id", userID).Msg("password changed")
	return nil
}

// GetCurrentUser resolves a session token to its user. Missing, unknown and
// expired sessions are all ErrUnauthorized.
func (s *authService) GetCurrentUser(ctx context.Context, sessionToken string) (models.User, error) {
	if sessionToken == "" {
		return models.User{}, ErrUnauthorized
	}

	session, err := s.sessions.FindSessionByTokenHash(ctx, utils.HashString(sessionToken, s.tokenHashKey), s.now())
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.User{}, ErrUnauthorized
	}
	if err != nil {
		return models.User{}, s.storeFailure(ctx, "authService.GetCurrentUser", "current_user", err)
	}

	user, err := s.users.FindUserByID(ctx, session.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUnauthorized
	}
	if err != nil {
		return models.User{}, s.storeFailure(ctx, "authService.GetCurrentUser", "current_user", err)
	}

	return user, nil
}

// HasAccess evaluates user against the service clock.
func (s *authService) HasAccess(user models.User) bool {
	return user.HasAccess(s.now())
}

// IssueCSRFToken signs a CSRF token bound to the session of sessionToken.
func (s *authService) IssueCSRFToken(ctx context.Context, sessionToken string) (string, error) {
	if sessionToken == "" {
		return "", ErrUnauthorized
	}
	token, err := utils.GenerateCSRFToken(s.csrfIssuer, utils.HashString(sessionToken, s.tokenHashKey), s.csrfDuration, s.csrfSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.IssueCSRFToken").Msg("failed to sign csrf token")
		return "", fmt.Errorf("issue csrf token: %w", err)
	}
	return token, nil
}

// ValidateCSRFToken returns ErrForbidden unless csrfToken was issued for the
// session of sessionToken and has not expired.
func (s *authService) ValidateCSRFToken(ctx context.Context, sessionToken, csrfToken string) error {
	if csrfToken == "" {
		return ErrForbidden
	}
	err := utils.ValidateCSRFToken(csrfToken, s.csrfSignKey, s.csrfIssuer, utils.HashString(sessionToken, s.tokenHashKey))
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ValidateCSRFToken").Msg("csrf token rejected")
		return ErrForbidden
	}
	return nil
}

// recordFailure counts a failed login. Limiter errors are logged only.
func (s *authService) recordFailure(ctx context.Context, email string) {
	metrics.RecordAuthOperation("login", metrics.OutcomeFailure)
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "authService.recordFailure").Msg("failed to record failed login")
	}
}

// storeFailure logs err and wraps it into ErrStoreFailure.
func (s *authService) storeFailure(ctx context.Context, funcName, operation string, err error) error {
	logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("storage call failed")
	metrics.RecordAuthOperation(operation, metrics.OutcomeError)
	return fmt.Errorf("%w: %w", ErrStoreFailure, err)
}

func (s *authService) link(path, token string) string {
	return s.baseURL + path + "?token=" + url.QueryEscape(token)
}

func recordRedemption(err error) {
	switch {
	case err == nil:
		metrics.RecordAccessCodeRedemption(metrics.OutcomeSuccess)
	case errors.Is(err, store.ErrAccessCodeNotRedeemable):
		metrics.RecordAccessCodeRedemption(metrics.OutcomeFailure)
	default:
		metrics.RecordAccessCodeRedemption(metrics.OutcomeError)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
