package impl

import (
	"context"
	"log/slog"
	"strings"

	"pureflow/config"
	"pureflow/internal/domain/entity"
	domainerrors "pureflow/internal/domain/errors"
	"pureflow/internal/domain/repository"
	"pureflow/internal/domain/service"
	"pureflow/internal/session"
	"pureflow/internal/usecase"
)

// pinLength is the fixed length of the login PIN.
const pinLength = 4

type sessionService struct {
	users  repository.UserCollection
	sync   usecase.SyncUsecase
	sess   *session.Session
	tokens service.TokenService
	cfg    *config.Config
	logger *slog.Logger
}

// NewSessionService creates a new session service instance
func NewSessionService(
	users repository.UserCollection,
	syncUC usecase.SyncUsecase,
	sess *session.Session,
	tokens service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		users:  users,
		sync:   syncUC,
		sess:   sess,
		tokens: tokens,
		cfg:    cfg,
		logger: logger,
	}
}

// Login authenticates a returning user or registers a new one. A profile
// created by an admin (staff pre-registration) has no PIN yet; its first
// login completes registration the same way a brand new account does.
func (s *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginResult, error) {
	identity := entity.NormalizeIdentity(input.Mobile)
	mobile, email := identity, ""
	if identity == "" {
		identity = entity.NormalizeIdentity(input.Email)
		mobile, email = "", identity
	}
	if identity == "" {
		return nil, domainerrors.ErrInvalidIdentity
	}

	existing, exists := s.users.Get(identity)
	needsSetup := !exists || existing.PIN == ""

	user := existing
	if needsSetup {
		if err := validateRegistration(existing, input); err != nil {
			return nil, err
		}

		user = entity.User{
			Mobile:        mobile,
			Email:         email,
			PIN:           input.PIN,
			Name:          firstNonEmpty(strings.TrimSpace(input.Name), existing.Name),
			Address:       firstNonEmpty(strings.TrimSpace(input.Address), existing.Address),
			Pincode:       firstNonEmpty(strings.TrimSpace(input.Pincode), existing.Pincode),
			Avatar:        firstNonEmpty(input.Avatar, existing.Avatar),
			IsAdmin:       existing.IsAdmin,
			IsDeliveryBoy: existing.IsDeliveryBoy,
		}
	} else if existing.PIN != input.PIN {
		return nil, domainerrors.ErrIncorrectPIN
	}

	// The configured town admin number is always an admin, even on a fresh
	// install with an empty users collection.
	if identity == entity.NormalizeIdentity(s.cfg.Town.AdminMobile) {
		user.IsAdmin = true
	}

	user.IsLoggedIn = true
	s.users.Upsert(user)
	s.sess.Login(user)
	s.sync.PushUser(ctx, user)

	token, err := s.tokens.GenerateToken(identity, user.Roles().ToStrings())
	if err != nil {
		s.logger.Error("token generation failed", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError
	}

	return &usecase.LoginResult{
		User:       user,
		Token:      token,
		View:       s.RouteFor(user),
		Registered: needsSetup,
	}, nil
}

// Logout ends the device session and clears the local logged-in flag.
func (s *sessionService) Logout(ctx context.Context) error {
	user, ok := s.sess.Current()
	if !ok {
		return nil
	}

	s.users.Update(user.DocumentID(), func(doc *entity.User) {
		doc.IsLoggedIn = false
	})
	s.sess.Logout()

	return nil
}

// Current returns the active session user, if any.
func (s *sessionService) Current() (entity.User, bool) {
	return s.sess.Current()
}

// UserByIdentity resolves a stored user profile by its normalized identity.
func (s *sessionService) UserByIdentity(identity string) (entity.User, bool) {
	return s.users.Get(entity.NormalizeIdentity(identity))
}

// RouteFor picks the dashboard for a user's capability set. Admin wins over
// delivery when a user holds both.
func (s *sessionService) RouteFor(user entity.User) string {
	switch {
	case user.IsAdmin:
		return usecase.ViewAdmin
	case user.IsDeliveryBoy:
		return usecase.ViewDelivery
	default:
		return usecase.ViewHome
	}
}

func validateRegistration(existing entity.User, input usecase.LoginInput) error {
	if len(input.PIN) != pinLength {
		return domainerrors.ErrValidationFailed.WithDetails("pin must be exactly 4 digits")
	}
	if input.PIN != input.ConfirmPIN {
		return domainerrors.ErrPINMismatch
	}

	name := firstNonEmpty(strings.TrimSpace(input.Name), existing.Name)
	address := firstNonEmpty(strings.TrimSpace(input.Address), existing.Address)
	pincode := firstNonEmpty(strings.TrimSpace(input.Pincode), existing.Pincode)
	if name == "" || address == "" || pincode == "" {
		return domainerrors.ErrRegistrationIncomplete
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
