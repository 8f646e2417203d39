package impl

import (
	"context"
	"log/slog"
	"strings"

	"pureflow/config"
	"pureflow/internal/domain/entity"
	domainerrors "pureflow/internal/domain/errors"
	"pureflow/internal/domain/repository"
	"pureflow/internal/usecase"
)

type adminService struct {
	users         repository.UserCollection
	settings      repository.SettingCollection
	sync          usecase.SyncUsecase
	notifications usecase.NotificationUsecase
	cfg           *config.Config
	logger        *slog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(
	users repository.UserCollection,
	settings repository.SettingCollection,
	syncUC usecase.SyncUsecase,
	notifications usecase.NotificationUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		users:         users,
		settings:      settings,
		sync:          syncUC,
		notifications: notifications,
		cfg:           cfg,
		logger:        logger,
	}
}

// AddStaff registers a mobile number as delivery staff. Existing profiles
// keep everything else and just gain the role; unknown numbers get a stub
// profile that the person completes on first login.
func (s *adminService) AddStaff(ctx context.Context, mobile, name string) (*entity.User, error) {
	identity := entity.NormalizeIdentity(mobile)
	if identity == "" {
		return nil, domainerrors.ErrInvalidIdentity
	}

	name = strings.TrimSpace(name)

	if !s.users.Update(identity, func(doc *entity.User) {
		doc.IsDeliveryBoy = true
		if name != "" {
			doc.Name = name
		}
	}) {
		s.users.Upsert(entity.User{
			Mobile:        identity,
			Name:          name,
			IsDeliveryBoy: true,
		})
	}

	staff, _ := s.users.Get(identity)
	s.sync.PushUser(ctx, staff)

	s.notifications.Notify(ctx, "Welcome Aboard",
		"You have been registered as delivery staff.",
		entity.NotificationDelivery, false, identity)

	return &staff, nil
}

// SetDeliveryRole grants or revokes the delivery role. Revocation is a flag
// flip; the profile and its order history stay intact.
func (s *adminService) SetDeliveryRole(ctx context.Context, identity string, isDelivery bool) (*entity.User, error) {
	return s.setRole(ctx, identity, func(doc *entity.User) {
		doc.IsDeliveryBoy = isDelivery
	})
}

// SetAdminRole grants or revokes the admin role.
func (s *adminService) SetAdminRole(ctx context.Context, identity string, isAdmin bool) (*entity.User, error) {
	return s.setRole(ctx, identity, func(doc *entity.User) {
		doc.IsAdmin = isAdmin
	})
}

func (s *adminService) setRole(ctx context.Context, identity string, mutate func(*entity.User)) (*entity.User, error) {
	identity = entity.NormalizeIdentity(identity)
	if !s.users.Update(identity, mutate) {
		return nil, domainerrors.ErrUserNotFound
	}

	user, _ := s.users.Get(identity)
	s.sync.PushUser(ctx, user)

	return &user, nil
}

// Staff lists every user carrying the delivery role.
func (s *adminService) Staff() []entity.User {
	staff := make([]entity.User, 0)
	for _, user := range s.users.List() {
		if user.IsDeliveryBoy {
			staff = append(staff, user)
		}
	}

	return staff
}

// Users lists every known user profile.
func (s *adminService) Users() []entity.User {
	return s.users.List()
}

// Settings returns the current store settings with configured defaults.
func (s *adminService) Settings() usecase.StoreSettings {
	settings := usecase.StoreSettings{
		DeliveryFee: s.cfg.Town.DeliveryFee,
		UPIID:       s.cfg.Town.UPIID,
	}

	if fee, ok := s.settings.Get(entity.SettingDeliveryFee); ok {
		settings.DeliveryFee = fee.IntValue(settings.DeliveryFee)
	}
	if upi, ok := s.settings.Get(entity.SettingUPIID); ok {
		settings.UPIID = upi.StringValue(settings.UPIID)
	}

	return settings
}

// UpdateSettings persists the store settings. Existing orders keep their
// frozen totals; only future orders see a new delivery fee.
func (s *adminService) UpdateSettings(ctx context.Context, settings usecase.StoreSettings) error {
	if settings.DeliveryFee < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("deliveryFee must not be negative")
	}
	if strings.TrimSpace(settings.UPIID) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("upiId is required")
	}

	s.settings.Upsert(entity.Setting{ID: entity.SettingDeliveryFee, Value: settings.DeliveryFee})
	s.settings.Upsert(entity.Setting{ID: entity.SettingUPIID, Value: strings.TrimSpace(settings.UPIID)})

	return nil
}
