package impl

import (
	"context"
	"testing"

	"pureflow/internal/domain/entity"
	domainerrors "pureflow/internal/domain/errors"
	"pureflow/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminService_AddStaff_NewNumber(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.mirror.EXPECT().PushUser(ctx, mock.Anything).Return(true)

	staff, err := env.adminUC.AddStaff(ctx, "90000 00001", "Raj")

	require.NoError(t, err)
	assert.Equal(t, "9000000001", staff.Mobile)
	assert.True(t, staff.IsDeliveryBoy)
	assert.Empty(t, staff.PIN)

	// The new staffer sees a welcome notification on first login.
	visible := env.notificationUC.VisibleTo(entity.User{Mobile: "9000000001"})
	require.Len(t, visible, 1)
	assert.Equal(t, "Welcome Aboard", visible[0].Title)

	listed := env.adminUC.Staff()
	require.Len(t, listed, 1)
	assert.Equal(t, "Raj", listed[0].Name)
}

func TestAdminService_AddStaff_ExistingCustomerKeepsProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.users.Upsert(entity.User{
		Mobile: "9000000002", PIN: "1234", Name: "Ravi",
		Address: "12 Lake View Road", Pincode: "641001",
	})

	env.mirror.EXPECT().PushUser(ctx, mock.Anything).Return(true)

	staff, err := env.adminUC.AddStaff(ctx, "9000000002", "")

	require.NoError(t, err)
	assert.True(t, staff.IsDeliveryBoy)
	assert.Equal(t, "Ravi", staff.Name)
	assert.Equal(t, "1234", staff.PIN)
	assert.Equal(t, "12 Lake View Road", staff.Address)
}

func TestAdminService_AddStaff_RejectsBlankNumber(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.adminUC.AddStaff(context.Background(), "   ", "Raj")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidIdentity)
	assert.Empty(t, env.users.List())
}

func TestAdminService_SetRoles(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.users.Upsert(entity.User{Mobile: "9000000001", Name: "Raj", IsDeliveryBoy: true})

	env.mirror.EXPECT().PushUser(ctx, mock.Anything).Return(true).Twice()

	user, err := env.adminUC.SetDeliveryRole(ctx, "9000000001", false)
	require.NoError(t, err)
	assert.False(t, user.IsDeliveryBoy)
	assert.Empty(t, env.adminUC.Staff())

	user, err = env.adminUC.SetAdminRole(ctx, "9000000001", true)
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)

	// Role edits never mint profiles.
	_, err = env.adminUC.SetAdminRole(ctx, "8000000000", true)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAdminService_Settings_Defaults(t *testing.T) {
	env := newTestEnv(t)

	settings := env.adminUC.Settings()

	assert.Equal(t, 10, settings.DeliveryFee)
	assert.Equal(t, "townshipro@upi", settings.UPIID)
}

func TestAdminService_UpdateSettings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.adminUC.UpdateSettings(ctx, usecase.StoreSettings{DeliveryFee: 15, UPIID: " pureflow@upi "})
	require.NoError(t, err)

	settings := env.adminUC.Settings()
	assert.Equal(t, 15, settings.DeliveryFee)
	assert.Equal(t, "pureflow@upi", settings.UPIID)
}

func TestAdminService_UpdateSettings_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.adminUC.UpdateSettings(ctx, usecase.StoreSettings{DeliveryFee: -1, UPIID: "x@upi"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	err = env.adminUC.UpdateSettings(ctx, usecase.StoreSettings{DeliveryFee: 15, UPIID: "  "})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	// Failed updates leave the configured defaults in place.
	assert.Equal(t, 10, env.adminUC.Settings().DeliveryFee)
}
