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

func TestSessionService_Login_RegistersNewUser(t *testing.T) {
	env := newTestEnv(t)
	sessions := env.sessionService(t)
	ctx := context.Background()

	env.mirror.EXPECT().PushUser(ctx, mock.Anything).Return(true)

	result, err := sessions.Login(ctx, usecase.LoginInput{
		Mobile:     "90000 00002",
		PIN:        "1234",
		ConfirmPIN: "1234",
		Name:       "Ravi Kumar",
		Address:    "12 Lake View Road",
		Pincode:    "641001",
	})

	require.NoError(t, err)
	assert.True(t, result.Registered)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, usecase.ViewHome, result.View)
	assert.Equal(t, "9000000002", result.User.Mobile)

	stored, ok := env.users.Get("9000000002")
	require.True(t, ok)
	assert.Equal(t, "1234", stored.PIN)
	assert.True(t, stored.IsLoggedIn)

	current, active := sessions.Current()
	require.True(t, active)
	assert.Equal(t, "9000000002", current.Identity())
}

func TestSessionService_Login_RegistrationValidation(t *testing.T) {
	env := newTestEnv(t)
	sessions := env.sessionService(t)
	ctx := context.Background()

	_, err := sessions.Login(ctx, usecase.LoginInput{PIN: "1234", ConfirmPIN: "1234"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidIdentity)

	_, err = sessions.Login(ctx, usecase.LoginInput{Mobile: "9000000002", PIN: "1234", ConfirmPIN: "4321", Name: "Ravi", Address: "x", Pincode: "641001"})
	assert.ErrorIs(t, err, domainerrors.ErrPINMismatch)

	_, err = sessions.Login(ctx, usecase.LoginInput{Mobile: "9000000002", PIN: "1234", ConfirmPIN: "1234"})
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationIncomplete)

	assert.Empty(t, env.users.List())
}

func TestSessionService_Login_ReturningUser(t *testing.T) {
	env := newTestEnv(t)
	sessions := env.sessionService(t)
	ctx := context.Background()

	env.users.Upsert(entity.User{Mobile: "9000000002", PIN: "1234", Name: "Ravi", Address: "x", Pincode: "641001"})

	_, err := sessions.Login(ctx, usecase.LoginInput{Mobile: "9000000002", PIN: "9999"})
	assert.ErrorIs(t, err, domainerrors.ErrIncorrectPIN)

	env.mirror.EXPECT().PushUser(ctx, mock.Anything).Return(true)

	result, err := sessions.Login(ctx, usecase.LoginInput{Mobile: "9000000002", PIN: "1234"})
	require.NoError(t, err)
	assert.False(t, result.Registered)
	assert.Equal(t, "Ravi", result.User.Name)
}

func TestSessionService_Login_BootstrapAdmin(t *testing.T) {
	env := newTestEnv(t)
	sessions := env.sessionService(t)
	ctx := context.Background()

	env.mirror.EXPECT().PushUser(ctx, mock.Anything).Return(true)

	// The configured town number is an admin even on a fresh install.
	result, err := sessions.Login(ctx, usecase.LoginInput{
		Mobile:     "9999999999",
		PIN:        "0000",
		ConfirmPIN: "0000",
		Name:       "Owner",
		Address:    "Plant",
		Pincode:    "641001",
	})

	require.NoError(t, err)
	assert.True(t, result.User.IsAdmin)
	assert.Equal(t, usecase.ViewAdmin, result.View)
}

func TestSessionService_Login_StaffFirstLoginCompletesRegistration(t *testing.T) {
	env := newTestEnv(t)
	sessions := env.sessionService(t)
	ctx := context.Background()

	// Pre-registered by an admin: role set, no PIN yet.
	env.users.Upsert(entity.User{Mobile: "9000000001", Name: "Raj", IsDeliveryBoy: true})

	env.mirror.EXPECT().PushUser(ctx, mock.Anything).Return(true)

	result, err := sessions.Login(ctx, usecase.LoginInput{
		Mobile:     "9000000001",
		PIN:        "5678",
		ConfirmPIN: "5678",
		Address:    "7 Mill Street",
		Pincode:    "641002",
	})

	require.NoError(t, err)
	assert.True(t, result.Registered)
	assert.Equal(t, usecase.ViewDelivery, result.View)

	// The admin-granted role and name survive registration.
	assert.True(t, result.User.IsDeliveryBoy)
	assert.Equal(t, "Raj", result.User.Name)
}

func TestSessionService_Login_LocalOnlyWhenMirrorDown(t *testing.T) {
	env := newTestEnv(t)
	sessions := env.sessionService(t)
	ctx := context.Background()

	env.mirror.EXPECT().PushUser(ctx, mock.Anything).Return(false)

	// The failed push tells the freshly logged-in user the device is offline.
	env.push.EXPECT().SendToast(ctx, "Offline Mode", mock.Anything, mock.Anything).Return(nil).Once()

	result, err := sessions.Login(ctx, usecase.LoginInput{
		Mobile:     "9000000002",
		PIN:        "1234",
		ConfirmPIN: "1234",
		Name:       "Ravi",
		Address:    "x",
		Pincode:    "641001",
	})

	// Login never depends on the cloud.
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, []string{"9000000002"}, env.users.DirtyIDs())

	visible := env.notificationUC.VisibleTo(result.User)
	require.Len(t, visible, 1)
	assert.Equal(t, "Offline Mode", visible[0].Title)
}

func TestSessionService_Logout(t *testing.T) {
	env := newTestEnv(t)
	sessions := env.sessionService(t)
	ctx := context.Background()

	env.mirror.EXPECT().PushUser(ctx, mock.Anything).Return(true)

	_, err := sessions.Login(ctx, usecase.LoginInput{
		Mobile: "9000000002", PIN: "1234", ConfirmPIN: "1234",
		Name: "Ravi", Address: "x", Pincode: "641001",
	})
	require.NoError(t, err)

	require.NoError(t, sessions.Logout(ctx))

	_, active := sessions.Current()
	assert.False(t, active)

	stored, _ := env.users.Get("9000000002")
	assert.False(t, stored.IsLoggedIn)

	// Logging out twice is harmless.
	assert.NoError(t, sessions.Logout(ctx))
}
