package session

import (
	"testing"

	"pureflow/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRefresh(t *testing.T) {
	s := New()

	// Nothing to refresh while logged out.
	s.Refresh(entity.User{Mobile: "9000000002", Name: "Ravi"})
	_, active := s.Current()
	assert.False(t, active)

	s.Login(entity.User{Mobile: "9000000002", Name: "Ravi"})

	// A different identity is ignored.
	s.Refresh(entity.User{Mobile: "9000000003", Name: "Meena"})
	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "Ravi", current.Name)

	s.Refresh(entity.User{Mobile: "9000000002", Name: "Ravi K", IsDeliveryBoy: true})
	current, ok = s.Current()
	require.True(t, ok)
	assert.Equal(t, "Ravi K", current.Name)
	assert.True(t, current.IsDeliveryBoy)
	assert.True(t, current.IsLoggedIn)
}

func TestSessionLogoutKeepsConnectivity(t *testing.T) {
	s := New()
	s.Login(entity.User{Mobile: "9000000002"})
	s.SetCloudSynced(true)

	s.Logout()

	_, active := s.Current()
	assert.False(t, active)
	assert.True(t, s.CloudSynced())
}
