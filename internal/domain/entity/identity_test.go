package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdentity(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain mobile", "9876543210", "9876543210"},
		{"mobile with spaces and dashes", " 98765-43210 ", "9876543210"},
		{"mobile with country code symbols", "+91 98765 43210", "919876543210"},
		{"letters stripped from mobile", "98a76b54321c0", "9876543210"},
		{"email lowercased", "Ravi.Kumar@Example.COM", "ravi.kumar@example.com"},
		{"email keeps digits and symbols", " User+tag@Mail.org ", "user+tag@mail.org"},
		{"empty", "   ", ""},
		{"symbols only", "+-()", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeIdentity(tt.raw))
		})
	}
}

func TestUserIdentityPrefersMobile(t *testing.T) {
	u := User{Mobile: "98765 43210", Email: "someone@example.com"}
	assert.Equal(t, "9876543210", u.Identity())

	emailOnly := User{Email: "Someone@Example.com"}
	assert.Equal(t, "someone@example.com", emailOnly.Identity())
}

func TestUserRoles(t *testing.T) {
	customer := User{Mobile: "9000000000"}
	assert.Equal(t, Roles{RoleCustomer}, customer.Roles())

	staff := User{Mobile: "9000000001", IsDeliveryBoy: true}
	assert.True(t, staff.Roles().Contains(RoleDelivery))
	assert.True(t, staff.Roles().Contains(RoleCustomer))

	boss := User{Mobile: "9999999999", IsAdmin: true, IsDeliveryBoy: true}
	assert.True(t, boss.Roles().Contains(RoleAdmin))
	assert.True(t, boss.Roles().Contains(RoleDelivery))
}
