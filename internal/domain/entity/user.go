// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the core account entity. A person holds a set of independent role
// capabilities rather than a single exclusive role: a user may be a customer,
// delivery staff, an admin, or any combination at once. Users are never hard
// deleted; revoking staff access is a flag flip.
//
// The JSON field names mirror the remote users table columns so a user document
// round-trips between the local store and the mirror unchanged.
type User struct {
	Mobile  string `json:"mobile,omitempty"`
	Email   string `json:"email,omitempty"`
	PIN     string `json:"pin,omitempty"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Pincode string `json:"pincode"`
	Avatar  string `json:"avatar,omitempty"`

	// IsLoggedIn marks the account as the authenticated session on this
	// device. It is local bookkeeping and is stripped before mirroring.
	IsLoggedIn bool `json:"isLoggedIn,omitempty"`

	IsAdmin       bool `json:"isAdmin,omitempty"`
	IsDeliveryBoy bool `json:"isDeliveryBoy,omitempty"`
}

// Identity returns the normalized identifier for this user, preferring the
// mobile number over the email when both are present.
func (u User) Identity() string {
	if u.Mobile != "" {
		return NormalizeIdentity(u.Mobile)
	}

	return NormalizeIdentity(u.Email)
}

// DocumentID keys the user in the users collection.
func (u User) DocumentID() string {
	return u.Identity()
}

// Roles returns the capability set as role strings for token claims.
func (u User) Roles() Roles {
	roles := Roles{RoleCustomer}
	if u.IsDeliveryBoy {
		roles = append(roles, RoleDelivery)
	}
	if u.IsAdmin {
		roles = append(roles, RoleAdmin)
	}

	return roles
}
