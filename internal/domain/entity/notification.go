// Package entity contains the core business objects of the project.
package entity

import "time"

// NotificationType classifies user-facing alerts.
type NotificationType string

const (
	NotificationOrder    NotificationType = "order"
	NotificationDelivery NotificationType = "delivery"
	NotificationSystem   NotificationType = "system"
)

// Notification is a stored alert derived from a lifecycle event. Targeting is
// mutually exclusive: an admin-audience notification (ForAdmin) carries no
// target identity, and a user-targeted one is never admin-flagged, so the
// admin-visible and customer-visible sets are disjoint.
type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp string           `json:"timestamp"`
	Type      NotificationType `json:"type"`
	CreatedAt time.Time        `json:"createdAt"`
	IsRead    bool             `json:"isRead"`
	ForAdmin  bool             `json:"forAdmin"`

	// UserMobile is the normalized identity of the targeted user, empty for
	// admin-audience notifications.
	UserMobile string `json:"userMobile,omitempty"`
}

// DocumentID keys the notification in the notifications collection.
func (n Notification) DocumentID() string {
	return n.ID
}

// VisibleTo reports whether the viewing session should see this notification:
// admins see all admin-flagged entries, everyone else only entries targeted at
// their own identity.
func (n Notification) VisibleTo(viewer User) bool {
	if n.ForAdmin {
		return viewer.IsAdmin
	}

	return n.UserMobile != "" && n.UserMobile == viewer.Identity()
}
