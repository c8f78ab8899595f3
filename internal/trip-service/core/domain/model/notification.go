package model

import "time"

const NotificationTypeAssignment = "assignment"

// Notification is a mailbox entry for a single user. RequestId is a
// back-reference for lookups only, never an ownership edge.
type Notification struct {
	ID              string
	RecipientUserId string
	RequestId       string
	Type            string
	Title           string
	Message         string
	CreatedAt       time.Time
	Read            bool
}
