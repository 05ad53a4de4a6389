package models

// Event types published to the message broker.
const (
	EventUserSignedUp      = "user.signed_up"
	EventUserLoggedIn      = "user.logged_in"
	EventUserProfileUpdate = "user.profile_updated"
)

// Event represents an account activity record published for downstream consumers.
type Event struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Type      string `json:"type"`      // Type is one of the Event* constants.
	UserID    string `json:"user_id"`   // UserID is the subject of the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix time (seconds) the event occurred.
}
