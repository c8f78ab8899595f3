package messagebrokerdto

// GuideAssigned is published to the trip topic exchange after an assignment
// transition commits. The notification row is already persisted at that
// point; consumers only fan the event out to connected clients.
type GuideAssigned struct {
	RequestID      string `json:"request_id"`
	GuideID        string `json:"guide_id"`
	GuideUserID    string `json:"guide_user_id"`
	NotificationID string `json:"notification_id"`
	TouristName    string `json:"tourist_name"`
	TourType       string `json:"tour_type"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	AssignedAt     string `json:"assigned_at"`
	CorrelationID  string `json:"correlation_id"`
}
