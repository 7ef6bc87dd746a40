package kafka

type ModerationEvent struct {
	EventID     string `json:"event_id"`
	ActionID    string `json:"action_id,omitempty"`
	ActionType  string `json:"action_type"`
	ModeratorID string `json:"moderator_id"`
	UserID      string `json:"user_id"`
	Reason      string `json:"reason"`
	Kind        string `json:"kind"` // warning_issued, action_created, escalation
	FinishAt    string `json:"finish_at,omitempty"`
}
