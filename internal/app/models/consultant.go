package models

type SessionMode string

const (
	SessionModeOnline  SessionMode = "online"
	SessionModeOffline SessionMode = "offline"
	SessionModeHybrid  SessionMode = "hybrid"
)

// ConsultantRef is the immutable summary of the party being booked. It is
// supplied by the consultant directory and never mutated by the workflow.
type ConsultantRef struct {
	ID   string      `json:"id" bson:"_id"`
	Name string      `json:"name" bson:"name"`
	Mode SessionMode `json:"mode" bson:"mode"`
}

// RequiresExplicitMode reports whether the user has to pick online vs
// in-person for this consultant.
func (c ConsultantRef) RequiresExplicitMode() bool {
	return c.Mode == SessionModeHybrid
}
