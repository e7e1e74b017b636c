package domain

import "time"

// Audit action verbs recorded against administrative mutations.
const (
	ActionCreateUser = "CREATE_USER"
	ActionDeleteUser = "DELETE_USER"
)

// SystemActor is recorded when no actor identity accompanies a request.
const SystemActor = "SYSTEM"

// AuditEntry is an immutable record of an administrative action. Entries are
// append-only; the backing store is a capped collection that evicts the
// oldest records once its size or count limit is reached.
type AuditEntry struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id,omitempty"`
	Details    string    `json:"details,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
