package domain

import "time"

// Audit actions recorded for successful mutations.
const (
	AuditUserRegistered = "user.registered"
	AuditItemCreated    = "item.created"
	AuditItemUpdated    = "item.updated"
	AuditItemDeleted    = "item.deleted"
)

// AuditEvent is one entry in the mutation audit trail.
type AuditEvent struct {
	Actor     string    `bson:"actor"`
	Action    string    `bson:"action"`
	ItemID    int       `bson:"item_id,omitempty"`
	Timestamp time.Time `bson:"timestamp"`
}
