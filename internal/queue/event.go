// Package queue defines message payloads exchanged over the message broker.
package queue

// ListChangedEvent is published whenever the favorites list changes.  It
// carries enough information for downstream consumers to log or notify
// without querying the primary database.  Title and Actor may be empty on
// removals, where only the catalog id is known.
type ListChangedEvent struct {
    Action     string `json:"action"` // "added" or "removed"
    CatalogID  int64  `json:"catalog_id"`
    Title      string `json:"title,omitempty"`
    Actor      string `json:"actor,omitempty"`
    OccurredAt string `json:"occurred_at"`
}
