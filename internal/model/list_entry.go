package model

import "time"

// ListEntry represents a curated favorite as stored in the `list_items`
// table.  CatalogID is the external catalog provider's identifier and is
// unique across the collection; inserting the same id twice is a no-op.
// Entries are never updated in place, only added and removed.
//
// Fields:
//  ID        – primary key identifier of the row.
//  CatalogID – unique external catalog id of the movie.
//  Title     – display title at the time the entry was added.
//  Year      – optional release year.
//  PosterURL – optional poster image reference.
//  AddedAt   – server-assigned insertion timestamp.
//  AddedBy   – optional label of who added the entry.
type ListEntry struct {
    ID        uint64    `json:"id"`         // list_items.id
    CatalogID int64     `json:"catalog_id"` // list_items.catalog_id
    Title     string    `json:"title"`      // list_items.title
    Year      *int      `json:"year,omitempty"`
    PosterURL *string   `json:"poster_url,omitempty"`
    AddedAt   time.Time `json:"added_at"`
    AddedBy   *string   `json:"added_by,omitempty"`
}
