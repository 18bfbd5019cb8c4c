package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/iliyamo/movie-tracker/internal/model"
)

// ListRepo owns the `list_items` table.  All methods tolerate a nil
// receiver or nil DB and report ErrNoStorage, so the rest of the
// application can be wired without a database and degrade per operation.
type ListRepo struct{ DB *sql.DB }

func NewListRepo(db *sql.DB) *ListRepo { return &ListRepo{DB: db} }

const createListItems = `
CREATE TABLE IF NOT EXISTS list_items (
  id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
  catalog_id BIGINT NOT NULL,
  title VARCHAR(512) NOT NULL,
  ` + "`year`" + ` INT NULL,
  poster_url TEXT NULL,
  added_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  added_by VARCHAR(190) NULL,
  UNIQUE KEY uq_list_items_catalog_id (catalog_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// EnsureSchema creates the backing table when missing.  It is idempotent
// and cheap enough to run on every request, mirroring how the collection
// was managed before a migration step existed.
func (r *ListRepo) EnsureSchema(ctx context.Context) error {
	if r == nil || r.DB == nil {
		return ErrNoStorage
	}
	_, err := r.DB.ExecContext(ctx, createListItems)
	return err
}

// List returns all entries, most recently added first.
func (r *ListRepo) List(ctx context.Context) ([]model.ListEntry, error) {
	if r == nil || r.DB == nil {
		return nil, ErrNoStorage
	}
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, catalog_id, title, `year`, poster_url, added_at, added_by FROM list_items ORDER BY added_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ListEntry
	for rows.Next() {
		var (
			e      model.ListEntry
			year   sql.NullInt64
			poster sql.NullString
			by     sql.NullString
			added  time.Time
		)
		if err := rows.Scan(&e.ID, &e.CatalogID, &e.Title, &year, &poster, &added, &by); err != nil {
			return nil, err
		}
		e.AddedAt = added
		if year.Valid {
			y := int(year.Int64)
			e.Year = &y
		}
		if poster.Valid {
			e.PosterURL = &poster.String
		}
		if by.Valid {
			e.AddedBy = &by.String
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Add inserts an entry.  A duplicate catalog_id is a silent no-op: the
// unique key plus INSERT IGNORE gives first-writer-wins without a
// read-then-write race.
func (r *ListRepo) Add(ctx context.Context, e model.ListEntry) error {
	if r == nil || r.DB == nil {
		return ErrNoStorage
	}
	if e.CatalogID == 0 || strings.TrimSpace(e.Title) == "" {
		return ErrMissingField
	}
	var year any
	if e.Year != nil {
		year = *e.Year
	}
	var poster any
	if e.PosterURL != nil {
		poster = *e.PosterURL
	}
	var by any
	if e.AddedBy != nil {
		by = *e.AddedBy
	}
	_, err := r.DB.ExecContext(ctx,
		"INSERT IGNORE INTO list_items (catalog_id, title, `year`, poster_url, added_by) VALUES (?,?,?,?,?)",
		e.CatalogID, strings.TrimSpace(e.Title), year, poster, by)
	return err
}

// Remove deletes the entry with the given catalog id.  Removing an id that
// is not present is not an error.
func (r *ListRepo) Remove(ctx context.Context, catalogID int64) error {
	if r == nil || r.DB == nil {
		return ErrNoStorage
	}
	_, err := r.DB.ExecContext(ctx, "DELETE FROM list_items WHERE catalog_id=?", catalogID)
	return err
}
