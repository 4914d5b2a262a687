package lessons

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS lessons (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	thumbnail BLOB,
	video_id TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_lessons_created_at ON lessons(created_at);
`

// ErrNotFound is returned when a lesson id has no row.
var ErrNotFound = errors.New("lesson not found")

// Lesson is one stored lesson record. VideoID points into the chunk store.
type Lesson struct {
	ID          string `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Thumbnail   []byte `db:"thumbnail"`
	VideoID     string `db:"video_id"`
	CreatedAt   string `db:"created_at"`
}

// Store provides access to lesson metadata stored in SQLite.
type Store struct {
	db *sqlx.DB
}

// NewStore creates a store using an existing database connection.
func NewStore(db *sqlx.DB) (*Store, error) {
	if _, err := db.Exec(schemaSQL); err != nil {
		return nil, fmt.Errorf("failed to initialize lessons schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases resources used by the store.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get retrieves a lesson by id.
func (s *Store) Get(ctx context.Context, id string) (*Lesson, error) {
	var lesson Lesson
	err := s.db.GetContext(ctx, &lesson,
		"SELECT id, title, description, thumbnail, video_id, created_at FROM lessons WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get lesson: %w", err)
	}
	return &lesson, nil
}

// Create inserts a new lesson row.
func (s *Store) Create(ctx context.Context, lesson *Lesson) error {
	if lesson.CreatedAt == "" {
		lesson.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO lessons (id, title, description, thumbnail, video_id, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		lesson.ID, lesson.Title, lesson.Description, lesson.Thumbnail, lesson.VideoID, lesson.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lesson: %w", err)
	}
	return nil
}

// List returns all lessons, newest first.
func (s *Store) List(ctx context.Context) ([]*Lesson, error) {
	var lessons []*Lesson
	err := s.db.SelectContext(ctx, &lessons,
		"SELECT id, title, description, thumbnail, video_id, created_at FROM lessons ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	return lessons, nil
}

// Remove deletes a lesson row.
func (s *Store) Remove(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM lessons WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete lesson: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
