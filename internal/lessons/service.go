package lessons

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/tradelearn/lessonstream/internal/chunkstore"
)

// LessonService owns lesson metadata and the chunked video blobs behind it.
type LessonService struct {
	store  *Store
	videos *chunkstore.Store
}

func NewLessonService(store *Store, videos *chunkstore.Store) *LessonService {
	return &LessonService{
		store:  store,
		videos: videos,
	}
}

// Create ingests a new lesson: the video is chunked into the blob store
// first, then the metadata row is written, so a lesson row always points at
// a complete video.
func (s *LessonService) Create(ctx context.Context, title, description, contentType string, thumbnail []byte, video io.Reader) (*Lesson, error) {
	videoID := uuid.NewString()

	started := time.Now()
	manifest, err := s.videos.Upload(ctx, videoID, contentType, video)
	if err != nil {
		return nil, fmt.Errorf("upload video: %w", err)
	}

	lesson := &Lesson{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Thumbnail:   thumbnail,
		VideoID:     videoID,
	}
	if err := s.store.Create(ctx, lesson); err != nil {
		// Best effort cleanup of the orphaned blob.
		if derr := s.videos.Delete(ctx, videoID); derr != nil {
			slog.Error("orphaned video cleanup failed", "video", videoID, "error", derr)
		}
		return nil, err
	}

	slog.Info("lesson created",
		"lesson", lesson.ID,
		"video", videoID,
		"size", humanize.Bytes(uint64(manifest.TotalSize)),
		"chunks", len(manifest.Chunks),
		"took", time.Since(started))
	return lesson, nil
}

// Get returns a lesson row by id.
func (s *LessonService) Get(ctx context.Context, id string) (*Lesson, error) {
	return s.store.Get(ctx, id)
}

// List returns all lesson rows.
func (s *LessonService) List(ctx context.Context) ([]*Lesson, error) {
	return s.store.List(ctx)
}

// VideoSize returns the total byte size of a lesson's video from the chunk
// manifest. Fails with ErrNotFound when either the lesson or its blob is gone.
func (s *LessonService) VideoSize(ctx context.Context, lesson *Lesson) (int64, error) {
	manifest, err := s.videos.Stat(ctx, lesson.VideoID)
	if err != nil {
		return 0, err
	}
	return manifest.TotalSize, nil
}

// OpenVideoRange opens a byte-range reader over a lesson's video.
func (s *LessonService) OpenVideoRange(ctx context.Context, lesson *Lesson, start, end int64) (*chunkstore.RangeReader, error) {
	return s.videos.OpenRange(ctx, lesson.VideoID, start, end)
}

// Remove deletes a lesson and its video. The row goes first so the catalog
// stops serving the lesson even if the blob delete fails partway.
func (s *LessonService) Remove(ctx context.Context, id string) error {
	lesson, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Remove(ctx, id); err != nil {
		return err
	}
	if err := s.videos.Delete(ctx, lesson.VideoID); err != nil && !errors.Is(err, chunkstore.ErrNotFound) {
		return fmt.Errorf("delete video: %w", err)
	}
	slog.Info("lesson removed", "lesson", id, "video", lesson.VideoID)
	return nil
}
