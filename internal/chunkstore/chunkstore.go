package chunkstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// DefaultChunkSize matches the GridFS default chunk size.
const DefaultChunkSize = 255 * 1024

var (
	// ErrNotFound is returned when a video id has no stored manifest.
	ErrNotFound = errors.New("chunkstore: video not found")

	// ErrInvalidRange is returned when a requested range lies outside the blob.
	ErrInvalidRange = errors.New("chunkstore: invalid range")
)

// Manifest describes one stored video blob.
type Manifest struct {
	TotalSize   int64       `json:"total_size"`
	ChunkSize   int64       `json:"chunk_size"`
	ContentType string      `json:"content_type,omitempty"`
	Chunks      []ChunkInfo `json:"chunks"`
	UploadedAt  time.Time   `json:"uploaded_at"`
}

// ChunkInfo describes a single chunk object. The byte offset of a chunk is
// implicit from the sizes of the chunks before it.
type ChunkInfo struct {
	Object string `json:"object"`
	Size   int64  `json:"size"`
}

// Store reads and writes chunked video blobs in a bucket.
type Store struct {
	bucket    *blob.Bucket
	chunkSize int64
	ownBucket bool
}

// Option configures a Store.
type Option func(*Store)

// WithChunkSize overrides DefaultChunkSize for new uploads.
func WithChunkSize(size int64) Option {
	return func(s *Store) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// New creates a Store on an existing bucket handle. The caller keeps
// ownership of the bucket.
func New(bucket *blob.Bucket, opts ...Option) *Store {
	s := &Store{
		bucket:    bucket,
		chunkSize: DefaultChunkSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close releases the bucket if the store opened it itself.
func (s *Store) Close() error {
	if !s.ownBucket {
		return nil
	}
	return s.bucket.Close()
}

func manifestKey(videoID string) string {
	return "videos/" + videoID + "/manifest.json"
}

func chunkKey(videoID string, index int) string {
	return fmt.Sprintf("videos/%s/chunks/%08d", videoID, index)
}

// Upload splits the reader into chunks and writes them followed by the
// manifest. The manifest is written last so a partially uploaded video is
// never visible to readers.
func (s *Store) Upload(ctx context.Context, videoID, contentType string, r io.Reader) (*Manifest, error) {
	manifest := &Manifest{
		ChunkSize:   s.chunkSize,
		ContentType: contentType,
	}

	buf := make([]byte, s.chunkSize)
	for index := 0; ; index++ {
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			key := chunkKey(videoID, index)
			if werr := s.bucket.WriteAll(ctx, key, buf[:n], nil); werr != nil {
				return nil, fmt.Errorf("chunkstore: write chunk %d: %w", index, werr)
			}
			manifest.Chunks = append(manifest.Chunks, ChunkInfo{Object: key, Size: int64(n)})
			manifest.TotalSize += int64(n)
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("chunkstore: read source: %w", err)
		}
	}

	manifest.UploadedAt = time.Now().UTC()
	data, err := json.Marshal(manifest)
	if err != nil {
		return nil, fmt.Errorf("chunkstore: marshal manifest: %w", err)
	}
	if err := s.bucket.WriteAll(ctx, manifestKey(videoID), data, &blob.WriterOptions{
		ContentType: "application/json",
	}); err != nil {
		return nil, fmt.Errorf("chunkstore: write manifest: %w", err)
	}

	return manifest, nil
}

// Stat loads the manifest for a video id.
func (s *Store) Stat(ctx context.Context, videoID string) (*Manifest, error) {
	data, err := s.bucket.ReadAll(ctx, manifestKey(videoID))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("chunkstore: read manifest: %w", err)
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("chunkstore: unmarshal manifest: %w", err)
	}
	return &manifest, nil
}

// Delete removes the manifest and all chunks for a video id. The manifest
// goes first so concurrent readers cannot open a half-deleted blob.
func (s *Store) Delete(ctx context.Context, videoID string) error {
	manifest, err := s.Stat(ctx, videoID)
	if err != nil {
		return err
	}

	if err := s.bucket.Delete(ctx, manifestKey(videoID)); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return fmt.Errorf("chunkstore: delete manifest: %w", err)
	}
	for _, chunk := range manifest.Chunks {
		if err := s.bucket.Delete(ctx, chunk.Object); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
			return fmt.Errorf("chunkstore: delete chunk %s: %w", chunk.Object, err)
		}
	}
	return nil
}
