package chunkstore

import (
	"context"
	"fmt"
	"io"

	"gocloud.dev/blob"
)

// RangeReader streams the bytes of [start, end] across chunk boundaries, in
// order. It is consumed exactly once and is not restartable.
type RangeReader struct {
	ctx    context.Context
	bucket *blob.Bucket

	chunks []chunkWindow
	index  int
	cur    io.ReadCloser

	remaining int64
	closed    bool
}

// chunkWindow is the slice of one chunk object covered by the requested range.
type chunkWindow struct {
	object string
	offset int64
	length int64
}

// OpenRange opens a reader over [start, end] of a stored video. end is
// inclusive; a negative end reads to the end of the blob.
func (s *Store) OpenRange(ctx context.Context, videoID string, start, end int64) (*RangeReader, error) {
	manifest, err := s.Stat(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if end < 0 || end >= manifest.TotalSize {
		end = manifest.TotalSize - 1
	}
	if start < 0 || start > end || start >= manifest.TotalSize {
		return nil, fmt.Errorf("%w: [%d, %d] of %d bytes", ErrInvalidRange, start, end, manifest.TotalSize)
	}

	// Project the range onto the chunks it spans.
	var windows []chunkWindow
	chunkStart := int64(0)
	for _, chunk := range manifest.Chunks {
		chunkEnd := chunkStart + chunk.Size - 1
		if chunkEnd >= start && chunkStart <= end {
			lo := max(start, chunkStart) - chunkStart
			hi := min(end, chunkEnd) - chunkStart
			windows = append(windows, chunkWindow{
				object: chunk.Object,
				offset: lo,
				length: hi - lo + 1,
			})
		}
		chunkStart = chunkEnd + 1
		if chunkStart > end {
			break
		}
	}

	return &RangeReader{
		ctx:       ctx,
		bucket:    s.bucket,
		chunks:    windows,
		remaining: end - start + 1,
	}, nil
}

// Remaining reports how many bytes are left to read.
func (r *RangeReader) Remaining() int64 {
	return r.remaining
}

func (r *RangeReader) Read(p []byte) (int, error) {
	if r.closed {
		return 0, fmt.Errorf("chunkstore: read on closed reader")
	}
	if r.remaining <= 0 {
		return 0, io.EOF
	}

	for {
		if r.cur == nil {
			if r.index >= len(r.chunks) {
				return 0, io.EOF
			}
			win := r.chunks[r.index]
			reader, err := r.bucket.NewRangeReader(r.ctx, win.object, win.offset, win.length, nil)
			if err != nil {
				return 0, fmt.Errorf("chunkstore: open chunk %s: %w", win.object, err)
			}
			r.cur = reader
		}

		n, err := r.cur.Read(p)
		r.remaining -= int64(n)
		if err == io.EOF {
			if cerr := r.cur.Close(); cerr != nil {
				return n, fmt.Errorf("chunkstore: close chunk: %w", cerr)
			}
			r.cur = nil
			r.index++
			if n > 0 {
				return n, nil
			}
			continue
		}
		if err != nil {
			return n, fmt.Errorf("chunkstore: read chunk: %w", err)
		}
		return n, nil
	}
}

// Close releases the currently open chunk reader. Safe to call more than once.
func (r *RangeReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.cur != nil {
		err := r.cur.Close()
		r.cur = nil
		return err
	}
	return nil
}
