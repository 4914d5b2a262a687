package chunkstore

import (
	"bytes"
	"context"
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T, chunkSize int64) *Store {
	t.Helper()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })
	return New(bucket, WithChunkSize(chunkSize))
}

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	data := make([]byte, n)
	_, err := rand.New(rand.NewSource(42)).Read(data)
	require.NoError(t, err)
	return data
}

func TestUploadAndStat(t *testing.T) {
	store := newTestStore(t, 1024)
	data := randomBytes(t, 10*1024+123)

	manifest, err := store.Upload(context.Background(), "vid1", "video/mp4", bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), manifest.TotalSize)
	assert.Equal(t, "video/mp4", manifest.ContentType)
	// 10 full chunks plus a 123 byte tail.
	assert.Len(t, manifest.Chunks, 11)
	assert.Equal(t, int64(123), manifest.Chunks[10].Size)

	stat, err := store.Stat(context.Background(), "vid1")
	require.NoError(t, err)
	assert.Equal(t, manifest.TotalSize, stat.TotalSize)
	assert.Len(t, stat.Chunks, 11)
}

func TestStatNotFound(t *testing.T) {
	store := newTestStore(t, 1024)
	_, err := store.Stat(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUploadEmpty(t *testing.T) {
	store := newTestStore(t, 1024)
	manifest, err := store.Upload(context.Background(), "empty", "video/mp4", bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Equal(t, int64(0), manifest.TotalSize)
	assert.Empty(t, manifest.Chunks)
}

func TestOpenRangeFullRead(t *testing.T) {
	store := newTestStore(t, 1024)
	data := randomBytes(t, 5*1024+7)
	_, err := store.Upload(context.Background(), "vid1", "video/mp4", bytes.NewReader(data))
	require.NoError(t, err)

	r, err := store.OpenRange(context.Background(), "vid1", 0, -1)
	require.NoError(t, err)
	defer r.Close()

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestOpenRangeWindows(t *testing.T) {
	store := newTestStore(t, 1000)
	data := randomBytes(t, 10_000)
	_, err := store.Upload(context.Background(), "vid1", "video/mp4", bytes.NewReader(data))
	require.NoError(t, err)

	tests := []struct {
		name       string
		start, end int64
	}{
		{"within one chunk", 10, 500},
		{"chunk boundary crossing", 900, 1100},
		{"exact chunk", 1000, 1999},
		{"multi chunk", 500, 7321},
		{"single byte", 4999, 4999},
		{"tail", 9000, -1},
		{"last byte", 9999, 9999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := store.OpenRange(context.Background(), "vid1", tt.start, tt.end)
			require.NoError(t, err)
			defer r.Close()

			got, err := io.ReadAll(r)
			require.NoError(t, err)

			end := tt.end
			if end < 0 {
				end = int64(len(data)) - 1
			}
			assert.Equal(t, data[tt.start:end+1], got)
		})
	}
}

func TestOpenRangeClampsEnd(t *testing.T) {
	store := newTestStore(t, 1000)
	data := randomBytes(t, 2000)
	_, err := store.Upload(context.Background(), "vid1", "video/mp4", bytes.NewReader(data))
	require.NoError(t, err)

	r, err := store.OpenRange(context.Background(), "vid1", 1500, 99999)
	require.NoError(t, err)
	defer r.Close()

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, data[1500:], got)
}

func TestOpenRangeInvalid(t *testing.T) {
	store := newTestStore(t, 1000)
	data := randomBytes(t, 2000)
	_, err := store.Upload(context.Background(), "vid1", "video/mp4", bytes.NewReader(data))
	require.NoError(t, err)

	_, err = store.OpenRange(context.Background(), "vid1", 2000, -1)
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = store.OpenRange(context.Background(), "vid1", -5, 100)
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = store.OpenRange(context.Background(), "missing", 0, -1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestReaderSingleConsumption(t *testing.T) {
	store := newTestStore(t, 1000)
	data := randomBytes(t, 3000)
	_, err := store.Upload(context.Background(), "vid1", "video/mp4", bytes.NewReader(data))
	require.NoError(t, err)

	r, err := store.OpenRange(context.Background(), "vid1", 0, -1)
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, data, got)

	// Drained reader keeps returning EOF, and a closed one refuses reads.
	n, err := r.Read(make([]byte, 16))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)

	require.NoError(t, r.Close())
	_, err = r.Read(make([]byte, 16))
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	store := newTestStore(t, 1000)
	data := randomBytes(t, 2500)
	_, err := store.Upload(context.Background(), "vid1", "video/mp4", bytes.NewReader(data))
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), "vid1"))

	_, err = store.Stat(context.Background(), "vid1")
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, store.Delete(context.Background(), "vid1"), ErrNotFound)
}
