package byterange

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNoHeader(t *testing.T) {
	r, err := Parse("", 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(0), r.Start)
	assert.Equal(t, int64(999), r.End)
	assert.Equal(t, int64(1000), r.ContentLength)
	assert.False(t, r.Partial)
}

func TestParseRanges(t *testing.T) {
	tests := []struct {
		header        string
		total         int64
		start         int64
		end           int64
		contentLength int64
	}{
		{"bytes=100-199", 1000, 100, 199, 100},
		{"bytes=0-0", 1000, 0, 0, 1},
		{"bytes=500-", 1000, 500, 999, 500},
		{"bytes=-100", 1000, 900, 999, 100},
		// End past EOF clamps to the last byte.
		{"bytes=900-1500", 1000, 900, 999, 100},
		// Suffix longer than the resource clamps to the whole resource.
		{"bytes=-5000", 1000, 0, 999, 1000},
		// Start past EOF clamps to the last byte rather than producing a 416.
		{"bytes=2000-3000", 1000, 999, 999, 1},
		{"bytes=0-999", 1000, 0, 999, 1000},
		// Only the first range of a multi-range header is honored.
		{"bytes=0-99,200-299", 1000, 0, 99, 100},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			r, err := Parse(tt.header, tt.total)
			require.NoError(t, err)
			assert.True(t, r.Partial)
			assert.Equal(t, tt.start, r.Start)
			assert.Equal(t, tt.end, r.End)
			assert.Equal(t, tt.contentLength, r.ContentLength)
			assert.Equal(t, tt.total, r.TotalLength)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	headers := []string{
		"bytes=abc-def",
		"bytes=100",
		"bytes=-",
		"bytes=12x-400",
		"bytes=100-1f9",
		"items=0-100",
		"bytes=--5",
	}
	for _, h := range headers {
		t.Run(h, func(t *testing.T) {
			_, err := Parse(h, 1000)
			require.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestParseEmptyResource(t *testing.T) {
	_, err := Parse("bytes=0-100", 0)
	require.ErrorIs(t, err, ErrEmptyResource)

	_, err = Parse("", 0)
	require.ErrorIs(t, err, ErrEmptyResource)
}

func TestParseInvariants(t *testing.T) {
	// start/end always stay within the resource whatever the requested window.
	totals := []int64{1, 2, 512, 1000, 1 << 20}
	for _, total := range totals {
		for _, header := range []string{
			"", "bytes=0-", "bytes=1-", "bytes=-1",
			fmt.Sprintf("bytes=%d-%d", total/2, total*2),
			fmt.Sprintf("bytes=-%d", total*3),
		} {
			r, err := Parse(header, total)
			require.NoError(t, err, "header %q total %d", header, total)
			assert.GreaterOrEqual(t, r.Start, int64(0))
			assert.LessOrEqual(t, r.Start, r.End)
			assert.Less(t, r.End, total)
			assert.Equal(t, r.End-r.Start+1, r.ContentLength)
		}
	}
}

func TestContentRange(t *testing.T) {
	r, err := Parse("bytes=100-199", 1000)
	require.NoError(t, err)
	assert.Equal(t, "bytes 100-199/1000", r.ContentRange())
}
