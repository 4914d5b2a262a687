package byterange

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const bytesPrefix = "bytes="

var (
	// ErrMalformed is returned when a Range header is present but cannot be parsed.
	ErrMalformed = errors.New("malformed range header")

	// ErrEmptyResource is returned when a range is requested against a zero-length resource.
	ErrEmptyResource = errors.New("resource is empty")
)

// Range is the resolved byte window for one request.
type Range struct {
	Start         int64
	End           int64
	TotalLength   int64
	ContentLength int64
	// Partial is true iff a Range header was present. Drives 206 vs 200.
	Partial bool
}

// ContentRange renders the Content-Range header value for a partial response.
func (r Range) ContentRange() string {
	return fmt.Sprintf("bytes %d-%d/%d", r.Start, r.End, r.TotalLength)
}

// Parse resolves an optional Range header against a known total length.
//
// Supported forms: "bytes=a-b", "bytes=a-" and "bytes=-n" (last n bytes).
// Out-of-bounds ends are clamped to the resource rather than rejected, so a
// 416 is never produced. Multi-range headers are not supported; only the
// first range is honored.
func Parse(header string, totalLength int64) (Range, error) {
	if totalLength <= 0 {
		return Range{}, ErrEmptyResource
	}

	full := Range{
		Start:         0,
		End:           totalLength - 1,
		TotalLength:   totalLength,
		ContentLength: totalLength,
	}

	header = strings.TrimSpace(header)
	if header == "" {
		return full, nil
	}

	if !strings.HasPrefix(header, bytesPrefix) {
		return Range{}, fmt.Errorf("%w: %q", ErrMalformed, header)
	}
	spec := strings.TrimPrefix(header, bytesPrefix)

	// Single contiguous range only.
	if idx := strings.IndexByte(spec, ','); idx >= 0 {
		spec = spec[:idx]
	}
	spec = strings.TrimSpace(spec)

	startStr, endStr, found := strings.Cut(spec, "-")
	if !found {
		return Range{}, fmt.Errorf("%w: %q", ErrMalformed, header)
	}

	start := int64(0)
	end := totalLength - 1

	switch {
	case startStr == "" && endStr == "":
		return Range{}, fmt.Errorf("%w: %q", ErrMalformed, header)

	case startStr == "":
		// Suffix form: last n bytes.
		n, err := strconv.ParseInt(endStr, 10, 64)
		if err != nil || n < 0 {
			return Range{}, fmt.Errorf("%w: %q", ErrMalformed, header)
		}
		start = totalLength - n
		if start < 0 {
			start = 0
		}

	default:
		s, err := strconv.ParseInt(startStr, 10, 64)
		if err != nil || s < 0 {
			return Range{}, fmt.Errorf("%w: %q", ErrMalformed, header)
		}
		start = s
		if endStr != "" {
			e, err := strconv.ParseInt(endStr, 10, 64)
			if err != nil || e < 0 {
				return Range{}, fmt.Errorf("%w: %q", ErrMalformed, header)
			}
			end = e
		}
	}

	if end >= totalLength {
		end = totalLength - 1
	}
	if start > end {
		// Degenerate window. Clamp instead of rejecting with a 416.
		start = end
	}

	return Range{
		Start:         start,
		End:           end,
		TotalLength:   totalLength,
		ContentLength: end - start + 1,
		Partial:       true,
	}, nil
}
