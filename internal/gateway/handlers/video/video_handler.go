package video

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tradelearn/lessonstream/internal/byterange"
	"github.com/tradelearn/lessonstream/internal/gateway/handlers/api"
	"github.com/tradelearn/lessonstream/internal/gateway/lessons"
)

const videoContentType = "video/mp4"

type Handler struct {
	provider *lessons.Provider
}

func New(provider *lessons.Provider) *Handler {
	return &Handler{provider: provider}
}

// Stream relays a lesson's video bytes from the lessons service to the HTTP
// client. Range requests get a 206 with a Content-Range header; anything the
// parser rejects falls back to the full content rather than a 416. All
// response headers are committed before the first body byte, so failures
// after that point can only truncate the body.
func (h *Handler) Stream(ctx *gin.Context) {
	id := ctx.Param("id")
	log := slog.With("lesson", id)

	details, err := h.provider.Details(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, lessons.ErrNotFound) {
			api.AbortWithError(ctx, http.StatusNotFound, api.CodeLessonNotFound, err)
			return
		}
		api.AbortWithError(ctx, http.StatusBadGateway, api.CodeVideoUnavailable, err)
		return
	}

	total := details.GetTotalBytes()
	rng, err := byterange.Parse(ctx.GetHeader("Range"), total)
	if err != nil {
		if errors.Is(err, byterange.ErrEmptyResource) {
			api.AbortWithError(ctx, http.StatusNotFound, api.CodeVideoUnavailable, err)
			return
		}
		// Unparseable Range headers degrade to a full-content response.
		log.Warn("malformed range header, serving full content", "range", ctx.GetHeader("Range"), "error", err)
		rng, _ = byterange.Parse("", total)
	}

	// The upstream stream lives on this context. Cancelling it stops the
	// lessons service from producing further frames, whether because the
	// viewer disconnected or because a write failed.
	streamCtx, cancel := context.WithCancel(ctx.Request.Context())
	defer cancel()

	stream, err := h.provider.OpenVideoStream(streamCtx, id, rng.Start, rng.End)
	if err != nil {
		api.AbortWithError(ctx, http.StatusBadGateway, api.CodeVideoUnavailable, err)
		return
	}

	httpStatus := http.StatusOK
	if rng.Partial {
		httpStatus = http.StatusPartialContent
		ctx.Header("Content-Range", rng.ContentRange())
	}
	ctx.Header("Content-Type", videoContentType)
	ctx.Header("Content-Length", strconv.FormatInt(rng.ContentLength, 10))
	ctx.Header("Accept-Ranges", "bytes")
	ctx.Status(httpStatus)

	var relayed int64
	for {
		chunk, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			// Headers are already on the wire. Log and truncate.
			if status.Code(err) == codes.Canceled || streamCtx.Err() != nil {
				log.Debug("video stream cancelled", "bytes", relayed)
			} else {
				log.Error("video stream failed upstream", "bytes", relayed, "error", err)
			}
			return
		}

		content := chunk.GetContent()
		if len(content) == 0 {
			continue
		}

		n, err := ctx.Writer.Write(content)
		relayed += int64(n)
		if err != nil {
			cancel()
			log.Debug("video stream write failed", "bytes", relayed, "error", err)
			return
		}
		ctx.Writer.Flush()
	}

	log.Info("video stream done", "status", httpStatus, "bytes", relayed, "total", total)
}
