package lesson

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradelearn/lessonstream/internal/gateway/handlers/api"
	"github.com/tradelearn/lessonstream/internal/gateway/lessons"
)

type Handler struct {
	provider *lessons.Provider
}

func New(provider *lessons.Provider) *Handler {
	return &Handler{provider: provider}
}

// LessonSummary is a catalog entry. Thumbnails are only shipped on the
// details response to keep the listing light.
type LessonSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type LessonDetails struct {
	LessonSummary
	Thumbnail  string `json:"thumbnail,omitempty"` // base64-encoded image
	TotalBytes int64  `json:"totalBytes"`
}

func (h *Handler) List(ctx *gin.Context) {
	list, err := h.provider.List(ctx.Request.Context())
	if err != nil {
		api.AbortWithError(ctx, http.StatusBadGateway, api.CodeLessonListFailed, err)
		return
	}

	out := make([]LessonSummary, 0, len(list))
	for _, details := range list {
		out = append(out, LessonSummary{
			ID:          details.GetId(),
			Title:       details.GetTitle(),
			Description: details.GetDescription(),
		})
	}
	ctx.PureJSON(http.StatusOK, gin.H{"lessons": out})
}

func (h *Handler) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	details, err := h.provider.Details(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, lessons.ErrNotFound) {
			api.AbortWithError(ctx, http.StatusNotFound, api.CodeLessonNotFound, err)
			return
		}
		api.AbortWithError(ctx, http.StatusBadGateway, api.CodeInternalError, err)
		return
	}

	resp := LessonDetails{
		LessonSummary: LessonSummary{
			ID:          details.GetId(),
			Title:       details.GetTitle(),
			Description: details.GetDescription(),
		},
		TotalBytes: details.GetTotalBytes(),
	}
	if thumb := details.GetThumbnail(); len(thumb) > 0 {
		resp.Thumbnail = base64.StdEncoding.EncodeToString(thumb)
	}
	ctx.PureJSON(http.StatusOK, resp)
}
