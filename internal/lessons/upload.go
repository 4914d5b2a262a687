package lessons

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradelearn/lessonstream/internal/utils"
)

// maxThumbnailSize bounds the in-memory thumbnail read. Videos are streamed
// straight into the chunk store and have no such cap.
const maxThumbnailSize = 8 << 20

// UploadHandler ingests new lessons over multipart HTTP.
type UploadHandler struct {
	svc *LessonService
}

func NewUploadHandler(svc *LessonService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// Upload handles POST /upload with fields "video" (required), "image",
// "title" and "description".
func (h *UploadHandler) Upload(ctx *gin.Context) {
	videoHeader, err := ctx.FormFile("video")
	if err != nil {
		ctx.PureJSON(http.StatusBadRequest, gin.H{
			"error": "multipart field 'video' is required",
		})
		return
	}

	var thumbnail []byte
	if imageHeader, err := ctx.FormFile("image"); err == nil {
		thumbnail, err = readPart(imageHeader, maxThumbnailSize)
		if err != nil {
			ctx.PureJSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("read thumbnail: %v", err),
			})
			return
		}
	}

	video, err := videoHeader.Open()
	if err != nil {
		ctx.PureJSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf("open video: %v", err),
		})
		return
	}
	defer video.Close()

	lesson, err := h.svc.Create(ctx.Request.Context(),
		ctx.PostForm("title"),
		ctx.PostForm("description"),
		utils.DetectContentType(videoHeader.Filename),
		thumbnail,
		video,
	)
	if err != nil {
		ctx.PureJSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	ctx.PureJSON(http.StatusCreated, gin.H{
		"id":      lesson.ID,
		"videoId": lesson.VideoID,
	})
}

// Remove handles DELETE /lessons/:id.
func (h *UploadHandler) Remove(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := h.svc.Remove(ctx.Request.Context(), id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			status = http.StatusNotFound
		}
		ctx.PureJSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}
	ctx.Status(http.StatusNoContent)
}

func readPart(header *multipart.FileHeader, limit int64) ([]byte, error) {
	if header.Size > limit {
		return nil, fmt.Errorf("file too large: %d bytes", header.Size)
	}
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, limit))
}
