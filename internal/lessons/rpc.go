package lessons

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tradelearn/lessonstream/internal/chunkstore"
	"github.com/tradelearn/lessonstream/internal/proto"
)

// FrameSize is the target size of one streamed video frame. The chunk store
// yields small buffers; coalescing them amortizes per-message RPC overhead
// while keeping memory per stream bounded.
const FrameSize = 512 * 1024

// RPCHandler exposes the lesson service over gRPC.
type RPCHandler struct {
	proto.UnimplementedLessonStreamServer
	svc *LessonService
}

func NewRPCHandler(svc *LessonService) *RPCHandler {
	return &RPCHandler{svc: svc}
}

// GetLesson returns lesson details including the video's total byte size.
func (h *RPCHandler) GetLesson(ctx context.Context, req *proto.LessonRequest) (*proto.LessonDetails, error) {
	lesson, err := h.svc.Get(ctx, req.GetLessonId())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, status.Error(codes.NotFound, "lesson not found")
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	size, err := h.svc.VideoSize(ctx, lesson)
	if err != nil {
		if errors.Is(err, chunkstore.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "lesson video not found")
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &proto.LessonDetails{
		Id:          lesson.ID,
		Title:       lesson.Title,
		Description: lesson.Description,
		Thumbnail:   lesson.Thumbnail,
		TotalBytes:  size,
	}, nil
}

// ListLessons returns all lessons without video sizes.
func (h *RPCHandler) ListLessons(ctx context.Context, _ *proto.ListLessonsRequest) (*proto.LessonList, error) {
	all, err := h.svc.List(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	list := &proto.LessonList{
		Lessons: make([]*proto.LessonDetails, 0, len(all)),
	}
	for _, lesson := range all {
		list.Lessons = append(list.Lessons, &proto.LessonDetails{
			Id:          lesson.ID,
			Title:       lesson.Title,
			Description: lesson.Description,
			Thumbnail:   lesson.Thumbnail,
		})
	}
	return list, nil
}

// DownloadVideo streams the requested byte range of a lesson's video as a
// sequence of frames.
//
// Frames are accumulated to FrameSize before being sent; the final frame
// carries whatever remains. Send blocks on gRPC flow control when the
// consumer is slow, which in turn pauses pulling from the chunk store, so a
// stalled client never causes unbounded buffering here.
//
// A missing lesson or blob ends the stream with zero frames and an OK
// status. Gateways treat an empty stream as not-found; keeping that shape
// avoids breaking older ones.
func (h *RPCHandler) DownloadVideo(req *proto.DownloadRequest, stream proto.LessonStream_DownloadVideoServer) error {
	ctx := stream.Context()
	log := slog.With("lesson", req.GetLessonId(), "start", req.GetStart(), "end", req.GetEnd())

	lesson, err := h.svc.Get(ctx, req.GetLessonId())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("video download for unknown lesson")
			return nil
		}
		return status.Error(codes.Internal, err.Error())
	}

	// A negative end streams to the end of the blob. Zero is a real offset,
	// so {start: 0, end: 0} is exactly the first byte.
	reader, err := h.svc.OpenVideoRange(ctx, lesson, req.GetStart(), req.GetEnd())
	if err != nil {
		switch {
		case errors.Is(err, chunkstore.ErrNotFound):
			log.Warn("video blob missing from chunk store", "video", lesson.VideoID)
			return nil
		case errors.Is(err, chunkstore.ErrInvalidRange):
			return status.Error(codes.OutOfRange, err.Error())
		default:
			return status.Error(codes.Internal, err.Error())
		}
	}
	defer reader.Close()

	started := time.Now()
	var sent int64
	buf := make([]byte, FrameSize)
	for {
		n, rerr := io.ReadFull(reader, buf)
		if n > 0 {
			if serr := stream.Send(&proto.VideoChunk{Content: buf[:n]}); serr != nil {
				// Usually the caller cancelling mid-stream. Normal teardown.
				log.Debug("video stream send failed", "sent", sent, "error", serr)
				return serr
			}
			sent += int64(n)
		}
		if rerr == io.EOF || rerr == io.ErrUnexpectedEOF {
			log.Debug("video stream complete", "sent", sent, "took", time.Since(started))
			return nil
		}
		if rerr != nil {
			// Partial delivery is not retried; the consumer sees an abrupt
			// non-OK end after the bytes already relayed.
			log.Error("video stream read failed", "sent", sent, "error", rerr)
			return status.Error(codes.Unavailable, "video storage read failed")
		}
	}
}
