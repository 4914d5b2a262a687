package lessons

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/tradelearn/lessonstream/internal/proto"
)

// ErrNotFound is returned when the lessons service has no such lesson.
var ErrNotFound = errors.New("lessons: lesson not found")

// FrameStream yields a sequence of video frames. Recv returns io.EOF once the
// upstream has sent its final frame.
type FrameStream interface {
	Recv() (*proto.VideoChunk, error)
}

// Gateway is the upstream surface of the lessons service as seen by the
// HTTP gateway. The gRPC client implements it; tests substitute fakes.
type Gateway interface {
	LessonDetails(ctx context.Context, id string) (*proto.LessonDetails, error)
	ListLessons(ctx context.Context) ([]*proto.LessonDetails, error)
	OpenVideoStream(ctx context.Context, id string, start, end int64) (FrameStream, error)
}

// Client is the gRPC-backed Gateway implementation.
type Client struct {
	conn   *grpc.ClientConn
	client proto.LessonStreamClient
}

var _ Gateway = (*Client)(nil)

func Dial(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial lessons service: %w", err)
	}
	return &Client{
		conn:   conn,
		client: proto.NewLessonStreamClient(conn),
	}, nil
}

func (c *Client) LessonDetails(ctx context.Context, id string) (*proto.LessonDetails, error) {
	details, err := c.client.GetLesson(ctx, &proto.LessonRequest{LessonId: id})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get lesson %q: %w", id, err)
	}
	return details, nil
}

func (c *Client) ListLessons(ctx context.Context) ([]*proto.LessonDetails, error) {
	list, err := c.client.ListLessons(ctx, &proto.ListLessonsRequest{})
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	return list.GetLessons(), nil
}

func (c *Client) OpenVideoStream(ctx context.Context, id string, start, end int64) (FrameStream, error) {
	stream, err := c.client.DownloadVideo(ctx, &proto.DownloadRequest{
		LessonId: id,
		Start:    start,
		End:      end,
	})
	if err != nil {
		return nil, fmt.Errorf("open video stream %q: %w", id, err)
	}
	return stream, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}
