package lessons

import (
	"bytes"
	"context"
	"io"
	"math/rand"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/tradelearn/lessonstream/internal/chunkstore"
	"github.com/tradelearn/lessonstream/internal/db"
	"github.com/tradelearn/lessonstream/internal/proto"
)

type rpcFixture struct {
	svc    *LessonService
	client proto.LessonStreamClient
}

func newRPCFixture(t *testing.T, chunkSize int64) *rpcFixture {
	t.Helper()

	sqliteDB, err := db.NewSqliteDB(db.WithMaxOpenConns(1))
	require.NoError(t, err)
	t.Cleanup(func() { sqliteDB.Close() })

	store, err := NewStore(sqliteDB)
	require.NoError(t, err)

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })
	videos := chunkstore.New(bucket, chunkstore.WithChunkSize(chunkSize))

	svc := NewLessonService(store, videos)

	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	proto.RegisterLessonStreamServer(server, NewRPCHandler(svc))
	go server.Serve(lis)
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &rpcFixture{
		svc:    svc,
		client: proto.NewLessonStreamClient(conn),
	}
}

func (f *rpcFixture) seedLesson(t *testing.T, size int) (*Lesson, []byte) {
	t.Helper()
	data := make([]byte, size)
	rand.New(rand.NewSource(7)).Read(data)

	lesson, err := f.svc.Create(context.Background(), "Candlestick basics", "Reading candles", "video/mp4", nil, bytes.NewReader(data))
	require.NoError(t, err)
	return lesson, data
}

func recvAll(t *testing.T, stream proto.LessonStream_DownloadVideoClient) ([]byte, [][]byte, error) {
	t.Helper()
	var body []byte
	var frames [][]byte
	for {
		chunk, err := stream.Recv()
		if err == io.EOF {
			return body, frames, nil
		}
		if err != nil {
			return body, frames, err
		}
		frames = append(frames, chunk.GetContent())
		body = append(body, chunk.GetContent()...)
	}
}

func TestGetLesson(t *testing.T) {
	f := newRPCFixture(t, 64*1024)
	lesson, data := f.seedLesson(t, 300*1024)

	details, err := f.client.GetLesson(context.Background(), &proto.LessonRequest{LessonId: lesson.ID})
	require.NoError(t, err)
	assert.Equal(t, lesson.ID, details.GetId())
	assert.Equal(t, "Candlestick basics", details.GetTitle())
	assert.Equal(t, int64(len(data)), details.GetTotalBytes())
}

func TestGetLessonNotFound(t *testing.T) {
	f := newRPCFixture(t, 64*1024)

	_, err := f.client.GetLesson(context.Background(), &proto.LessonRequest{LessonId: "nope"})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestListLessons(t *testing.T) {
	f := newRPCFixture(t, 64*1024)
	f.seedLesson(t, 10*1024)

	list, err := f.client.ListLessons(context.Background(), &proto.ListLessonsRequest{})
	require.NoError(t, err)
	require.Len(t, list.GetLessons(), 1)
	assert.Equal(t, "Candlestick basics", list.GetLessons()[0].GetTitle())
}

func TestDownloadVideoFull(t *testing.T) {
	f := newRPCFixture(t, 64*1024)
	lesson, data := f.seedLesson(t, 1300*1024)

	stream, err := f.client.DownloadVideo(context.Background(), &proto.DownloadRequest{
		LessonId: lesson.ID,
		Start:    0,
		End:      int64(len(data)) - 1,
	})
	require.NoError(t, err)

	body, frames, err := recvAll(t, stream)
	require.NoError(t, err)
	assert.Equal(t, data, body)

	// Small storage chunks are coalesced into ~FrameSize frames; only the
	// final frame may be short.
	require.NotEmpty(t, frames)
	for _, frame := range frames[:len(frames)-1] {
		assert.Equal(t, FrameSize, len(frame))
	}
	assert.LessOrEqual(t, len(frames[len(frames)-1]), FrameSize)
}

func TestDownloadVideoRange(t *testing.T) {
	f := newRPCFixture(t, 64*1024)
	lesson, data := f.seedLesson(t, 1000*1000)

	stream, err := f.client.DownloadVideo(context.Background(), &proto.DownloadRequest{
		LessonId: lesson.ID,
		Start:    100_000,
		End:      700_000,
	})
	require.NoError(t, err)

	body, _, err := recvAll(t, stream)
	require.NoError(t, err)
	assert.Equal(t, data[100_000:700_001], body)
}

func TestDownloadVideoOpenEnded(t *testing.T) {
	f := newRPCFixture(t, 64*1024)
	lesson, data := f.seedLesson(t, 500*1024)

	// A negative end means "to the end of the blob".
	stream, err := f.client.DownloadVideo(context.Background(), &proto.DownloadRequest{
		LessonId: lesson.ID,
		Start:    200_000,
		End:      -1,
	})
	require.NoError(t, err)

	body, _, err := recvAll(t, stream)
	require.NoError(t, err)
	assert.Equal(t, data[200_000:], body)
}

func TestDownloadVideoFirstByte(t *testing.T) {
	f := newRPCFixture(t, 64*1024)
	lesson, data := f.seedLesson(t, 300*1024)

	// Zero is a real offset, not an open-ended sentinel: {0, 0} is exactly
	// the first byte.
	stream, err := f.client.DownloadVideo(context.Background(), &proto.DownloadRequest{
		LessonId: lesson.ID,
		Start:    0,
		End:      0,
	})
	require.NoError(t, err)

	body, frames, err := recvAll(t, stream)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, data[:1], body)
}

func TestDownloadVideoRepeatIsIdentical(t *testing.T) {
	f := newRPCFixture(t, 64*1024)
	lesson, data := f.seedLesson(t, 400*1024)

	for range 2 {
		stream, err := f.client.DownloadVideo(context.Background(), &proto.DownloadRequest{
			LessonId: lesson.ID,
			End:      int64(len(data)) - 1,
		})
		require.NoError(t, err)
		body, _, err := recvAll(t, stream)
		require.NoError(t, err)
		assert.Equal(t, data, body)
	}
}

func TestDownloadVideoMissingLessonEndsEmpty(t *testing.T) {
	f := newRPCFixture(t, 64*1024)

	stream, err := f.client.DownloadVideo(context.Background(), &proto.DownloadRequest{LessonId: "nope"})
	require.NoError(t, err)

	body, frames, err := recvAll(t, stream)
	require.NoError(t, err)
	assert.Empty(t, body)
	assert.Empty(t, frames)
}

func TestDownloadVideoCancellation(t *testing.T) {
	f := newRPCFixture(t, 64*1024)
	lesson, _ := f.seedLesson(t, 4*1024*1024)

	ctx, cancel := context.WithCancel(context.Background())
	stream, err := f.client.DownloadVideo(ctx, &proto.DownloadRequest{LessonId: lesson.ID})
	require.NoError(t, err)

	_, err = stream.Recv()
	require.NoError(t, err)
	cancel()

	// The stream must observe cancellation within a bounded time.
	deadline := time.After(5 * time.Second)
	for {
		_, err = stream.Recv()
		if err != nil {
			break
		}
		select {
		case <-deadline:
			t.Fatal("stream did not observe cancellation")
		default:
		}
	}
	assert.Equal(t, codes.Canceled, status.Code(err))
}
