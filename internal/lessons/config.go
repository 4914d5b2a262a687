package lessons

import "github.com/tradelearn/lessonstream/internal/chunkstore"

const (
	DefaultGRPCAddr = "127.0.0.1:50051"
	DefaultHTTPAddr = "127.0.0.1:3000"
)

type Config struct {
	// GRPCAddr is the listen address for the LessonStream RPC service.
	GRPCAddr string
	// HTTPAddr is the listen address for the upload port.
	HTTPAddr string
	// DBPath is the SQLite path for lesson metadata. ":memory:" is valid.
	DBPath string
	// Blob selects the chunk store bucket.
	Blob *chunkstore.Config
}
