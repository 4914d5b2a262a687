package lessons

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	slogGin "github.com/samber/slog-gin"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/tradelearn/lessonstream/internal/chunkstore"
	"github.com/tradelearn/lessonstream/internal/db"
	"github.com/tradelearn/lessonstream/internal/proto"
)

// Server runs the lessons service: the LessonStream gRPC endpoint plus the
// HTTP upload port.
type Server struct {
	config *Config

	svc    *LessonService
	store  *Store
	videos *chunkstore.Store

	grpcServer *grpc.Server
	httpServer *http.Server
}

func New(ctx context.Context, config *Config) (*Server, error) {
	sqliteDB, err := db.NewSqliteDB(db.WithPath(config.DBPath))
	if err != nil {
		return nil, fmt.Errorf("open lessons db: %w", err)
	}

	store, err := NewStore(sqliteDB)
	if err != nil {
		sqliteDB.Close()
		return nil, err
	}

	videos, err := chunkstore.Open(ctx, config.Blob)
	if err != nil {
		store.Close()
		return nil, err
	}

	svc := NewLessonService(store, videos)

	grpcServer := grpc.NewServer()
	proto.RegisterLessonStreamServer(grpcServer, NewRPCHandler(svc))

	return &Server{
		config:     config,
		svc:        svc,
		store:      store,
		videos:     videos,
		grpcServer: grpcServer,
		httpServer: &http.Server{
			Addr:    config.HTTPAddr,
			Handler: setupUploadRoutes(svc),
		},
	}, nil
}

func setupUploadRoutes(svc *LessonService) http.Handler {
	r := gin.New()
	r.Use(slogGin.New(slog.Default().WithGroup("http")))
	r.Use(gin.Recovery())

	uploadH := NewUploadHandler(svc)
	r.POST("/upload", uploadH.Upload)
	r.DELETE("/lessons/:id", uploadH.Remove)
	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "ok")
	})

	return r.Handler()
}

func (s *Server) Start(ctx context.Context) error {
	slog.Info("lessons service start")
	defer slog.Info("lessons service stop")

	lis, err := net.Listen("tcp", s.config.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("grpc server start", "addr", s.config.GRPCAddr)
		if err := s.grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("grpc serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		slog.Info("http server start", "addr", s.config.HTTPAddr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		return s.Stop(context.Background())
	})

	return g.Wait()
}

func (s *Server) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// GracefulStop waits for in-flight video streams to drain.
	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		s.grpcServer.Stop()
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := s.videos.Close(); err != nil {
		slog.Error("chunk store close", "error", err)
	}
	return s.store.Close()
}
