package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tradelearn/lessonstream/internal/chunkstore"
	"github.com/tradelearn/lessonstream/internal/lessons"
	"github.com/tradelearn/lessonstream/internal/version"
)

const (
	defaultDBPath  = ".data/lessons.db"
	defaultDataDir = ".data/videos"
)

var rootCmd = &cobra.Command{
	Use:     "lessons",
	Short:   "LessonStream lessons service",
	Version: version.Detailed(),
	RunE: func(cmd *cobra.Command, args []string) error {
		config := loadConfig(cmd)
		cmd.SilenceUsage = true

		s, err := lessons.New(cmd.Context(), config)
		if err != nil {
			return err
		}

		defer slog.Info("Bye!")
		return s.Start(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().SortFlags = false
	rootCmd.Flags().StringP("grpc", "g", lessons.DefaultGRPCAddr, "address to bind the RPC service")
	rootCmd.Flags().StringP("http", "b", lessons.DefaultHTTPAddr, "address to bind the upload port")
	rootCmd.Flags().StringP("db", "d", defaultDBPath, "path to the lessons database")
	rootCmd.Flags().StringP("data", "D", defaultDataDir, "directory for video chunks (ignored when S3 is configured)")
}

func main() {
	handler := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		NoColor:    !isatty.IsTerminal(os.Stdout.Fd()),
	})
	slog.SetDefault(slog.New(handler))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) *lessons.Config {
	// .env is optional, for local dev
	_ = godotenv.Load()

	v := viper.New()
	v.BindPFlag("grpc.addr", cmd.Flags().Lookup("grpc"))
	v.BindPFlag("http.addr", cmd.Flags().Lookup("http"))
	v.BindPFlag("db.path", cmd.Flags().Lookup("db"))
	v.BindPFlag("blob.dir", cmd.Flags().Lookup("data"))

	v.SetEnvPrefix("LESSONSTREAM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	blob := &chunkstore.Config{
		Dir: v.GetString("blob.dir"),
	}

	// An S3 bucket name switches storage off the local directory.
	if bucket := v.GetString("blob.bucket_name"); bucket != "" {
		blob.Dir = ""
		blob.S3 = &chunkstore.S3Config{
			BucketName: bucket,
			Region:     v.GetString("blob.region"),
			AccessKey:  v.GetString("blob.access_key"),
			SecretKey:  v.GetString("blob.secret_key"),
			Endpoint:   v.GetString("blob.endpoint"),
		}
	}

	return &lessons.Config{
		GRPCAddr: v.GetString("grpc.addr"),
		HTTPAddr: v.GetString("http.addr"),
		DBPath:   v.GetString("db.path"),
		Blob:     blob,
	}
}
