package main

import (
	"context"
	"errors"
	"fmt"
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

	"github.com/tradelearn/lessonstream/internal/gateway"
	"github.com/tradelearn/lessonstream/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "gateway",
	Short:   "LessonStream HTTP gateway",
	Version: version.Detailed(),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := config.Validate(); err != nil {
			return err
		}

		cmd.SilenceUsage = true

		s, err := gateway.New(config)
		if err != nil {
			return err
		}

		defer slog.Info("Bye!")
		return s.Start(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().SortFlags = false
	rootCmd.Flags().StringP("bind", "b", gateway.DefaultAddr, "address to bind the gateway")
	rootCmd.Flags().StringP("lessons", "l", gateway.DefaultLessonsAddr, "gRPC address of the lessons service")
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to a config file")
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

func loadConfig(cmd *cobra.Command) (*gateway.Config, error) {
	// .env is optional, for local dev
	_ = godotenv.Load()

	v := viper.New()

	if configFilePath, _ := cmd.Flags().GetString("config"); configFilePath != "" {
		v.SetConfigFile(configFilePath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.Is(err, os.ErrNotExist) && !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config read '%s': %w", v.ConfigFileUsed(), err)
			}
		}
	}

	v.BindPFlag("http.addr", cmd.Flags().Lookup("bind"))
	v.BindPFlag("lessons.addr", cmd.Flags().Lookup("lessons"))

	v.SetEnvPrefix("LESSONSTREAM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone won't surface env-only keys through Unmarshal, so
	// bind the known ones explicitly.
	for _, key := range []string{
		"http.addr", "http.cert_file", "http.key_file",
		"lessons.addr",
		"auth.enabled", "auth.token_issuer", "auth.access_token_secret", "auth.access_token_expiry",
	} {
		v.BindEnv(key)
	}

	var config gateway.Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("config unmarshal: %w", err)
	}
	return &config, nil
}
