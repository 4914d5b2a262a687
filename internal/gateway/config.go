package gateway

import (
	"fmt"

	"github.com/tradelearn/lessonstream/internal/gateway/auth"
)

const (
	DefaultAddr        = "127.0.0.1:8080"
	DefaultLessonsAddr = "127.0.0.1:50051"

	// DefaultVideoRate caps how often a single client may open a video
	// stream. Metadata endpoints are cheap and stay unlimited.
	DefaultVideoRate = "60-M"
)

type Config struct {
	HTTP    HTTPConfig    `mapstructure:"http"`
	Lessons LessonsConfig `mapstructure:"lessons"`
	Auth    auth.Config   `mapstructure:"auth"`
}

type HTTPConfig struct {
	Addr     string `mapstructure:"addr"`
	CertFile string `mapstructure:"cert_file"`
	KeyFile  string `mapstructure:"key_file"`
}

type LessonsConfig struct {
	// Addr is the gRPC address of the lessons service.
	Addr string `mapstructure:"addr"`
}

func (c *Config) Validate() error {
	if c.HTTP.Addr == "" {
		return fmt.Errorf("http `addr` is required")
	}
	if c.Lessons.Addr == "" {
		return fmt.Errorf("lessons `addr` is required")
	}
	return c.Auth.Validate()
}
