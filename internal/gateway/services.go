package gateway

import (
	"fmt"

	"github.com/tradelearn/lessonstream/internal/gateway/auth"
	"github.com/tradelearn/lessonstream/internal/gateway/lessons"
)

type Services struct {
	Auth    *auth.AuthService
	Lessons *lessons.Provider

	client *lessons.Client
}

func NewServices(config *Config) (*Services, error) {
	client, err := lessons.Dial(config.Lessons.Addr)
	if err != nil {
		return nil, fmt.Errorf("create lessons client: %w", err)
	}

	return &Services{
		Auth:    auth.NewAuthService(&config.Auth),
		Lessons: lessons.NewProvider(client),
		client:  client,
	}, nil
}

func (s *Services) Shutdown() error {
	if err := s.client.Close(); err != nil {
		return fmt.Errorf("close lessons client: %w", err)
	}
	return nil
}
