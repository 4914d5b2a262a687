package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradelearn/lessonstream/internal/gateway/auth"
	"github.com/tradelearn/lessonstream/internal/gateway/lessons"
	"github.com/tradelearn/lessonstream/internal/proto"
)

type fakeGateway struct{}

func (f *fakeGateway) LessonDetails(ctx context.Context, id string) (*proto.LessonDetails, error) {
	return nil, lessons.ErrNotFound
}

func (f *fakeGateway) ListLessons(ctx context.Context) ([]*proto.LessonDetails, error) {
	return []*proto.LessonDetails{{Id: "l1", Title: "Intro"}}, nil
}

func (f *fakeGateway) OpenVideoStream(ctx context.Context, id string, start, end int64) (lessons.FrameStream, error) {
	return nil, lessons.ErrNotFound
}

func newTestServices(authConfig *auth.Config) *Services {
	return &Services{
		Auth:    auth.NewAuthService(authConfig),
		Lessons: lessons.NewProvider(&fakeGateway{}),
	}
}

func authConfig() *auth.Config {
	return &auth.Config{
		Enabled:           true,
		TokenIssuer:       "lessonstream-test",
		AccessTokenSecret: "access-secret",
		AccessTokenExpiry: time.Hour,
	}
}

func TestHealthz(t *testing.T) {
	handler := SetupRoutes(newTestServices(&auth.Config{}), &Config{})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestIndexReportsVersion(t *testing.T) {
	handler := SetupRoutes(newTestServices(&auth.Config{}), &Config{})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "LessonStream")
}

func TestAPIRequiresToken(t *testing.T) {
	handler := SetupRoutes(newTestServices(authConfig()), &Config{})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/lessons", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "E_AUTH_INVALID_CREDENTIALS")
}

func TestAPIRejectsNonStudentRole(t *testing.T) {
	cfg := authConfig()
	handler := SetupRoutes(newTestServices(cfg), &Config{})

	token, err := auth.NewAccessToken("ops@example.com", "admin", cfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/lessons", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "E_ACCESS_DENIED")
}

func TestAPIAllowsStudent(t *testing.T) {
	cfg := authConfig()
	handler := SetupRoutes(newTestServices(cfg), &Config{})

	token, err := auth.NewAccessToken("student@example.com", auth.RoleStudent, cfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/lessons", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Intro")
}

func TestAPIOpenWhenAuthDisabled(t *testing.T) {
	handler := SetupRoutes(newTestServices(&auth.Config{}), &Config{})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/lessons", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSecurityHeadersWhenTLSConfigured(t *testing.T) {
	cfg := &Config{HTTP: HTTPConfig{CertFile: "cert.pem", KeyFile: "key.pem"}}
	handler := SetupRoutes(newTestServices(&auth.Config{}), cfg)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestNoSecurityHeadersWithoutTLS(t *testing.T) {
	handler := SetupRoutes(newTestServices(&auth.Config{}), &Config{})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestUnknownRoute(t *testing.T) {
	handler := SetupRoutes(newTestServices(&auth.Config{}), &Config{})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
