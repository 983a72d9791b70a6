package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	jwtPkg "ElectionAssistant/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestRequestIDMiddleware(t *testing.T) {
	m := New(quietLogger(), DefaultConfig())

	app := fiber.New()
	app.Use(m.NewRequestIDMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(m.GetRequestID(c))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	generated := resp.Header.Get(RequestIDKey)
	require.Len(t, generated, 26)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, generated, string(body))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDKey, "client-supplied")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, "client-supplied", resp.Header.Get(RequestIDKey))
}

func TestRateLimiterExhaustsBurst(t *testing.T) {
	m := New(quietLogger(), Config{RateLimitRPS: 0.001, RateLimitBurst: 2})

	app := fiber.New()
	app.Get("/", m.NewRateLimiter, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestRateLimiterSweepsIdleBuckets(t *testing.T) {
	r := newRateLimiter(1, 1)
	r.GetLimiterFrom("10.0.0.1")
	r.bucket["10.0.0.1"].lastSeen = time.Now().Add(-2 * limiterIdleTTL)

	r.sweep(time.Now())
	require.Empty(t, r.bucket)
}

func TestTokenMiddleware(t *testing.T) {
	t.Setenv(AccessTokenSecret, "test-secret")
	m := New(quietLogger(), DefaultConfig())

	app := fiber.New()
	app.Get("/", m.NewTokenMiddleware, func(c *fiber.Ctx) error {
		session, err := jwtPkg.GetChatSession(c)
		if err != nil {
			return err
		}
		return c.SendString(session.ID)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	token, _, err := jwtPkg.Sign(map[string]interface{}{"session_id": "01HSESSION"}, time.Hour)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "01HSESSION", string(body))
}

func TestLoggingMiddlewarePassesThrough(t *testing.T) {
	m := New(quietLogger(), DefaultConfig())

	app := fiber.New()
	app.Use(m.NewRequestIDMiddleware(), m.NewLoggingMiddleware())
	app.Post("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"hi","token":"abc"}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestSanitizeRequestBody(t *testing.T) {
	out := sanitizeRequestBody(fiber.MIMEApplicationJSON, []byte(`{"text":"Which party has lotus symbol","token":"abc"}`))
	require.Contains(t, out, `"token":"[SECRET]"`)
	require.Contains(t, out, "lotus")

	require.Equal(t, "[non-JSON body]", sanitizeRequestBody("multipart/form-data; boundary=x", []byte("--x")))
	require.Equal(t, "[non-JSON body]", sanitizeRequestBody("", []byte("not json")))
}
