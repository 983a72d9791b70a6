package handlerUtil

import (
	"ElectionAssistant/pkg/response"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

func handleRoute(t *testing.T, requestID string, err error) (int, ErrorResponse) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return New(logger).Handle(c, requestID, err, c.Path(), "test")
	})

	resp, rerr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, rerr)
	defer resp.Body.Close()

	var body ErrorResponse
	require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleDomainError(t *testing.T) {
	status, body := handleRoute(t, "req-1", response.NewError(http.StatusNotFound, "party not found"))

	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "PARTY_NOT_FOUND", body.Code)
	require.Empty(t, body.TraceID)
}

func TestHandleUnexpectedErrorCarriesTraceID(t *testing.T) {
	status, body := handleRoute(t, "req-7", errors.New("connection reset"))
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, "INTERNAL_ERROR", body.Code)
	require.Equal(t, "req-7", body.TraceID)

	_, body = handleRoute(t, "", errors.New("connection reset"))
	require.NotEmpty(t, body.TraceID)
}
