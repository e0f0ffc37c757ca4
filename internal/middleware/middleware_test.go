package middleware

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"ctws/internal/auth"
	"ctws/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger(buf *bytes.Buffer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(buf)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.JSONFormatter{})
	return l
}

func TestAuthRequired(t *testing.T) {
	gate, err := auth.NewGate("s3cret", "")
	require.NoError(t, err)

	var buf bytes.Buffer
	app := fiber.New()
	app.Use(requestid.New())
	app.Get("/protected", AuthRequired(gate, newLogger(&buf)), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", fiber.StatusUnauthorized},
		{"wrong scheme", "Token s3cret", fiber.StatusUnauthorized},
		{"wrong token", "Bearer nope", fiber.StatusUnauthorized},
		{"valid", "Bearer s3cret", fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			if tt.status == fiber.StatusUnauthorized {
				var body map[string]string
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.Equal(t, "Unauthorized", body["message"])
				assert.NotEmpty(t, body["error"])
			}
		})
	}
	assert.Contains(t, buf.String(), "unauthorized request")
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(requestid.New())
	app.Use(RequestLogger(newLogger(&buf)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusNotFound, "nope") })

	_, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var first, second map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &first))
	require.NoError(t, json.Unmarshal(lines[1], &second))
	assert.Equal(t, "/ok", first["path"])
	assert.Equal(t, 200.0, first["status"])
	assert.NotEmpty(t, first["request_id"])
	assert.Equal(t, 404.0, second["status"])
	assert.Equal(t, "request rejected", second["msg"])
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New()
	app := fiber.New()
	app.Use(Metrics(m))
	app.Get("/meal/:id/", func(c *fiber.Ctx) error { return c.SendString(c.Params("id")) })

	for _, id := range []string{"1", "2"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/meal/"+id+"/", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	}

	// Both requests share the route pattern label.
	assert.Equal(t, 1, testutil.CollectAndCount(m.Registry(), "ctws_http_requests_total"))
}
