package middleware_test

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/http/middleware"
	"github.com/xy-planning-network/signpost/logger"
)

func TestLogRequest(t *testing.T) {
	// Arrange + Act
	actual := middleware.LogRequest(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	// Arrange
	color.NoColor = true
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(log.New(b, "", 0)))

	ctx := context.WithValue(context.Background(), signpost.IpAddrKey, "1.1.1.1")
	ctx = context.WithValue(ctx, signpost.RequestIDKey, "test-id")
	r := httptest.NewRequest(http.MethodGet, "https://example.com/cyk?word=ab", nil).WithContext(ctx)

	var called bool
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	// Act
	middleware.LogRequest(l)(h).ServeHTTP(httptest.NewRecorder(), r)

	// Assert
	require.True(t, called)
	require.Contains(t, b.String(), "'1.1.1.1 GET /cyk?word=ab'")
	require.Contains(t, b.String(), `"location":"/cyk"`)
	require.Contains(t, b.String(), `"request_id":"test-id"`)
}
