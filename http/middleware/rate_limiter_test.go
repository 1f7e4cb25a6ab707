package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/signpost/http/middleware"
)

func TestVisitorFetch(t *testing.T) {
	t.Run("Serial", func(t *testing.T) {
		// Arrange
		vs := middleware.NewVisitors()

		// Act
		v1 := vs.Fetch("127.0.0.1")
		time.Sleep(1 * time.Millisecond)
		v2 := vs.Fetch("127.0.0.1")

		// Assert
		require.Equal(t, v1.Limiter, v2.Limiter)
		require.True(t, v1.LastSeen.Before(v2.LastSeen))
		require.Equal(t, 1, vs.Len())
	})

	t.Run("Concurrent", func(t *testing.T) {
		// Arrange
		var wg sync.WaitGroup
		vs := middleware.NewVisitors()
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				// Act
				require.NotPanics(t, func() { vs.Fetch("127.0.0.1") })
			}()
		}

		wg.Wait()

		// Assert
		require.Equal(t, 1, vs.Len())
	})
}

func TestVisitorsSweep(t *testing.T) {
	// Arrange
	vs := middleware.NewVisitors()
	vs.Fetch("1.1.1.1")
	cutoff := time.Now().UTC().Add(time.Millisecond)
	time.Sleep(2 * time.Millisecond)
	vs.Fetch("8.8.8.8")

	// Act
	vs.Sweep(cutoff)

	// Assert
	require.Equal(t, 1, vs.Len())
}

func TestRateLimit(t *testing.T) {
	// Arrange + Act
	actual := middleware.RateLimit(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	// Arrange
	h := middleware.RateLimit(middleware.NewVisitors())(noopHandler())
	codes := make(map[int]int)

	// Act
	for i := 0; i < 100; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
		r.Header.Set("X-Forwarded-For", "1.1.1.1")
		h.ServeHTTP(w, r)
		codes[w.Code]++
	}

	// Assert
	require.GreaterOrEqual(t, codes[http.StatusOK], 60)
	require.NotZero(t, codes[http.StatusTooManyRequests])
}

func TestRateLimitDirectClients(t *testing.T) {
	// Arrange
	vs := middleware.NewVisitors()
	h := middleware.RateLimit(vs)(noopHandler())
	codes := make(map[int]int)

	// Act
	for i := 0; i < 100; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
		r.RemoteAddr = fmt.Sprintf("203.0.113.%d:1234", i)
		h.ServeHTTP(w, r)
		codes[w.Code]++
	}

	// Assert
	require.Equal(t, 100, codes[http.StatusOK])
	require.Equal(t, 100, vs.Len())
}
