package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/munhozvinicius/divinomaravilhoso/internal/config"
)

func TestPayloadRoundTrip(t *testing.T) {
	body := []byte(`[{"track_name":"ODARA"}]`)
	status, out, ok := decodePayload(encodePayload(http.StatusOK, body))
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, body, out)

	_, _, ok = decodePayload([]byte{1, 2})
	assert.False(t, ok)
}

func TestCacheKeyIncludesQuery(t *testing.T) {
	e := echo.New()
	newCtx := func(target string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath("/api/setlist/comments")
		return c
	}
	a := cacheKey("cache", newCtx("/api/setlist/comments?limit=5"))
	b := cacheKey("cache", newCtx("/api/setlist/comments?limit=50"))
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, cacheKey("cache", newCtx("/api/setlist/comments?limit=5")))
}

func TestResponseCachePassThroughWithoutRedis(t *testing.T) {
	mw := ResponseCache(config.CacheConfig{Enabled: true, TTL: time.Second, Prefix: "cache"}, nil)

	calls := 0
	h := mw(func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusOK, echo.Map{"n": calls})
	})

	e := echo.New()
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, h(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 2, calls, "no redis client means every request hits the handler")
}
