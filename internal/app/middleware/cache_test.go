package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestCacheServesRepeatedGets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	InitCacheMiddleware(nil) // no redis, in-memory fallback

	hits := 0
	r := gin.New()
	r.GET("/list", Cache(CacheConfig{Expiration: time.Minute}), func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"hits": hits})
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/list?page=1", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if w.Body.String() != `{"hits":1}` {
			t.Fatalf("request %d body = %s, want cached first response", i, w.Body.String())
		}
	}
	if hits != 1 {
		t.Fatalf("handler ran %d times, want 1", hits)
	}

	// A different query string is a different cache key
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/list?page=2", nil))
	if hits != 2 {
		t.Fatalf("handler ran %d times, want 2 after new query", hits)
	}
}

func TestCacheSkipsNonGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	InitCacheMiddleware(nil)

	hits := 0
	r := gin.New()
	r.POST("/submit", Cache(CacheConfig{Expiration: time.Minute}), func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"hits": hits})
	})

	for i := 1; i <= 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/submit", nil))
		if w.Body.String() != `{"hits":`+strconv.Itoa(i)+`}` {
			t.Fatalf("POST %d body = %s, must not be cached", i, w.Body.String())
		}
	}
}

func TestCacheSkipsErrorResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	InitCacheMiddleware(nil)

	hits := 0
	r := gin.New()
	r.GET("/flaky", Cache(CacheConfig{Expiration: time.Minute}), func(c *gin.Context) {
		hits++
		if hits == 1 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/flaky", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("first status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/flaky", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("error response was cached: status = %d", w.Code)
	}
}
