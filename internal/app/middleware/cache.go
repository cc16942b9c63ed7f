package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/praveen-sripati/society-backend/internal/domain/services"
)

// cacheEntry is a stored response body
type cacheEntry struct {
	Content    []byte
	Expiration time.Time
}

// memoryCache is the fallback store used when redis is unreachable
type memoryCache struct {
	sync.RWMutex
	items map[string]cacheEntry
}

var localCache = &memoryCache{items: make(map[string]cacheEntry)}

var (
	cacheRedis   services.InterfaceRedisService
	cacheRedisOK bool
)

// InitCacheMiddleware wires the response cache to redis. When the ping fails
// the middleware silently uses the in-process map instead.
func InitCacheMiddleware(redis services.InterfaceRedisService) {
	cacheRedis = redis
	cacheRedisOK = redis != nil && redis.Ping() == nil
}

// CacheConfig configures the response cache middleware
type CacheConfig struct {
	Expiration time.Duration
}

// cacheKey hashes the request path plus its sorted query parameters
func cacheKey(c *gin.Context) string {
	path := c.Request.URL.Path

	queryParams := c.Request.URL.Query()
	var queryKeys []string
	for key := range queryParams {
		queryKeys = append(queryKeys, key)
	}
	sort.Strings(queryKeys)

	var queryString string
	for _, key := range queryKeys {
		values := queryParams[key]
		sort.Strings(values)
		for _, value := range values {
			queryString += key + "=" + value + "&"
		}
	}

	hasher := md5.New()
	hasher.Write([]byte(path + "?" + queryString))
	return "respcache:" + hex.EncodeToString(hasher.Sum(nil))
}

type cachedWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cachedWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func cacheGet(key string) ([]byte, bool) {
	if cacheRedisOK {
		content, err := cacheRedis.GetBytes(key)
		if err == nil {
			return content, true
		}
		return nil, false
	}

	localCache.RLock()
	entry, ok := localCache.items[key]
	localCache.RUnlock()
	if !ok || time.Now().After(entry.Expiration) {
		return nil, false
	}
	return entry.Content, true
}

func cacheSet(key string, content []byte, expiration time.Duration) {
	if cacheRedisOK {
		// A write failure only costs a cache miss
		_ = cacheRedis.SetBytes(key, content, expiration)
		return
	}

	localCache.Lock()
	localCache.items[key] = cacheEntry{Content: content, Expiration: time.Now().Add(expiration)}
	localCache.Unlock()
}

// Cache serves successful GET responses from the cache for the configured
// expiration. Responses are identical for every authenticated caller on the
// routes this is applied to.
func Cache(cfg CacheConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cacheKey(c)
		if content, ok := cacheGet(key); ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", content)
			c.Abort()
			return
		}

		writer := &cachedWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer
		c.Next()

		if c.Writer.Status() == http.StatusOK {
			cacheSet(key, writer.body.Bytes(), cfg.Expiration)
		}
	}
}
