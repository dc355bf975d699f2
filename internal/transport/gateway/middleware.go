package gateway

import (
	"net/http"
	"strings"
	"sync"
	"time"
	"wellness-service/internal/logger"
	"wellness-service/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey    = "user_id"
	userIDHeader = "X-User-ID"
)

// Identity resolves the calling user.
// With a token manager a valid bearer token is required; without one the
// X-User-ID header and then the default user are accepted (demo mode).
type Identity struct {
	tokens      *jwt.TokenManager
	defaultUser string
}

// NewIdentity creates the identity resolver; tokens may be nil
func NewIdentity(tokens *jwt.TokenManager, defaultUser string) *Identity {
	return &Identity{tokens: tokens, defaultUser: defaultUser}
}

// Resolve returns the user id for the request or an error message
func (i *Identity) Resolve(r *http.Request) (string, string) {
	auth := r.Header.Get("Authorization")

	if i.tokens != nil {
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || token == "" {
			return "", "missing bearer token"
		}
		userID, err := i.tokens.UserID(token)
		if err != nil {
			return "", "invalid token"
		}
		return userID, ""
	}

	if userID := strings.TrimSpace(r.Header.Get(userIDHeader)); userID != "" {
		return userID, ""
	}
	if i.defaultUser != "" {
		return i.defaultUser, ""
	}
	return "", "user identity required"
}

// Middleware stores the resolved user id in the gin context
func (i *Identity) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, problem := i.Resolve(c.Request)
		if problem != "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": problem})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

func currentUser(c *gin.Context) string {
	return c.GetString(userIDKey)
}

type visitor struct {
	windowStart time.Time
	count       int
}

// RateLimiter is a fixed-window request counter per client IP
type RateLimiter struct {
	limit    int
	window   time.Duration
	now      func() time.Time
	mu       sync.Mutex
	visitors map[string]*visitor
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		limit:    limit,
		window:   window,
		now:      time.Now,
		visitors: make(map[string]*visitor),
	}
}

// Allow records a request from key and reports whether it is within the limit
func (l *RateLimiter) Allow(key string) bool {
	if l.limit <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	v, ok := l.visitors[key]
	if !ok || now.Sub(v.windowStart) >= l.window {
		l.visitors[key] = &visitor{windowStart: now, count: 1}
		return true
	}

	if v.count >= l.limit {
		return false
	}
	v.count++
	return true
}

// Cleanup drops visitors whose window has long expired
func (l *RateLimiter) Cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, v := range l.visitors {
		if now.Sub(v.windowStart) > 5*l.window {
			delete(l.visitors, key)
		}
	}
}

func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

// requestLogger logs one line per request
func requestLogger() gin.HandlerFunc {
	log := logger.With("component", "http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		keyvals := []interface{}{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"duration", time.Since(start),
			"client", c.ClientIP(),
		}
		if status >= http.StatusInternalServerError {
			log.Error("request", keyvals...)
			return
		}
		log.Info("request", keyvals...)
	}
}
