package v1

import (
	"net/http"
	"time"

	"qrisgw/api/internal/domain"
	"qrisgw/api/internal/infra/cache"

	"github.com/gin-gonic/gin"
)

const DEFAULT_LIMIT = 150
const EXPIRATION_SECONDS = 30

// returns true if rate limit is exceeded
func createRateLimit(apiKey string, limit int) bool {
	var expiration = time.Second * time.Duration(EXPIRATION_SECONDS)

	count := cache.RateLimitsCache.LoadOrSet(apiKey, 1, expiration)
	if count == nil {
		return true
	}

	countInt, ok := count.(int)
	if !ok {
		return true
	}

	if countInt > limit {
		return true
	}

	cache.RateLimitsCache.Set(apiKey, countInt+1, expiration)
	return false
}

// guards the administrative merchant endpoints, expected key comes from env
func (h *Handler) accessKeyMiddleware(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expected == "" || c.Query("access-key") != expected {
			responseErr(c, http.StatusUnauthorized, domain.ErrMsgInvalidAccessKey)
			c.Abort()
			return
		}
		c.Next()
	}
}
