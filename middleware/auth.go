// File: middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	providerRepo "bookline/database/repository/provider"
	"bookline/utils"
)

const (
	authCachePrefix = "auth:provider:"
	authCacheTTL    = 15 * time.Minute
)

// JWTAuthProviderMiddleware validates provider JWTs, checking the Redis auth
// cache before hitting the provider repository.
func JWTAuthProviderMiddleware(repo providerRepo.ProviderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		providerID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || providerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := authCachePrefix + computedHash

		authCache := utils.GetAuthCacheClient()
		if cached, err := authCache.Get(ctx, cacheKey).Result(); err == nil && cached == providerID {
			if err := authCache.Expire(ctx, cacheKey, authCacheTTL).Err(); err != nil {
				logger.Warn("Failed to refresh auth cache TTL", zap.Error(err))
			}
			c.Set("providerID", providerID)
			c.Next()
			return
		} else if err != nil && err != redis.Nil {
			logger.Warn("Error checking auth cache", zap.Error(err))
		}

		prov, err := repo.GetByID(ctx, providerID)
		if err != nil || prov == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Provider not found"})
			return
		}
		if computedHash != prov.TokenHash {
			logger.Warn("Token hash mismatch", zap.String("providerID", providerID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked"})
			return
		}

		if err := authCache.Set(ctx, cacheKey, providerID, authCacheTTL).Err(); err != nil {
			logger.Warn("Failed to populate auth cache", zap.Error(err))
		}

		c.Set("providerID", providerID)
		c.Next()
	}
}
