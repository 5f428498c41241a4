package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"courtshare/utils"
)

const authCachePrefix = "auth:token:"

// AuthMiddleware verifies the Firebase ID token from the Authorization
// header and sets the caller's UID on the context as "userID". Handlers
// must take identity from there and never from the request body.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		idToken := strings.TrimPrefix(authHeader, "Bearer ")
		if idToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		ctx := context.Background()
		cacheKey := authCachePrefix + hashToken(idToken)

		// A token verified recently skips the round trip to Firebase.
		cache := utils.GetCacheClient()
		cacheEnabled := cache != nil
		if cacheEnabled {
			uid, err := cache.Get(ctx, cacheKey).Result()
			if err == nil && uid != "" {
				c.Set("userID", uid)
				c.Next()
				return
			}
			if err != nil && err != redis.Nil {
				logger.Warn("auth cache unavailable, verifying directly", zap.Error(err))
			}
		}

		if utils.AuthClient == nil {
			logger.Error("Firebase auth client not initialized")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Authentication unavailable",
			})
			return
		}
		token, err := utils.AuthClient.VerifyIDToken(ctx, idToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			return
		}

		if cacheEnabled {
			_ = cache.Set(ctx, cacheKey, token.UID, 5*time.Minute).Err()
		}

		c.Set("userID", token.UID)
		c.Next()
	}
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
