package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tixbid/adapters/token"
)

const contextKeyClaims = "tixbid-auth-claims"

// Authenticate 驗證 Bearer access token，並把 claims 放進 gin context
// 後續的 handler 透過 currentClaims/currentUserID 取得登入身分
func (impl *ServerImpl) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		const op = "Authenticate"

		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
			return
		}

		claims, err := impl.issuer.Parse(parts[1], token.TypeAccess)
		if err != nil {
			slog.Warn("Fail to parse and validate JWT", slog.String("op", op), slog.Any("error", err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(contextKeyClaims, claims)
		c.Next()
	}
}

// RequireStaff 限制只有 staff 使用者能進入，必須接在 Authenticate 之後
// staff 狀態以資料庫目前的值為準，不信任 token 簽發當下的狀態
func (impl *ServerImpl) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		const op = "RequireStaff"

		userID, ok := currentUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		user, err := impl.store.Users().Get(c.Request.Context(), userID)
		if err != nil {
			slog.Warn("Fail to load user for staff check", slog.String("op", op), slog.Any("error", err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if !user.IsStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin privileges required"})
			return
		}

		c.Next()
	}
}

func currentClaims(c *gin.Context) (*token.Claims, bool) {
	value, ok := c.Get(contextKeyClaims)
	if !ok {
		return nil, false
	}
	claims, ok := value.(*token.Claims)
	return claims, ok
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	claims, ok := currentClaims(c)
	if !ok {
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}
