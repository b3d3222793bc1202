package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tixbid/repository"
	"tixbid/service"
)

// abortWithError 把 service/repository 層的錯誤轉換成結構化的 HTTP 回應
// 錯誤回應一律是 {"error": "..."}，未知錯誤記錄後回 500，不讓請求把行程弄掛
func abortWithError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
	case errors.Is(err, service.ErrTicketAlreadySold):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ticket is already sold"})
	case errors.Is(err, service.ErrNoBidderSelected):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No bidder selected to sell the ticket"})
	case errors.Is(err, service.ErrInvalidBidder):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bidder selected"})
	case errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Token"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		slog.Error("Unhandled error", slog.String("op", op), slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
