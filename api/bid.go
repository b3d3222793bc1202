package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"tixbid/models"
	"tixbid/repository"
)

// biddingResponse 的 auctionerId 是原系統的拼字，為了相容沿用
type biddingResponse struct {
	ID           uuid.UUID `json:"id"`
	AuctioneerID uuid.UUID `json:"auctionerId"`
	TicketID     uuid.UUID `json:"ticketId"`
	BidderID     uuid.UUID `json:"bidderId"`
	BiddingPrice float64   `json:"biddingPrice"`
	BiddingDate  time.Time `json:"biddingDate"`
}

func newBiddingResponse(bid models.Bid) biddingResponse {
	return biddingResponse{
		ID:           bid.ID,
		AuctioneerID: bid.AuctioneerID,
		TicketID:     bid.TicketID,
		BidderID:     bid.BidderID,
		BiddingPrice: bid.BiddingPrice,
		BiddingDate:  bid.BiddingDate,
	}
}

func newBiddingResponses(bids []models.Bid) []biddingResponse {
	return lo.Map(bids, func(bid models.Bid, _ int) biddingResponse {
		return newBiddingResponse(bid)
	})
}

// List all biddings
// (GET /biddings/)
func (impl *ServerImpl) ListBiddings(c *gin.Context) {
	const op = "ListBiddings"

	bids, err := impl.store.Bids().List(c.Request.Context())
	if err != nil {
		abortWithError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, newBiddingResponses(bids))
}

// Place a bid on a ticket
// (POST /biddings/)
func (impl *ServerImpl) CreateBidding(c *gin.Context) {
	const op = "CreateBidding"

	var request struct {
		TicketID     uuid.UUID `json:"ticketId" binding:"required"`
		BiddingPrice float64   `json:"biddingPrice" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	// 出價者以登入身分為準，賣家與出價時間由伺服器決定
	bidderID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}
	ticket, err := impl.store.Tickets().Get(c.Request.Context(), request.TicketID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
			return
		}
		abortWithError(c, op, err)
		return
	}

	bid := models.Bid{
		AuctioneerID: ticket.AuctioneerID,
		TicketID:     ticket.ID,
		BidderID:     bidderID,
		BiddingPrice: request.BiddingPrice,
		BiddingDate:  time.Now(),
	}
	if err := impl.store.Bids().Create(c.Request.Context(), &bid); err != nil {
		abortWithError(c, op, err)
		return
	}
	c.JSON(http.StatusCreated, newBiddingResponse(bid))
}

// Get a single bidding
// (GET /biddings/{id}/)
func (impl *ServerImpl) GetBidding(c *gin.Context) {
	const op = "GetBidding"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bidding not found"})
		return
	}
	bid, err := impl.store.Bids().Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bidding not found"})
			return
		}
		abortWithError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, newBiddingResponse(*bid))
}

// Update a bidding's price
// (PUT /biddings/{id}/)
func (impl *ServerImpl) UpdateBidding(c *gin.Context) {
	const op = "UpdateBidding"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bidding not found"})
		return
	}
	var request struct {
		BiddingPrice float64 `json:"biddingPrice" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	bid, err := impl.store.Bids().Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bidding not found"})
			return
		}
		abortWithError(c, op, err)
		return
	}

	bid.BiddingPrice = request.BiddingPrice
	bid.BiddingDate = time.Now()
	if err := impl.store.Bids().Update(c.Request.Context(), bid); err != nil {
		abortWithError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, newBiddingResponse(*bid))
}

// Delete a bidding
// (DELETE /biddings/{id}/)
func (impl *ServerImpl) DeleteBidding(c *gin.Context) {
	const op = "DeleteBidding"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bidding not found"})
		return
	}
	if err := impl.store.Bids().Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bidding not found"})
			return
		}
		abortWithError(c, op, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// List all biddings on one ticket, oldest first
// (GET /get-biddings-by-ticket-id/{ticket_id}/)
func (impl *ServerImpl) BiddingsByTicket(c *gin.Context) {
	const op = "BiddingsByTicket"

	// 原系統對不存在的票券回傳空清單，無效的 ID 比照辦理
	ticketID, err := uuid.Parse(c.Param("ticket_id"))
	if err != nil {
		c.JSON(http.StatusOK, []biddingResponse{})
		return
	}

	bids, err := impl.auction.BidsByTicket(c.Request.Context(), ticketID)
	if err != nil {
		abortWithError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, newBiddingResponses(bids))
}
