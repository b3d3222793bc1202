package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"tixbid/models"
	"tixbid/repository"
)

// ticketRequest 是建立與更新票券的輸入
// 成交狀態 (isSold/bid) 不在其中，只有成交流程能寫入
type ticketRequest struct {
	Image        string    `json:"image"`
	Validity     time.Time `json:"validity" binding:"required"`
	MinPrice     float64   `json:"minPrice" binding:"required"`
	Details      string    `json:"details"`
	Categories   string    `json:"categories"`
	EventVenue   string    `json:"eventVenue" binding:"max=10"`
	StartingDate time.Time `json:"startingDate" binding:"required"`
	ExpiryDate   time.Time `json:"expiryDate" binding:"required"`
}

type ticketResponse struct {
	ID           uuid.UUID  `json:"id"`
	AuctioneerID uuid.UUID  `json:"auctioneerId"`
	Image        string     `json:"image"`
	Validity     time.Time  `json:"validity"`
	MinPrice     float64    `json:"minPrice"`
	Details      string     `json:"details"`
	Categories   string     `json:"categories"`
	EventVenue   string     `json:"eventVenue"`
	StartingDate time.Time  `json:"startingDate"`
	ExpiryDate   time.Time  `json:"expiryDate"`
	IsSold       bool       `json:"isSold"`
	BidID        *uuid.UUID `json:"bid"`
}

func newTicketResponse(ticket models.Ticket) ticketResponse {
	return ticketResponse{
		ID:           ticket.ID,
		AuctioneerID: ticket.AuctioneerID,
		Image:        ticket.Image,
		Validity:     ticket.Validity,
		MinPrice:     ticket.MinPrice,
		Details:      ticket.Details,
		Categories:   ticket.Categories,
		EventVenue:   ticket.EventVenue,
		StartingDate: ticket.StartingDate,
		ExpiryDate:   ticket.ExpiryDate,
		IsSold:       ticket.IsSold,
		BidID:        ticket.BidID,
	}
}

// List all tickets
// (GET /tickets/)
func (impl *ServerImpl) ListTickets(c *gin.Context) {
	const op = "ListTickets"

	tickets, err := impl.store.Tickets().List(c.Request.Context())
	if err != nil {
		abortWithError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, lo.Map(tickets, func(ticket models.Ticket, _ int) ticketResponse {
		return newTicketResponse(ticket)
	}))
}

// Create a new ticket listing
// (POST /tickets/)
func (impl *ServerImpl) CreateTicket(c *gin.Context) {
	const op = "CreateTicket"

	var request ticketRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	// 賣家以登入身分為準，不接受請求指定
	auctioneerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	ticket := models.Ticket{
		AuctioneerID: auctioneerID,
		Image:        request.Image,
		Validity:     request.Validity,
		MinPrice:     request.MinPrice,
		Details:      impl.htmlChecker.Sanitize(request.Details),
		Categories:   request.Categories,
		EventVenue:   request.EventVenue,
		StartingDate: request.StartingDate,
		ExpiryDate:   request.ExpiryDate,
	}
	if err := impl.store.Tickets().Create(c.Request.Context(), &ticket); err != nil {
		abortWithError(c, op, err)
		return
	}
	c.JSON(http.StatusCreated, newTicketResponse(ticket))
}

// Get a single ticket
// (GET /tickets/{id}/)
func (impl *ServerImpl) GetTicket(c *gin.Context) {
	const op = "GetTicket"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}
	ticket, err := impl.store.Tickets().Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
			return
		}
		abortWithError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, newTicketResponse(*ticket))
}

// Update a ticket listing
// (PUT /tickets/{id}/)
func (impl *ServerImpl) UpdateTicket(c *gin.Context) {
	const op = "UpdateTicket"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}
	var request ticketRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ticket, err := impl.store.Tickets().Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
			return
		}
		abortWithError(c, op, err)
		return
	}

	ticket.Image = request.Image
	ticket.Validity = request.Validity
	ticket.MinPrice = request.MinPrice
	ticket.Details = impl.htmlChecker.Sanitize(request.Details)
	ticket.Categories = request.Categories
	ticket.EventVenue = request.EventVenue
	ticket.StartingDate = request.StartingDate
	ticket.ExpiryDate = request.ExpiryDate
	if err := impl.store.Tickets().Update(c.Request.Context(), ticket); err != nil {
		abortWithError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, newTicketResponse(*ticket))
}

// Delete a ticket listing
// (DELETE /tickets/{id}/)
func (impl *ServerImpl) DeleteTicket(c *gin.Context) {
	const op = "DeleteTicket"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}
	if err := impl.store.Tickets().Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
			return
		}
		abortWithError(c, op, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Sell a ticket to the winning bid
// (POST /sell-ticket/{ticket_id}/)
func (impl *ServerImpl) SellTicket(c *gin.Context) {
	const op = "SellTicket"

	ticketID, err := uuid.Parse(c.Param("ticket_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}

	// bidderId 沿用原系統的欄位名稱，內容是得標出價紀錄的 ID
	// 請求沒有 body 或沒有帶 bidderId 時視為未指定得標者
	var request struct {
		BidderID string `json:"bidderId"`
	}
	// 空 body 或格式錯誤都視為未指定得標者，由 service 回報錯誤
	_ = c.ShouldBindJSON(&request)
	var bidID *uuid.UUID
	if request.BidderID != "" {
		parsed, err := uuid.Parse(request.BidderID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bidder selected"})
			return
		}
		bidID = &parsed
	}

	if _, err := impl.auction.SellTicket(c.Request.Context(), ticketID, bidID); err != nil {
		abortWithError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Ticket sold successfully to bidder with ID: %s", request.BidderID),
	})
}
