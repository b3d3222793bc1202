package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestSellTicket(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Run("success", func(t *testing.T) {
		impl, store, router := setupTest(t)
		seller := createUser(t, store, "seller", false)
		buyer := createUser(t, store, "buyer", false)
		ticket := createTicket(t, store, seller)
		bid := createBid(t, store, ticket, buyer, 150)

		recorder, body := doRequest(t, router, http.MethodPost,
			fmt.Sprintf("/sell-ticket/%s/", ticket.ID), accessTokenFor(t, impl, seller),
			map[string]any{"bidderId": bid.ID.String()})
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, fmt.Sprintf("Ticket sold successfully to bidder with ID: %s", bid.ID), body["message"])

		updated, err := store.Tickets().Get(context.Background(), ticket.ID)
		require.NoError(t, err)
		assert.True(t, updated.IsSold)
		require.NotNil(t, updated.BidID)
		assert.Equal(t, bid.ID, *updated.BidID)
	})

	t.Run("already sold", func(t *testing.T) {
		impl, store, router := setupTest(t)
		seller := createUser(t, store, "seller", false)
		buyer := createUser(t, store, "buyer", false)
		other := createUser(t, store, "other", false)
		ticket := createTicket(t, store, seller)
		winner := createBid(t, store, ticket, buyer, 150)
		loser := createBid(t, store, ticket, other, 200)

		accessToken := accessTokenFor(t, impl, seller)
		recorder, _ := doRequest(t, router, http.MethodPost,
			fmt.Sprintf("/sell-ticket/%s/", ticket.ID), accessToken,
			map[string]any{"bidderId": winner.ID.String()})
		require.Equal(t, http.StatusOK, recorder.Code)

		recorder, body := doRequest(t, router, http.MethodPost,
			fmt.Sprintf("/sell-ticket/%s/", ticket.ID), accessToken,
			map[string]any{"bidderId": loser.ID.String()})
		require.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Ticket is already sold", body["error"])

		// 第一次成交的結果不變
		updated, err := store.Tickets().Get(context.Background(), ticket.ID)
		require.NoError(t, err)
		require.NotNil(t, updated.BidID)
		assert.Equal(t, winner.ID, *updated.BidID)
	})

	t.Run("ticket not found", func(t *testing.T) {
		impl, store, router := setupTest(t)
		seller := createUser(t, store, "seller", false)

		recorder, body := doRequest(t, router, http.MethodPost,
			fmt.Sprintf("/sell-ticket/%s/", uuid.New()), accessTokenFor(t, impl, seller),
			map[string]any{"bidderId": uuid.New().String()})
		require.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "Ticket not found", body["error"])
	})

	t.Run("no bidder selected", func(t *testing.T) {
		impl, store, router := setupTest(t)
		seller := createUser(t, store, "seller", false)
		ticket := createTicket(t, store, seller)

		recorder, body := doRequest(t, router, http.MethodPost,
			fmt.Sprintf("/sell-ticket/%s/", ticket.ID), accessTokenFor(t, impl, seller), nil)
		require.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "No bidder selected to sell the ticket", body["error"])

		updated, err := store.Tickets().Get(context.Background(), ticket.ID)
		require.NoError(t, err)
		assert.False(t, updated.IsSold)
	})

	t.Run("invalid bidder", func(t *testing.T) {
		impl, store, router := setupTest(t)
		seller := createUser(t, store, "seller", false)
		ticket := createTicket(t, store, seller)

		for _, bidderID := range []string{"not-a-uuid", uuid.New().String()} {
			recorder, body := doRequest(t, router, http.MethodPost,
				fmt.Sprintf("/sell-ticket/%s/", ticket.ID), accessTokenFor(t, impl, seller),
				map[string]any{"bidderId": bidderID})
			require.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Equal(t, "Invalid bidder selected", body["error"])
		}
	})

	t.Run("bid from another ticket", func(t *testing.T) {
		impl, store, router := setupTest(t)
		seller := createUser(t, store, "seller", false)
		buyer := createUser(t, store, "buyer", false)
		ticket := createTicket(t, store, seller)
		otherTicket := createTicket(t, store, seller)
		otherBid := createBid(t, store, otherTicket, buyer, 150)

		recorder, body := doRequest(t, router, http.MethodPost,
			fmt.Sprintf("/sell-ticket/%s/", ticket.ID), accessTokenFor(t, impl, seller),
			map[string]any{"bidderId": otherBid.ID.String()})
		require.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Invalid bidder selected", body["error"])
	})

	t.Run("requires access token", func(t *testing.T) {
		_, _, router := setupTest(t)

		recorder, body := doRequest(t, router, http.MethodPost,
			fmt.Sprintf("/sell-ticket/%s/", uuid.New()), "", nil)
		require.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, "Authorization token missing", body["error"])
	})
}

func TestTicketCRUD(t *testing.T) {
	defer goleak.VerifyNone(t)

	impl, store, router := setupTest(t)
	seller := createUser(t, store, "seller", false)
	accessToken := accessTokenFor(t, impl, seller)
	now := time.Now().UTC().Truncate(time.Second)

	// Create, 帶HTML的details會被消毒
	recorder, body := doRequest(t, router, http.MethodPost, "/tickets/", accessToken, map[string]any{
		"image":        "https://img.example.com/ticket.png",
		"validity":     now.Add(72 * time.Hour).Format(time.RFC3339),
		"minPrice":     100.5,
		"details":      `front row <script>alert("x")</script>seat`,
		"categories":   "concert",
		"eventVenue":   "Arena",
		"startingDate": now.Format(time.RFC3339),
		"expiryDate":   now.Add(48 * time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, seller.ID.String(), body["auctioneerId"])
	assert.Equal(t, "front row seat", body["details"])
	assert.Equal(t, false, body["isSold"])
	assert.Nil(t, body["bid"])
	ticketID := body["id"].(string)

	// List
	recorder, _ = doRequest(t, router, http.MethodGet, "/tickets/", accessToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, decodeList(t, recorder), 1)

	// Get
	recorder, body = doRequest(t, router, http.MethodGet, "/tickets/"+ticketID+"/", accessToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, ticketID, body["id"])

	// Update
	recorder, body = doRequest(t, router, http.MethodPut, "/tickets/"+ticketID+"/", accessToken, map[string]any{
		"image":        "https://img.example.com/ticket-v2.png",
		"validity":     now.Add(96 * time.Hour).Format(time.RFC3339),
		"minPrice":     200,
		"details":      "updated details",
		"categories":   "theater",
		"eventVenue":   "Hall",
		"startingDate": now.Format(time.RFC3339),
		"expiryDate":   now.Add(72 * time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "theater", body["categories"])
	assert.InDelta(t, 200, body["minPrice"], 0.001)

	// Delete
	recorder, _ = doRequest(t, router, http.MethodDelete, "/tickets/"+ticketID+"/", accessToken, nil)
	require.Equal(t, http.StatusNoContent, recorder.Code)
	recorder, body = doRequest(t, router, http.MethodGet, "/tickets/"+ticketID+"/", accessToken, nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Ticket not found", body["error"])
}
