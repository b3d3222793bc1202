package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestBiddingsByTicket(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Run("ordered by creation", func(t *testing.T) {
		impl, store, router := setupTest(t)
		seller := createUser(t, store, "seller", false)
		buyer := createUser(t, store, "buyer", false)
		ticket := createTicket(t, store, seller)
		otherTicket := createTicket(t, store, seller)
		first := createBid(t, store, ticket, buyer, 120)
		second := createBid(t, store, ticket, buyer, 150)
		createBid(t, store, otherTicket, buyer, 300)

		recorder, _ := doRequest(t, router, http.MethodGet,
			fmt.Sprintf("/get-biddings-by-ticket-id/%s/", ticket.ID), accessTokenFor(t, impl, seller), nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		items := decodeList(t, recorder)
		require.Len(t, items, 2)
		assert.Equal(t, first.ID.String(), items[0]["id"])
		assert.Equal(t, second.ID.String(), items[1]["id"])
		// 原系統的欄位拼字
		assert.Equal(t, seller.ID.String(), items[0]["auctionerId"])
		assert.Equal(t, buyer.ID.String(), items[0]["bidderId"])
	})

	t.Run("no bids is an empty list", func(t *testing.T) {
		impl, store, router := setupTest(t)
		seller := createUser(t, store, "seller", false)
		ticket := createTicket(t, store, seller)

		recorder, _ := doRequest(t, router, http.MethodGet,
			fmt.Sprintf("/get-biddings-by-ticket-id/%s/", ticket.ID), accessTokenFor(t, impl, seller), nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Len(t, decodeList(t, recorder), 0)
	})

	t.Run("unknown ticket is an empty list", func(t *testing.T) {
		impl, store, router := setupTest(t)
		user := createUser(t, store, "seller", false)

		for _, ticketID := range []string{uuid.New().String(), "not-a-uuid"} {
			recorder, _ := doRequest(t, router, http.MethodGet,
				"/get-biddings-by-ticket-id/"+ticketID+"/", accessTokenFor(t, impl, user), nil)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Len(t, decodeList(t, recorder), 0)
		}
	})
}

func TestBiddingCRUD(t *testing.T) {
	defer goleak.VerifyNone(t)

	impl, store, router := setupTest(t)
	seller := createUser(t, store, "seller", false)
	buyer := createUser(t, store, "buyer", false)
	ticket := createTicket(t, store, seller)
	accessToken := accessTokenFor(t, impl, buyer)

	// Create, 賣家與出價者由伺服器決定
	recorder, body := doRequest(t, router, http.MethodPost, "/biddings/", accessToken, map[string]any{
		"ticketId":     ticket.ID.String(),
		"biddingPrice": 150.5,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, seller.ID.String(), body["auctionerId"])
	assert.Equal(t, buyer.ID.String(), body["bidderId"])
	assert.Equal(t, ticket.ID.String(), body["ticketId"])
	assert.InDelta(t, 150.5, body["biddingPrice"], 0.001)
	bidID := body["id"].(string)

	// Create對不存在的票券出價
	recorder, body = doRequest(t, router, http.MethodPost, "/biddings/", accessToken, map[string]any{
		"ticketId":     uuid.New().String(),
		"biddingPrice": 150.5,
	})
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Ticket not found", body["error"])

	// List
	recorder, _ = doRequest(t, router, http.MethodGet, "/biddings/", accessToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, decodeList(t, recorder), 1)

	// Get
	recorder, body = doRequest(t, router, http.MethodGet, "/biddings/"+bidID+"/", accessToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, bidID, body["id"])

	// Update只能調整出價金額
	recorder, body = doRequest(t, router, http.MethodPut, "/biddings/"+bidID+"/", accessToken, map[string]any{
		"biddingPrice": 180.0,
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.InDelta(t, 180.0, body["biddingPrice"], 0.001)
	assert.Equal(t, buyer.ID.String(), body["bidderId"])

	// Delete
	recorder, _ = doRequest(t, router, http.MethodDelete, "/biddings/"+bidID+"/", accessToken, nil)
	require.Equal(t, http.StatusNoContent, recorder.Code)
	recorder, body = doRequest(t, router, http.MethodGet, "/biddings/"+bidID+"/", accessToken, nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Bidding not found", body["error"])
}
