package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tixbid/adapters/denylist"
	"tixbid/adapters/password"
	"tixbid/adapters/token"
	"tixbid/models"
	"tixbid/repository"
	"tixbid/service"
)

// fakeDenyList 是測試用的記憶體 deny-list，行為對齊 Redis 版本
type fakeDenyList struct {
	mu      sync.Mutex
	revoked map[string]denylist.Record
}

func newFakeDenyList() *fakeDenyList {
	return &fakeDenyList{revoked: map[string]denylist.Record{}}
}

func (f *fakeDenyList) Revoke(_ context.Context, jti string, record denylist.Record, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.revoked[jti]; ok {
		return denylist.ErrAlreadyRevoked
	}
	f.revoked[jti] = record
	return nil
}

func (f *fakeDenyList) IsRevoked(_ context.Context, jti string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.revoked[jti]
	return ok, nil
}

// setupTest 建立一個以記憶體儲存與真實token簽發器組成的測試伺服器
func setupTest(t *testing.T) (*ServerImpl, *repository.MemoryStore, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	issuer, err := token.NewIssuer([]byte("test-secret"))
	require.NoError(t, err)
	store := repository.NewMemoryStore()
	hasher := password.NewHasher(password.WithCost(bcrypt.MinCost))

	impl := &ServerImpl{
		store:       store,
		auction:     service.NewAuctionService(store),
		accounts:    service.NewAccountService(store, hasher, issuer, newFakeDenyList()),
		issuer:      issuer,
		hasher:      hasher,
		htmlChecker: bluemonday.UGCPolicy(),
	}
	router := gin.New()
	impl.RegisterRoutes(router)
	return impl, store, router
}

func createUser(t *testing.T, store *repository.MemoryStore, username string, isStaff bool) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		Username:     username,
		PasswordHash: string(hashed),
		Email:        username + "@example.com",
		Address:      "No. 1, Test Road",
		IsStaff:      isStaff,
	}
	require.NoError(t, store.Users().Create(context.Background(), user))
	return user
}

func createTicket(t *testing.T, store *repository.MemoryStore, auctioneer *models.User) *models.Ticket {
	t.Helper()
	now := time.Now()
	ticket := &models.Ticket{
		AuctioneerID: auctioneer.ID,
		Image:        "https://img.example.com/ticket.png",
		Validity:     now.Add(72 * time.Hour),
		MinPrice:     100,
		Details:      "front row seat",
		Categories:   "concert",
		EventVenue:   "Arena",
		StartingDate: now,
		ExpiryDate:   now.Add(48 * time.Hour),
	}
	require.NoError(t, store.Tickets().Create(context.Background(), ticket))
	return ticket
}

func createBid(t *testing.T, store *repository.MemoryStore, ticket *models.Ticket, bidder *models.User, price float64) *models.Bid {
	t.Helper()
	bid := &models.Bid{
		AuctioneerID: ticket.AuctioneerID,
		TicketID:     ticket.ID,
		BidderID:     bidder.ID,
		BiddingPrice: price,
		BiddingDate:  time.Now(),
	}
	require.NoError(t, store.Bids().Create(context.Background(), bid))
	return bid
}

func accessTokenFor(t *testing.T, impl *ServerImpl, user *models.User) string {
	t.Helper()
	accessToken, err := impl.issuer.IssueAccessToken(user.ID, user.Username)
	require.NoError(t, err)
	return accessToken
}

// doRequest 發出一個request並回傳recorder與解析後的JSON body
func doRequest(t *testing.T, router *gin.Engine, method, path, accessToken string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	parsed := map[string]any{}
	if recorder.Body.Len() > 0 {
		// list回應不是object，交由個別測試自行解析
		_ = json.Unmarshal(recorder.Body.Bytes(), &parsed)
	}
	return recorder, parsed
}

func decodeList(t *testing.T, recorder *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var items []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &items))
	return items
}
