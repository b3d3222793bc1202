package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"tixbid/adapters/denylist"
	"tixbid/adapters/password"
	"tixbid/adapters/token"
	"tixbid/models"
	"tixbid/repository"
)

// AccountService 負責註冊、登入、登出與 token 更新流程
type AccountService struct {
	store    repository.IStore
	hasher   *password.Hasher
	issuer   token.IIssuer
	denyList denylist.IDenyList
}

// NewAccountService 建立新的 AccountService
func NewAccountService(store repository.IStore, hasher *password.Hasher, issuer token.IIssuer, denyList denylist.IDenyList) *AccountService {
	return &AccountService{
		store:    store,
		hasher:   hasher,
		issuer:   issuer,
		denyList: denyList,
	}
}

// RegisterInput 是註冊流程的輸入
type RegisterInput struct {
	Username string
	Password string
	Email    string
	Address  string
}

// Register 驗證欄位、雜湊密碼並建立使用者
// 欄位驗證失敗回傳 FieldErrors，重複的使用者名稱回傳 ErrUsernameTaken
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	const op = "AccountService.Register"

	fieldErrs := FieldErrors{}
	if strings.TrimSpace(input.Username) == "" {
		fieldErrs.add("username", "This field may not be blank")
	}
	if input.Password == "" {
		fieldErrs.add("password", "This field may not be blank")
	}
	if strings.TrimSpace(input.Email) == "" {
		fieldErrs.add("email", "This field may not be blank")
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to hash password, err=%w", op, err)
	}

	user := models.User{
		Username:     strings.TrimSpace(input.Username),
		PasswordHash: hashed,
		Email:        strings.TrimSpace(input.Email),
		Address:      input.Address,
	}
	if err := s.store.Users().Create(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrDuplicated) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("[%s] Fail to create user, err=%w", op, err)
	}

	slog.Info("Account created", slog.String("username", user.Username))
	return &user, nil
}

// Login 驗證帳號密碼並簽發 token 組
// 使用者不存在與密碼錯誤回傳同一個 ErrInvalidCredentials，不洩漏帳號是否存在
func (s *AccountService) Login(ctx context.Context, username, rawPassword string) (*models.User, token.Pair, error) {
	const op = "AccountService.Login"

	user, err := s.store.Users().GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, token.Pair{}, ErrInvalidCredentials
	}
	if err != nil {
		return nil, token.Pair{}, fmt.Errorf("[%s] Fail to find user, err=%w", op, err)
	}

	if !s.hasher.Verify(user.PasswordHash, rawPassword) {
		return nil, token.Pair{}, ErrInvalidCredentials
	}

	pair, err := s.issuer.IssuePair(user.ID, user.Username)
	if err != nil {
		return nil, token.Pair{}, fmt.Errorf("[%s] Fail to issue token pair, err=%w", op, err)
	}

	slog.Info("Login successful", slog.String("username", user.Username))
	return user, pair, nil
}

// Logout 撤銷 refresh token，把它的 jti 加入 deny-list
// deny-list 項目的存活時間等於 token 的剩餘有效時間，之後 token 自然過期
func (s *AccountService) Logout(ctx context.Context, refreshToken string) error {
	const op = "AccountService.Logout"

	claims, err := s.issuer.Parse(refreshToken, token.TypeRefresh)
	if err != nil {
		return ErrInvalidToken
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ErrInvalidToken
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return ErrInvalidToken
	}

	record := denylist.Record{UserID: userID, RevokedAt: time.Now()}
	if err := s.denyList.Revoke(ctx, claims.ID, record, ttl); err != nil {
		if errors.Is(err, denylist.ErrAlreadyRevoked) {
			return ErrInvalidToken
		}
		return fmt.Errorf("[%s] Fail to revoke token, err=%w", op, err)
	}

	slog.Info("User logged out", slog.String("userID", userID.String()))
	return nil
}

// Refresh 以有效且未被撤銷的 refresh token 換取新的 access token
func (s *AccountService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	const op = "AccountService.Refresh"

	claims, err := s.issuer.Parse(refreshToken, token.TypeRefresh)
	if err != nil {
		return "", ErrInvalidToken
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return "", ErrInvalidToken
	}

	revoked, err := s.denyList.IsRevoked(ctx, claims.ID)
	if err != nil {
		return "", fmt.Errorf("[%s] Fail to check deny-list, err=%w", op, err)
	}
	if revoked {
		return "", ErrInvalidToken
	}

	access, err := s.issuer.IssueAccessToken(userID, claims.Username)
	if err != nil {
		return "", fmt.Errorf("[%s] Fail to issue access token, err=%w", op, err)
	}
	return access, nil
}
