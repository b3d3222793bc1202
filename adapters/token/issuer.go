package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Type 區分 access 與 refresh token，寫入 token_type claim
type Type string

const (
	TypeAccess  Type = "access"
	TypeRefresh Type = "refresh"
)

var (
	ErrEmptySecret    = errors.New("signing secret is empty")
	ErrInvalidToken   = errors.New("token is invalid")
	ErrWrongTokenType = errors.New("unexpected token type")
)

// Claims 是本系統 JWT 的自訂 claims
type Claims struct {
	Username  string `json:"username"`
	TokenType Type   `json:"token_type"`
	jwt.RegisteredClaims
}

// Pair 是一次登入簽發的 token 組
type Pair struct {
	AccessToken  string
	RefreshToken string
}

// IssuerOptions 包含 Issuer 的設定選項
type IssuerOptions struct {
	issuer          string
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

type IssuerOption func(*IssuerOptions)

// WithIssuer 設定 iss claim
func WithIssuer(issuer string) IssuerOption {
	return func(o *IssuerOptions) {
		o.issuer = issuer
	}
}

// WithAccessTokenTTL 設定 access token 的有效期間
func WithAccessTokenTTL(ttl time.Duration) IssuerOption {
	return func(o *IssuerOptions) {
		o.accessTokenTTL = ttl
	}
}

// WithRefreshTokenTTL 設定 refresh token 的有效期間
func WithRefreshTokenTTL(ttl time.Duration) IssuerOption {
	return func(o *IssuerOptions) {
		o.refreshTokenTTL = ttl
	}
}

// Issuer 實作 IIssuer，以 HMAC-SHA256 簽發 JWT
type Issuer struct {
	secret  []byte
	options IssuerOptions
}

// NewIssuer 建立新的 Issuer
// 預設有效時間比照原系統: access 5 分鐘，refresh 24 小時
func NewIssuer(secret []byte, opts ...IssuerOption) (*Issuer, error) {
	const op = "NewIssuer"
	if len(secret) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptySecret)
	}
	options := IssuerOptions{
		issuer:          "tixbid",
		accessTokenTTL:  5 * time.Minute,
		refreshTokenTTL: 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &Issuer{secret: secret, options: options}, nil
}

// IssuePair 簽發 access/refresh token 組，兩者有各自的 jti
func (i *Issuer) IssuePair(userID uuid.UUID, username string) (Pair, error) {
	const op = "Issuer.IssuePair"
	access, err := i.sign(userID, username, TypeAccess, i.options.accessTokenTTL)
	if err != nil {
		return Pair{}, fmt.Errorf("%s: %w", op, err)
	}
	refresh, err := i.sign(userID, username, TypeRefresh, i.options.refreshTokenTTL)
	if err != nil {
		return Pair{}, fmt.Errorf("%s: %w", op, err)
	}
	return Pair{AccessToken: access, RefreshToken: refresh}, nil
}

func (i *Issuer) IssueAccessToken(userID uuid.UUID, username string) (string, error) {
	const op = "Issuer.IssueAccessToken"
	access, err := i.sign(userID, username, TypeAccess, i.options.accessTokenTTL)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return access, nil
}

func (i *Issuer) sign(userID uuid.UUID, username string, tokenType Type, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Username:  username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    i.options.issuer,
			Subject:   userID.String(),
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Parse 解析並驗證 token，同時確認 token 類型
func (i *Issuer) Parse(tokenString string, expected Type) (*Claims, error) {
	const op = "Issuer.Parse"
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}
	if claims.TokenType != expected {
		return nil, fmt.Errorf("%s: %w", op, ErrWrongTokenType)
	}
	return claims, nil
}
