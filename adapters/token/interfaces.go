//go:generate mockgen -package=token -destination=mock.go -source=interfaces.go

package token

import "github.com/google/uuid"

// IIssuer 定義 token 簽發與驗證的操作介面
type IIssuer interface {
	// IssuePair 簽發綁定指定使用者的 access/refresh token 組
	IssuePair(userID uuid.UUID, username string) (Pair, error)
	// IssueAccessToken 只簽發 access token，用於 refresh 流程
	IssueAccessToken(userID uuid.UUID, username string) (string, error)
	// Parse 解析並驗證 token，token 類型不符合 expected 時回傳錯誤
	Parse(tokenString string, expected Type) (*Claims, error)
}
