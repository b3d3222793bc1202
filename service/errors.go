package service

import (
	"errors"
	"sort"
	"strings"
)

// 拍賣流程錯誤
var (
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrTicketAlreadySold = errors.New("ticket is already sold")
	ErrNoBidderSelected  = errors.New("no bidder selected")
	ErrInvalidBidder     = errors.New("invalid bidder selected")
)

// 帳號流程錯誤
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// FieldErrors 是註冊時的欄位層級驗證錯誤，鍵是欄位名稱
// 序列化後的形狀與原系統的欄位錯誤回應相同
type FieldErrors map[string][]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "invalid fields: " + strings.Join(fields, ", ")
}

func (e FieldErrors) add(field, message string) {
	e[field] = append(e[field], message)
}
