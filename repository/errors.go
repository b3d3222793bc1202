package repository

import "errors"

var (
	// ErrNotFound 表示查詢的紀錄不存在
	ErrNotFound = errors.New("record not found")
	// ErrDuplicated 表示寫入違反唯一性限制(例如重複的使用者名稱)
	ErrDuplicated = errors.New("record already exists")
)
