package denylist

import (
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// Record 是撤銷紀錄，保存撤銷者與撤銷時間，方便稽核
type Record struct {
	UserID    uuid.UUID
	RevokedAt time.Time
}

func (r Record) MarshalBinary() ([]byte, error) {
	type tmp struct {
		UserID    string
		RevokedAt time.Time
	}
	return msgpack.Marshal(tmp{UserID: r.UserID.String(), RevokedAt: r.RevokedAt})
}

func (r *Record) UnmarshalBinary(data []byte) error {
	type tmp struct {
		UserID    string
		RevokedAt time.Time
	}
	var bfr tmp
	if err := msgpack.Unmarshal(data, &bfr); err != nil {
		return err
	}
	userID, err := uuid.Parse(bfr.UserID)
	if err != nil {
		return err
	}
	r.UserID = userID
	r.RevokedAt = bfr.RevokedAt
	return nil
}
