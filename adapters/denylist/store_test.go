package denylist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestStore_Revoke(t *testing.T) {
	defer goleak.VerifyNone(t)

	record := Record{
		UserID:    uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		RevokedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name    string
		setup   func(mock redismock.ClientMock)
		wantErr error
	}{
		{
			name: "success",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectSetNX("test:denylist:jti-1", record, time.Hour).SetVal(true)
			},
		},
		{
			name: "already_revoked",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectSetNX("test:denylist:jti-1", record, time.Hour).SetVal(false)
			},
			wantErr: ErrAlreadyRevoked,
		},
		{
			name: "redis_error",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectSetNX("test:denylist:jti-1", record, time.Hour).
					SetErr(errors.New("redis connection error"))
			},
			wantErr: errors.New("redis connection error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 準備測試環境
			client, mock, cleanup := setupTest(t)
			defer cleanup()

			tt.setup(mock)

			store := NewStore(client, WithStorePrefix("test:denylist:"))

			// 執行測試
			err := store.Revoke(context.Background(), "jti-1", record, time.Hour)

			// 驗證結果
			if tt.wantErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.wantErr, ErrAlreadyRevoked) {
					assert.ErrorIs(t, err, ErrAlreadyRevoked)
				}
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStore_IsRevoked(t *testing.T) {
	defer goleak.VerifyNone(t)

	tests := []struct {
		name     string
		setup    func(mock redismock.ClientMock)
		expected bool
		wantErr  bool
	}{
		{
			name: "revoked",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectExists("test:denylist:jti-1").SetVal(1)
			},
			expected: true,
		},
		{
			name: "not_revoked",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectExists("test:denylist:jti-1").SetVal(0)
			},
			expected: false,
		},
		{
			name: "redis_error",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectExists("test:denylist:jti-1").
					SetErr(errors.New("redis connection error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mock, cleanup := setupTest(t)
			defer cleanup()

			tt.setup(mock)

			store := NewStore(client, WithStorePrefix("test:denylist:"))

			revoked, err := store.IsRevoked(context.Background(), "jti-1")

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, revoked)
		})
	}
}

func TestRecord_BinaryRoundTrip(t *testing.T) {
	record := Record{
		UserID:    uuid.New(),
		RevokedAt: time.Now().UTC().Truncate(time.Second),
	}

	data, err := record.MarshalBinary()
	require.NoError(t, err)

	var decoded Record
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.Equal(t, record.UserID, decoded.UserID)
	assert.True(t, record.RevokedAt.Equal(decoded.RevokedAt))
}
