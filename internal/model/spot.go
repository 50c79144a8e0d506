package model

import (
	"time"

	"github.com/google/uuid"
)

// SpotStatus 座位狀態類型
type SpotStatus string

const (
	SpotStatusAvailable SpotStatus = "available"
	SpotStatusReserved  SpotStatus = "reserved"
)

// IsValid 驗證狀態是否有效
func (s SpotStatus) IsValid() bool {
	switch s {
	case SpotStatusAvailable, SpotStatusReserved:
		return true
	}
	return false
}

// CanTransitionTo 檢查是否可以轉換到目標狀態
func (s SpotStatus) CanTransitionTo(target SpotStatus) bool {
	transitions := map[SpotStatus][]SpotStatus{
		SpotStatusAvailable: {SpotStatusReserved},
		SpotStatusReserved:  {}, // 已預訂的座位不能再轉換
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// Spot 座位模型，隸屬於某個 Event
type Spot struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	EventID   uuid.UUID  `json:"event_id" db:"event_id"`
	Name      string     `json:"name" db:"name"`
	Status    SpotStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

type UpdateSpotParams struct {
	Name *string
}
