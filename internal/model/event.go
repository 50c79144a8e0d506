package model

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Date        time.Time `json:"date" db:"date"`
	Price       float64   `json:"price" db:"price"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type UpdateEventParams struct {
	Name        *string
	Description *string
	Date        *time.Time
	Price       *float64
}

// IsEmpty 是否沒有任何欄位需要更新
func (p UpdateEventParams) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Date == nil && p.Price == nil
}

// Validate 檢查建立活動的必要欄位
func (e *Event) Validate() bool {
	return e.Name != "" && !e.Date.IsZero() && e.Price >= 0
}

func (p UpdateEventParams) Validate() bool {
	if p.IsEmpty() {
		return false
	}
	if p.Name != nil && *p.Name == "" {
		return false
	}
	if p.Date != nil && p.Date.IsZero() {
		return false
	}
	if p.Price != nil && *p.Price < 0 {
		return false
	}
	return true
}
