package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

// TicketKind 票種：全票 / 半票
type TicketKind string

const (
	TicketKindFull TicketKind = "full"
	TicketKindHalf TicketKind = "half"
)

func (k TicketKind) IsValid() bool {
	return k == TicketKindFull || k == TicketKindHalf
}

// PriceFor 依票種計算票價，半票為活動價格的一半
func (k TicketKind) PriceFor(eventPrice float64) float64 {
	if k == TicketKindHalf {
		return eventPrice / 2
	}
	return eventPrice
}

// Ticket 票券模型，一張票對應一個座位
type Ticket struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	EventID   uuid.UUID  `json:"event_id" db:"event_id"`
	SpotID    uuid.UUID  `json:"spot_id" db:"spot_id"`
	SpotName  string     `json:"spot_name" db:"spot_name"`
	Code      string     `json:"code" db:"code"`
	Kind      TicketKind `json:"ticket_kind" db:"ticket_kind"`
	Email     string     `json:"email" db:"email"`
	Price     float64    `json:"price" db:"price"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// NewTicket 為指定座位開票
func NewTicket(event *Event, spot *Spot, kind TicketKind, email string) *Ticket {
	id := uuid.New()
	return &Ticket{
		ID:       id,
		EventID:  event.ID,
		SpotID:   spot.ID,
		SpotName: spot.Name,
		Code:     TicketCode(id),
		Kind:     kind,
		Email:    email,
		Price:    kind.PriceFor(event.Price),
	}
}

// TicketCode 把票券 id 轉成較短、可列印的 base58 字串
func TicketCode(id uuid.UUID) string {
	return base58.Encode(id[:])
}
