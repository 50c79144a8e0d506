package model

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validate 與 gin binding 用同一套規則，service 直接呼叫時也會檢查到
var validate = validator.New()

type ReservationStatus string

const (
	ReservationStatusReserved ReservationStatus = "reserved"
)

// ReserveSpotsParams 預訂請求（已轉成標準欄位）
type ReserveSpotsParams struct {
	EventID        uuid.UUID
	Spots          []string
	TicketKind     TicketKind
	Email          string
	IdempotencyKey string
}

// ValidateFields 檢查座位清單與 email；票種另外由 TicketKind.IsValid 檢查
func (p ReserveSpotsParams) ValidateFields() bool {
	if len(p.Spots) == 0 {
		return false
	}
	seen := make(map[string]struct{}, len(p.Spots))
	for _, name := range p.Spots {
		if name == "" {
			return false
		}
		if _, dup := seen[name]; dup {
			return false
		}
		seen[name] = struct{}{}
	}
	return validate.Var(p.Email, "required,email") == nil
}

// Fingerprint 請求內容的雜湊，用來確認同一把 idempotency key 沒被拿去送別的預訂。
// 座位順序決定開票順序，所以順序不同視為不同請求
func (p ReserveSpotsParams) Fingerprint() string {
	h := sha256.New()
	for _, part := range []string{p.EventID.String(), strings.Join(p.Spots, "\x00"), string(p.TicketKind), p.Email} {
		h.Write([]byte(part))
		h.Write([]byte{0x1f})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ReservationNotice 預訂成功後發送到 MQ 的訊息，一張票一則
type ReservationNotice struct {
	TicketID   uuid.UUID         `json:"ticket_id"`
	EventID    uuid.UUID         `json:"event_id"`
	SpotID     uuid.UUID         `json:"spot_id"`
	TicketKind TicketKind        `json:"ticket_kind"`
	Email      string            `json:"email"`
	Status     ReservationStatus `json:"status"`
	ReservedAt time.Time         `json:"reserved_at"`
}

func NewReservationNotice(t *Ticket) *ReservationNotice {
	return &ReservationNotice{
		TicketID:   t.ID,
		EventID:    t.EventID,
		SpotID:     t.SpotID,
		TicketKind: t.Kind,
		Email:      t.Email,
		Status:     ReservationStatusReserved,
		ReservedAt: t.CreatedAt,
	}
}

// ReservationHistory 預訂紀錄（稽核用），由 worker 非同步寫入
type ReservationHistory struct {
	ID         uuid.UUID         `json:"id" db:"id"`
	TicketID   uuid.UUID         `json:"ticket_id" db:"ticket_id"`
	EventID    uuid.UUID         `json:"event_id" db:"event_id"`
	SpotID     uuid.UUID         `json:"spot_id" db:"spot_id"`
	TicketKind TicketKind        `json:"ticket_kind" db:"ticket_kind"`
	Email      string            `json:"email" db:"email"`
	Status     ReservationStatus `json:"status" db:"status"`
	ReservedAt time.Time         `json:"reserved_at" db:"reserved_at"`
	CreatedAt  time.Time         `json:"created_at" db:"created_at"`
}
