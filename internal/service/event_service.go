package service

import (
	"context"
	"encoding/json"

	"event-partners-api/internal/cache"
	"event-partners-api/internal/model"
	"event-partners-api/internal/queue"
	"event-partners-api/internal/repository"
	apperrors "event-partners-api/pkg/app_errors"
	"event-partners-api/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventService interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	List(ctx context.Context) ([]*model.Event, error)
	GetByID(ctx context.Context, eventID uuid.UUID) (*model.Event, error)
	Update(ctx context.Context, eventID uuid.UUID, params model.UpdateEventParams) (*model.Event, error)
	Delete(ctx context.Context, eventID uuid.UUID) error
	// ReserveSpots 在同一個 transaction 內鎖定座位並開票，全部成功或全部失敗
	ReserveSpots(ctx context.Context, params model.ReserveSpotsParams) ([]*model.Ticket, error)
}

// reservationResult 快取在 idempotency store 的內容，Request 是請求的 Fingerprint
type reservationResult struct {
	Request string          `json:"request"`
	Tickets []*model.Ticket `json:"tickets"`
}

type EventServiceImpl struct {
	tx          repository.Transactor
	repo        repository.EventRepository
	spotRepo    repository.SpotRepository
	ticketRepo  repository.TicketRepository
	queue       queue.ReservationQueue
	idempotency cache.IdempotencyStore
}

// NewEventService queue 與 idempotency 可為 nil，分別代表不發通知、不做冪等
func NewEventService(
	tx repository.Transactor,
	repo repository.EventRepository,
	spotRepo repository.SpotRepository,
	ticketRepo repository.TicketRepository,
	reservationQueue queue.ReservationQueue,
	idempotency cache.IdempotencyStore,
) EventService {
	return &EventServiceImpl{
		tx:          tx,
		repo:        repo,
		spotRepo:    spotRepo,
		ticketRepo:  ticketRepo,
		queue:       reservationQueue,
		idempotency: idempotency,
	}
}

func (s *EventServiceImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	if !event.Validate() {
		return nil, apperrors.ErrInvalidInput
	}
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return s.repo.Create(ctx, event)
}

func (s *EventServiceImpl) List(ctx context.Context) ([]*model.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventServiceImpl) GetByID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	return s.repo.FindByID(ctx, eventID)
}

func (s *EventServiceImpl) Update(ctx context.Context, eventID uuid.UUID, params model.UpdateEventParams) (*model.Event, error) {
	if !params.Validate() {
		return nil, apperrors.ErrInvalidInput
	}
	return s.repo.Update(ctx, eventID, params)
}

func (s *EventServiceImpl) Delete(ctx context.Context, eventID uuid.UUID) error {
	return s.repo.Delete(ctx, eventID)
}

func (s *EventServiceImpl) ReserveSpots(ctx context.Context, params model.ReserveSpotsParams) ([]*model.Ticket, error) {
	if !params.TicketKind.IsValid() {
		return nil, apperrors.ErrInvalidTicketKind
	}
	if !params.ValidateFields() {
		return nil, apperrors.ErrInvalidInput
	}

	log := logger.WithComponent("service").With(
		zap.String("event_id", params.EventID.String()),
		zap.Strings("spots", params.Spots),
	)

	key := ""
	if s.idempotency != nil && params.IdempotencyKey != "" {
		key = params.EventID.String() + ":" + params.IdempotencyKey
		cached, err := s.idempotency.Acquire(ctx, key)
		if err != nil {
			return nil, err
		}
		if cached != nil {
			var result reservationResult
			if err := json.Unmarshal(cached, &result); err != nil {
				return nil, err
			}
			if result.Request != params.Fingerprint() {
				return nil, apperrors.ErrIdempotencyKeyReused
			}
			log.Info("replay reservation", zap.String("idempotency_key", params.IdempotencyKey))
			return result.Tickets, nil
		}
	}

	tickets, err := s.reserve(ctx, params)
	if err != nil {
		if key != "" {
			// 請求可能已被取消，釋放 key 不能跟著失敗
			if relErr := s.idempotency.Release(context.WithoutCancel(ctx), key); relErr != nil {
				log.Error("failed to release idempotency key", zap.Error(relErr))
			}
		}
		return nil, err
	}

	if key != "" {
		payload, err := json.Marshal(reservationResult{Request: params.Fingerprint(), Tickets: tickets})
		if err == nil {
			err = s.idempotency.Complete(context.WithoutCancel(ctx), key, payload)
		}
		if err != nil {
			log.Error("failed to store idempotent result", zap.Error(err))
		}
	}

	s.publish(context.WithoutCancel(ctx), tickets, log)
	return tickets, nil
}

func (s *EventServiceImpl) reserve(ctx context.Context, params model.ReserveSpotsParams) ([]*model.Ticket, error) {
	var tickets []*model.Ticket

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		event, err := s.repo.FindByID(ctx, params.EventID)
		if err != nil {
			return err
		}

		locked, err := s.spotRepo.FindByNamesForUpdate(ctx, event.ID, params.Spots)
		if err != nil {
			return err
		}

		byName := make(map[string]*model.Spot, len(locked))
		for _, spot := range locked {
			byName[spot.Name] = spot
		}

		var missing, taken []string
		for _, name := range params.Spots {
			spot, ok := byName[name]
			switch {
			case !ok:
				missing = append(missing, name)
			case !spot.Status.CanTransitionTo(model.SpotStatusReserved):
				taken = append(taken, name)
			}
		}
		if len(missing) > 0 {
			return apperrors.NewSpotsError(apperrors.ErrSpotNotFound, missing)
		}
		if len(taken) > 0 {
			return apperrors.NewSpotsError(apperrors.ErrSpotAlreadyReserved, taken)
		}

		ids := make([]uuid.UUID, 0, len(params.Spots))
		for _, name := range params.Spots {
			ids = append(ids, byName[name].ID)
		}
		n, err := s.spotRepo.MarkReserved(ctx, event.ID, ids)
		if err != nil {
			return err
		}
		if n != int64(len(ids)) {
			return apperrors.NewSpotsError(apperrors.ErrSpotAlreadyReserved, params.Spots)
		}

		tickets = make([]*model.Ticket, 0, len(params.Spots))
		for _, name := range params.Spots {
			ticket, err := s.ticketRepo.Create(ctx, model.NewTicket(event, byName[name], params.TicketKind, params.Email))
			if err != nil {
				return err
			}
			tickets = append(tickets, ticket)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

// publish 通知送不出去只記錄，不影響已完成的預訂
func (s *EventServiceImpl) publish(ctx context.Context, tickets []*model.Ticket, log *zap.Logger) {
	if s.queue == nil {
		return
	}
	for _, t := range tickets {
		if err := s.queue.Publish(ctx, model.NewReservationNotice(t)); err != nil {
			log.Error("failed to publish reservation notice",
				zap.String("ticket_id", t.ID.String()),
				zap.Error(err),
			)
		}
	}
}
