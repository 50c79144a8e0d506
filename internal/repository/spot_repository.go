package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"event-partners-api/internal/model"
	apperrors "event-partners-api/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SpotRepository interface {
	// Create 只有在活動存在時才會寫入（單一條件式 INSERT）
	Create(ctx context.Context, spot *model.Spot) (*model.Spot, error)
	ListByEventID(ctx context.Context, eventID uuid.UUID) ([]*model.Spot, error)
	FindByID(ctx context.Context, eventID, spotID uuid.UUID) (*model.Spot, error)
	Update(ctx context.Context, eventID, spotID uuid.UUID, params model.UpdateSpotParams) (*model.Spot, error)
	Delete(ctx context.Context, eventID, spotID uuid.UUID) error

	// Transaction methods
	FindByNamesForUpdate(ctx context.Context, eventID uuid.UUID, names []string) ([]*model.Spot, error)
	MarkReserved(ctx context.Context, eventID uuid.UUID, spotIDs []uuid.UUID) (int64, error)
}

type SpotRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewSpotRepository(pool *pgxpool.Pool) SpotRepository {
	return &SpotRepositoryImpl{
		pool: pool,
	}
}

const spotColumns = `id, event_id, name, status, created_at, updated_at`

func scanSpot(row pgx.Row, spot *model.Spot) error {
	return row.Scan(
		&spot.ID,
		&spot.EventID,
		&spot.Name,
		&spot.Status,
		&spot.CreatedAt,
		&spot.UpdatedAt,
	)
}

func (r *SpotRepositoryImpl) Create(ctx context.Context, spot *model.Spot) (*model.Spot, error) {
	query := `
		INSERT INTO spots (id, event_id, name, status)
		SELECT $1::uuid, e.id, $3::text, $4::text
		FROM events e
		WHERE e.id = $2
		RETURNING ` + spotColumns

	err := scanSpot(conn(ctx, r.pool).QueryRow(ctx, query,
		spot.ID, spot.EventID, spot.Name, spot.Status,
	), spot)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		if isUniqueViolation(err) {
			return nil, apperrors.ErrSpotAlreadyExists
		}
		return nil, fmt.Errorf("failed to create spot: %w", err)
	}
	return spot, nil
}

func (r *SpotRepositoryImpl) ListByEventID(ctx context.Context, eventID uuid.UUID) ([]*model.Spot, error) {
	query := `
		SELECT ` + spotColumns + `
		FROM spots
		WHERE event_id = $1
		ORDER BY name
	`
	return r.query(ctx, query, eventID)
}

func (r *SpotRepositoryImpl) FindByID(ctx context.Context, eventID, spotID uuid.UUID) (*model.Spot, error) {
	query := `
		SELECT ` + spotColumns + `
		FROM spots
		WHERE id = $1 AND event_id = $2
	`

	var spot model.Spot
	err := scanSpot(conn(ctx, r.pool).QueryRow(ctx, query, spotID, eventID), &spot)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSpotNotFound
		}
		return nil, err
	}
	return &spot, nil
}

func (r *SpotRepositoryImpl) Update(ctx context.Context, eventID, spotID uuid.UUID, params model.UpdateSpotParams) (*model.Spot, error) {
	if params.Name == nil || *params.Name == "" {
		return nil, apperrors.ErrInvalidInput
	}

	query := `
		UPDATE spots
		SET name = $1, updated_at = $2
		WHERE id = $3 AND event_id = $4
		RETURNING ` + spotColumns

	var spot model.Spot
	err := scanSpot(conn(ctx, r.pool).QueryRow(ctx, query,
		*params.Name, time.Now().UTC(), spotID, eventID,
	), &spot)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSpotNotFound
		}
		if isUniqueViolation(err) {
			return nil, apperrors.ErrSpotAlreadyExists
		}
		return nil, err
	}
	return &spot, nil
}

func (r *SpotRepositoryImpl) Delete(ctx context.Context, eventID, spotID uuid.UUID) error {
	query := `DELETE FROM spots WHERE id = $1 AND event_id = $2`

	result, err := conn(ctx, r.pool).Exec(ctx, query, spotID, eventID)
	if err != nil {
		// 已開票的座位被 tickets.spot_id 參照
		if isForeignKeyViolation(err) {
			return apperrors.ErrSpotAlreadyReserved
		}
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrSpotNotFound
	}
	return nil
}

// FindByNamesForUpdate 鎖住活動底下指定名稱的座位，依 id 排序避免 deadlock
func (r *SpotRepositoryImpl) FindByNamesForUpdate(ctx context.Context, eventID uuid.UUID, names []string) ([]*model.Spot, error) {
	query := `
		SELECT ` + spotColumns + `
		FROM spots
		WHERE event_id = $1 AND name = ANY($2)
		ORDER BY id
		FOR UPDATE
	`
	return r.query(ctx, query, eventID, names)
}

// MarkReserved 只更新仍為 available 的座位，回傳實際更新筆數
func (r *SpotRepositoryImpl) MarkReserved(ctx context.Context, eventID uuid.UUID, spotIDs []uuid.UUID) (int64, error) {
	query := `
		UPDATE spots
		SET status = $1, updated_at = $2
		WHERE event_id = $3 AND id = ANY($4) AND status = $5
	`

	result, err := conn(ctx, r.pool).Exec(ctx, query,
		model.SpotStatusReserved, time.Now().UTC(), eventID, spotIDs, model.SpotStatusAvailable,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

func (r *SpotRepositoryImpl) query(ctx context.Context, query string, args ...any) ([]*model.Spot, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	spots := make([]*model.Spot, 0)
	for rows.Next() {
		var spot model.Spot
		if err := scanSpot(rows, &spot); err != nil {
			return nil, err
		}
		spots = append(spots, &spot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return spots, nil
}
