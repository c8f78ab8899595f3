package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/model"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/myerrors"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/ports"

	"github.com/jackc/pgx/v5"
)

const requestColumns = `
		request_id,
		tourist_id,
		tourist_name,
		tourist_email,
		selected_destinations,
		tour_type,
		preferred_language,
		special_interests,
		duration,
		group_size,
		budget,
		fitness_level,
		start_date,
		emergency_contact,
		status,
		assigned_guide,
		submitted_at,
		assigned_at`

type RequestsRepo struct {
	db *DB
}

func NewRequestsRepo(db *DB) ports.IRequestsRepo {
	return &RequestsRepo{
		db: db,
	}
}

func (rr *RequestsRepo) Create(ctx context.Context, m model.GuideRequest) (model.GuideRequest, error) {
	q := `INSERT INTO guide_requests(
			request_id,
			tourist_id,
			tourist_name,
			tourist_email,
			selected_destinations,
			tour_type,
			preferred_language,
			special_interests,
			duration,
			group_size,
			budget,
			fitness_level,
			start_date,
			emergency_contact,
			status,
			submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + requestColumns

	conn := rr.db.conn
	row := conn.QueryRow(ctx, q,
		m.ID,
		m.TouristID,
		m.TouristName,
		m.TouristEmail,
		m.SelectedDestinations,
		m.TourType,
		m.PreferredLanguage,
		m.SpecialInterests,
		m.Duration,
		m.GroupSize,
		m.Budget,
		m.FitnessLevel,
		m.StartDate,
		m.EmergencyContact,
		m.Status,
		m.SubmittedAt,
	)
	return scanRequest(row)
}

func (rr *RequestsRepo) GetByID(ctx context.Context, requestID string) (model.GuideRequest, error) {
	q := `SELECT ` + requestColumns + ` FROM guide_requests WHERE request_id = $1`

	row := rr.db.conn.QueryRow(ctx, q, requestID)
	m, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.GuideRequest{}, myerrors.ErrNotFound
		}
		return model.GuideRequest{}, err
	}
	return m, nil
}

func (rr *RequestsRepo) ListAll(ctx context.Context) ([]model.GuideRequest, error) {
	q := `SELECT ` + requestColumns + ` FROM guide_requests ORDER BY submitted_at`
	return rr.list(ctx, q)
}

func (rr *RequestsRepo) ListByTourist(ctx context.Context, touristID string) ([]model.GuideRequest, error) {
	q := `SELECT ` + requestColumns + ` FROM guide_requests WHERE tourist_id = $1 ORDER BY submitted_at`
	return rr.list(ctx, q, touristID)
}

func (rr *RequestsRepo) ListByGuide(ctx context.Context, guideID string) ([]model.GuideRequest, error) {
	q := `SELECT ` + requestColumns + ` FROM guide_requests WHERE assigned_guide = $1 ORDER BY submitted_at`
	return rr.list(ctx, q, guideID)
}

// AssignGuide turns pending into assigned with a conditional update, so two
// racing assigns cannot both succeed, and writes the assignment notification
// before committing. Either everything lands or nothing does.
func (rr *RequestsRepo) AssignGuide(ctx context.Context, requestID, guideID string, n model.Notification) (model.GuideRequest, error) {
	conn := rr.db.conn
	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.GuideRequest{}, err
	}
	defer tx.Rollback(ctx) // Safe rollback if not committed

	q := `UPDATE guide_requests
		SET
			assigned_guide = $2,
			status = 'assigned',
			assigned_at = now()
		WHERE request_id = $1 AND status = 'pending'`

	tag, err := tx.Exec(ctx, q, requestID, guideID)
	if err != nil {
		return model.GuideRequest{}, err
	}
	if tag.RowsAffected() == 0 {
		return model.GuideRequest{}, rr.diagnoseFailedTransition(ctx, tx, requestID)
	}

	qn := `INSERT INTO notifications(
			notification_id,
			recipient_user_id,
			request_id,
			type,
			title,
			message,
			created_at,
			read
		) VALUES ($1, $2, $3, $4, $5, $6, $7, false)`

	if _, err := tx.Exec(ctx, qn,
		n.ID,
		n.RecipientUserId,
		n.RequestId,
		n.Type,
		n.Title,
		n.Message,
		n.CreatedAt,
	); err != nil {
		return model.GuideRequest{}, fmt.Errorf("failed to insert notification: %w", err)
	}

	row := tx.QueryRow(ctx, `SELECT `+requestColumns+` FROM guide_requests WHERE request_id = $1`, requestID)
	m, err := scanRequest(row)
	if err != nil {
		return model.GuideRequest{}, err
	}

	return m, tx.Commit(ctx)
}

// AdvanceStatus is the same conditional-update shape for the two
// guide-driven transitions.
func (rr *RequestsRepo) AdvanceStatus(ctx context.Context, requestID string, from, to model.Status) (model.GuideRequest, error) {
	conn := rr.db.conn
	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.GuideRequest{}, err
	}
	defer tx.Rollback(ctx) // Safe rollback if not committed

	q := `UPDATE guide_requests SET status = $3 WHERE request_id = $1 AND status = $2`

	tag, err := tx.Exec(ctx, q, requestID, from, to)
	if err != nil {
		return model.GuideRequest{}, err
	}
	if tag.RowsAffected() == 0 {
		return model.GuideRequest{}, rr.diagnoseFailedTransition(ctx, tx, requestID)
	}

	row := tx.QueryRow(ctx, `SELECT `+requestColumns+` FROM guide_requests WHERE request_id = $1`, requestID)
	m, err := scanRequest(row)
	if err != nil {
		return model.GuideRequest{}, err
	}

	return m, tx.Commit(ctx)
}

// diagnoseFailedTransition tells an unknown request apart from one whose
// status already moved on.
func (rr *RequestsRepo) diagnoseFailedTransition(ctx context.Context, tx pgx.Tx, requestID string) error {
	var status string
	err := tx.QueryRow(ctx, `SELECT status FROM guide_requests WHERE request_id = $1`, requestID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return myerrors.ErrNotFound
		}
		return err
	}
	return myerrors.ErrInvalidTransition
}

func (rr *RequestsRepo) list(ctx context.Context, q string, args ...any) ([]model.GuideRequest, error) {
	rows, err := rr.db.conn.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []model.GuideRequest{}
	for rows.Next() {
		m, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, m)
	}
	return requests, rows.Err()
}

func scanRequest(row pgx.Row) (model.GuideRequest, error) {
	var (
		m             model.GuideRequest
		assignedGuide sql.NullString
		assignedAt    sql.NullTime
	)

	err := row.Scan(
		&m.ID,
		&m.TouristID,
		&m.TouristName,
		&m.TouristEmail,
		&m.SelectedDestinations,
		&m.TourType,
		&m.PreferredLanguage,
		&m.SpecialInterests,
		&m.Duration,
		&m.GroupSize,
		&m.Budget,
		&m.FitnessLevel,
		&m.StartDate,
		&m.EmergencyContact,
		&m.Status,
		&assignedGuide,
		&m.SubmittedAt,
		&assignedAt,
	)
	if err != nil {
		return model.GuideRequest{}, err
	}

	if assignedGuide.Valid {
		m.AssignedGuide = assignedGuide.String
	}
	if assignedAt.Valid {
		m.AssignedAt = assignedAt.Time
	}
	return m, nil
}
