package db

import (
	"context"
	"errors"

	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/model"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/myerrors"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/ports"

	"github.com/jackc/pgx/v5"
)

const guideColumns = `
		guide_id,
		user_id,
		name,
		email,
		phone,
		location,
		languages,
		specialties,
		available,
		rating,
		completed_trips,
		bio`

type GuidesRepo struct {
	db *DB
}

func NewGuidesRepo(db *DB) ports.IGuidesRepo {
	return &GuidesRepo{
		db: db,
	}
}

func (gr *GuidesRepo) List(ctx context.Context) ([]model.Guide, error) {
	q := `SELECT ` + guideColumns + ` FROM guides ORDER BY name`

	rows, err := gr.db.conn.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	guides := []model.Guide{}
	for rows.Next() {
		m, err := scanGuide(rows)
		if err != nil {
			return nil, err
		}
		guides = append(guides, m)
	}
	return guides, rows.Err()
}

func (gr *GuidesRepo) GetByID(ctx context.Context, guideID string) (model.Guide, error) {
	q := `SELECT ` + guideColumns + ` FROM guides WHERE guide_id = $1`
	return gr.get(ctx, q, guideID)
}

func (gr *GuidesRepo) GetByUserID(ctx context.Context, userID string) (model.Guide, error) {
	q := `SELECT ` + guideColumns + ` FROM guides WHERE user_id = $1`
	return gr.get(ctx, q, userID)
}

func (gr *GuidesRepo) Create(ctx context.Context, m model.Guide) (model.Guide, error) {
	q := `INSERT INTO guides(
			guide_id,
			user_id,
			name,
			email,
			phone,
			location,
			languages,
			specialties,
			available,
			bio
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + guideColumns

	row := gr.db.conn.QueryRow(ctx, q,
		m.ID,
		m.UserId,
		m.Name,
		m.Email,
		m.Phone,
		m.Location,
		m.Languages,
		m.Specialties,
		m.Available,
		m.Bio,
	)
	return scanGuide(row)
}

func (gr *GuidesRepo) Update(ctx context.Context, m model.Guide) (model.Guide, error) {
	q := `UPDATE guides
		SET
			phone = $2,
			location = $3,
			languages = $4,
			specialties = $5,
			available = $6,
			bio = $7
		WHERE guide_id = $1
		RETURNING ` + guideColumns

	row := gr.db.conn.QueryRow(ctx, q,
		m.ID,
		m.Phone,
		m.Location,
		m.Languages,
		m.Specialties,
		m.Available,
		m.Bio,
	)
	updated, err := scanGuide(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Guide{}, myerrors.ErrNotFound
		}
		return model.Guide{}, err
	}
	return updated, nil
}

func (gr *GuidesRepo) get(ctx context.Context, q string, arg any) (model.Guide, error) {
	row := gr.db.conn.QueryRow(ctx, q, arg)
	m, err := scanGuide(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Guide{}, myerrors.ErrNotFound
		}
		return model.Guide{}, err
	}
	return m, nil
}

func scanGuide(row pgx.Row) (model.Guide, error) {
	var m model.Guide
	err := row.Scan(
		&m.ID,
		&m.UserId,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Location,
		&m.Languages,
		&m.Specialties,
		&m.Available,
		&m.Rating,
		&m.CompletedTrips,
		&m.Bio,
	)
	if err != nil {
		return model.Guide{}, err
	}
	return m, nil
}
