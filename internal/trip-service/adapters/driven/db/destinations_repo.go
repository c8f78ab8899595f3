package db

import (
	"context"

	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/model"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/ports"
)

type DestinationsRepo struct {
	db *DB
}

func NewDestinationsRepo(db *DB) ports.IDestinationsRepo {
	return &DestinationsRepo{
		db: db,
	}
}

func (dr *DestinationsRepo) List(ctx context.Context) ([]model.Destination, error) {
	q := `
	SELECT
		destination_id,
		name,
		description,
		category,
		difficulty
	FROM
		destinations
	ORDER BY destination_id
	`

	rows, err := dr.db.conn.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	destinations := []model.Destination{}
	for rows.Next() {
		var m model.Destination
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Category, &m.Difficulty); err != nil {
			return nil, err
		}
		destinations = append(destinations, m)
	}
	return destinations, rows.Err()
}
