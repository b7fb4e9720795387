package repository

import (
	"context"
	"database/sql"
	stderrors "errors"

	"meetup-planner/core/database"
	"meetup-planner/core/logger"
	"meetup-planner/modules/venue/entity"
)

type VenueRepository struct {
	DB database.IDatabase
}

func NewVenueRepository(db database.IDatabase) *VenueRepository {
	return &VenueRepository{DB: db}
}

type VenueRepositoryInterface interface {
	List(ctx context.Context) ([]entity.Venue, error)
	GetByID(ctx context.Context, id string) (*entity.Venue, error)
}

const venueColumns = `id, name, cuisine, rating, price_range, tags, address, review_count, url`

func (r *VenueRepository) List(ctx context.Context) ([]entity.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY id`

	venues := []entity.Venue{}
	if err := r.DB.SelectContext(ctx, &venues, query); err != nil {
		logger.Error("VenueRepository:List", "error", err)
		return nil, err
	}
	return venues, nil
}

// GetByID returns nil, nil when the venue is not in the catalog.
func (r *VenueRepository) GetByID(ctx context.Context, id string) (*entity.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`

	var venue entity.Venue
	if err := r.DB.GetContext(ctx, &venue, query, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("VenueRepository:GetByID", "error", err, "id", id)
		return nil, err
	}
	return &venue, nil
}
