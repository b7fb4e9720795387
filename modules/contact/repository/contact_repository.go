package repository

import (
	"context"

	"meetup-planner/core/database"
	"meetup-planner/core/logger"
	"meetup-planner/modules/contact/entity"

	"github.com/lib/pq"
)

type ContactRepository struct {
	DB database.IDatabase
}

func NewContactRepository(db database.IDatabase) *ContactRepository {
	return &ContactRepository{DB: db}
}

type ContactRepositoryInterface interface {
	GetByOwnerID(ctx context.Context, ownerID string) ([]entity.Contact, error)
	GetByIDs(ctx context.Context, ownerID string, ids []string) ([]entity.Contact, error)
	Create(ctx context.Context, contact *entity.Contact) (*entity.Contact, error)
}

const contactColumns = `id, user_id, name, phone_number, archetype, cuisine_preferences, dietary_restrictions, created_at`

func (r *ContactRepository) GetByOwnerID(ctx context.Context, ownerID string) ([]entity.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE user_id = $1 ORDER BY name`

	contacts := []entity.Contact{}
	if err := r.DB.SelectContext(ctx, &contacts, query, ownerID); err != nil {
		logger.Error("ContactRepository:GetByOwnerID", "error", err, "owner_id", ownerID)
		return nil, err
	}
	return contacts, nil
}

// GetByIDs returns only the contacts among ids that belong to ownerID.
func (r *ContactRepository) GetByIDs(ctx context.Context, ownerID string, ids []string) ([]entity.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE user_id = $1 AND id = ANY($2)`

	contacts := []entity.Contact{}
	if err := r.DB.SelectContext(ctx, &contacts, query, ownerID, pq.Array(ids)); err != nil {
		logger.Error("ContactRepository:GetByIDs", "error", err, "owner_id", ownerID)
		return nil, err
	}
	return contacts, nil
}

func (r *ContactRepository) Create(ctx context.Context, contact *entity.Contact) (*entity.Contact, error) {
	query := `
		INSERT INTO contacts (user_id, name, phone_number, archetype, cuisine_preferences, dietary_restrictions)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + contactColumns

	var created entity.Contact
	err := r.DB.GetContext(ctx, &created, query,
		contact.UserID, contact.Name, contact.PhoneNumber, contact.Archetype,
		contact.CuisinePreferences, contact.DietaryRestrictions)
	if err != nil {
		logger.Error("ContactRepository:Create", "error", err)
		return nil, err
	}
	return &created, nil
}
