package repository

import (
	"context"

	"meetup-planner/core/database"
	"meetup-planner/core/logger"
	"meetup-planner/modules/availability/entity"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type AvailabilityRepository struct {
	DB database.IDatabase
}

func NewAvailabilityRepository(db database.IDatabase) *AvailabilityRepository {
	return &AvailabilityRepository{DB: db}
}

// AvailabilityRepositoryInterface reads and replaces stored windows. Reads
// are scoped to contacts owned by ownerID.
type AvailabilityRepositoryInterface interface {
	ListWeekly(ctx context.Context, ownerID string, contactIDs []string) ([]entity.WeeklyWindow, error)
	ListDated(ctx context.Context, ownerID string, contactIDs []string) ([]entity.DatedWindow, error)
	ReplaceWeekly(ctx context.Context, contactID string, windows []entity.WeeklyWindow) error
	ReplaceDated(ctx context.Context, contactID string, windows []entity.DatedWindow) error
}

func (r *AvailabilityRepository) ListWeekly(ctx context.Context, ownerID string, contactIDs []string) ([]entity.WeeklyWindow, error) {
	query := `
		SELECT a.contact_id, a.day_of_week, a.start_time::text AS start_time, a.end_time::text AS end_time
		FROM availability a
		JOIN contacts c ON c.id = a.contact_id
		WHERE c.user_id = $1 AND a.contact_id = ANY($2)
		ORDER BY a.id
	`

	windows := []entity.WeeklyWindow{}
	if err := r.DB.SelectContext(ctx, &windows, query, ownerID, pq.Array(contactIDs)); err != nil {
		logger.Error("AvailabilityRepository:ListWeekly", "error", err, "owner_id", ownerID)
		return nil, err
	}
	return windows, nil
}

func (r *AvailabilityRepository) ListDated(ctx context.Context, ownerID string, contactIDs []string) ([]entity.DatedWindow, error) {
	query := `
		SELECT d.contact_id, to_char(d.date, 'YYYY-MM-DD') AS date,
		       d.start_time::text AS start_time, d.end_time::text AS end_time
		FROM availability_dates d
		JOIN contacts c ON c.id = d.contact_id
		WHERE c.user_id = $1 AND d.contact_id = ANY($2)
		ORDER BY d.id
	`

	windows := []entity.DatedWindow{}
	if err := r.DB.SelectContext(ctx, &windows, query, ownerID, pq.Array(contactIDs)); err != nil {
		logger.Error("AvailabilityRepository:ListDated", "error", err, "owner_id", ownerID)
		return nil, err
	}
	return windows, nil
}

func (r *AvailabilityRepository) ReplaceWeekly(ctx context.Context, contactID string, windows []entity.WeeklyWindow) error {
	return r.DB.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM availability WHERE contact_id = $1`, contactID); err != nil {
			logger.Error("AvailabilityRepository:ReplaceWeekly:Delete", "error", err, "contact_id", contactID)
			return err
		}
		for _, w := range windows {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO availability (contact_id, day_of_week, start_time, end_time) VALUES ($1, $2, $3, $4)`,
				contactID, string(w.DayOfWeek), w.StartTime, w.EndTime)
			if err != nil {
				logger.Error("AvailabilityRepository:ReplaceWeekly:Insert", "error", err, "contact_id", contactID)
				return err
			}
		}
		return nil
	})
}

func (r *AvailabilityRepository) ReplaceDated(ctx context.Context, contactID string, windows []entity.DatedWindow) error {
	return r.DB.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM availability_dates WHERE contact_id = $1`, contactID); err != nil {
			logger.Error("AvailabilityRepository:ReplaceDated:Delete", "error", err, "contact_id", contactID)
			return err
		}
		for _, w := range windows {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO availability_dates (contact_id, date, start_time, end_time) VALUES ($1, $2, $3, $4)`,
				contactID, w.Date, w.StartTime, w.EndTime)
			if err != nil {
				logger.Error("AvailabilityRepository:ReplaceDated:Insert", "error", err, "contact_id", contactID)
				return err
			}
		}
		return nil
	})
}
