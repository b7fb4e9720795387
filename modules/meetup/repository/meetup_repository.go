package repository

import (
	"context"
	"database/sql"
	stderrors "errors"

	"meetup-planner/core/database"
	"meetup-planner/core/logger"
	"meetup-planner/modules/meetup/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type MeetupRepository struct {
	DB database.IDatabase
}

func NewMeetupRepository(db database.IDatabase) *MeetupRepository {
	return &MeetupRepository{DB: db}
}

type MeetupRepositoryInterface interface {
	CreateWithParticipants(ctx context.Context, meetup *entity.Meetup, contactIDs []string) (*entity.Meetup, []entity.MeetupParticipant, error)
	GetByID(ctx context.Context, ownerID string, id uuid.UUID) (*entity.Meetup, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Meetup, error)
	GetParticipants(ctx context.Context, meetupID uuid.UUID) ([]entity.MeetupParticipant, error)
	MarkMessageSent(ctx context.Context, meetupID uuid.UUID, contactID string) (bool, error)
}

const meetupColumns = `id, user_id, venue_name, venue_ref, venue_address, to_char(date, 'YYYY-MM-DD') AS date, time, end_time, status, created_at`

const participantColumns = `id, meetup_id, contact_id, message_sent`

// CreateWithParticipants inserts the meetup, then one link per contact, in a
// single transaction.
func (r *MeetupRepository) CreateWithParticipants(ctx context.Context, meetup *entity.Meetup, contactIDs []string) (*entity.Meetup, []entity.MeetupParticipant, error) {
	var created entity.Meetup
	participants := make([]entity.MeetupParticipant, 0, len(contactIDs))

	err := r.DB.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO meetups (user_id, venue_name, venue_ref, venue_address, date, time, end_time, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING ` + meetupColumns

		if err := tx.GetContext(ctx, &created, query,
			meetup.UserID, meetup.VenueName, meetup.VenueRef, meetup.VenueAddress,
			meetup.Date, meetup.Time, meetup.EndTime, meetup.Status); err != nil {
			return err
		}

		linkQuery := `
			INSERT INTO meetup_participants (meetup_id, contact_id, message_sent)
			VALUES ($1, $2, false)
			RETURNING ` + participantColumns

		for _, contactID := range contactIDs {
			var p entity.MeetupParticipant
			if err := tx.GetContext(ctx, &p, linkQuery, created.ID, contactID); err != nil {
				return err
			}
			participants = append(participants, p)
		}
		return nil
	})
	if err != nil {
		logger.Error("MeetupRepository:CreateWithParticipants", "error", err, "owner_id", meetup.UserID)
		return nil, nil, err
	}
	return &created, participants, nil
}

// GetByID returns nil, nil when the meetup does not exist or belongs to
// someone else.
func (r *MeetupRepository) GetByID(ctx context.Context, ownerID string, id uuid.UUID) (*entity.Meetup, error) {
	query := `SELECT ` + meetupColumns + ` FROM meetups WHERE id = $1 AND user_id = $2`

	var meetup entity.Meetup
	if err := r.DB.GetContext(ctx, &meetup, query, id, ownerID); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("MeetupRepository:GetByID", "error", err, "meetup_id", id.String())
		return nil, err
	}
	return &meetup, nil
}

func (r *MeetupRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Meetup, error) {
	query := `SELECT ` + meetupColumns + ` FROM meetups WHERE user_id = $1 ORDER BY created_at DESC`

	meetups := []entity.Meetup{}
	if err := r.DB.SelectContext(ctx, &meetups, query, ownerID); err != nil {
		logger.Error("MeetupRepository:ListByOwner", "error", err, "owner_id", ownerID)
		return nil, err
	}
	return meetups, nil
}

func (r *MeetupRepository) GetParticipants(ctx context.Context, meetupID uuid.UUID) ([]entity.MeetupParticipant, error) {
	query := `SELECT ` + participantColumns + ` FROM meetup_participants WHERE meetup_id = $1 ORDER BY contact_id`

	participants := []entity.MeetupParticipant{}
	if err := r.DB.SelectContext(ctx, &participants, query, meetupID); err != nil {
		logger.Error("MeetupRepository:GetParticipants", "error", err, "meetup_id", meetupID.String())
		return nil, err
	}
	return participants, nil
}

// MarkMessageSent flips the flag for one link. It reports false when the
// link is missing or was already marked.
func (r *MeetupRepository) MarkMessageSent(ctx context.Context, meetupID uuid.UUID, contactID string) (bool, error) {
	query := `
		UPDATE meetup_participants SET message_sent = true
		WHERE meetup_id = $1 AND contact_id = $2 AND message_sent = false
	`

	res, err := r.DB.ExecResultContext(ctx, query, meetupID, contactID)
	if err != nil {
		logger.Error("MeetupRepository:MarkMessageSent", "error", err, "meetup_id", meetupID.String(), "contact_id", contactID)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
