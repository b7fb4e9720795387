package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"meetup-planner/core/errors"
	"meetup-planner/core/logger"
	meetupDto "meetup-planner/modules/meetup/dto"
	"meetup-planner/modules/notification/dto"

	"github.com/hibiken/asynq"
)

type MarkSender interface {
	MarkMessageSent(ctx context.Context, ownerID, meetupID, contactID string) (*meetupDto.MarkSentResponse, *errors.AppError)
}

// MarkSentHandler processes invite:mark_sent tasks. Bad payloads and links
// that no longer exist are not retried.
func MarkSentHandler(meetups MarkSender) func(ctx context.Context, payload []byte) error {
	return func(ctx context.Context, payload []byte) error {
		var task dto.MarkSentTask
		if err := json.Unmarshal(payload, &task); err != nil {
			return fmt.Errorf("decode mark_sent payload: %v: %w", err, asynq.SkipRetry)
		}

		res, appErr := meetups.MarkMessageSent(ctx, task.OwnerID, task.MeetupID, task.ContactID)
		if appErr != nil {
			switch appErr.Code {
			case errors.ErrNotFound, errors.ErrInvalidInput:
				logger.Warn("Worker:MarkSent:Skip", "error", appErr, "meetup_id", task.MeetupID, "contact_id", task.ContactID)
				return fmt.Errorf("%v: %w", appErr, asynq.SkipRetry)
			}
			return appErr
		}

		logger.Debug("Worker:MarkSent", "meetup_id", task.MeetupID, "contact_id", task.ContactID, "changed", res.Changed)
		return nil
	}
}
