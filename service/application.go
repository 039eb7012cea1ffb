package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jobdeck/jobdeck/models"
	"github.com/jobdeck/jobdeck/store"
)

// ApplicationResult is a decrypted view of a stored record. Err is set on
// list results whose payload could not be decrypted; such entries carry
// only the record id.
type ApplicationResult struct {
	Id        string
	Payload   models.ApplicationPayload
	CreatedAt string
	Err       error
}

func (s *Service) CreateApplication(ctx context.Context, userId string, payload models.ApplicationPayload) (models.ApplicationRecord, error) {
	if err := ValidatePayload(&payload); err != nil {
		return models.ApplicationRecord{}, err
	}

	content, err := s.EncryptPayload(payload)
	if err != nil {
		return models.ApplicationRecord{}, fmt.Errorf("encrypt failed: %w", err)
	}

	record, err := s.Store.CreateApplication(ctx, models.ApplicationRecord{
		UserId:    userId,
		Content:   content,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return models.ApplicationRecord{}, fmt.Errorf("create application failed: %w", err)
	}

	return record, nil
}

func (s *Service) GetApplication(ctx context.Context, userId string, id string) (ApplicationResult, error) {
	record, err := s.Store.GetApplication(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return ApplicationResult{}, ErrNotFound
		}
		return ApplicationResult{}, fmt.Errorf("get application failed: %w", err)
	}

	if record.UserId != userId {
		return ApplicationResult{}, ErrForbidden
	}

	payload, err := s.DecryptPayload(record.Content)
	if err != nil {
		return ApplicationResult{}, err
	}

	return ApplicationResult{
		Id:        record.Id,
		Payload:   payload,
		CreatedAt: record.CreatedAt,
	}, nil
}

// ListApplications returns every record owned by the user. A record whose
// payload fails to decrypt is returned with Err set instead of aborting
// the whole list.
func (s *Service) ListApplications(ctx context.Context, userId string) ([]ApplicationResult, error) {
	records, err := s.Store.GetUserApplications(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("list applications failed: %w", err)
	}

	results := make([]ApplicationResult, 0, len(records))
	for _, record := range records {
		payload, err := s.DecryptPayload(record.Content)
		if err != nil {
			results = append(results, ApplicationResult{Id: record.Id, Err: err})
			continue
		}
		results = append(results, ApplicationResult{
			Id:        record.Id,
			Payload:   payload,
			CreatedAt: record.CreatedAt,
		})
	}

	return results, nil
}

// UpdateApplication replaces the full payload of an owned record and
// re-encrypts it.
func (s *Service) UpdateApplication(ctx context.Context, userId string, id string, payload models.ApplicationPayload) error {
	if err := ValidatePayload(&payload); err != nil {
		return err
	}

	record, err := s.Store.GetApplication(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get application failed: %w", err)
	}

	if record.UserId != userId {
		return ErrForbidden
	}

	content, err := s.EncryptPayload(payload)
	if err != nil {
		return fmt.Errorf("encrypt failed: %w", err)
	}

	updatedAt := time.Now().UTC().Format(time.RFC3339)
	if err := s.Store.UpdateApplicationContent(ctx, id, content, updatedAt); err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("update application failed: %w", err)
	}

	return nil
}

// DeleteApplication removes an owned record. Deleting an id that does not
// exist succeeds, so the operation is idempotent.
func (s *Service) DeleteApplication(ctx context.Context, userId string, id string) error {
	err := s.Store.DeleteApplication(ctx, id, userId)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return nil
		}
		if errors.Is(err, store.ErrConditionFailed) {
			return ErrForbidden
		}
		return fmt.Errorf("delete application failed: %w", err)
	}

	return nil
}
