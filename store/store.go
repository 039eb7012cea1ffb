package store

import (
	"context"
	"errors"

	"github.com/jobdeck/jobdeck/models"
)

type JobdeckStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)

	CreateApplication(ctx context.Context, record models.ApplicationRecord) (models.ApplicationRecord, error)
	GetApplication(ctx context.Context, id string) (models.ApplicationRecord, error)
	GetUserApplications(ctx context.Context, userId string) ([]models.ApplicationRecord, error)
	UpdateApplicationContent(ctx context.Context, id string, content string, updatedAt string) error
	DeleteApplication(ctx context.Context, id string, userId string) error
}

// Custom error types for clarity
var (
	ErrItemNotFound    = errors.New("item does not exist")
	ErrItemExists      = errors.New("item already exists")
	ErrConditionFailed = errors.New("condition not met")
)
