package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jobdeck/jobdeck/models"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockStore) CreateApplication(ctx context.Context, record models.ApplicationRecord) (models.ApplicationRecord, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(models.ApplicationRecord), args.Error(1)
}

func (m *MockStore) GetApplication(ctx context.Context, id string) (models.ApplicationRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.ApplicationRecord), args.Error(1)
}

func (m *MockStore) GetUserApplications(ctx context.Context, userId string) ([]models.ApplicationRecord, error) {
	args := m.Called(ctx, userId)
	return args.Get(0).([]models.ApplicationRecord), args.Error(1)
}

func (m *MockStore) UpdateApplicationContent(ctx context.Context, id string, content string, updatedAt string) error {
	args := m.Called(ctx, id, content, updatedAt)
	return args.Error(0)
}

func (m *MockStore) DeleteApplication(ctx context.Context, id string, userId string) error {
	args := m.Called(ctx, id, userId)
	return args.Error(0)
}
