package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobdeck/jobdeck/service"
	"github.com/jobdeck/jobdeck/store/mocks"
)

const (
	testJWTSecret        = "test-jwt-secret"
	testEncryptionSecret = "test-encryption-secret"
)

func setupService(t *testing.T) (*service.Service, *mocks.MockStore) {
	t.Helper()

	mockStore := new(mocks.MockStore)
	svc, err := service.NewService(mockStore, []byte(testJWTSecret), testEncryptionSecret)
	assert.NoError(t, err)

	return svc, mockStore
}
