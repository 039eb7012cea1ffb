package service_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobdeck/jobdeck/models"
	"github.com/jobdeck/jobdeck/service"
)

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	svc, _ := setupService(t)

	payloads := []models.ApplicationPayload{
		{
			Company:  "Google",
			Position: "SWE",
			Date:     "2026-08-01T00:00:00Z",
			Platform: "LinkedIn",
			Link:     "https://careers.google.com/jobs/123",
			Status:   models.StatusApplied,
		},
		{
			Company:  "Müller & Söhne GmbH",
			Position: "Backend Engineer (m/w/d)",
			Status:   models.StatusInterviewing,
		},
		{},
	}

	for _, payload := range payloads {
		content, err := svc.EncryptPayload(payload)
		assert.NoError(t, err)
		if payload.Company != "" {
			assert.NotContains(t, content, payload.Company)
		}

		got, err := svc.DecryptPayload(content)
		assert.NoError(t, err)
		assert.Equal(t, payload, got)
	}
}

func TestEncrypt_FreshNoncePerCall(t *testing.T) {
	svc, _ := setupService(t)
	payload := models.ApplicationPayload{Company: "Google", Position: "SWE", Status: models.StatusApplied}

	first, err := svc.EncryptPayload(payload)
	assert.NoError(t, err)
	second, err := svc.EncryptPayload(payload)
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDecrypt_NotBase64(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.DecryptPayload("%%% not base64 %%%")
	assert.ErrorIs(t, err, service.ErrDecryptFailed)
}

func TestDecrypt_TooShort(t *testing.T) {
	svc, _ := setupService(t)

	short := base64.StdEncoding.EncodeToString([]byte("tiny"))
	_, err := svc.DecryptPayload(short)
	assert.ErrorIs(t, err, service.ErrDecryptFailed)
}

func TestDecrypt_CorruptCiphertext(t *testing.T) {
	svc, _ := setupService(t)

	content, err := svc.EncryptPayload(models.ApplicationPayload{Company: "Google", Position: "SWE", Status: models.StatusApplied})
	assert.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(content)
	assert.NoError(t, err)
	raw[len(raw)-1] ^= 0xFF

	_, err = svc.DecryptPayload(base64.StdEncoding.EncodeToString(raw))
	assert.ErrorIs(t, err, service.ErrDecryptFailed)
}

func TestDecrypt_KeyChanged(t *testing.T) {
	svc, _ := setupService(t)

	content, err := svc.EncryptPayload(models.ApplicationPayload{Company: "Google", Position: "SWE", Status: models.StatusApplied})
	assert.NoError(t, err)

	otherSvc, err := service.NewService(nil, []byte(testJWTSecret), "a-different-encryption-secret")
	assert.NoError(t, err)

	_, err = otherSvc.DecryptPayload(content)
	assert.ErrorIs(t, err, service.ErrDecryptFailed)
}
