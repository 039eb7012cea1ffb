package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/jobdeck/jobdeck/models"
)

const nonceSize = 12

// EncryptPayload serializes the payload to JSON and encrypts it with
// AES-GCM under the service key. The result is a single opaque base64
// string (nonce prepended to ciphertext) safe to store as one attribute.
func (s *Service) EncryptPayload(payload models.ApplicationPayload) (string, error) {
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	block, err := aes.NewCipher(s.cipherKey)
	if err != nil {
		return "", err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	ciphertext := aesgcm.Seal(nonce, nonce, plaintext, nil)

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecryptPayload is the inverse of EncryptPayload. Corrupt ciphertext, a
// changed key, and undecodable plaintext all surface as ErrDecryptFailed.
func (s *Service) DecryptPayload(content string) (models.ApplicationPayload, error) {
	raw, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return models.ApplicationPayload{}, fmt.Errorf("%w: %v", ErrDecryptFailed, err)
	}
	if len(raw) < nonceSize {
		return models.ApplicationPayload{}, fmt.Errorf("%w: content too short", ErrDecryptFailed)
	}

	block, err := aes.NewCipher(s.cipherKey)
	if err != nil {
		return models.ApplicationPayload{}, err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return models.ApplicationPayload{}, err
	}

	plaintext, err := aesgcm.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return models.ApplicationPayload{}, fmt.Errorf("%w: %v", ErrDecryptFailed, err)
	}

	var payload models.ApplicationPayload
	if err := json.Unmarshal(plaintext, &payload); err != nil {
		return models.ApplicationPayload{}, fmt.Errorf("%w: %v", ErrDecryptFailed, err)
	}

	return payload, nil
}
