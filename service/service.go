package service

import (
	"crypto/sha256"
	"errors"

	"github.com/jobdeck/jobdeck/store"
)

type Service struct {
	Store     store.JobdeckStore
	JWTSecret []byte

	// 256-bit AES key derived from the configured encryption secret
	cipherKey []byte
}

func NewService(jobdeckStore store.JobdeckStore, jwtSecret []byte, encryptionSecret string) (*Service, error) {
	if len(jwtSecret) == 0 {
		return nil, errors.New("jwt secret must not be empty")
	}
	if encryptionSecret == "" {
		return nil, errors.New("encryption secret must not be empty")
	}

	key := sha256.Sum256([]byte(encryptionSecret))

	return &Service{
		Store:     jobdeckStore,
		JWTSecret: jwtSecret,
		cipherKey: key[:],
	}, nil
}
