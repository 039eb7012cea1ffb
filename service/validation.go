package service

import (
	"fmt"
	"net/url"
	"regexp"
	"time"

	"github.com/jobdeck/jobdeck/models"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var validStatuses = map[string]struct{}{
	models.StatusApplied:      {},
	models.StatusInterviewing: {},
	models.StatusOffer:        {},
	models.StatusRejected:     {},
}

const minPasswordLength = 6

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func ValidateRegistration(email string, password string, name string) error {
	if !emailRegex.MatchString(email) {
		return validationError("invalid email")
	}
	if len(password) < minPasswordLength {
		return validationError("password too short")
	}
	if name == "" {
		return validationError("name is required")
	}
	return nil
}

// ValidatePayload checks an application payload before encryption. The
// date defaults to the current time when the caller leaves it empty.
func ValidatePayload(p *models.ApplicationPayload) error {
	if p.Company == "" {
		return validationError("company is required")
	}
	if p.Position == "" {
		return validationError("position is required")
	}

	if _, ok := validStatuses[p.Status]; !ok {
		return validationError("invalid status")
	}

	if p.Date == "" {
		p.Date = time.Now().UTC().Format(time.RFC3339)
	} else if _, err := time.Parse(time.RFC3339, p.Date); err != nil {
		if _, err := time.Parse("2006-01-02", p.Date); err != nil {
			return validationError("invalid date")
		}
	}

	if p.Link != "" {
		u, err := url.Parse(p.Link)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return validationError("invalid link")
		}
	}

	return nil
}
