package models

type User struct {
	Id           string
	Email        string
	Name         string
	PasswordHash string
	Created      string
}

// Application statuses accepted by the API.
const (
	StatusApplied      = "applied"
	StatusInterviewing = "interviewing"
	StatusOffer        = "offer"
	StatusRejected     = "rejected"
)

// ApplicationPayload holds the fields that are only ever persisted inside
// the encrypted Content blob of an ApplicationRecord.
type ApplicationPayload struct {
	Company  string `json:"company"`
	Position string `json:"position"`
	Date     string `json:"date"`
	Platform string `json:"platform"`
	Link     string `json:"link"`
	Status   string `json:"status"`
}

// ApplicationRecord is what the store persists: plaintext ownership and
// timestamp metadata plus the opaque encrypted payload.
type ApplicationRecord struct {
	Id        string
	UserId    string
	Content   string
	CreatedAt string
	UpdatedAt string
}
