package comment

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const MaxLength = 140

var (
	ErrMissingFields = errors.New("message and domain are required")
	ErrTooLong       = fmt.Errorf("message longer than %d characters", MaxLength)
	ErrChatDisabled  = errors.New("chat disabled for domain")
)

// RejectedError is returned when moderation refuses a message.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("comment rejected by moderation: %s", e.Reason)
}

// Comment is a short message posted to a company domain's suggestion board.
type Comment struct {
	ID              uuid.UUID
	Domain          string
	UserID          string
	UserName        string
	UserEmail       string
	Message         string
	Approved        bool
	ModeratedByAI   bool
	RejectionReason *string
	CreatedAt       time.Time
}

type Author struct {
	ID    string
	Email string
	Name  string
}
