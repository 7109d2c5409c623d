package domain

import (
	"time"

	"github.com/google/uuid"
)

type GeneratedResume struct {
	ID        uuid.UUID  `json:"id"`
	SessionID *uuid.UUID `json:"sessionId,omitempty"`
	UserType  UserType   `json:"userType"`
	Model     string     `json:"model"`
	Prompt    string     `json:"-"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"createdAt"`
}
