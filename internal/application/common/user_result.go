package common

import (
	"time"

	"github.com/google/uuid"
)

type UserResult struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Industry  string    `json:"industry"`
	Interests string    `json:"interests"`
	CreatedAt time.Time `json:"created_at"`
}
