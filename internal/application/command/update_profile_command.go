package command

import (
	"github.com/google/uuid"

	"branding-agent/internal/application/common"
)

// UpdateProfileCommand is a partial update: nil fields are left alone, empty
// strings explicitly clear a field.
type UpdateProfileCommand struct {
	UserID    uuid.UUID
	Name      *string
	Role      *string
	Industry  *string
	Interests *string
}

type UpdateProfileCommandResult struct {
	Result *common.UserResult
}
