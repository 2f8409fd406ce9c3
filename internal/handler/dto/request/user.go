package request

import (
	"marketplace-core/internal/usecase/commands"

	"github.com/google/uuid"
)

// ProvisionUserRequest mirrors an identity already created by the auth service.
type ProvisionUserRequest struct {
	ID          uuid.UUID `json:"id" binding:"required"`
	Email       string    `json:"email" binding:"required,email"`
	DisplayName string    `json:"display_name" binding:"required,max=80"`
	Role        string    `json:"role" binding:"omitempty,oneof=member moderator admin"`
}

func (r ProvisionUserRequest) ToCommand() commands.ProvisionUserRequest {
	return commands.ProvisionUserRequest{
		ID:          r.ID,
		Email:       r.Email,
		DisplayName: r.DisplayName,
		Role:        r.Role,
	}
}
