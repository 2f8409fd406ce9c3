package commands

import (
	"context"

	"marketplace-core/internal/domain/user"

	"github.com/google/uuid"
)

// ProvisionUserRequest mirrors an identity created by the external auth service.
type ProvisionUserRequest struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
	Role        string
}

type UserCommands interface {
	// ProvisionUser creates the user together with its empty reputation stats.
	ProvisionUser(ctx context.Context, req ProvisionUserRequest) (*user.User, error)
}

type userUseCaseImpl struct {
	*Runner
}

func NewUserUseCase(runner *Runner) UserCommands {
	return &userUseCaseImpl{Runner: runner}
}

func (uc *userUseCaseImpl) ProvisionUser(ctx context.Context, req ProvisionUserRequest) (*user.User, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	name, err := user.NewDisplayName(req.DisplayName)
	if err != nil {
		return nil, err
	}
	roleName := req.Role
	if roleName == "" {
		roleName = user.RoleMember.String()
	}
	role, err := user.NewRole(roleName)
	if err != nil {
		return nil, err
	}

	var created *user.User
	err = uc.run(ctx, "user.provision", func(ctx context.Context, s *txScope) error {
		u, stats := user.NewUser(req.ID, email, name, role, s.now)
		if err := s.tx.Users().Create(ctx, s.tx.DB(), u); err != nil {
			return err
		}
		if err := s.tx.Reputation().Create(ctx, s.tx.DB(), stats); err != nil {
			return err
		}
		created = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
