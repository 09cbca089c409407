package repository

import (
	"context"
	"errors"

	"elevation-service/internal/repository/model"
	"github.com/google/uuid"
)

var (
	ErrAlreadyHasRole      = errors.New("player already has role")
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationExists   = errors.New("application already exists")
	ErrNotElevatedRole     = errors.New("role has no application workflow")
)

//go:generate mockgen -source=public.go -destination=mock_repository.go -package=repository

type Repository interface {
	GetPlayerRoles(ctx context.Context, playerId uuid.UUID) ([]model.Role, error)
	HasRole(ctx context.Context, playerId uuid.UUID, role model.Role) (bool, error)
	// AddRoleToPlayer returns ErrAlreadyHasRole if the grant already exists.
	AddRoleToPlayer(ctx context.Context, playerId uuid.UUID, role model.Role) error

	// GetApplication returns ErrApplicationNotFound if the user never applied for the role.
	GetApplication(ctx context.Context, playerId uuid.UUID, role model.Role) (*model.ApplicationRecord, error)
	// GetApprovalStatus returns nil when no application exists.
	GetApprovalStatus(ctx context.Context, playerId uuid.UUID, role model.Role) (*bool, error)
	CreateApplication(ctx context.Context, record *model.ApplicationRecord) error
	SetApproval(ctx context.Context, playerId uuid.UUID, role model.Role, approved bool, rejectionReason *string) error
	GetPendingApplications(ctx context.Context, role model.Role) ([]*model.ApplicationRecord, error)
	GetApprovedApplications(ctx context.Context, role model.Role) ([]*model.ApplicationRecord, error)
}
