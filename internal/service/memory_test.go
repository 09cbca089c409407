package service

import (
	"context"
	"sync"

	"elevation-service/internal/repository"
	"elevation-service/internal/repository/model"
	"github.com/google/uuid"
)

type applicationKey struct {
	playerId uuid.UUID
	role     model.Role
}

// memoryRepository is an in-process repository.Repository for scenario tests.
type memoryRepository struct {
	mu           sync.Mutex
	grants       map[uuid.UUID][]model.Role
	applications map[applicationKey]model.ApplicationRecord
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		grants:       map[uuid.UUID][]model.Role{},
		applications: map[applicationKey]model.ApplicationRecord{},
	}
}

func (m *memoryRepository) GetPlayerRoles(_ context.Context, playerId uuid.UUID) ([]model.Role, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Role{}, m.grants[playerId]...), nil
}

func (m *memoryRepository) HasRole(_ context.Context, playerId uuid.UUID, role model.Role) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := model.Player{Id: playerId, Roles: m.grants[playerId]}
	return p.HasRole(role), nil
}

func (m *memoryRepository) AddRoleToPlayer(_ context.Context, playerId uuid.UUID, role model.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := model.Player{Id: playerId, Roles: m.grants[playerId]}
	if p.HasRole(role) {
		return repository.ErrAlreadyHasRole
	}
	m.grants[playerId] = append(m.grants[playerId], role)
	return nil
}

func (m *memoryRepository) GetApplication(_ context.Context, playerId uuid.UUID, role model.Role) (*model.ApplicationRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.applications[applicationKey{playerId, role}]
	if !ok {
		return nil, repository.ErrApplicationNotFound
	}
	return &record, nil
}

func (m *memoryRepository) GetApprovalStatus(ctx context.Context, playerId uuid.UUID, role model.Role) (*bool, error) {
	record, err := m.GetApplication(ctx, playerId, role)
	if err != nil {
		return nil, nil
	}
	return &record.Approved, nil
}

func (m *memoryRepository) CreateApplication(_ context.Context, record *model.ApplicationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := applicationKey{record.UserId, record.Role}
	if _, ok := m.applications[key]; ok {
		return repository.ErrApplicationExists
	}
	m.applications[key] = *record
	return nil
}

func (m *memoryRepository) SetApproval(_ context.Context, playerId uuid.UUID, role model.Role, approved bool, rejectionReason *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := applicationKey{playerId, role}
	record, ok := m.applications[key]
	if !ok {
		return repository.ErrApplicationNotFound
	}
	record.Approved = approved
	record.RejectionReason = rejectionReason
	m.applications[key] = record
	return nil
}

func (m *memoryRepository) GetPendingApplications(_ context.Context, role model.Role) ([]*model.ApplicationRecord, error) {
	return m.filter(role, func(r model.ApplicationRecord) bool { return r.IsPending() }), nil
}

func (m *memoryRepository) GetApprovedApplications(_ context.Context, role model.Role) ([]*model.ApplicationRecord, error) {
	return m.filter(role, func(r model.ApplicationRecord) bool { return r.Approved }), nil
}

func (m *memoryRepository) filter(role model.Role, keep func(model.ApplicationRecord) bool) []*model.ApplicationRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.ApplicationRecord
	for key, r := range m.applications {
		if key.role == role && keep(r) {
			r := r
			out = append(out, &r)
		}
	}
	return out
}
