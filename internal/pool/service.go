package pool

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=pool
type Repository interface {
	GetPool(ctx context.Context, id uuid.UUID) (*Pool, error)
	ListParticipants(ctx context.Context, poolID uuid.UUID) ([]*Participant, error)
	ListByStatus(ctx context.Context, status Status, limit int) ([]*Pool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Pool, error) {
	return s.repo.GetPool(ctx, id)
}

func (s *Service) Participants(ctx context.Context, poolID uuid.UUID) ([]*Participant, error) {
	return s.repo.ListParticipants(ctx, poolID)
}

// ListOpen returns up to limit pools still selling quotas, closest deadline first.
func (s *Service) ListOpen(ctx context.Context, limit int) ([]*Pool, error) {
	return s.repo.ListByStatus(ctx, StatusOpen, limit)
}
