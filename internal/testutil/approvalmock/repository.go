package approvalmock

import (
	"context"

	domain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/approval"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn          func(ctx context.Context, a *domain.Approval) error
	GetByContractIDFn func(ctx context.Context, contractID uint64) (*domain.Approval, error)
	GetByApprovalIDFn func(ctx context.Context, approvalID string) (*domain.Approval, error)
	SaveFn            func(ctx context.Context, a *domain.Approval) error
}

func (m *Repo) Create(ctx context.Context, a *domain.Approval) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByContractID(ctx context.Context, contractID uint64) (*domain.Approval, error) {
	if m.GetByContractIDFn != nil {
		return m.GetByContractIDFn(ctx, contractID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByApprovalID(ctx context.Context, approvalID string) (*domain.Approval, error) {
	if m.GetByApprovalIDFn != nil {
		return m.GetByApprovalIDFn(ctx, approvalID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, a *domain.Approval) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}
