package approval

import "context"

type Repository interface {
	// Create a new approval (DB uniqueness ensures at most one per contract)
	Create(ctx context.Context, a *Approval) error

	// Get approval by contract numeric ID
	GetByContractID(ctx context.Context, contractID uint64) (*Approval, error)

	// Get by public approval_id
	GetByApprovalID(ctx context.Context, approvalID string) (*Approval, error)

	Save(ctx context.Context, a *Approval) error
}
