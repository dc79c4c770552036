package mysql

import (
	"context"

	"gorm.io/gorm"

	approvalDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/approval"
)

type ApprovalRepository struct{ db *gorm.DB }

func NewApprovalRepository(db *gorm.DB) *ApprovalRepository { return &ApprovalRepository{db: db} }

func (r *ApprovalRepository) Create(ctx context.Context, a *approvalDomain.Approval) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApprovalRepository) GetByContractID(ctx context.Context, contractNumericID uint64) (*approvalDomain.Approval, error) {
	var out approvalDomain.Approval
	res := r.db.WithContext(ctx).
		Where("contract_id = ?", contractNumericID).
		First(&out)
	return &out, res.Error
}

func (r *ApprovalRepository) GetByApprovalID(ctx context.Context, approvalID string) (*approvalDomain.Approval, error) {
	var out approvalDomain.Approval
	res := r.db.WithContext(ctx).
		Where("approval_id = ?", approvalID).
		First(&out)
	return &out, res.Error
}

func (r *ApprovalRepository) Save(ctx context.Context, a *approvalDomain.Approval) error {
	return r.db.WithContext(ctx).Save(a).Error
}
