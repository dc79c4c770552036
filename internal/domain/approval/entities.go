package approval

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("approval not found")

type Status string

const (
	StatusPendingReview Status = "pending_review"
	StatusApproved      Status = "approved"
	StatusRejected      Status = "rejected"
)

// Approval is the one-to-one audit companion of a contract. It is created
// together with the contract and updated in place on approve/reject, never
// re-created.
type Approval struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	ApprovalID string `gorm:"column:approval_id;type:char(32);not null;uniqueIndex:ux_approvals_approval_id" json:"approval_id"`
	// FK to installment_contracts.id; the unique index enforces one per contract.
	ContractID uint64 `gorm:"column:contract_id;not null;uniqueIndex:ux_approvals_contract" json:"-"`

	Status     Status     `gorm:"column:status;type:enum('pending_review','approved','rejected');default:'pending_review'" json:"status"`
	ApproverID *string    `gorm:"column:approver_id;type:char(32)" json:"approver_id,omitempty"`
	Reason     string     `gorm:"column:reason;type:text" json:"reason,omitempty"`
	DecidedAt  *time.Time `gorm:"column:decided_at" json:"decided_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Approval) TableName() string { return "contract_approvals" }
