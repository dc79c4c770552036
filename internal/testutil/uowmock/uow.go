package uowmock

import (
	"context"
	"errors"

	"github.com/AhmadTubaileh/Software-project-sub000/internal/domain/contract"
	"github.com/AhmadTubaileh/Software-project-sub000/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn         func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinContractTxFn func(ctx context.Context, contractID string, fn func(r uow.Repos, c *contract.Contract) error) error
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinContractTx(fn func(context.Context, string, func(uow.Repos, *contract.Contract) error) error) *UoW {
	m.WithinContractTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinContractTx(ctx context.Context, contractID string, fn func(r uow.Repos, c *contract.Contract) error) error {
	if m.WithinContractTxFn != nil {
		return m.WithinContractTxFn(ctx, contractID, fn)
	}
	return errUnimplemented
}

// Passthrough returns a UoW whose transaction methods simply run the body
// against the supplied repos, with no real transaction. getContract feeds
// WithinContractTx; it may return an error to simulate a missing row.
func Passthrough(repos uow.Repos, getContract func(contractID string) (*contract.Contract, error)) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(repos)
		},
		WithinContractTxFn: func(ctx context.Context, contractID string, fn func(r uow.Repos, c *contract.Contract) error) error {
			c, err := getContract(contractID)
			if err != nil {
				return err
			}
			return fn(repos, c)
		},
	}
}
