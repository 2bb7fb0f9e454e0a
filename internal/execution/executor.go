package execution

import (
	"context"

	"cfdsmoke/internal/domain"
)

var (
	_ EntryRunner = (*Runner)(nil)
	_ Executor    = (*Driver)(nil)
)

// EntryRunner processes a single test case entry
type EntryRunner interface {
	Run(ctx context.Context, tc domain.TestCase) domain.EntryResult
}

// Executor runs a list of test cases and reports on the whole run
type Executor interface {
	Execute(ctx context.Context, cases []domain.TestCase) domain.RunReport
}
