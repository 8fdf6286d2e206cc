package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrSweepOverdueInvoicesCommandIsNotConstructed = errors.New(
		"SweepOverdueInvoicesCommand must be created via NewSweepOverdueInvoicesCommand constructor",
	)
)

// SweepOverdueInvoicesCommand triggers a batch catch-up of stored invoice
// statuses. Overdue is derived, not transitioned, so reads are always
// correct without this sweep; it exists so listings filtered on the stored
// status column also converge.
//
// Example:
//
//	cmd := NewSweepOverdueInvoicesCommand()
//	handler := NewSweepOverdueInvoicesCommandHandler(uowFactory)
//
//	// Run periodically from a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Overdue sweep failed: %v", err)
//	}
type SweepOverdueInvoicesCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepOverdueInvoicesCommand creates a command to refresh stale invoice
// statuses. This is a parameterless command that processes all open invoices
// past their due date.
func NewSweepOverdueInvoicesCommand() SweepOverdueInvoicesCommand {
	return SweepOverdueInvoicesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c SweepOverdueInvoicesCommand) Validate() error {
	return c.guard.Validate(ErrSweepOverdueInvoicesCommandIsNotConstructed)
}
