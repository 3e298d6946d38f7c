package commands

import (
	"errors"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRenotifyPendingOrdersCommandIsNotConstructed = errors.New(
	"RenotifyPendingOrdersCommand must be created via NewRenotifyPendingOrdersCommand constructor",
)

// RenotifyPendingOrdersCommand triggers a sweep over immediate orders that
// have sat in pending provider status for longer than the stale window.
type RenotifyPendingOrdersCommand struct { //nolint:recvcheck //using for validation
	staleAfter time.Duration

	guard guard.ConstructorGuard
}

// NewRenotifyPendingOrdersCommand creates a command for the stale-order sweep.
func NewRenotifyPendingOrdersCommand(staleAfter time.Duration) (RenotifyPendingOrdersCommand, error) {
	cmd := RenotifyPendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setStaleAfter(staleAfter); err != nil {
		return RenotifyPendingOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RenotifyPendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRenotifyPendingOrdersCommandIsNotConstructed)
}

// StaleAfter returns how long an order may wait before being re-broadcast.
func (c RenotifyPendingOrdersCommand) StaleAfter() time.Duration {
	return c.staleAfter
}

func (c *RenotifyPendingOrdersCommand) setStaleAfter(staleAfter time.Duration) error {
	if staleAfter <= 0 {
		return errs.NewValueIsInvalidError("staleAfter")
	}

	c.staleAfter = staleAfter
	return nil
}
