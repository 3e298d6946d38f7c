package commands

import (
	"context"

	"dispatch/internal/core/domain/model/sector"
)

// CreateSectorCommandHandler registers a new delivery zone. New sectors are
// active immediately and start receiving orders on the next resolution.
type CreateSectorCommandHandler struct {
	uowFactory SectorUoWFactory
}

// NewCreateSectorCommandHandler creates a handler for sector registration.
func NewCreateSectorCommandHandler(uowFactory SectorUoWFactory) CreateSectorCommandHandler {
	return CreateSectorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sector registration command.
func (h CreateSectorCommandHandler) Handle(ctx context.Context, cmd CreateSectorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newSector, err := sector.NewSector(cmd.SectorID(), cmd.Name(), cmd.Boundary(), cmd.DeliveryFee())
	if err != nil {
		return err
	}

	if err = uow.SectorRepository().Add(ctx, newSector); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
