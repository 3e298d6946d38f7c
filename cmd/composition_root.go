package cmd

import (
	"log/slog"

	"dispatch/internal/adapters/out/fcm"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/devicerepo"
	"dispatch/internal/adapters/out/postgres/notificationrepo"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/ports"
	"dispatch/internal/notifications"

	"gorm.io/gorm"
)

// CompositionRoot wires the persistence, notification, and use case layers.
// Handlers are created per call; the unit of work factory and the dispatcher
// are shared.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	feed       ports.NotificationRepository
	dispatcher *notifications.Dispatcher
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	notifier := fcm.NewNotifier(
		configs.FCMProjectID,
		devicerepo.NewGormDeviceTokenSource(gormDB),
		fcm.NewStaticCredentialProvider(configs.FCMAccessToken),
	)
	feed := notificationrepo.NewGormNotificationRepository(gormDB)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		feed:       feed,
		dispatcher: notifications.NewDispatcher(notifier, feed, logger, configs.NotificationQueueSize),
	}
}

// Close drains the notification queue. Call during shutdown after the HTTP
// server has stopped accepting requests.
func (c *CompositionRoot) Close() {
	c.dispatcher.Close()
}

// NotificationFeed exposes the read side of the per-recipient notification log.
func (c *CompositionRoot) NotificationFeed() ports.NotificationRepository {
	return c.feed
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateProviderAcceptOrderCommandHandler() commands.ProviderAcceptOrderCommandHandler {
	var f commands.ProviderClaimUoWFactory = FuncProviderClaimUoWFactory(func() commands.ProviderClaimUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProviderAcceptOrderCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateProviderRejectOrderCommandHandler() commands.ProviderRejectOrderCommandHandler {
	return commands.NewProviderRejectOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDriverAcceptOrderCommandHandler() commands.DriverAcceptOrderCommandHandler {
	var f commands.DriverClaimUoWFactory = FuncDriverClaimUoWFactory(func() commands.DriverClaimUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDriverAcceptOrderCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateDriverRejectOrderCommandHandler() commands.DriverRejectOrderCommandHandler {
	return commands.NewDriverRejectOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateStartDeliveryToProviderCommandHandler() commands.StartDeliveryToProviderCommandHandler {
	return commands.NewStartDeliveryToProviderCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateStartDeliveryToCustomerCommandHandler() commands.StartDeliveryToCustomerCommandHandler {
	return commands.NewStartDeliveryToCustomerCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateAddReviewCommandHandler() commands.AddReviewCommandHandler {
	return commands.NewAddReviewCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateSectorCommandHandler() commands.CreateSectorCommandHandler {
	var f commands.SectorUoWFactory = FuncSectorUoWFactory(func() commands.SectorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateSectorCommandHandler(f)
}

func (c *CompositionRoot) CreateSetProviderAvailabilityCommandHandler() commands.SetProviderAvailabilityCommandHandler {
	var f commands.ProviderUoWFactory = FuncProviderUoWFactory(func() commands.ProviderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetProviderAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateSetDriverAvailabilityCommandHandler() commands.SetDriverAvailabilityCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetDriverAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateRenotifyPendingOrdersCommandHandler() commands.RenotifyPendingOrdersCommandHandler {
	var f commands.RenotifyUoWFactory = FuncRenotifyUoWFactory(func() commands.RenotifyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRenotifyPendingOrdersCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableOrdersQueryHandler() queries.GetAvailableOrdersQueryHandler {
	return queries.NewGetAvailableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateResolveSectorQueryHandler() queries.ResolveSectorQueryHandler {
	return queries.NewResolveSectorQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncProviderClaimUoWFactory func() commands.ProviderClaimUoW

func (f FuncProviderClaimUoWFactory) Create() commands.ProviderClaimUoW {
	return f()
}

type FuncDriverClaimUoWFactory func() commands.DriverClaimUoW

func (f FuncDriverClaimUoWFactory) Create() commands.DriverClaimUoW {
	return f()
}

type FuncSectorUoWFactory func() commands.SectorUoW

func (f FuncSectorUoWFactory) Create() commands.SectorUoW {
	return f()
}

type FuncProviderUoWFactory func() commands.ProviderUoW

func (f FuncProviderUoWFactory) Create() commands.ProviderUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncRenotifyUoWFactory func() commands.RenotifyUoW

func (f FuncRenotifyUoWFactory) Create() commands.RenotifyUoW {
	return f()
}
