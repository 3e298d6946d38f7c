// Package http is the inbound HTTP adapter: echo handlers translating the
// REST surface into commands and queries, with JWT credentials deciding who
// may call what.
package http

import (
	"net/http"

	"dispatch/internal/adapters/in/http/auth"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler             commands.CreateOrderCommandHandler
	providerAcceptHandler          commands.ProviderAcceptOrderCommandHandler
	providerRejectHandler          commands.ProviderRejectOrderCommandHandler
	driverAcceptHandler            commands.DriverAcceptOrderCommandHandler
	driverRejectHandler            commands.DriverRejectOrderCommandHandler
	startToProviderHandler         commands.StartDeliveryToProviderCommandHandler
	startToCustomerHandler         commands.StartDeliveryToCustomerCommandHandler
	completeOrderHandler           commands.CompleteOrderCommandHandler
	cancelOrderHandler             commands.CancelOrderCommandHandler
	addReviewHandler               commands.AddReviewCommandHandler
	createSectorHandler            commands.CreateSectorCommandHandler
	setProviderAvailabilityHandler commands.SetProviderAvailabilityCommandHandler
	setDriverAvailabilityHandler   commands.SetDriverAvailabilityCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	getCustomerOrdersHandler   queries.GetCustomerOrdersQueryHandler
	getAvailableOrdersHandler  queries.GetAvailableOrdersQueryHandler
	resolveSectorHandler       queries.ResolveSectorQueryHandler
	notificationFeedRepository ports.NotificationRepository
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	providerAcceptHandler commands.ProviderAcceptOrderCommandHandler,
	providerRejectHandler commands.ProviderRejectOrderCommandHandler,
	driverAcceptHandler commands.DriverAcceptOrderCommandHandler,
	driverRejectHandler commands.DriverRejectOrderCommandHandler,
	startToProviderHandler commands.StartDeliveryToProviderCommandHandler,
	startToCustomerHandler commands.StartDeliveryToCustomerCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	addReviewHandler commands.AddReviewCommandHandler,
	createSectorHandler commands.CreateSectorCommandHandler,
	setProviderAvailabilityHandler commands.SetProviderAvailabilityCommandHandler,
	setDriverAvailabilityHandler commands.SetDriverAvailabilityCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	resolveSectorHandler queries.ResolveSectorQueryHandler,
	notificationFeedRepository ports.NotificationRepository,
) *Server {
	return &Server{
		createOrderHandler:             createOrderHandler,
		providerAcceptHandler:          providerAcceptHandler,
		providerRejectHandler:          providerRejectHandler,
		driverAcceptHandler:            driverAcceptHandler,
		driverRejectHandler:            driverRejectHandler,
		startToProviderHandler:         startToProviderHandler,
		startToCustomerHandler:         startToCustomerHandler,
		completeOrderHandler:           completeOrderHandler,
		cancelOrderHandler:             cancelOrderHandler,
		addReviewHandler:               addReviewHandler,
		createSectorHandler:            createSectorHandler,
		setProviderAvailabilityHandler: setProviderAvailabilityHandler,
		setDriverAvailabilityHandler:   setDriverAvailabilityHandler,
		getOrderHandler:                getOrderHandler,
		getCustomerOrdersHandler:       getCustomerOrdersHandler,
		getAvailableOrdersHandler:      getAvailableOrdersHandler,
		resolveSectorHandler:           resolveSectorHandler,
		notificationFeedRepository:     notificationFeedRepository,
	}
}

// RegisterRoutes binds every endpoint with its credential middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, tokens *auth.TokenService, operator *auth.OperatorGuard) {
	customer := e.Group("/customer", tokens.RequireCustomer)
	customer.POST("/orders", s.CreateOrder)
	customer.GET("/orders", s.GetCustomerOrders)
	customer.GET("/orders/:id", s.GetCustomerOrder)
	customer.POST("/orders/:id/cancel", s.CancelOrder)
	customer.POST("/orders/:id/review", s.AddReview)
	customer.GET("/notifications", s.GetNotifications)

	provider := e.Group("/provider", tokens.RequireProvider)
	provider.GET("/orders/available", s.GetProviderAvailableOrders)
	provider.POST("/orders/:id/accept", s.ProviderAcceptOrder)
	provider.POST("/orders/:id/reject", s.ProviderRejectOrder)
	provider.PUT("/availability", s.SetProviderAvailability)

	driver := e.Group("/driver", tokens.RequireDriver)
	driver.GET("/orders/available", s.GetDriverAvailableOrders)
	driver.POST("/orders/:id/accept", s.DriverAcceptOrder)
	driver.POST("/orders/:id/reject", s.DriverRejectOrder)
	driver.POST("/orders/:id/start-to-provider", s.StartDeliveryToProvider)
	driver.POST("/orders/:id/start-to-customer", s.StartDeliveryToCustomer)
	driver.POST("/orders/:id/complete", s.CompleteOrder)
	driver.PUT("/availability", s.SetDriverAvailability)

	e.POST("/sectors/resolve", s.ResolveSector)

	ops := e.Group("/operator", operator.Require)
	ops.POST("/sectors", s.CreateSector)
}

// CreateOrder handles POST /customer/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	credential, ok := auth.CustomerFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	addressID, err := kernel.UUIDFromString(req.AddressID)
	if err != nil {
		return badRequest(c, "invalid address id")
	}

	lines, err := req.toLines()
	if err != nil {
		return badRequest(c, "invalid product id")
	}

	deliveryDate, err := req.toDeliveryDate()
	if err != nil {
		return badRequest(c, "invalid delivery date")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, credential.CustomerID(), addressID,
		lines, req.PaymentMethod, req.Immediate, deliveryDate, req.DeliveryTime, req.Note,
	)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.createOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return s.respondOrder(c, http.StatusCreated, orderID)
}

// GetCustomerOrders handles GET /customer/orders.
func (s *Server) GetCustomerOrders(c echo.Context) error {
	credential, ok := auth.CustomerFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	query, err := queries.NewGetCustomerOrdersQuery(credential.CustomerID())
	if err != nil {
		return respondError(c, err)
	}

	views, err := s.getCustomerOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]orderSummaryResponse, 0, len(views))
	for _, view := range views {
		response = append(response, toCustomerOrderSummary(view))
	}

	return c.JSON(http.StatusOK, response)
}

// GetCustomerOrder handles GET /customer/orders/:id. Another customer's
// order behaves like a missing one.
func (s *Server) GetCustomerOrder(c echo.Context) error {
	credential, ok := auth.CustomerFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	orderID, err := orderIDParam(c)
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(c, err)
	}

	view, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	if !view.CustomerID.IsEqual(credential.CustomerID()) {
		return c.JSON(http.StatusNotFound, errorResponse{
			Code:    http.StatusNotFound,
			Message: "order not found",
		})
	}

	return c.JSON(http.StatusOK, toOrderResponse(view))
}

// CancelOrder handles POST /customer/orders/:id/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	credential, ok := auth.CustomerFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	orderID, err := orderIDParam(c)
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, credential.CustomerID())
	if err != nil {
		return respondError(c, err)
	}

	if err := s.cancelOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return s.respondOrder(c, http.StatusOK, orderID)
}

// AddReview handles POST /customer/orders/:id/review.
func (s *Server) AddReview(c echo.Context) error {
	credential, ok := auth.CustomerFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	orderID, err := orderIDParam(c)
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewAddReviewCommand(orderID, credential.CustomerID(), req.Rating, req.Review)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.addReviewHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return s.respondOrder(c, http.StatusOK, orderID)
}

// GetNotifications handles GET /customer/notifications.
func (s *Server) GetNotifications(c echo.Context) error {
	credential, ok := auth.CustomerFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	feed, err := s.notificationFeedRepository.GetByRecipient(c.Request().Context(), credential.CustomerID())
	if err != nil {
		return respondError(c, err)
	}

	response := make([]notificationResponse, 0, len(feed))
	for _, notification := range feed {
		response = append(response, toNotificationResponse(notification))
	}

	return c.JSON(http.StatusOK, response)
}

// GetProviderAvailableOrders handles GET /provider/orders/available.
func (s *Server) GetProviderAvailableOrders(c echo.Context) error {
	if _, ok := auth.ProviderFromContext(c); !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}
	return s.respondAvailableOrders(c, order.PendingProvider)
}

// ProviderAcceptOrder handles POST /provider/orders/:id/accept.
func (s *Server) ProviderAcceptOrder(c echo.Context) error {
	credential, ok := auth.ProviderFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	orderID, err := orderIDParam(c)
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	cmd, err := commands.NewProviderAcceptOrderCommand(orderID, credential.ProviderID())
	if err != nil {
		return respondError(c, err)
	}

	if err := s.providerAcceptHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return s.respondOrder(c, http.StatusOK, orderID)
}

// ProviderRejectOrder handles POST /provider/orders/:id/reject.
func (s *Server) ProviderRejectOrder(c echo.Context) error {
	credential, ok := auth.ProviderFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	orderID, err := orderIDParam(c)
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	cmd, err := commands.NewProviderRejectOrderCommand(orderID, credential.ProviderID())
	if err != nil {
		return respondError(c, err)
	}

	if err := s.providerRejectHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return s.respondOrder(c, http.StatusOK, orderID)
}

// SetProviderAvailability handles PUT /provider/availability.
func (s *Server) SetProviderAvailability(c echo.Context) error {
	credential, ok := auth.ProviderFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	var req setAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewSetProviderAvailabilityCommand(credential.ProviderID(), req.Available)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.setProviderAvailabilityHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetDriverAvailableOrders handles GET /driver/orders/available.
func (s *Server) GetDriverAvailableOrders(c echo.Context) error {
	if _, ok := auth.DriverFromContext(c); !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}
	return s.respondAvailableOrders(c, order.PendingDriver)
}

// DriverAcceptOrder handles POST /driver/orders/:id/accept.
func (s *Server) DriverAcceptOrder(c echo.Context) error {
	credential, ok := auth.DriverFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	orderID, err := orderIDParam(c)
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	cmd, err := commands.NewDriverAcceptOrderCommand(orderID, credential.DriverID())
	if err != nil {
		return respondError(c, err)
	}

	if err := s.driverAcceptHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return s.respondOrder(c, http.StatusOK, orderID)
}

// DriverRejectOrder handles POST /driver/orders/:id/reject.
func (s *Server) DriverRejectOrder(c echo.Context) error {
	credential, ok := auth.DriverFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	orderID, err := orderIDParam(c)
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	cmd, err := commands.NewDriverRejectOrderCommand(orderID, credential.DriverID())
	if err != nil {
		return respondError(c, err)
	}

	if err := s.driverRejectHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return s.respondOrder(c, http.StatusOK, orderID)
}

// StartDeliveryToProvider handles POST /driver/orders/:id/start-to-provider.
func (s *Server) StartDeliveryToProvider(c echo.Context) error {
	credential, ok := auth.DriverFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	orderID, err := orderIDParam(c)
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	cmd, err := commands.NewStartDeliveryToProviderCommand(orderID, credential.DriverID())
	if err != nil {
		return respondError(c, err)
	}

	if err := s.startToProviderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return s.respondOrder(c, http.StatusOK, orderID)
}

// StartDeliveryToCustomer handles POST /driver/orders/:id/start-to-customer.
func (s *Server) StartDeliveryToCustomer(c echo.Context) error {
	credential, ok := auth.DriverFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	orderID, err := orderIDParam(c)
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	cmd, err := commands.NewStartDeliveryToCustomerCommand(orderID, credential.DriverID())
	if err != nil {
		return respondError(c, err)
	}

	if err := s.startToCustomerHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return s.respondOrder(c, http.StatusOK, orderID)
}

// CompleteOrder handles POST /driver/orders/:id/complete.
func (s *Server) CompleteOrder(c echo.Context) error {
	credential, ok := auth.DriverFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	orderID, err := orderIDParam(c)
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, credential.DriverID())
	if err != nil {
		return respondError(c, err)
	}

	if err := s.completeOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return s.respondOrder(c, http.StatusOK, orderID)
}

// SetDriverAvailability handles PUT /driver/availability.
func (s *Server) SetDriverAvailability(c echo.Context) error {
	credential, ok := auth.DriverFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	var req setAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewSetDriverAvailabilityCommand(credential.DriverID(), req.Available)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.setDriverAvailabilityHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ResolveSector handles POST /sectors/resolve.
func (s *Server) ResolveSector(c echo.Context) error {
	var req pointRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	query, err := queries.NewResolveSectorQuery(req.Lat, req.Lng)
	if err != nil {
		return respondError(c, err)
	}

	view, err := s.resolveSectorHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, sectorResponse{
		ID:          view.ID.String(),
		Name:        view.Name,
		DeliveryFee: view.DeliveryFee,
	})
}

// CreateSector handles POST /operator/sectors.
func (s *Server) CreateSector(c echo.Context) error {
	var req createSectorRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	vertices := make([]kernel.Point, 0, len(req.Boundary))
	for _, vertex := range req.Boundary {
		point, err := kernel.NewPoint(vertex.Lat, vertex.Lng)
		if err != nil {
			return respondError(c, err)
		}
		vertices = append(vertices, point)
	}

	boundary, err := kernel.NewPolygon(vertices)
	if err != nil {
		return respondError(c, err)
	}

	sectorID := kernel.NewUUID()
	cmd, err := commands.NewCreateSectorCommand(sectorID, req.Name, boundary, req.DeliveryFee)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.createSectorHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, sectorResponse{
		ID:          sectorID.String(),
		Name:        req.Name,
		DeliveryFee: req.DeliveryFee,
	})
}

// respondAvailableOrders serves the claim pool for the requested sector.
func (s *Server) respondAvailableOrders(c echo.Context, pool order.Status) error {
	sectorID, err := kernel.UUIDFromString(c.QueryParam("sector_id"))
	if err != nil {
		return badRequest(c, "invalid sector id")
	}

	query, err := queries.NewGetAvailableOrdersQuery(sectorID, pool)
	if err != nil {
		return respondError(c, err)
	}

	views, err := s.getAvailableOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]orderSummaryResponse, 0, len(views))
	for _, view := range views {
		response = append(response, toAvailableOrderSummary(view))
	}

	return c.JSON(http.StatusOK, response)
}

// respondOrder returns the current order view after a successful command.
func (s *Server) respondOrder(c echo.Context, status int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(c, err)
	}

	view, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(status, toOrderResponse(view))
}

func orderIDParam(c echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param("id"))
}
