package http

import (
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

const deliveryDateLayout = "2006-01-02"

// orderLineRequest is a single requested product in an order.
type orderLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// createOrderRequest is the body of POST /customer/orders.
type createOrderRequest struct {
	Items         []orderLineRequest `json:"items"`
	AddressID     string             `json:"address_id"`
	PaymentMethod string             `json:"payment_method"`
	Immediate     bool               `json:"immediate"`
	DeliveryDate  string             `json:"delivery_date,omitempty"`
	DeliveryTime  string             `json:"delivery_time,omitempty"`
	Note          string             `json:"note,omitempty"`
}

// reviewRequest is the body of POST /customer/orders/{id}/review.
type reviewRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review,omitempty"`
}

// setAvailabilityRequest toggles an actor's on-duty flag.
type setAvailabilityRequest struct {
	Available bool `json:"available"`
}

// pointRequest is a coordinate pair, used by sector resolution.
type pointRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// createSectorRequest is the body of POST /operator/sectors. Boundary
// vertices are ordered; the ring closes implicitly.
type createSectorRequest struct {
	Name        string         `json:"name"`
	DeliveryFee float64        `json:"delivery_fee"`
	Boundary    []pointRequest `json:"boundary"`
}

// errorResponse is the uniform error body.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// orderItemResponse is a single order line in an order view.
type orderItemResponse struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// orderResponse is the full order view returned by order endpoints.
type orderResponse struct {
	ID            string              `json:"id"`
	CustomerID    string              `json:"customer_id"`
	ProviderID    *string             `json:"provider_id,omitempty"`
	DriverID      *string             `json:"driver_id,omitempty"`
	SectorID      string              `json:"sector_id"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"payment_status"`
	PaymentMethod string              `json:"payment_method"`
	TotalAmount   float64             `json:"total_amount"`
	DeliveryFee   float64             `json:"delivery_fee"`
	Immediate     bool                `json:"immediate"`
	DeliveryDate  *string             `json:"delivery_date,omitempty"`
	DeliveryTime  string              `json:"delivery_time,omitempty"`
	Note          string              `json:"note,omitempty"`
	OrderDate     time.Time           `json:"order_date"`
	Rating        *int                `json:"rating,omitempty"`
	Review        string              `json:"review,omitempty"`
	Items         []orderItemResponse `json:"items"`
}

// orderSummaryResponse is the compact order view used in lists.
type orderSummaryResponse struct {
	ID          string    `json:"id"`
	Status      string    `json:"status,omitempty"`
	TotalAmount float64   `json:"total_amount"`
	DeliveryFee float64   `json:"delivery_fee"`
	Immediate   bool      `json:"immediate,omitempty"`
	Note        string    `json:"note,omitempty"`
	OrderDate   time.Time `json:"order_date"`
}

// sectorResponse is the public sector view.
type sectorResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	DeliveryFee float64 `json:"delivery_fee"`
}

// notificationResponse is one entry in a user's notification feed.
type notificationResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

func (r createOrderRequest) toLines() ([]commands.OrderLine, error) {
	lines := make([]commands.OrderLine, 0, len(r.Items))
	for _, item := range r.Items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, commands.OrderLine{ProductID: productID, Quantity: item.Quantity})
	}
	return lines, nil
}

func (r createOrderRequest) toDeliveryDate() (*time.Time, error) {
	if r.DeliveryDate == "" {
		return nil, nil
	}

	date, err := time.Parse(deliveryDateLayout, r.DeliveryDate)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

func toOrderResponse(view queries.GetOrderQueryResponse) orderResponse {
	items := make([]orderItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, orderItemResponse{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		})
	}

	var providerID, driverID *string
	if view.ProviderID != nil {
		s := view.ProviderID.String()
		providerID = &s
	}
	if view.DriverID != nil {
		s := view.DriverID.String()
		driverID = &s
	}

	var deliveryDate *string
	if view.DeliveryDate != nil {
		s := view.DeliveryDate.Format(deliveryDateLayout)
		deliveryDate = &s
	}

	return orderResponse{
		ID:            view.ID.String(),
		CustomerID:    view.CustomerID.String(),
		ProviderID:    providerID,
		DriverID:      driverID,
		SectorID:      view.SectorID.String(),
		Status:        view.Status,
		PaymentStatus: view.PaymentStatus,
		PaymentMethod: view.PaymentMethod,
		TotalAmount:   view.TotalAmount,
		DeliveryFee:   view.DeliveryFee,
		Immediate:     view.Immediate,
		DeliveryDate:  deliveryDate,
		DeliveryTime:  view.DeliveryTime,
		Note:          view.Note,
		OrderDate:     view.OrderDate,
		Rating:        view.Rating,
		Review:        view.Review,
		Items:         items,
	}
}

func toCustomerOrderSummary(view queries.GetCustomerOrdersQueryResponse) orderSummaryResponse {
	return orderSummaryResponse{
		ID:          view.ID.String(),
		Status:      view.Status,
		TotalAmount: view.TotalAmount,
		DeliveryFee: view.DeliveryFee,
		OrderDate:   view.OrderDate,
	}
}

func toAvailableOrderSummary(view queries.GetAvailableOrdersQueryResponse) orderSummaryResponse {
	return orderSummaryResponse{
		ID:          view.ID.String(),
		TotalAmount: view.TotalAmount,
		DeliveryFee: view.DeliveryFee,
		Immediate:   view.Immediate,
		Note:        view.Note,
		OrderDate:   view.OrderDate,
	}
}

func toNotificationResponse(notification ports.Notification) notificationResponse {
	return notificationResponse{
		ID:        notification.ID.String(),
		Title:     notification.Title,
		Body:      notification.Body,
		Data:      notification.Data,
		CreatedAt: notification.CreatedAt,
	}
}
