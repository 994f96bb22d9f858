// Package servers holds the HTTP API types and the echo routing glue for
// the OpenAPI document in openapi.json.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for SessionView.
const (
	CONFIRMATION SessionView = "CONFIRMATION"
	HISTORY      SessionView = "HISTORY"
	ORDERING     SessionView = "ORDERING"
)

// AdjustQuantityRequest defines model for AdjustQuantityRequest.
type AdjustQuantityRequest struct {
	Delta int `json:"delta"`
}

// ChangeViewRequest defines model for ChangeViewRequest.
type ChangeViewRequest struct {
	View SessionView `json:"view"`
}

// Customer defines model for Customer.
type Customer struct {
	Address string `json:"address"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
}

// DeliverySlot defines model for DeliverySlot.
type DeliverySlot struct {
	CapacityUsed      int                `json:"capacityUsed"`
	Date              openapi_types.Date `json:"date"`
	DayName           string             `json:"dayName"`
	IsAvailable       bool               `json:"isAvailable"`
	MaxCapacity       int                `json:"maxCapacity"`
	OccupancyRate     float64            `json:"occupancyRate"`
	RemainingCapacity int                `json:"remainingCapacity"`
}

// Error defines model for Error.
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// Order defines model for Order.
type Order struct {
	Chapatis     int                `json:"chapatis"`
	Customer     Customer           `json:"customer"`
	DeliveryDate openapi_types.Date `json:"deliveryDate"`
	Id           string             `json:"id"`
	PlacedAt     time.Time          `json:"placedAt"`
	Quantity     int                `json:"quantity"`
	TotalPrice   float64            `json:"totalPrice"`
}

// SelectDeliveryDateRequest defines model for SelectDeliveryDateRequest.
type SelectDeliveryDateRequest struct {
	Date openapi_types.Date `json:"date"`
}

// Session defines model for Session.
type Session struct {
	CanDecrease    bool                `json:"canDecrease"`
	CanIncrease    bool                `json:"canIncrease"`
	Chapatis       int                 `json:"chapatis"`
	ConfirmedOrder *Order              `json:"confirmedOrder,omitempty"`
	Customer       Customer            `json:"customer"`
	Id             openapi_types.UUID  `json:"id"`
	MaxQuantity    int                 `json:"maxQuantity"`
	MinQuantity    int                 `json:"minQuantity"`
	OrderCount     int                 `json:"orderCount"`
	PricePerBox    float64             `json:"pricePerBox"`
	Quantity       int                 `json:"quantity"`
	SelectedDate   *openapi_types.Date `json:"selectedDate,omitempty"`
	TotalPrice     float64             `json:"totalPrice"`
	UpdatedAt      time.Time           `json:"updatedAt"`
	View           SessionView         `json:"view"`
}

// SessionView defines model for SessionView.
type SessionView string

// SessionId defines model for SessionId.
type SessionId = openapi_types.UUID

// SelectDeliveryDateJSONRequestBody defines body for SelectDeliveryDate for application/json ContentType.
type SelectDeliveryDateJSONRequestBody = SelectDeliveryDateRequest

// AdjustQuantityJSONRequestBody defines body for AdjustQuantity for application/json ContentType.
type AdjustQuantityJSONRequestBody = AdjustQuantityRequest

// UpdateCustomerJSONRequestBody defines body for UpdateCustomer for application/json ContentType.
type UpdateCustomerJSONRequestBody = Customer

// ChangeViewJSONRequestBody defines body for ChangeView for application/json ContentType.
type ChangeViewJSONRequestBody = ChangeViewRequest
