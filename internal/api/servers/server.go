package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List the next delivery slots
	// (GET /api/v1/slots)
	GetDeliverySlots(ctx echo.Context) error
	// Start an ordering session
	// (POST /api/v1/sessions)
	CreateSession(ctx echo.Context) error
	// Get the session state with price preview
	// (GET /api/v1/sessions/{sessionId})
	GetSession(ctx echo.Context, sessionId SessionId) error
	// Adjust the number of boxes by a delta
	// (POST /api/v1/sessions/{sessionId}/quantity)
	AdjustQuantity(ctx echo.Context, sessionId SessionId) error
	// Replace the customer details
	// (PUT /api/v1/sessions/{sessionId}/customer)
	UpdateCustomer(ctx echo.Context, sessionId SessionId) error
	// Select one of the offered delivery dates
	// (PUT /api/v1/sessions/{sessionId}/delivery-date)
	SelectDeliveryDate(ctx echo.Context, sessionId SessionId) error
	// Leave the confirmation and start over
	// (POST /api/v1/sessions/{sessionId}/new-order)
	StartNewOrder(ctx echo.Context, sessionId SessionId) error
	// List the orders placed in this session, most recent first
	// (GET /api/v1/sessions/{sessionId}/orders)
	GetOrderHistory(ctx echo.Context, sessionId SessionId) error
	// Confirm the current selection as an order
	// (POST /api/v1/sessions/{sessionId}/orders)
	SubmitOrder(ctx echo.Context, sessionId SessionId) error
	// Navigate between the ordering and history views
	// (PUT /api/v1/sessions/{sessionId}/view)
	ChangeView(ctx echo.Context, sessionId SessionId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetDeliverySlots converts echo context to params.
func (w *ServerInterfaceWrapper) GetDeliverySlots(ctx echo.Context) error {
	return w.Handler.GetDeliverySlots(ctx)
}

// CreateSession converts echo context to params.
func (w *ServerInterfaceWrapper) CreateSession(ctx echo.Context) error {
	return w.Handler.CreateSession(ctx)
}

// GetSession converts echo context to params.
func (w *ServerInterfaceWrapper) GetSession(ctx echo.Context) error {
	sessionId, err := bindSessionId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetSession(ctx, sessionId)
}

// AdjustQuantity converts echo context to params.
func (w *ServerInterfaceWrapper) AdjustQuantity(ctx echo.Context) error {
	sessionId, err := bindSessionId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AdjustQuantity(ctx, sessionId)
}

// UpdateCustomer converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateCustomer(ctx echo.Context) error {
	sessionId, err := bindSessionId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateCustomer(ctx, sessionId)
}

// SelectDeliveryDate converts echo context to params.
func (w *ServerInterfaceWrapper) SelectDeliveryDate(ctx echo.Context) error {
	sessionId, err := bindSessionId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.SelectDeliveryDate(ctx, sessionId)
}

// StartNewOrder converts echo context to params.
func (w *ServerInterfaceWrapper) StartNewOrder(ctx echo.Context) error {
	sessionId, err := bindSessionId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.StartNewOrder(ctx, sessionId)
}

// GetOrderHistory converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderHistory(ctx echo.Context) error {
	sessionId, err := bindSessionId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrderHistory(ctx, sessionId)
}

// SubmitOrder converts echo context to params.
func (w *ServerInterfaceWrapper) SubmitOrder(ctx echo.Context) error {
	sessionId, err := bindSessionId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.SubmitOrder(ctx, sessionId)
}

// ChangeView converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeView(ctx echo.Context) error {
	sessionId, err := bindSessionId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ChangeView(ctx, sessionId)
}

func bindSessionId(ctx echo.Context) (SessionId, error) {
	var sessionId SessionId

	err := runtime.BindStyledParameterWithOptions("simple", "sessionId", ctx.Param("sessionId"), &sessionId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return sessionId, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sessionId: %s", err))
	}

	return sessionId, nil
}

// EchoRouter specifies the route registration functions shared by
// echo.Echo and echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/slots", wrapper.GetDeliverySlots)
	router.POST(baseURL+"/api/v1/sessions", wrapper.CreateSession)
	router.GET(baseURL+"/api/v1/sessions/:sessionId", wrapper.GetSession)
	router.POST(baseURL+"/api/v1/sessions/:sessionId/quantity", wrapper.AdjustQuantity)
	router.PUT(baseURL+"/api/v1/sessions/:sessionId/customer", wrapper.UpdateCustomer)
	router.PUT(baseURL+"/api/v1/sessions/:sessionId/delivery-date", wrapper.SelectDeliveryDate)
	router.POST(baseURL+"/api/v1/sessions/:sessionId/new-order", wrapper.StartNewOrder)
	router.GET(baseURL+"/api/v1/sessions/:sessionId/orders", wrapper.GetOrderHistory)
	router.POST(baseURL+"/api/v1/sessions/:sessionId/orders", wrapper.SubmitOrder)
	router.PUT(baseURL+"/api/v1/sessions/:sessionId/view", wrapper.ChangeView)
}
