// Package http exposes the ordering flow as a JSON API. Server implements
// servers.ServerInterface and translates domain errors into status codes.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"chapatis/internal/core/application/usecases/commands"
	"chapatis/internal/core/application/usecases/queries"
	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/order"
	"chapatis/internal/core/domain/model/session"
	"chapatis/internal/api/servers"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases served by the API.
type Handlers struct {
	CreateSession      commands.CreateSessionCommandHandler
	SelectDeliveryDate commands.SelectDeliveryDateCommandHandler
	AdjustQuantity     commands.AdjustQuantityCommandHandler
	UpdateCustomer     commands.UpdateCustomerCommandHandler
	SubmitOrder        commands.SubmitOrderCommandHandler
	StartNewOrder      commands.StartNewOrderCommandHandler
	ChangeView         commands.ChangeViewCommandHandler

	GetDeliverySlots queries.GetDeliverySlotsQueryHandler
	GetSession       queries.GetSessionQueryHandler
	GetOrderHistory  queries.GetOrderHistoryQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h        Handlers
	location *time.Location
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server. Requested delivery dates are read as
// calendar days in location.
func NewServer(h Handlers, location *time.Location, logger *slog.Logger) *Server {
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		h:        h,
		location: location,
		logger:   logger.With("component", "HTTPServer"),
	}
}

// GetDeliverySlots handles GET /api/v1/slots.
func (s *Server) GetDeliverySlots(ctx echo.Context) error {
	slots, err := s.h.GetDeliverySlots.Handle(ctx.Request().Context(), queries.NewGetDeliverySlotsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.DeliverySlot, len(slots))
	for i, slot := range slots {
		response[i] = servers.DeliverySlot{
			Date:              toDate(slot.Date),
			DayName:           slot.DayName,
			IsAvailable:       slot.IsAvailable,
			CapacityUsed:      slot.CapacityUsed,
			MaxCapacity:       slot.MaxCapacity,
			RemainingCapacity: slot.RemainingCapacity,
			OccupancyRate:     slot.OccupancyRate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateSession handles POST /api/v1/sessions.
func (s *Server) CreateSession(ctx echo.Context) error {
	id := kernel.NewUUID()

	cmd, err := commands.NewCreateSessionCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.CreateSession.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondSession(ctx, http.StatusCreated, id)
}

// GetSession handles GET /api/v1/sessions/{sessionId}.
func (s *Server) GetSession(ctx echo.Context, sessionId servers.SessionId) error {
	id, err := sessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondSession(ctx, http.StatusOK, id)
}

// SelectDeliveryDate handles PUT /api/v1/sessions/{sessionId}/delivery-date.
func (s *Server) SelectDeliveryDate(ctx echo.Context, sessionId servers.SessionId) error {
	id, err := sessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.SelectDeliveryDateJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSelectDeliveryDateCommand(id, s.calendarDay(body.Date.Time))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.SelectDeliveryDate.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondSession(ctx, http.StatusOK, id)
}

// AdjustQuantity handles POST /api/v1/sessions/{sessionId}/quantity.
func (s *Server) AdjustQuantity(ctx echo.Context, sessionId servers.SessionId) error {
	id, err := sessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.AdjustQuantityJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAdjustQuantityCommand(id, body.Delta)
	if err != nil {
		return s.fail(ctx, err)
	}

	if _, err = s.h.AdjustQuantity.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondSession(ctx, http.StatusOK, id)
}

// UpdateCustomer handles PUT /api/v1/sessions/{sessionId}/customer.
func (s *Server) UpdateCustomer(ctx echo.Context, sessionId servers.SessionId) error {
	id, err := sessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.UpdateCustomerJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customer := order.NewCustomer(body.Name, body.Email, body.Phone, body.Address)
	cmd, err := commands.NewUpdateCustomerCommand(id, customer)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.UpdateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondSession(ctx, http.StatusOK, id)
}

// ChangeView handles PUT /api/v1/sessions/{sessionId}/view.
func (s *Server) ChangeView(ctx echo.Context, sessionId servers.SessionId) error {
	id, err := sessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.ChangeViewJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	view, err := session.ParseView(string(body.View))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewChangeViewCommand(id, view)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.ChangeView.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondSession(ctx, http.StatusOK, id)
}

// SubmitOrder handles POST /api/v1/sessions/{sessionId}/orders.
func (s *Server) SubmitOrder(ctx echo.Context, sessionId servers.SessionId) error {
	id, err := sessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSubmitOrderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	placed, err := s.h.SubmitOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(placed))
}

// GetOrderHistory handles GET /api/v1/sessions/{sessionId}/orders.
func (s *Server) GetOrderHistory(ctx echo.Context, sessionId servers.SessionId) error {
	id, err := sessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	history, err := s.h.GetOrderHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Order, len(history))
	for i, o := range history {
		response[i] = orderFromResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// StartNewOrder handles POST /api/v1/sessions/{sessionId}/new-order.
func (s *Server) StartNewOrder(ctx echo.Context, sessionId servers.SessionId) error {
	id, err := sessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewStartNewOrderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.StartNewOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondSession(ctx, http.StatusOK, id)
}

func (s *Server) respondSession(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetSessionQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	state, err := s.h.GetSession.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(status, sessionFromResponse(state))
}

// calendarDay reads the year, month and day of t as local midnight.
func (s *Server) calendarDay(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.location)
}

func sessionID(id servers.SessionId) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}
