package queries

import (
	"context"

	"chapatis/internal/core/domain/model/order"
)

type GetSessionQueryHandler struct {
	reader  SessionReader
	catalog order.Catalog
}

func NewGetSessionQueryHandler(reader SessionReader, catalog order.Catalog) GetSessionQueryHandler {
	return GetSessionQueryHandler{reader: reader, catalog: catalog}
}

// Handle loads the session and prices its current quantity with the catalog.
func (h GetSessionQueryHandler) Handle(ctx context.Context, query GetSessionQuery) (GetSessionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSessionQueryResponse{}, err
	}

	s, err := h.reader.Get(ctx, query.SessionID())
	if err != nil {
		return GetSessionQueryResponse{}, err
	}

	q := s.Quantity()
	total, err := h.catalog.Price(q)
	if err != nil {
		return GetSessionQueryResponse{}, err
	}

	response := GetSessionQueryResponse{
		ID:          s.ID(),
		View:        s.View().String(),
		Quantity:    q.Boxes(),
		MinQuantity: q.Limits().Min(),
		MaxQuantity: q.Limits().Max(),
		CanIncrease: q.CanIncrease(),
		CanDecrease: q.CanDecrease(),
		PricePerBox: h.catalog.PricePerBox().Amount(),
		TotalPrice:  total.Amount(),
		Chapatis:    h.catalog.Chapatis(q),
		Customer:    customerResponse(s.Customer()),
		OrderCount:  len(s.History()),
		UpdatedAt:   s.UpdatedAt(),
	}

	if date, ok := s.SelectedDate(); ok {
		response.SelectedDate = &date
	}

	if confirmed := s.ConfirmedOrder(); confirmed != nil {
		o := orderResponse(confirmed)
		response.Confirmed = &o
	}

	return response, nil
}

func customerResponse(c order.Customer) CustomerResponse {
	return CustomerResponse{
		Name:    c.Name(),
		Email:   c.Email(),
		Phone:   c.Phone(),
		Address: c.Address(),
	}
}

func orderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:           o.ID().String(),
		DeliveryDate: o.DeliveryDate(),
		Quantity:     o.Quantity().Boxes(),
		Chapatis:     o.Chapatis(),
		TotalPrice:   o.TotalPrice().Amount(),
		Customer:     customerResponse(o.Customer()),
		PlacedAt:     o.PlacedAt(),
	}
}
