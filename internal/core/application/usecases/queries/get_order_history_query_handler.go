package queries

import (
	"context"
)

type GetOrderHistoryQueryHandler struct {
	reader SessionReader
}

func NewGetOrderHistoryQueryHandler(reader SessionReader) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{reader: reader}
}

func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	s, err := h.reader.Get(ctx, query.SessionID())
	if err != nil {
		return nil, err
	}

	history := s.History()
	response := make([]OrderResponse, 0, len(history))
	for _, o := range history {
		response = append(response, orderResponse(o))
	}

	return response, nil
}
