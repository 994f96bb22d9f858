package http

import (
	"time"

	"chapatis/internal/core/application/usecases/queries"
	"chapatis/internal/core/domain/model/order"
	"chapatis/internal/api/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toDate(t time.Time) openapi_types.Date {
	return openapi_types.Date{Time: t}
}

func sessionFromResponse(r queries.GetSessionQueryResponse) servers.Session {
	response := servers.Session{
		Id:          r.ID.Bytes(),
		View:        servers.SessionView(r.View),
		Quantity:    r.Quantity,
		MinQuantity: r.MinQuantity,
		MaxQuantity: r.MaxQuantity,
		CanIncrease: r.CanIncrease,
		CanDecrease: r.CanDecrease,
		PricePerBox: r.PricePerBox,
		TotalPrice:  r.TotalPrice,
		Chapatis:    r.Chapatis,
		Customer:    customerFromResponse(r.Customer),
		OrderCount:  r.OrderCount,
		UpdatedAt:   r.UpdatedAt,
	}

	if r.SelectedDate != nil {
		date := toDate(*r.SelectedDate)
		response.SelectedDate = &date
	}

	if r.Confirmed != nil {
		confirmed := orderFromResponse(*r.Confirmed)
		response.ConfirmedOrder = &confirmed
	}

	return response
}

func customerFromResponse(c queries.CustomerResponse) servers.Customer {
	return servers.Customer{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	}
}

func orderFromResponse(o queries.OrderResponse) servers.Order {
	return servers.Order{
		Id:           o.ID,
		DeliveryDate: toDate(o.DeliveryDate),
		Quantity:     o.Quantity,
		Chapatis:     o.Chapatis,
		TotalPrice:   o.TotalPrice,
		Customer:     customerFromResponse(o.Customer),
		PlacedAt:     o.PlacedAt,
	}
}

func orderFromDomain(o *order.Order) servers.Order {
	c := o.Customer()
	return servers.Order{
		Id:           o.ID().String(),
		DeliveryDate: toDate(o.DeliveryDate()),
		Quantity:     o.Quantity().Boxes(),
		Chapatis:     o.Chapatis(),
		TotalPrice:   o.TotalPrice().Amount(),
		Customer: servers.Customer{
			Name:    c.Name(),
			Email:   c.Email(),
			Phone:   c.Phone(),
			Address: c.Address(),
		},
		PlacedAt: o.PlacedAt(),
	}
}
