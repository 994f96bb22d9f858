package boltstore

import (
	"fmt"
	"time"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/order"
	"chapatis/internal/core/domain/model/session"
	"chapatis/internal/pkg/errs"
)

// sessionRecord is the JSON value stored under a session id. Calendar days
// are kept as "2006-01-02" and restored as local midnight.
type sessionRecord struct {
	View             int            `json:"view"`
	SelectedDate     string         `json:"selected_date,omitempty"`
	Quantity         quantityRecord `json:"quantity"`
	Customer         customerRecord `json:"customer"`
	ConfirmedOrderID string         `json:"confirmed_order_id,omitempty"`
	Orders           []orderRecord  `json:"orders"`
	Version          int            `json:"version"`
	TouchedAt        time.Time      `json:"touched_at"`
}

type orderRecord struct {
	ID              string         `json:"id"`
	DeliveryDate    string         `json:"delivery_date"`
	Quantity        quantityRecord `json:"quantity"`
	TotalPricePence int64          `json:"total_price_pence"`
	Chapatis        int            `json:"chapatis"`
	Customer        customerRecord `json:"customer"`
	PlacedAt        time.Time      `json:"placed_at"`
}

type quantityRecord struct {
	Boxes    int `json:"boxes"`
	MinBoxes int `json:"min_boxes"`
	MaxBoxes int `json:"max_boxes"`
}

type customerRecord struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// header is decoded when only the bookkeeping fields are needed.
type header struct {
	Version   int       `json:"version"`
	TouchedAt time.Time `json:"touched_at"`
}

func recordFromDomain(s *session.Session) sessionRecord {
	rec := sessionRecord{
		View:      int(s.View()),
		Quantity:  quantityFromDomain(s.Quantity()),
		Customer:  customerFromDomain(s.Customer()),
		Version:   s.Version(),
		TouchedAt: s.UpdatedAt().UTC(),
	}

	if date, ok := s.SelectedDate(); ok {
		rec.SelectedDate = date.Format(time.DateOnly)
	}

	if confirmed := s.ConfirmedOrder(); confirmed != nil {
		rec.ConfirmedOrderID = confirmed.ID().String()
	}

	history := s.History()
	rec.Orders = make([]orderRecord, 0, len(history))
	for _, o := range history {
		rec.Orders = append(rec.Orders, orderRecord{
			ID:              o.ID().String(),
			DeliveryDate:    o.DeliveryDate().Format(time.DateOnly),
			Quantity:        quantityFromDomain(o.Quantity()),
			TotalPricePence: o.TotalPrice().Pence(),
			Chapatis:        o.Chapatis(),
			Customer:        customerFromDomain(o.Customer()),
			PlacedAt:        o.PlacedAt().UTC(),
		})
	}

	return rec
}

func quantityFromDomain(q order.Quantity) quantityRecord {
	return quantityRecord{
		Boxes:    q.Boxes(),
		MinBoxes: q.Limits().Min(),
		MaxBoxes: q.Limits().Max(),
	}
}

func customerFromDomain(c order.Customer) customerRecord {
	return customerRecord{
		Name:    c.Name(),
		Email:   c.Email(),
		Phone:   c.Phone(),
		Address: c.Address(),
	}
}

func (rec sessionRecord) toDomain(id kernel.UUID, loc *time.Location) (*session.Session, error) {
	quantity, err := rec.Quantity.toDomain()
	if err != nil {
		return nil, err
	}

	var selected *time.Time
	if rec.SelectedDate != "" {
		date, parseErr := parseDate("selected_date", rec.SelectedDate, loc)
		if parseErr != nil {
			return nil, parseErr
		}
		selected = &date
	}

	history := make([]*order.Order, 0, len(rec.Orders))
	for _, stored := range rec.Orders {
		o, orderErr := stored.toDomain(loc)
		if orderErr != nil {
			return nil, orderErr
		}
		history = append(history, o)
	}

	return session.RestoreSession(
		id,
		session.View(rec.View),
		selected,
		quantity,
		rec.Customer.toDomain(),
		history,
		order.ID(rec.ConfirmedOrderID),
		rec.Version,
		rec.TouchedAt,
	)
}

func (rec orderRecord) toDomain(loc *time.Location) (*order.Order, error) {
	quantity, err := rec.Quantity.toDomain()
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(rec.TotalPricePence)
	if err != nil {
		return nil, err
	}

	date, err := parseDate("delivery_date", rec.DeliveryDate, loc)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		order.ID(rec.ID),
		date,
		quantity,
		total,
		rec.Chapatis,
		rec.Customer.toDomain(),
		rec.PlacedAt,
	)
}

func (rec quantityRecord) toDomain() (order.Quantity, error) {
	limits, err := order.NewLimits(rec.MinBoxes, rec.MaxBoxes)
	if err != nil {
		return order.Quantity{}, err
	}
	return order.NewQuantity(rec.Boxes, limits)
}

func (rec customerRecord) toDomain() order.Customer {
	return order.NewCustomer(rec.Name, rec.Email, rec.Phone, rec.Address)
}

func parseDate(field, value string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(time.DateOnly, value, loc)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(field, fmt.Errorf("stored date %q: %w", value, err))
	}
	return date, nil
}
