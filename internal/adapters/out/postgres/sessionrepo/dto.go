// Package sessionrepo persists ordering sessions and their order history in
// PostgreSQL through GORM.
package sessionrepo

import (
	"time"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/order"
	"chapatis/internal/core/domain/model/session"

	"github.com/google/uuid"
)

// SessionDTO is one row of the sessions table. TouchedAt is not named
// UpdatedAt: GORM would overwrite such a field with the wall clock.
type SessionDTO struct {
	ID               uuid.UUID   `gorm:"type:uuid;primaryKey"`
	View             int         `gorm:"type:smallint;not null"`
	SelectedDate     *time.Time  `gorm:"type:date"`
	Quantity         QuantityDTO `gorm:"embedded;embeddedPrefix:quantity_"`
	Customer         CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`
	ConfirmedOrderID *string     `gorm:"type:varchar(32)"`
	Version          int         `gorm:"type:int;not null"`
	TouchedAt        time.Time   `gorm:"type:timestamptz;not null;index"`
	Orders           []OrderDTO  `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

func (SessionDTO) TableName() string {
	return "sessions"
}

// OrderDTO is one confirmed order. Order ids are unique per session only,
// so the primary key includes the session.
type OrderDTO struct {
	SessionID       uuid.UUID   `gorm:"type:uuid;primaryKey"`
	ID              string      `gorm:"type:varchar(32);primaryKey"`
	DeliveryDate    time.Time   `gorm:"type:date;not null"`
	Quantity        QuantityDTO `gorm:"embedded;embeddedPrefix:quantity_"`
	TotalPricePence int64       `gorm:"type:bigint;not null"`
	Chapatis        int         `gorm:"type:int;not null"`
	Customer        CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`
	PlacedAt        time.Time   `gorm:"type:timestamptz;not null;index"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// QuantityDTO stores a box count together with the limits it was chosen under.
type QuantityDTO struct {
	Boxes    int `gorm:"type:int;not null"`
	MinBoxes int `gorm:"type:int;not null"`
	MaxBoxes int `gorm:"type:int;not null"`
}

type CustomerDTO struct {
	Name    string `gorm:"type:varchar(255);not null;default:''"`
	Email   string `gorm:"type:varchar(255);not null;default:''"`
	Phone   string `gorm:"type:varchar(64);not null;default:''"`
	Address string `gorm:"type:text;not null;default:''"`
}

func fromDomain(s *session.Session) SessionDTO {
	dto := SessionDTO{
		ID:        s.ID().Bytes(),
		View:      int(s.View()),
		Quantity:  quantityFromDomain(s.Quantity()),
		Customer:  customerFromDomain(s.Customer()),
		Version:   s.Version(),
		TouchedAt: s.UpdatedAt(),
	}

	if date, ok := s.SelectedDate(); ok {
		civil := civilDate(date)
		dto.SelectedDate = &civil
	}

	if confirmed := s.ConfirmedOrder(); confirmed != nil {
		id := confirmed.ID().String()
		dto.ConfirmedOrderID = &id
	}

	history := s.History()
	dto.Orders = make([]OrderDTO, 0, len(history))
	for _, o := range history {
		dto.Orders = append(dto.Orders, orderFromDomain(dto.ID, o))
	}

	return dto
}

func orderFromDomain(sessionID uuid.UUID, o *order.Order) OrderDTO {
	return OrderDTO{
		SessionID:       sessionID,
		ID:              o.ID().String(),
		DeliveryDate:    civilDate(o.DeliveryDate()),
		Quantity:        quantityFromDomain(o.Quantity()),
		TotalPricePence: o.TotalPrice().Pence(),
		Chapatis:        o.Chapatis(),
		Customer:        customerFromDomain(o.Customer()),
		PlacedAt:        o.PlacedAt(),
	}
}

func quantityFromDomain(q order.Quantity) QuantityDTO {
	return QuantityDTO{
		Boxes:    q.Boxes(),
		MinBoxes: q.Limits().Min(),
		MaxBoxes: q.Limits().Max(),
	}
}

func customerFromDomain(c order.Customer) CustomerDTO {
	return CustomerDTO{
		Name:    c.Name(),
		Email:   c.Email(),
		Phone:   c.Phone(),
		Address: c.Address(),
	}
}

// toDomain rebuilds the session. Date columns come back as UTC midnight and
// are moved to local midnight in loc.
func toDomain(dto SessionDTO, loc *time.Location) (*session.Session, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	quantity, err := dto.Quantity.toDomain()
	if err != nil {
		return nil, err
	}

	var selected *time.Time
	if dto.SelectedDate != nil {
		date := localDate(*dto.SelectedDate, loc)
		selected = &date
	}

	history := make([]*order.Order, 0, len(dto.Orders))
	for _, orderDTO := range dto.Orders {
		o, orderErr := orderToDomain(orderDTO, loc)
		if orderErr != nil {
			return nil, orderErr
		}
		history = append(history, o)
	}

	var confirmedID order.ID
	if dto.ConfirmedOrderID != nil {
		confirmedID = order.ID(*dto.ConfirmedOrderID)
	}

	return session.RestoreSession(
		id,
		session.View(dto.View),
		selected,
		quantity,
		dto.Customer.toDomain(),
		history,
		confirmedID,
		dto.Version,
		dto.TouchedAt,
	)
}

func orderToDomain(dto OrderDTO, loc *time.Location) (*order.Order, error) {
	quantity, err := dto.Quantity.toDomain()
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalPricePence)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		order.ID(dto.ID),
		localDate(dto.DeliveryDate, loc),
		quantity,
		total,
		dto.Chapatis,
		dto.Customer.toDomain(),
		dto.PlacedAt,
	)
}

func (dto QuantityDTO) toDomain() (order.Quantity, error) {
	limits, err := order.NewLimits(dto.MinBoxes, dto.MaxBoxes)
	if err != nil {
		return order.Quantity{}, err
	}
	return order.NewQuantity(dto.Boxes, limits)
}

func (dto CustomerDTO) toDomain() order.Customer {
	return order.NewCustomer(dto.Name, dto.Email, dto.Phone, dto.Address)
}

// civilDate keeps the calendar day of t as UTC midnight so the driver never
// shifts it across a day boundary.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func localDate(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
