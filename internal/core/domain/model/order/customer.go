package order

import (
	"errors"
	"strings"

	"chapatis/internal/pkg/errs"
)

// Customer is a free-form contact snapshot. Fields are not checked for
// format, only for presence when an order is submitted.
type Customer struct {
	name    string
	email   string
	phone   string
	address string
}

func NewCustomer(name, email, phone, address string) Customer {
	return Customer{name: name, email: email, phone: phone, address: address}
}

func (c Customer) Name() string {
	return c.name
}

func (c Customer) Email() string {
	return c.email
}

func (c Customer) Phone() string {
	return c.phone
}

func (c Customer) Address() string {
	return c.address
}

// ValidateRequired returns one ValueIsRequiredError per blank field, joined.
func (c Customer) ValidateRequired() error {
	return errors.Join(
		required("name", c.name),
		required("email", c.email),
		required("phone", c.phone),
		required("address", c.address),
	)
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(field)
	}
	return nil
}
