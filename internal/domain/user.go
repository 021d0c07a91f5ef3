package domain

import "strings"

// User is the capability set shared by every account: identity plus contact
// details. It is embedded by the role variants rather than used on its own.
type User struct {
	ID    int
	Name  string
	Email string
	Phone string
}

// UpdateContact replaces the contact details after rejecting blank input.
func (u *User) UpdateContact(email, phone string) error {
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	if email == "" {
		return NewValidationError("email", "must not be blank")
	}
	if phone == "" {
		return NewValidationError("phone", "must not be blank")
	}
	u.Email = email
	u.Phone = phone
	return nil
}

// Customer owns exactly one cart.
type Customer struct {
	User
	Cart *Cart
}

func NewCustomer(id int, name, email, phone string) *Customer {
	return &Customer{
		User: User{ID: id, Name: name, Email: email, Phone: phone},
		Cart: NewCart(),
	}
}

// Admin carries no cart; it only manages the catalog and reviews the ledger.
type Admin struct {
	User
}

func NewAdmin(id int, name, email, phone string) *Admin {
	return &Admin{User: User{ID: id, Name: name, Email: email, Phone: phone}}
}
