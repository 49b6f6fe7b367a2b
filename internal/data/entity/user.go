package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// ValidRole rejects unknown role values at the data-entry boundary.
func ValidRole(r UserRole) bool {
	return r == RoleCustomer || r == RoleAdmin
}

type User struct {
	ID             uuid.UUID  `db:"user_id"`
	FirstName      string     `db:"first_name"`
	LastName       string     `db:"last_name"`
	Email          string     `db:"email"`
	PhoneNumber    string     `db:"phone_number"`
	CompanyName    string     `db:"company_name"`
	CompanyAddress string     `db:"company_address"`
	AddressCity    string     `db:"address_city"`
	AddressState   string     `db:"address_state"`
	AddressCountry string     `db:"address_country"`
	Pincode        string     `db:"pincode"`
	GSTNo          *string    `db:"gst_no"`
	PasswordHash   string     `db:"user_password"`
	Role           UserRole   `db:"user_type"`
	EmailVerified  bool       `db:"email_verified"`
	ResetToken     *string    `db:"reset_token"`
	ResetExpiry    *time.Time `db:"reset_token_expiry"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}
