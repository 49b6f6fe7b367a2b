package request

// Field names follow the frontend wire contract of the store.

type RegisterRequest struct {
	FirstName      string  `json:"first_name" validate:"required,min=2,max=50"`
	LastName       string  `json:"last_name" validate:"required,min=2,max=50"`
	Email          string  `json:"email" validate:"required,email"`
	PhoneNumber    string  `json:"phone_number" validate:"required,min=10,max=15"`
	CompanyName    string  `json:"company_name" validate:"required,max=100"`
	CompanyAddress string  `json:"company_address" validate:"required,max=200"`
	AddressCity    string  `json:"address_city" validate:"required,max=50"`
	AddressState   string  `json:"address_state" validate:"required,max=50"`
	AddressCountry string  `json:"address_country" validate:"required,max=50"`
	Pincode        string  `json:"pincode" validate:"required,min=4,max=10"`
	GSTNo          *string `json:"GST_no,omitempty" validate:"omitempty,min=10,max=20"`
	Password       string  `json:"user_password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"user_password" validate:"required,min=6"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"user_password" validate:"required,min=6"`
}
