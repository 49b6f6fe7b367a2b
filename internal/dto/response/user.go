package response

import (
	"time"

	"textile-store/internal/data/entity"
)

// ProfileResponse excludes the credential hash and reset token.
type ProfileResponse struct {
	UserID         string          `json:"user_id"`
	Role           entity.UserRole `json:"user_type"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Email          string          `json:"email"`
	PhoneNumber    string          `json:"phone_number"`
	CompanyName    string          `json:"company_name"`
	CompanyAddress string          `json:"company_address"`
	AddressCity    string          `json:"address_city"`
	AddressState   string          `json:"address_state"`
	AddressCountry string          `json:"address_country"`
	Pincode        string          `json:"pincode"`
	GSTNo          *string         `json:"GST_no,omitempty"`
	IsVerified     bool            `json:"is_verified"`
	CreatedAt      time.Time       `json:"created_at"`
}

func UserToProfile(user *entity.User) ProfileResponse {
	return ProfileResponse{
		UserID:         user.ID.String(),
		Role:           user.Role,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Email:          user.Email,
		PhoneNumber:    user.PhoneNumber,
		CompanyName:    user.CompanyName,
		CompanyAddress: user.CompanyAddress,
		AddressCity:    user.AddressCity,
		AddressState:   user.AddressState,
		AddressCountry: user.AddressCountry,
		Pincode:        user.Pincode,
		GSTNo:          user.GSTNo,
		IsVerified:     user.EmailVerified,
		CreatedAt:      user.CreatedAt,
	}
}
