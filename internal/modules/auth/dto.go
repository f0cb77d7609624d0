package auth

type LoginRequest struct {
	EmailMob string `json:"email_mob" validate:"required"`
	Pass     string `json:"pass" validate:"required"`
}

// RegisterRequest mirrors the registration form. Every field but the picture
// is required.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	PhoneNum string `json:"phonenum" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Pincode  string `json:"pincode" validate:"required"`
	DOB      string `json:"dob" validate:"required"`
	Pass     string `json:"pass" validate:"required"`
	CPass    string `json:"cpass" validate:"required"`
	Profile  string `json:"profile,omitempty"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

type AuthResult struct {
	Token   string  `json:"token"`
	Session Session `json:"session"`
}
