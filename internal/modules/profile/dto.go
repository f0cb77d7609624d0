package profile

type UpdateProfileRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Pincode    string `json:"pincode"`
	DOB        string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	ProfilePic string `json:"profile_pic" validate:"omitempty,url"`
}

type ChangePasswordRequest struct {
	Current string `json:"current" validate:"required"`
	New     string `json:"new" validate:"required"`
	Confirm string `json:"confirm" validate:"required"`
}
