package domain

import "time"

// Profile is keyed by the session user name; there are no accounts behind it.
type Profile struct {
	ID           int64     `json:"-" gorm:"primaryKey"`
	UserName     string    `json:"-" gorm:"uniqueIndex;not null"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Pincode      string    `json:"pincode"`
	DOB          string    `json:"dob" gorm:"type:varchar(10)"`
	ProfilePic   string    `json:"profile_pic"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DefaultProfile is what a fresh session sees before saving anything.
func DefaultProfile(userName string) Profile {
	name := userName
	if name == "" {
		name = "User"
	}
	return Profile{
		UserName:   userName,
		Name:       name,
		Email:      "user@example.com",
		Phone:      "+1 234 567 8900",
		Address:    "123 User Street, Sample City",
		Pincode:    "12345",
		DOB:        "1990-01-01",
		ProfilePic: "https://randomuser.me/api/portraits/men/73.jpg",
	}
}
