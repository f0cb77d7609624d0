package domain

import "time"

// DateLayout is the calendar date format used by reviews, bookings and stay requests.
const DateLayout = "2006-01-02"

type Room struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name        string    `json:"name" gorm:"not null" validate:"required"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Price       int       `json:"price" gorm:"not null" validate:"gte=0"`
	Features    []string  `json:"features" gorm:"serializer:json"`
	Facilities  []string  `json:"facilities" gorm:"serializer:json"`
	Images      []string  `json:"images,omitempty" gorm:"serializer:json"`
	Adult       int       `json:"adult" validate:"gte=0"`
	Children    int       `json:"children" validate:"gte=0"`
	Rating      int       `json:"rating" validate:"gte=0,lte=5"`
	CreatedAt   time.Time `json:"-"`

	Reviews []Review `json:"reviews,omitempty" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}

// Thumbnail returns the first image of the room, or an empty string.
func (r Room) Thumbnail() string {
	if len(r.Images) == 0 {
		return ""
	}
	return r.Images[0]
}

// Review ids are only unique within their room.
type Review struct {
	RoomID  int64  `json:"-" gorm:"primaryKey;autoIncrement:false"`
	ID      int64  `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name    string `json:"name"`
	Date    string `json:"date" gorm:"type:varchar(10)"`
	Rating  int    `json:"rating" validate:"gte=0,lte=5"`
	Comment string `json:"comment" gorm:"type:text"`
}
