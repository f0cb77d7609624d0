package booking

import (
	"time"

	"hotelbooking/internal/domain"
)

// StayRequest is the body of the quote, intent and book endpoints. Adults
// defaults to one when omitted.
type StayRequest struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Adults   *int   `json:"adults"`
	Children int    `json:"children"`
}

func (r StayRequest) adults() int {
	if r.Adults == nil {
		return 1
	}
	return *r.Adults
}

type QuoteResponse struct {
	RoomID       int64  `json:"room_id"`
	NightlyPrice int    `json:"nightly_price"`
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out"`
	TotalNights  int    `json:"total_nights"`
	TotalPrice   int    `json:"total_price"`
}

type IntentResponse struct {
	Reference    string `json:"reference"`
	RoomID       int64  `json:"room_id"`
	RoomName     string `json:"room_name"`
	RoomImage    string `json:"room_image,omitempty"`
	NightlyPrice int    `json:"nightly_price"`
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
	TotalNights  int    `json:"total_nights"`
	TotalPrice   int    `json:"total_price"`
}

func toIntentResponse(in *Intent) IntentResponse {
	return IntentResponse{
		Reference:    in.Reference,
		RoomID:       in.RoomID,
		RoomName:     in.RoomName,
		RoomImage:    in.RoomImage,
		NightlyPrice: in.NightlyPrice,
		CheckIn:      in.CheckIn.Format(domain.DateLayout),
		CheckOut:     in.CheckOut.Format(domain.DateLayout),
		Adults:       in.Adults,
		Children:     in.Children,
		TotalNights:  in.TotalNights,
		TotalPrice:   in.TotalPrice,
	}
}

// CheckoutMessage is the payload published for the checkout collaborator.
type CheckoutMessage struct {
	IntentResponse
	UserName    string    `json:"user_name"`
	RequestedAt time.Time `json:"requested_at"`
}
