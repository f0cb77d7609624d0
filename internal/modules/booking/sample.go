package booking

import (
	"time"

	"hotelbooking/internal/domain"
)

// SampleBookings is the seed booking history. The last booking starts on the
// given day and lasts two nights.
func SampleBookings(today time.Time) []domain.Booking {
	day := today.Format(domain.DateLayout)
	twoLater := today.AddDate(0, 0, 2).Format(domain.DateLayout)

	return []domain.Booking{
		{
			ID: 1, RoomID: 2, RoomName: "Deluxe Suite",
			CheckIn: "2023-08-15", CheckOut: "2023-08-18",
			Adult: 2, Children: 1, Amount: 10497, BookingDate: "2023-07-28",
			Status: domain.BookingConfirmed, PaymentStatus: domain.PaymentPaid,
		},
		{
			ID: 2, RoomID: 1, RoomName: "Standard Room",
			CheckIn: "2023-09-05", CheckOut: "2023-09-07",
			Adult: 1, Children: 0, Amount: 4998, BookingDate: "2023-08-10",
			Status: domain.BookingCancelled, PaymentStatus: domain.PaymentRefunded,
		},
		{
			ID: 3, RoomID: 3, RoomName: "Family Suite",
			CheckIn: "2023-11-20", CheckOut: "2023-11-25",
			Adult: 4, Children: 2, Amount: 24995, BookingDate: "2023-08-15",
			Status: domain.BookingConfirmed, PaymentStatus: domain.PaymentPaid,
		},
		{
			ID: 4, RoomID: 1, RoomName: "Standard Room",
			CheckIn: day, CheckOut: twoLater,
			Adult: 2, Children: 0, Amount: 4998, BookingDate: day,
			Status: domain.BookingConfirmed, PaymentStatus: domain.PaymentPaid,
		},
	}
}
