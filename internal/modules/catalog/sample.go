package catalog

import "hotelbooking/internal/domain"

// Labels offered by the filter panel. Rooms may carry labels outside these lists.
var (
	featureOptions = []string{
		"King Bed", "Queen Bed", "Twin Beds", "Balcony", "Sea View", "Mountain View",
		"City View", "Work Desk", "Private Balcony", "Ocean View", "Basic Amenities",
	}
	facilityOptions = []string{
		"AC", "Room Service", "TV", "Mini Bar", "Jacuzzi", "High-speed WiFi", "Champagne Service",
	}
)

const (
	DefaultPriceMin  = 0
	DefaultPriceMax  = 10000
	DefaultPriceStep = 500
)

func FeatureOptions() []string {
	return append([]string(nil), featureOptions...)
}

func FacilityOptions() []string {
	return append([]string(nil), facilityOptions...)
}

func unsplash(photo string) string {
	return "https://images.unsplash.com/" + photo + "?auto=format&fit=crop&w=1170&q=80"
}

// SampleRooms is the mock catalog the store is seeded with.
func SampleRooms() []domain.Room {
	return []domain.Room{
		{
			ID:         1,
			Name:       "Standard Room",
			Price:      2499,
			Features:   []string{"King Bed", "Balcony", "Sea View"},
			Facilities: []string{"AC", "Room Service", "TV"},
			Images: []string{
				unsplash("photo-1618773928121-c32242e63f39"),
				unsplash("photo-1598928636135-d146006ff4be"),
				unsplash("photo-1582719478250-c89cae4dc85b"),
			},
			Description: "Our Standard Room offers a comfortable stay with modern amenities. Enjoy the view from your private balcony overlooking the sea, and relax in the king-sized bed after a day of exploration. Perfect for couples or solo travelers looking for a cozy retreat.",
			Adult:       2,
			Children:    1,
			Rating:      4,
			Reviews: []domain.Review{
				{ID: 1, Name: "John", Date: "2023-04-15", Rating: 5, Comment: "Amazing room with a great view!"},
				{ID: 2, Name: "Sarah", Date: "2023-03-20", Rating: 4, Comment: "Very comfortable bed and nice amenities."},
				{ID: 3, Name: "Mike", Date: "2023-02-10", Rating: 3, Comment: "Good room but the WiFi was a bit slow."},
			},
		},
		{
			ID:         2,
			Name:       "Deluxe Suite",
			Price:      3499,
			Features:   []string{"King Bed", "Balcony", "City View"},
			Facilities: []string{"AC", "Room Service", "Mini Bar", "TV"},
			Images: []string{
				unsplash("photo-1590490360182-c33d57733427"),
				unsplash("photo-1591088398332-8a7791972843"),
				unsplash("photo-1560185007-5f0bb1866cab"),
			},
			Description: "Experience luxury in our Deluxe Suite, offering a spacious layout with a separate sitting area. Enjoy the panoramic city views from your private balcony, and indulge in the convenience of a fully stocked mini bar. Ideal for those seeking a touch of elegance during their stay.",
			Adult:       2,
			Children:    2,
			Rating:      5,
			Reviews: []domain.Review{
				{ID: 1, Name: "Emily", Date: "2023-05-05", Rating: 5, Comment: "The suite was absolutely stunning! Loved every minute of our stay."},
				{ID: 2, Name: "Robert", Date: "2023-04-12", Rating: 5, Comment: "Exceptional service and beautiful room. Will definitely come back."},
				{ID: 3, Name: "Lisa", Date: "2023-03-28", Rating: 4, Comment: "Great suite with lots of space. Only downside was some street noise."},
			},
		},
		{
			ID:         3,
			Name:       "Family Suite",
			Price:      4999,
			Features:   []string{"2 Queen Beds", "Balcony", "Mountain View"},
			Facilities: []string{"AC", "Room Service", "Mini Bar", "TV", "Jacuzzi"},
			Images: []string{
				unsplash("photo-1566665797739-1674de7a421a"),
				unsplash("photo-1596394516093-501ba68a0ba6"),
				unsplash("photo-1484154218962-a197022b5858"),
			},
			Description: "Our Family Suite is perfect for families traveling together. With two queen beds and a spacious layout, there's room for everyone to relax. Enjoy the mountain view from your balcony, or unwind in the jacuzzi after a day of activities. A home away from home for your family vacation.",
			Adult:       4,
			Children:    2,
			Rating:      5,
			Reviews: []domain.Review{
				{ID: 1, Name: "David", Date: "2023-04-30", Rating: 5, Comment: "Perfect for our family of 5. Kids loved the space and we enjoyed the jacuzzi!"},
				{ID: 2, Name: "Jennifer", Date: "2023-03-15", Rating: 5, Comment: "Excellent room for families. Very spacious and well-equipped."},
				{ID: 3, Name: "Thomas", Date: "2023-02-22", Rating: 4, Comment: "Great family accommodation, though the mountain view was partially obstructed."},
			},
		},
		{
			ID:         4,
			Name:       "Executive Room",
			Price:      3999,
			Features:   []string{"King Bed", "Work Desk", "City View"},
			Facilities: []string{"AC", "Room Service", "Mini Bar", "TV", "High-speed WiFi"},
			Images:     []string{unsplash("photo-1578683010236-d716f9a3f461")},
			Adult:      2,
			Children:   1,
			Rating:     4,
		},
		{
			ID:         5,
			Name:       "Honeymoon Suite",
			Price:      5999,
			Features:   []string{"King Bed", "Private Balcony", "Ocean View"},
			Facilities: []string{"AC", "Room Service", "Mini Bar", "TV", "Jacuzzi", "Champagne Service"},
			Images:     []string{unsplash("photo-1602002418082-dd878720e72d")},
			Adult:      2,
			Children:   0,
			Rating:     5,
		},
		{
			ID:         6,
			Name:       "Budget Room",
			Price:      1499,
			Features:   []string{"Twin Beds", "Basic Amenities"},
			Facilities: []string{"AC", "TV"},
			Images:     []string{unsplash("photo-1505693416388-ac5ce068fe85")},
			Adult:      2,
			Children:   1,
			Rating:     3,
		},
	}
}
