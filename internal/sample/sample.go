// Package sample holds the showcase listing used to seed a fresh database
// and to drive demo mode.
package sample

import "github.com/angristan/homeshowcase/internal/models"

// Property returns a fresh copy of the sample listing: a one-bedroom
// apartment in Leeuwarden with seven rooms. IDs are left zero.
func Property() *models.Property {
	lot := 0.0
	return &models.Property{
		Address:   "Nijlanstate 54",
		City:      "Leeuwarden",
		State:     "Friesland",
		ZipCode:   "8934 AH",
		Price:     195000,
		Bedrooms:  1,
		Bathrooms: 1,
		Sqft:      753,
		YearBuilt: 1975,
		LotSize:   &lot,
		Description: "Charming apartment with beautiful views over the river and surrounding green spaces. " +
			"This well-maintained home features a spacious living room with large windows providing abundant " +
			"natural light, a functional kitchen, comfortable bedroom with built-in wardrobes, and a private " +
			"balcony perfect for enjoying the scenic views.",
		Features: []string{
			"River views",
			"Private balcony",
			"Built-in wardrobes",
			"Central heating",
			"Elevator access",
			"Storage unit",
		},
		Images: models.Collection{
			"/src/assets/846_2160.jpg",
			"/src/assets/832_2160.jpg",
			"/src/assets/860_2160.jpg",
		},
		Rooms: Rooms(),
	}
}

// Rooms returns the sample rooms in display order
func Rooms() []*models.Room {
	return []*models.Room{
		{
			Name: "Living Room",
			Type: models.RoomLiving,
			Description: "Spacious living room with large panoramic windows offering stunning views of the river " +
				"and surrounding landscape. Features elegant furnishings, comfortable seating area, and excellent " +
				"natural light throughout the day.",
			Dimensions: "3.96m x 7.10m",
			Features:   []string{"Panoramic windows", "River views", "Natural light", "Radiator heating"},
			Images: models.Collection{
				"/src/assets/860_2160.jpg",
				"/src/assets/861_2160.jpg",
				"/src/assets/863_2160.jpg",
				"/src/assets/824_2160.jpg",
			},
			DisplayOrder: 1,
		},
		{
			Name: "Bedroom",
			Type: models.RoomBedroom,
			Description: "Comfortable bedroom with built-in floor-to-ceiling wardrobes providing ample storage " +
				"space. Features access to the balcony and receives plenty of natural light.",
			Dimensions: "3.03m x 4.94m",
			Features:   []string{"Built-in wardrobes", "Balcony access", "Natural light", "Carpet flooring"},
			Images: models.Collection{
				"/src/assets/864_2160.jpg",
				"/src/assets/831_2160.jpg",
				"/src/assets/865_2160.jpg",
			},
			DisplayOrder: 2,
		},
		{
			Name: "Kitchen",
			Type: models.RoomKitchen,
			Description: "Functional L-shaped kitchen with cream-colored cabinetry and wooden trim. Includes " +
				"ample counter space, built-in storage, and all essential appliances.",
			Dimensions:   "2.43m x 1.98m",
			Features:     []string{"L-shaped layout", "Built-in cabinets", "Tile backsplash", "Counter space"},
			Images:       models.Collection{"/src/assets/825_2160.jpg", "/src/assets/855_2160.jpg"},
			DisplayOrder: 3,
		},
		{
			Name: "Bathroom",
			Type: models.RoomBathroom,
			Description: "Modern bathroom with corner shower enclosure, vanity with mirror cabinet, and in-unit " +
				"washing machine. Finished with neutral tiles and practical storage solutions.",
			Dimensions:   "3.03m x 1.98m",
			Features:     []string{"Corner shower", "Vanity with mirror", "Washing machine", "Heated towel rail"},
			Images:       models.Collection{"/src/assets/826_2160.jpg", "/src/assets/856_2160.jpg"},
			DisplayOrder: 4,
		},
		{
			Name: "Hallway",
			Type: models.RoomHallway,
			Description: "Entry hallway with coat storage area and access to all rooms. Clean and functional " +
				"space connecting the living areas.",
			Dimensions:   "1.43m x 1.98m",
			Features:     []string{"Coat storage", "Central access"},
			Images:       models.Collection{"/src/assets/853_2160.jpg"},
			DisplayOrder: 5,
		},
		{
			Name: "Balcony",
			Type: models.RoomBalcony,
			Description: "Private balcony with beautiful views over the river and green surroundings. Perfect " +
				"for enjoying morning coffee or evening relaxation.",
			Dimensions:   "3.03m x 1.26m",
			Features:     []string{"River views", "Private outdoor space"},
			Images:       models.Collection{"/src/assets/866_2160.jpg"},
			DisplayOrder: 6,
		},
		{
			Name: "Storage",
			Type: models.RoomStorage,
			Description: "Built-in storage closet with shelving and utility connections. Houses the electrical " +
				"panel and provides additional storage space.",
			Dimensions:   "1.5m x 1.0m",
			Features:     []string{"Utility connections", "Shelving", "Electrical panel"},
			Images:       models.Collection{"/src/assets/873_2160.jpg"},
			DisplayOrder: 7,
		},
	}
}
