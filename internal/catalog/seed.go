package catalog

import "github.com/m04kA/SMC-AdventureBooking/internal/domain"

// seedCategories категории в порядке отображения на главной
var seedCategories = []domain.Category{
	{Name: "Water Sports", Icon: "🌊"},
	{Name: "Trekking", Icon: "🥾"},
	{Name: "Flying", Icon: "🪂"},
	{Name: "Camping", Icon: "⛺"},
	{Name: "Safari", Icon: "🦁"},
	{Name: "Snow", Icon: "❄️"},
}

// seedActivities статический каталог активностей
var seedActivities = []domain.Activity{
	{
		ID:          "1",
		Title:       "White Water Rafting",
		Location:    "Rishikesh, Uttarakhand",
		Category:    "Water Sports",
		Description: "Navigate the thrilling rapids of the Ganges River. This 16km stretch offers grade III and IV rapids like \"Roller Coaster\" and \"Golf Course\". Perfect for adrenaline junkies.",
		Price:       35,
		Rating:      4.9,
		ReviewCount: 2450,
		Images: []string{
			"https://images.unsplash.com/photo-1530866495561-507c9faab2ed?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1519053245453-60f1b747055e?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1505535162959-9bbcb4ab22d6?auto=format&fit=crop&q=80&w=800",
		},
		Difficulty: domain.DifficultyModerate,
		Duration:   "4 hours",
		Vendor: domain.Vendor{
			ID:         "v1",
			Name:       "Ganga Rapids",
			AvatarURL:  "https://randomuser.me/api/portraits/men/32.jpg",
			JoinedDate: "2016",
			Rating:     4.8,
		},
		Coordinates: domain.Coordinates{Lat: 30.0869, Lng: 78.2676},
		Amenities:   []string{"Safety Gear", "Guide", "Transport", "GoPro Footage"},
		MaxGuests:   8,
	},
	{
		ID:          "2",
		Title:       "Paragliding at Bir Billing",
		Location:    "Bir, Himachal Pradesh",
		Category:    "Flying",
		Description: "Experience the world's second-highest paragliding site. Take off from Billing (2400m) and land in Bir, enjoying a 20-30 minute tandem flight with panoramic views of the Dhauladhar range.",
		Price:       75,
		Rating:      4.9,
		ReviewCount: 1890,
		Images: []string{
			"https://images.unsplash.com/photo-1527668752968-14dc70a27c73?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1516546487979-34ba85885c07?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1465225314224-587cd83d322b?auto=format&fit=crop&q=80&w=800",
		},
		Difficulty: domain.DifficultyModerate,
		Duration:   "45 mins",
		Vendor: domain.Vendor{
			ID:         "v2",
			Name:       "Sky High Aero",
			AvatarURL:  "https://randomuser.me/api/portraits/women/44.jpg",
			JoinedDate: "2018",
			Rating:     4.9,
		},
		Coordinates: domain.Coordinates{Lat: 32.0436, Lng: 76.7320},
		Amenities:   []string{"Video Recording", "Insurance", "Hotel Pickup"},
		MaxGuests:   1,
	},
	{
		ID:          "3",
		Title:       "Scuba Diving in Havelock",
		Location:    "Andaman Islands",
		Category:    "Water Sports",
		Description: "Dive into the crystal clear waters of Nemo Reef. Witness vibrant coral gardens, clownfish, and sea turtles. Includes training session for beginners.",
		Price:       95,
		Rating:      4.8,
		ReviewCount: 1200,
		Images: []string{
			"https://images.unsplash.com/photo-1544551763-46a8723ba3f9?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1682687982501-1e58ab814714?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1511909525232-61113c912358?auto=format&fit=crop&q=80&w=800",
		},
		Difficulty: domain.DifficultyEasy,
		Duration:   "3 hours",
		Vendor: domain.Vendor{
			ID:         "v3",
			Name:       "Blue Planet Divers",
			AvatarURL:  "https://randomuser.me/api/portraits/men/85.jpg",
			JoinedDate: "2015",
			Rating:     4.9,
		},
		Coordinates: domain.Coordinates{Lat: 11.9761, Lng: 92.9876},
		Amenities:   []string{"Equipment", "Photos", "Snacks", "Certificate"},
		MaxGuests:   4,
	},
	{
		ID:          "4",
		Title:       "Chadar Trek - Frozen River",
		Location:    "Leh, Ladakh",
		Category:    "Trekking",
		Description: "The ultimate winter trek on the frozen Zanskar river. Walk on a sheet of ice surrounded by dramatic vertical cliffs. A challenging but life-changing expedition.",
		Price:       450,
		Rating:      4.7,
		ReviewCount: 560,
		Images: []string{
			"https://images.unsplash.com/photo-1548231267-3f9df416d860?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1518206411130-318451842eb3?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1626621341120-d01006e2361b?auto=format&fit=crop&q=80&w=800",
		},
		Difficulty: domain.DifficultyExtreme,
		Duration:   "9 days",
		Vendor: domain.Vendor{
			ID:         "v4",
			Name:       "Himalayan Explorers",
			AvatarURL:  "https://randomuser.me/api/portraits/men/22.jpg",
			JoinedDate: "2012",
			Rating:     4.6,
		},
		Coordinates: domain.Coordinates{Lat: 34.1526, Lng: 77.5770},
		Amenities:   []string{"All Meals", "Camping Gear", "Permits", "Porter"},
		MaxGuests:   12,
	},
	{
		ID:          "5",
		Title:       "Skiing in Gulmarg",
		Location:    "Gulmarg, Kashmir",
		Category:    "Snow",
		Description: "Ride the famous Gulmarg Gondola to Mt. Apharwat and ski down powder slopes. Includes equipment rental and a basic instructor for beginners.",
		Price:       120,
		Rating:      4.8,
		ReviewCount: 930,
		Images: []string{
			"https://images.unsplash.com/photo-1551524559-8af4e6624178?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1520697956550-9c2f6d231904?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1596473536124-42b78d227318?auto=format&fit=crop&q=80&w=800",
		},
		Difficulty: domain.DifficultyModerate,
		Duration:   "6 hours",
		Vendor: domain.Vendor{
			ID:         "v5",
			Name:       "Kashmir Alpine",
			AvatarURL:  "https://randomuser.me/api/portraits/women/12.jpg",
			JoinedDate: "2019",
			Rating:     4.7,
		},
		Coordinates: domain.Coordinates{Lat: 34.0484, Lng: 74.3805},
		Amenities:   []string{"Ski Gear", "Instructor", "Lift Pass", "Lunch"},
		MaxGuests:   6,
	},
	{
		ID:          "6",
		Title:       "Camel Safari in Dunes",
		Location:    "Jaisalmer, Rajasthan",
		Category:    "Safari",
		Description: "Ride camels into the sunset at the Sam Sand Dunes. Enjoy a cultural evening with folk music, dance, and a traditional Rajasthani dinner under the stars.",
		Price:       45,
		Rating:      4.6,
		ReviewCount: 3100,
		Images: []string{
			"https://images.unsplash.com/photo-1599661046289-e31897846e41?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1628100236302-601968848d5d?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1586521995568-39bab2f78c3c?auto=format&fit=crop&q=80&w=800",
		},
		Difficulty: domain.DifficultyEasy,
		Duration:   "5 hours",
		Vendor: domain.Vendor{
			ID:         "v6",
			Name:       "Desert Royal",
			AvatarURL:  "https://randomuser.me/api/portraits/men/55.jpg",
			JoinedDate: "2014",
			Rating:     4.5,
		},
		Coordinates: domain.Coordinates{Lat: 26.9157, Lng: 70.9083},
		Amenities:   []string{"Dinner", "Cultural Show", "Jeep Transfer"},
		MaxGuests:   20,
	},
	{
		ID:          "7",
		Title:       "Bamboo Rafting in Periyar",
		Location:    "Thekkady, Kerala",
		Category:    "Safari",
		Description: "A dawn-to-dusk trekking and rafting program through the richest forest tracts of Periyar Tiger Reserve. Spot elephants, bison, and exotic birds.",
		Price:       55,
		Rating:      4.7,
		ReviewCount: 850,
		Images: []string{
			"https://images.unsplash.com/photo-1596423736774-4b95f1784c48?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1534960331070-5b565a0c32b0?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1510797215324-95aa89f43c33?auto=format&fit=crop&q=80&w=800",
		},
		Difficulty: domain.DifficultyModerate,
		Duration:   "8 hours",
		Vendor: domain.Vendor{
			ID:         "v7",
			Name:       "Eco Kerala",
			AvatarURL:  "https://randomuser.me/api/portraits/women/68.jpg",
			JoinedDate: "2017",
			Rating:     4.8,
		},
		Coordinates: domain.Coordinates{Lat: 9.6031, Lng: 77.1615},
		Amenities:   []string{"Breakfast", "Lunch", "Armed Guard", "Guide"},
		MaxGuests:   10,
	},
	{
		ID:          "8",
		Title:       "Rock Climbing at Hampi",
		Location:    "Hampi, Karnataka",
		Category:    "Trekking",
		Description: "Bouldering capital of India. Navigate the unique granite landscape of Hampi with expert climbers. Suitable for all skill levels.",
		Price:       40,
		Rating:      4.8,
		ReviewCount: 620,
		Images: []string{
			"https://images.unsplash.com/photo-1600100598687-0b1a6a9b4f9d?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1522858547137-f1dcec554f55?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1575351881847-b3bf188d9d0a?auto=format&fit=crop&q=80&w=800",
		},
		Difficulty: domain.DifficultyHard,
		Duration:   "3 hours",
		Vendor: domain.Vendor{
			ID:         "v8",
			Name:       "Hampi Boulders",
			AvatarURL:  "https://randomuser.me/api/portraits/men/90.jpg",
			JoinedDate: "2016",
			Rating:     4.9,
		},
		Coordinates: domain.Coordinates{Lat: 15.3350, Lng: 76.4600},
		Amenities:   []string{"Climbing Shoes", "Chalk", "Crash Pads", "Instructor"},
		MaxGuests:   5,
	},
	{
		ID:          "9",
		Title:       "Surfing in Varkala",
		Location:    "Varkala, Kerala",
		Category:    "Water Sports",
		Description: "Catch the waves at the beautiful Black Sand Beach. 90-minute beginner surf lesson including board rental and theory.",
		Price:       30,
		Rating:      4.7,
		ReviewCount: 440,
		Images: []string{
			"https://images.unsplash.com/photo-1502680390469-be75c86b636f?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1505506874110-6a7a69069a08?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1415931633537-35113956064f?auto=format&fit=crop&q=80&w=800",
		},
		Difficulty: domain.DifficultyModerate,
		Duration:   "1.5 hours",
		Vendor: domain.Vendor{
			ID:         "v9",
			Name:       "Soul & Surf",
			AvatarURL:  "https://randomuser.me/api/portraits/women/28.jpg",
			JoinedDate: "2015",
			Rating:     4.6,
		},
		Coordinates: domain.Coordinates{Lat: 8.7379, Lng: 76.6972},
		Amenities:   []string{"Surfboard", "Rash Vest", "Shower"},
		MaxGuests:   6,
	},
	{
		ID:          "10",
		Title:       "Dudhsagar Falls Trek",
		Location:    "Goa",
		Category:    "Trekking",
		Description: "Trek through the Bhagwan Mahaveer Sanctuary to reach the majestic four-tiered Dudhsagar waterfall on the Mandovi River.",
		Price:       25,
		Rating:      4.5,
		ReviewCount: 1100,
		Images: []string{
			"https://images.unsplash.com/photo-1544988775-68006b5d911a?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1476610182048-b716b8518aae?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1432405972618-c60b0225b8f9?auto=format&fit=crop&q=80&w=800",
		},
		Difficulty: domain.DifficultyModerate,
		Duration:   "6 hours",
		Vendor: domain.Vendor{
			ID:         "v10",
			Name:       "Goa Jungle Treks",
			AvatarURL:  "https://randomuser.me/api/portraits/men/15.jpg",
			JoinedDate: "2018",
			Rating:     4.4,
		},
		Coordinates: domain.Coordinates{Lat: 15.3144, Lng: 74.3143},
		Amenities:   []string{"Life Jacket", "Lunch", "Guide", "Forest Entry Fee"},
		MaxGuests:   15,
	},
}
