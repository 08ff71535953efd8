package repository

import "github.com/tasteplaces/tasteplaces/internal/models"

// SeedRestaurants returns a fresh copy of the built-in Montreal catalog
func SeedRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{
			ID:           1,
			Name:         "Le Serpent",
			Cuisine:      "Italian",
			Rating:       3,
			Price:        4,
			Address:      "237 Avenue du Parc",
			City:         "Montreal, QC",
			Neighborhood: "Ville Marie",
			KnownFor:     "Foie Gras Parfait & Lobster Risotto",
			Description:  "Expertly executed Italian with a Quebec twist. From the same award winning team that brought you Le Club Chasse et Pêche.",
		},
		{
			ID:           2,
			Name:         "Impasto",
			Cuisine:      "Italian",
			Rating:       3,
			Price:        3,
			Address:      "48 Dante Street",
			City:         "Montreal, QC",
			Neighborhood: "Little Italy",
			KnownFor:     "Fresh Pasta & Natural Wine",
			Description:  "Neighborhood gem serving handmade pasta in a cozy setting.",
		},
		{
			ID:           3,
			Name:         "Leméac",
			Cuisine:      "French",
			Rating:       2,
			Price:        3,
			Address:      "1045 Avenue Laurier Ouest",
			City:         "Montreal, QC",
			Neighborhood: "Outremont",
			KnownFor:     "Classic French Bistro",
			Description:  "Traditional French bistro with an extensive wine list.",
		},
		{
			ID:           4,
			Name:         "Le P'tit Plateau",
			Cuisine:      "French",
			Rating:       2,
			Price:        3,
			Address:      "1516 Avenue du Mont-Royal Est",
			City:         "Montreal, QC",
			Neighborhood: "Plateau",
			KnownFor:     "Brunch & French Classics",
			Description:  "Charming neighborhood spot known for weekend brunch.",
		},
		{
			ID:           5,
			Name:         "Furusato",
			Cuisine:      "Japanese",
			Rating:       1,
			Price:        2,
			Address:      "2137 Rue Mackay",
			City:         "Montreal, QC",
			Neighborhood: "Downtown",
			KnownFor:     "Authentic Ramen",
			Description:  "Simple, authentic Japanese ramen in a casual setting.",
		},
		{
			ID:           6,
			Name:         "Cafe Resonance",
			Cuisine:      "Vegan",
			Rating:       2,
			Price:        1,
			Address:      "5175 Avenue du Parc",
			City:         "Montreal, QC",
			Neighborhood: "Mile End",
			KnownFor:     "Plant-Based Comfort Food",
			Description:  "Cozy vegan cafe with creative plant-based dishes.",
		},
		{
			ID:           7,
			Name:         "Pho Tay Ho",
			Cuisine:      "Vietnamese",
			Rating:       1,
			Price:        2,
			Address:      "1609 Rue Amherst",
			City:         "Montreal, QC",
			Neighborhood: "Village",
			KnownFor:     "Traditional Pho",
			Description:  "Authentic Vietnamese pho in a no-frills setting.",
		},
		{
			ID:           8,
			Name:         "Replika",
			Cuisine:      "Turkish",
			Rating:       1,
			Price:        1,
			Address:      "252 Rue Rachel Est",
			City:         "Montreal, QC",
			Neighborhood: "Plateau",
			KnownFor:     "Turkish Coffee & Baklava",
			Description:  "Authentic Turkish cafe with excellent coffee and pastries.",
		},
		{
			ID:           9,
			Name:         "Pullman Wine Bar",
			Cuisine:      "Late Night",
			Rating:       2,
			Price:        4,
			Address:      "3424 Avenue du Parc",
			City:         "Montreal, QC",
			Neighborhood: "Plateau",
			KnownFor:     "Natural Wine & Small Plates",
			Description:  "Sophisticated wine bar with curated natural wine selection.",
		},
		{
			ID:           10,
			Name:         "Mandy's",
			Cuisine:      "Salad",
			Rating:       1,
			Price:        2,
			Address:      "2067 Rue University",
			City:         "Montreal, QC",
			Neighborhood: "Downtown",
			KnownFor:     "Gourmet Salads",
			Description:  "Fresh, healthy salads and bowls in a modern setting.",
		},
	}
}
