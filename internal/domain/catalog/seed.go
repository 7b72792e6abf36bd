// internal/domain/catalog/seed.go
package catalog

// SeedProducts returns the initial catalog used when no persisted
// catalog exists yet. Prices are in cents.
func SeedProducts() []Product {
	return []Product{
		{
			ID:            1,
			Name:          "Oud Royale",
			Category:      CategoryMens,
			Brand:         "Royal Oud",
			Price:         18500,
			Notes:         []string{"Oud", "Amber", "Sandalwood"},
			InStock:       true,
			IsPopular:     true,
			Popularity:    95,
			Description:   "A majestic blend of rare oud wood and warm amber. Opens with spicy notes before revealing a heart of pure oud and amber, settling into a warm base of sandalwood and vanilla.",
			Size:          "100ml",
			Concentration: "Eau de Parfum",
			TopNotes:      []string{"Saffron", "Cardamom"},
			MiddleNotes:   []string{"Oud", "Amber", "Rose"},
			BaseNotes:     []string{"Sandalwood", "Vanilla", "Musk"},
		},
		{
			ID:            2,
			Name:          "Rose de Damascus",
			Category:      CategoryWomens,
			Brand:         "Desert Rose",
			Price:         16500,
			Notes:         []string{"Rose", "Jasmine", "Musk"},
			InStock:       true,
			IsPopular:     true,
			Popularity:    88,
			Description:   "An exquisite tribute to the legendary Damascene rose, with hints of jasmine and a soft musky base.",
			Size:          "100ml",
			Concentration: "Eau de Parfum",
			TopNotes:      []string{"Bergamot", "Pink Pepper"},
			MiddleNotes:   []string{"Damascus Rose", "Jasmine", "Peony"},
			BaseNotes:     []string{"Musk", "Amber", "Cedarwood"},
		},
		{
			ID:            3,
			Name:          "Saffron Noir",
			Category:      CategoryUnisex,
			Brand:         "Oriental Collection",
			Price:         14500,
			Notes:         []string{"Saffron", "Patchouli", "Vanilla"},
			InStock:       true,
			Popularity:    72,
			Description:   "A mysterious and alluring unisex fragrance featuring precious saffron and earthy patchouli, balanced with creamy vanilla.",
			Size:          "100ml",
			Concentration: "Eau de Parfum",
			TopNotes:      []string{"Saffron", "Nutmeg"},
			MiddleNotes:   []string{"Patchouli", "Leather"},
			BaseNotes:     []string{"Vanilla", "Amber", "Tonka Bean"},
		},
		{
			ID:            4,
			Name:          "Amber Essence",
			Category:      CategoryAttar,
			Brand:         "Arabian Nights",
			Price:         9500,
			Notes:         []string{"Amber", "Sandalwood", "Musk"},
			InStock:       true,
			IsPopular:     true,
			Popularity:    90,
			Description:   "A pure attar oil featuring rich amber and sandalwood. Long-lasting and alcohol-free in the traditional Middle Eastern style.",
			Size:          "12ml",
			Concentration: "Pure Attar Oil",
			TopNotes:      []string{"Bergamot"},
			MiddleNotes:   []string{"Amber", "Sandalwood"},
			BaseNotes:     []string{"Musk", "Vanilla"},
		},
		{
			ID:            5,
			Name:          "Musk Al Tahara",
			Category:      CategoryUnisex,
			Brand:         "Dubai Aroma Signature",
			Price:         7500,
			Notes:         []string{"Musk", "Rose"},
			InStock:       false,
			Popularity:    65,
			Description:   "Traditional white musk with a subtle rose undertone. A clean, pure fragrance perfect for everyday wear.",
			Size:          "50ml",
			Concentration: "Eau de Parfum",
		},
		{
			ID:            6,
			Name:          "Bergamot Breeze",
			Category:      CategoryWomens,
			Brand:         "Luxury Essence",
			Price:         12500,
			Notes:         []string{"Bergamot", "Jasmine", "Vanilla"},
			InStock:       true,
			Popularity:    78,
			Description:   "A fresh, uplifting composition of sparkling bergamot over a soft floral heart.",
			Size:          "75ml",
			Concentration: "Eau de Toilette",
		},
		{
			ID:            7,
			Name:          "Sandalwood Premium",
			Category:      CategoryMens,
			Brand:         "Royal Oud",
			Price:         15500,
			Notes:         []string{"Sandalwood", "Oud", "Amber"},
			InStock:       true,
			IsPopular:     true,
			Popularity:    85,
			Description:   "Creamy sandalwood deepened with oud and amber for a refined, woody signature.",
			Size:          "100ml",
			Concentration: "Eau de Parfum",
		},
		{
			ID:            8,
			Name:          "Jasmine Nights",
			Category:      CategoryWomens,
			Brand:         "Desert Rose",
			Price:         13500,
			Notes:         []string{"Jasmine", "Rose", "Patchouli"},
			InStock:       true,
			Popularity:    70,
			Description:   "Night-blooming jasmine wrapped in rose petals over an earthy patchouli base.",
			Size:          "100ml",
			Concentration: "Eau de Parfum",
		},
		{
			ID:            9,
			Name:          "Luxury Gift Set",
			Category:      CategoryGiftSets,
			Brand:         "Dubai Aroma Signature",
			Price:         29900,
			Notes:         []string{"Oud", "Rose", "Amber"},
			InStock:       true,
			IsPopular:     true,
			Popularity:    92,
			Description:   "Three signature fragrances in a presentation box: oud, rose, and amber.",
			Size:          "3x30ml",
			Concentration: "Gift Set",
		},
	}
}
