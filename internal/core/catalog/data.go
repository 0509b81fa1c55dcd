package catalog

var defaultRecipes = []Recipe{
	{
		ID:          "1",
		Name:        "Tomato Rasam",
		TamilName:   "தக்காளி ரசம்",
		Category:    "Rasam",
		FoodType:    "Veg",
		CookingTime: 25,
		Ingredients: []string{
			"2 medium tomatoes, chopped",
			"1/4 cup toor dal (cooked)",
			"1 tsp tamarind paste",
			"1/2 tsp turmeric powder",
			"1 tsp rasam powder",
			"2-3 curry leaves",
			"1 green chili, slit",
			"1/2 tsp mustard seeds",
			"1 tsp ghee",
			"Salt to taste",
			"Fresh coriander for garnish",
		},
		Instructions: []string{
			"Heat ghee in a pan and add mustard seeds",
			"When seeds splutter, add curry leaves and green chili",
			"Add chopped tomatoes and cook until soft",
			"Add turmeric, rasam powder, and salt",
			"Add cooked toor dal and mix well",
			"Add tamarind paste and 1 cup water",
			"Bring to a boil and simmer for 10 minutes",
			"Garnish with fresh coriander and serve hot",
		},
		ImageURL: "https://images.unsplash.com/photo-1596797038530-2c107229654b?w=400&h=300&fit=crop",
		VideoURL: "https://youtube.com/watch?v=example1",
	},
	{
		ID:          "2",
		Name:        "Sambar",
		TamilName:   "சாம்பார்",
		Category:    "Curry",
		FoodType:    "Veg",
		CookingTime: 30,
		Ingredients: []string{
			"1/2 cup toor dal",
			"1 small onion, chopped",
			"1 tomato, chopped",
			"1/4 cup drumstick pieces",
			"1/4 cup okra, chopped",
			"1 tsp sambar powder",
			"1/2 tsp turmeric powder",
			"1 tsp tamarind paste",
			"1/2 tsp mustard seeds",
			"Few curry leaves",
			"1 tsp oil",
			"Salt to taste",
		},
		Instructions: []string{
			"Pressure cook toor dal with turmeric until soft",
			"Heat oil in a pan, add mustard seeds and curry leaves",
			"Add onions and sauté until translucent",
			"Add tomatoes and cook until soft",
			"Add vegetables and cook for 5 minutes",
			"Add sambar powder and tamarind paste",
			"Add cooked dal and mix well",
			"Add water as needed and simmer for 15 minutes",
			"Season with salt and serve hot with rice",
		},
		ImageURL: "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398?w=400&h=300&fit=crop",
	},
	{
		ID:          "3",
		Name:        "Chicken Curry",
		TamilName:   "கோழி குழம்பு",
		Category:    "Curry",
		FoodType:    "Non-veg",
		CookingTime: 45,
		Ingredients: []string{
			"250g chicken, cut into pieces",
			"1 large onion, chopped",
			"2 tomatoes, chopped",
			"1 tbsp ginger-garlic paste",
			"1 tsp red chili powder",
			"1/2 tsp turmeric powder",
			"1 tsp coriander powder",
			"1/2 tsp garam masala",
			"2 tbsp coconut oil",
			"Few curry leaves",
			"Salt to taste",
			"Fresh coriander for garnish",
		},
		Instructions: []string{
			"Marinate chicken with turmeric, chili powder, and salt for 15 minutes",
			"Heat oil in a pan, add curry leaves",
			"Add marinated chicken and cook until 70% done",
			"Remove chicken and set aside",
			"In the same pan, add onions and sauté until golden",
			"Add ginger-garlic paste and cook for 1 minute",
			"Add tomatoes and cook until soft",
			"Add all spice powders and mix well",
			"Return chicken to the pan and mix",
			"Add water as needed and simmer for 15 minutes",
			"Garnish with coriander and serve with rice",
		},
		ImageURL: "https://images.unsplash.com/photo-1565557623262-b51c2513a641?w=400&h=300&fit=crop",
	},
	{
		ID:          "4",
		Name:        "Curd Rice",
		TamilName:   "தயிர் சாதம்",
		Category:    "Rice",
		FoodType:    "Veg",
		CookingTime: 15,
		Ingredients: []string{
			"1 cup cooked rice",
			"1/2 cup thick curd/yogurt",
			"1/4 cup milk",
			"1/2 tsp mustard seeds",
			"1 green chili, chopped",
			"1 inch ginger, minced",
			"Few curry leaves",
			"1 tsp oil",
			"Salt to taste",
			"Pomegranate seeds for garnish",
		},
		Instructions: []string{
			"Mash the cooked rice slightly",
			"Mix curd and milk together until smooth",
			"Add the curd mixture to rice and mix well",
			"Heat oil in a small pan",
			"Add mustard seeds and let them splutter",
			"Add green chili, ginger, and curry leaves",
			"Pour this tempering over the curd rice",
			"Mix well and add salt to taste",
			"Garnish with pomegranate seeds and serve chilled",
		},
		ImageURL: "https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=400&h=300&fit=crop",
	},
}
