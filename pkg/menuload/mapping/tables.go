package mapping

const (
	// ChefChoiceCategory marks the tasting menu dishes.
	ChefChoiceCategory = "5-Course Menu"
	// SignatureCategory marks the house cocktails.
	SignatureCategory = "Signature"
	// CocktailPrice is a placeholder used for every cocktail until real
	// prices are set in the table.
	CocktailPrice = 14.00
)

// FoodMenu maps "Olkkari New Menu" records to food_menu rows.
var FoodMenu = Table{
	Name: "food_menu",
	Rules: []Rule{
		{Target: "category", Source: "Category", Kind: String, Default: ""},
		{Target: "dish_name", Source: "Dish Name", Kind: String, Default: ""},
		{Target: "description", Source: "Description", Kind: String, Default: ""},
		{Target: "price", Source: "Price (€)", Kind: Price},
		{Target: "is_chef_choice", Source: "Category", Kind: Flag, Match: ChefChoiceCategory},
	},
}

// Cocktails maps "Cocktail list" records to cocktails rows.
var Cocktails = Table{
	Name: "cocktails",
	Rules: []Rule{
		{Target: "category", Source: "Category", Kind: String, Default: ""},
		{Target: "cocktail_name", Source: "Cocktail", Kind: String, Default: ""},
		{Target: "abv_notes", Source: "ABV / Notes", Kind: Nullable},
		{Target: "ingredients", Source: "Ingredients", Kind: String, Default: ""},
		{Target: "method", Source: "Method", Kind: String, Default: ""},
		{Target: "garnish", Source: "Garnish", Kind: String, Default: ""},
		{Target: "price", Kind: Const, Default: CocktailPrice},
		{Target: "is_signature", Source: "Category", Kind: Flag, Match: SignatureCategory},
	},
}
