package models

// FoodMenuItem is one row of the food_menu table.
type FoodMenuItem struct {
	// ID is generated by the store.
	ID uint `gorm:"primaryKey" json:"id,omitempty"`
	// Category is the menu section, e.g. "Starters" or "5-Course Menu".
	Category string `gorm:"column:category" json:"category"`
	// DishName is the dish title.
	DishName string `gorm:"column:dish_name" json:"dish_name"`
	// Description is the free-text dish description.
	Description string `gorm:"column:description" json:"description"`
	// Price is the price in euros, 0 when the sheet had none.
	Price float64 `gorm:"column:price" json:"price"`
	// IsChefChoice marks dishes of the tasting menu.
	IsChefChoice bool `gorm:"column:is_chef_choice" json:"is_chef_choice"`
}

// TableName returns the remote table name.
func (FoodMenuItem) TableName() string { return "food_menu" }

// Cocktail is one row of the cocktails table.
type Cocktail struct {
	ID           uint    `gorm:"primaryKey" json:"id,omitempty"`
	Category     string  `gorm:"column:category" json:"category"`
	CocktailName string  `gorm:"column:cocktail_name" json:"cocktail_name"`
	ABVNotes     *string `gorm:"column:abv_notes" json:"abv_notes"`
	Ingredients  string  `gorm:"column:ingredients" json:"ingredients"`
	Method       string  `gorm:"column:method" json:"method"`
	Garnish      string  `gorm:"column:garnish" json:"garnish"`
	Price        float64 `gorm:"column:price" json:"price"`
	IsSignature  bool    `gorm:"column:is_signature" json:"is_signature"`
}

// TableName returns the remote table name.
func (Cocktail) TableName() string { return "cocktails" }
