package domain

import (
	"time"
)

// Recipe is a user-authored recipe. Ownership is fixed at creation and a
// deleted recipe is only flagged inactive.
type Recipe struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	IngredientsList []Ingredient  `json:"ingredientsList"`
	Temperature     *int          `json:"temperature,omitempty"`
	CookingTime     int           `json:"cookingTime"`
	Instructions    string        `json:"instructions"`
	RecipeType      RecipeType    `json:"recipeType"`
	CreatorRating   *int          `json:"creatorRating,omitempty"`
	CreatorComment  *string       `json:"creatorComment,omitempty"`
	ExternalLinks   []string      `json:"externalLinks"`
	Language        Language      `json:"language"`
	IsActive        bool          `json:"isActive"`
	UserComments    []UserComment `json:"userComments"`
	OwnerID         string        `json:"ownerId"`
	OwnerUsername   string        `json:"ownerUsername"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// RecipeType classifies a recipe.
type RecipeType string

const (
	RecipeTypeAppetizer     RecipeType = "APPETIZER"
	RecipeTypeStarter       RecipeType = "STARTER"
	RecipeTypeMain          RecipeType = "MAIN"
	RecipeTypeDessert       RecipeType = "DESSERT"
	RecipeTypeDrink         RecipeType = "DRINK"
	RecipeTypeOther         RecipeType = "OTHER"
	RecipeTypeDressingSauce RecipeType = "DRESSING_SAUCE"
	RecipeTypeSpread        RecipeType = "SPREAD"
	RecipeTypeBread         RecipeType = "BREAD"
	RecipeTypeDough         RecipeType = "DOUGH"
)

var recipeTypes = map[RecipeType]struct{}{
	RecipeTypeAppetizer: {}, RecipeTypeStarter: {}, RecipeTypeMain: {}, RecipeTypeDessert: {},
	RecipeTypeDrink: {}, RecipeTypeOther: {}, RecipeTypeDressingSauce: {}, RecipeTypeSpread: {},
	RecipeTypeBread: {}, RecipeTypeDough: {},
}

func (t RecipeType) Valid() bool {
	_, ok := recipeTypes[t]
	return ok
}

// Language of the recipe text.
type Language string

const (
	LanguageEN Language = "EN"
	LanguageFR Language = "FR"
)

func (l Language) Valid() bool {
	return l == LanguageEN || l == LanguageFR
}

// UserComment is feedback left on a recipe by any authenticated user.
type UserComment struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Comment   string    `json:"comment"`
	Rating    *int      `json:"rating,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// RecipeInput carries the mutable fields of a recipe as submitted by a client.
// Pointer fields distinguish "absent" from zero.
type RecipeInput struct {
	Name            string       `json:"name" example:"Test Recipe"`
	IngredientsList []Ingredient `json:"ingredientsList"`
	Temperature     *int         `json:"temperature,omitempty" example:"180"`
	CookingTime     *int         `json:"cookingTime" example:"30"`
	Instructions    string       `json:"instructions" example:"Mix and bake"`
	RecipeType      RecipeType   `json:"recipeType" example:"DESSERT"`
	CreatorRating   *int         `json:"creatorRating,omitempty" example:"4"`
	CreatorComment  *string      `json:"creatorComment,omitempty"`
	ExternalLinks   []string     `json:"externalLinks"`
	Language        Language     `json:"language" example:"EN"`
}

// RecipeResponse is the outward representation of a recipe.
type RecipeResponse struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	IngredientsList []Ingredient  `json:"ingredientsList"`
	Temperature     *int          `json:"temperature"`
	CookingTime     int           `json:"cookingTime"`
	Instructions    string        `json:"instructions"`
	RecipeType      RecipeType    `json:"recipeType"`
	CreatorRating   *int          `json:"creatorRating"`
	CreatorComment  *string       `json:"creatorComment"`
	ExternalLinks   []string      `json:"externalLinks"`
	Language        Language      `json:"language"`
	UserComments    []UserComment `json:"userComments"`
	CreatorUsername string        `json:"creatorUsername"`
}

// CommentRequest is the payload of POST /api/recipes/{id}/comments.
type CommentRequest struct {
	Comment string `json:"comment" example:"Great with vanilla"`
	Rating  *int   `json:"rating,omitempty" example:"5"`
}
