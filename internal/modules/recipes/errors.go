package recipes

import "errors"

var (
	// create/update validation
	ErrDuplicateIngredient   = errors.New("ingredients must not repeat")
	ErrAmountOutOfRange      = errors.New("ingredient amount is out of the configured bounds")
	ErrCookingTimeOutOfRange = errors.New("cooking time is out of the configured bounds")
	ErrDuplicateRecipeName   = errors.New("this author already has a recipe with this name")
	ErrNoIngredients         = errors.New("recipe needs at least one ingredient")
	ErrNoTags                = errors.New("recipe needs at least one tag")
	ErrIngredientNotFound    = errors.New("referenced ingredient does not exist")
	ErrTagNotFound           = errors.New("referenced tag does not exist")
	ErrInvalidImage          = errors.New("invalid image payload")

	// access control
	ErrPermissionDenied = errors.New("only the author or an administrator can edit this recipe")

	// favorite / shopping-cart toggles
	ErrAlreadyInList = errors.New("recipe is already in the list")
	ErrNotInList     = errors.New("recipe is not in the list")
)
