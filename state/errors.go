package state

import "errors"

// ValidationError is a client side check that failed before anything was sent.
// Message is shown to the user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrEmptyName        = &ValidationError{"Please enter a deck name."}
	ErrEmptySelection   = &ValidationError{"Please select at least one Pokémon."}
	ErrDeckFull         = &ValidationError{"You can select up to 5 Pokémon."}
	ErrUnknownPokemon   = &ValidationError{"That Pokémon isn't in this character's inventory."}
	ErrIncompleteForm   = &ValidationError{"Please fill out all fields and choose a starter."}
	ErrNoPokemonForDeck = &ValidationError{"This character has no Pokémon to create a deck."}
)

func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
