package state

import (
	"strconv"
	"strings"

	"github.com/nathanieltooley/pokedex/networking"
	"github.com/samber/lo"
)

// CharacterForm holds the raw values typed into the create character modal
type CharacterForm struct {
	FirstName string
	LastName  string
	Age       string
	Gender    string
	Starter   string
}

// Turns the form into a request body. Every field is required.
func (f CharacterForm) Validate() (networking.NewCharacter, error) {
	firstName := strings.TrimSpace(f.FirstName)
	lastName := strings.TrimSpace(f.LastName)
	age, err := strconv.Atoi(strings.TrimSpace(f.Age))

	if firstName == "" || lastName == "" || err != nil || age <= 0 {
		return networking.NewCharacter{}, ErrIncompleteForm
	}

	if !lo.Contains(networking.Genders, f.Gender) || !lo.Contains(networking.Starters, f.Starter) {
		return networking.NewCharacter{}, ErrIncompleteForm
	}

	return networking.NewCharacter{
		FirstName: firstName,
		LastName:  lastName,
		Age:       age,
		Gender:    f.Gender,
		Starter:   f.Starter,
	}, nil
}
