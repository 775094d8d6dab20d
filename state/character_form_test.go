package state

import (
	"testing"

	"github.com/nathanieltooley/pokedex/networking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacterFormValid(t *testing.T) {
	form := CharacterForm{FirstName: " John ", LastName: "Jonas", Age: "25", Gender: "male", Starter: networking.StarterCharmander}

	payload, err := form.Validate()
	require.NoError(t, err)
	assert.Equal(t, networking.NewCharacter{
		FirstName: "John",
		LastName:  "Jonas",
		Age:       25,
		Gender:    "male",
		Starter:   "Charmander",
	}, payload)
}

func TestCharacterFormInvalid(t *testing.T) {
	valid := CharacterForm{FirstName: "John", LastName: "Jonas", Age: "25", Gender: "male", Starter: networking.StarterSquirtle}

	tests := map[string]func(f *CharacterForm){
		"missing first name": func(f *CharacterForm) { f.FirstName = "" },
		"blank last name":    func(f *CharacterForm) { f.LastName = "  " },
		"non numeric age":    func(f *CharacterForm) { f.Age = "old" },
		"zero age":           func(f *CharacterForm) { f.Age = "0" },
		"unknown gender":     func(f *CharacterForm) { f.Gender = "robot" },
		"no starter":         func(f *CharacterForm) { f.Starter = "" },
		"unknown starter":    func(f *CharacterForm) { f.Starter = "Pikachu" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			form := valid
			mutate(&form)

			_, err := form.Validate()
			assert.ErrorIs(t, err, ErrIncompleteForm)
			assert.Equal(t, "Please fill out all fields and choose a starter.", err.Error())
		})
	}
}
