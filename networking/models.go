package networking

import (
	"encoding/json"
	"fmt"
	"time"
)

// Starter choices accepted by POST /character
const (
	StarterCharmander = "Charmander"
	StarterBulbasaur  = "Bulbasaur"
	StarterSquirtle   = "Squirtle"
)

var Starters = []string{StarterCharmander, StarterBulbasaur, StarterSquirtle}

var Genders = []string{"male", "female", "other"}

type Character struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	DeckCount int    `json:"deckCount"`
}

func (c Character) FullName() string {
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}

// Used by the character list
func (c Character) FilterValue() string {
	return c.FullName()
}

type NewCharacter struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Starter   string `json:"starter"`
}

type Pokemon struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Types             string `json:"types"`
	Hp                int    `json:"hp"`
	Attack            int    `json:"attack"`
	Defence           int    `json:"defence"`
	SpriteURL         string `json:"spriteUrl"`
	SpriteOfficialURL string `json:"spriteOfficialUrl"`
}

// Prefers the official artwork, falling back to the small sprite
func (p Pokemon) BestSprite() string {
	if p.SpriteOfficialURL != "" {
		return p.SpriteOfficialURL
	}

	return p.SpriteURL
}

type Deck struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	PokemonIDs []int  `json:"pokemonIds,omitempty"`
	Rank       string `json:"rank,omitempty"`
}

// Deck as returned by GET /character/{id}/decks, with the pokemon expanded
type DeckDetail struct {
	DeckID  int       `json:"deckId"`
	Name    string    `json:"name"`
	Rank    string    `json:"rank"`
	Pokemon []Pokemon `json:"pokemon"`
}

type NewDeck struct {
	Name       string `json:"name"`
	PokemonIDs []int  `json:"pokemonIds"`
}

type GatherResult struct {
	Message      string     `json:"message"`
	CharacterID  int        `json:"characterId"`
	Count        int        `json:"count"`
	LastGatherAt *time.Time `json:"lastGatherAt,omitempty"`
	NextGatherAt *time.Time `json:"nextGatherAt,omitempty"`
	Data         []Pokemon  `json:"data"`
}

type deckEnvelope struct {
	Decks *[]DeckDetail `json:"decks"`
}

// The detailed deck endpoint has been seen returning both a bare array and a {"decks": [...]} envelope.
// Both are accepted, anything else is ErrUnexpectedShape.
func decodeDeckDetails(body []byte) ([]DeckDetail, error) {
	var decks []DeckDetail
	if err := json.Unmarshal(body, &decks); err == nil {
		if decks == nil {
			decks = []DeckDetail{}
		}
		return decks, nil
	}

	var envelope deckEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Decks == nil {
		return nil, ErrUnexpectedShape
	}

	return *envelope.Decks, nil
}
