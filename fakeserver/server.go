// Package fakeserver is an in-memory stand-in for the pokedex backend.
// It serves the same REST surface the client talks to, for local development and tests.
package fakeserver

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nathanieltooley/pokedex/networking"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const (
	DefaultCooldown = time.Hour
	GatherCount     = 10
	MaxDeckSize     = 5
)

var serverLogger = func() *zerolog.Logger {
	logger := log.With().Str("location", "fakeserver").Logger()
	return &logger
}

var (
	errNoSuchCharacter = errors.New("character not found")
	errOnCooldown      = errors.New("gather is on cooldown")
)

type character struct {
	info         networking.Character
	inventory    []networking.Pokemon
	lastGatherAt *time.Time
}

type Server struct {
	mu sync.Mutex

	characters []*character
	decks      map[int][]networking.DeckDetail

	nextCharacterID int
	nextPokemonID   int
	nextDeckID      int

	rng      *rand.Rand
	now      func() time.Time
	cooldown time.Duration
}

type Option func(*Server)

func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

func WithCooldown(cooldown time.Duration) Option {
	return func(s *Server) { s.cooldown = cooldown }
}

// Fixes the rng so gathers are repeatable
func WithSeed(seed uint64) Option {
	return func(s *Server) { s.rng = rand.New(rand.NewPCG(seed, seed)) }
}

func New(opts ...Option) *Server {
	s := &Server{
		decks:           make(map[int][]networking.DeckDetail),
		nextCharacterID: 1,
		nextPokemonID:   1,
		nextDeckID:      1,
		rng:             rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:             time.Now,
		cooldown:        DefaultCooldown,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	s.RegisterRoutes(r)

	return r
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/character", s.listCharacters)
		api.POST("/character", s.createCharacter)
		api.GET("/character/:id", s.listInventory)
		api.POST("/character/:id/pokemon", s.gather)
		api.GET("/character/:id/decks", s.listDeckDetails)
		api.GET("/deck/:id", s.listDecks)
		api.POST("/deck/:id", s.createDeck)
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		serverLogger().Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("handled request")
	}
}

func abortWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func characterID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("invalid character id: %s", c.Param("id")))
		return 0, false
	}

	return id, true
}

func (s *Server) listCharacters(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := lo.Map(s.characters, func(ch *character, _ int) networking.Character {
		return s.characterInfo(ch)
	})

	c.JSON(http.StatusOK, out)
}

func (s *Server) createCharacter(c *gin.Context) {
	var req networking.NewCharacter
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	starter, ok := starters[req.Starter]
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if req.FirstName == "" || req.LastName == "" || req.Age <= 0 || !lo.Contains(networking.Genders, req.Gender) || !ok {
		abortWithError(c, http.StatusBadRequest, "firstName, lastName, age, gender and a valid starter are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ch := &character{
		info: networking.Character{
			ID:        s.nextCharacterID,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Age:       req.Age,
			Gender:    req.Gender,
		},
	}
	s.nextCharacterID++
	ch.inventory = append(ch.inventory, s.newPokemon(starter))
	s.characters = append(s.characters, ch)

	serverLogger().Info().Int("id", ch.info.ID).Str("starter", req.Starter).Msg("created character")
	c.JSON(http.StatusCreated, s.characterInfo(ch))
}

func (s *Server) listInventory(c *gin.Context) {
	id, ok := characterID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ch, err := s.find(id)
	if err != nil {
		abortWithError(c, http.StatusNotFound, err.Error())
		return
	}

	c.JSON(http.StatusOK, ch.inventory)
}

func (s *Server) gather(c *gin.Context) {
	id, ok := characterID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ch, err := s.find(id)
	if err != nil {
		abortWithError(c, http.StatusNotFound, err.Error())
		return
	}

	now := s.now()
	if ch.lastGatherAt != nil {
		next := ch.lastGatherAt.Add(s.cooldown)
		if now.Before(next) {
			remaining := next.Sub(now).Round(time.Minute)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":        fmt.Sprintf("%s, try again in %s", errOnCooldown, remaining),
				"nextGatherAt": next,
			})
			return
		}
	}

	gathered := make([]networking.Pokemon, 0, GatherCount)
	for range GatherCount {
		gathered = append(gathered, s.newPokemon(catalog[s.rng.IntN(len(catalog))]))
	}
	ch.inventory = append(ch.inventory, gathered...)

	last := now
	next := now.Add(s.cooldown)
	ch.lastGatherAt = &last

	c.JSON(http.StatusOK, networking.GatherResult{
		Message:      fmt.Sprintf("Success! %d random Pokémon assigned to character #%d", GatherCount, id),
		CharacterID:  id,
		Count:        len(gathered),
		LastGatherAt: &last,
		NextGatherAt: &next,
		Data:         gathered,
	})
}

func (s *Server) listDecks(c *gin.Context) {
	id, ok := characterID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.find(id); err != nil {
		abortWithError(c, http.StatusNotFound, err.Error())
		return
	}

	out := lo.Map(s.decks[id], func(d networking.DeckDetail, _ int) networking.Deck {
		return networking.Deck{
			ID:   d.DeckID,
			Name: d.Name,
			Rank: d.Rank,
			PokemonIDs: lo.Map(d.Pokemon, func(p networking.Pokemon, _ int) int {
				return p.ID
			}),
		}
	})

	c.JSON(http.StatusOK, out)
}

func (s *Server) listDeckDetails(c *gin.Context) {
	id, ok := characterID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.find(id); err != nil {
		abortWithError(c, http.StatusNotFound, err.Error())
		return
	}

	decks := s.decks[id]
	if decks == nil {
		decks = []networking.DeckDetail{}
	}

	c.JSON(http.StatusOK, gin.H{"decks": decks})
}

func (s *Server) createDeck(c *gin.Context) {
	id, ok := characterID(c)
	if !ok {
		return
	}

	var req networking.NewDeck
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		abortWithError(c, http.StatusBadRequest, "deck name is required")
		return
	}
	if len(req.PokemonIDs) == 0 || len(req.PokemonIDs) > MaxDeckSize {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("a deck needs between 1 and %d pokemon", MaxDeckSize))
		return
	}
	if len(lo.Uniq(req.PokemonIDs)) != len(req.PokemonIDs) {
		abortWithError(c, http.StatusBadRequest, "a deck can't contain the same pokemon twice")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ch, err := s.find(id)
	if err != nil {
		abortWithError(c, http.StatusNotFound, err.Error())
		return
	}

	owned := lo.KeyBy(ch.inventory, func(p networking.Pokemon) int { return p.ID })
	members := make([]networking.Pokemon, 0, len(req.PokemonIDs))
	for _, pokemonID := range req.PokemonIDs {
		p, ok := owned[pokemonID]
		if !ok {
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("pokemon %d does not belong to character %d", pokemonID, id))
			return
		}
		members = append(members, p)
	}

	deck := networking.DeckDetail{
		DeckID:  s.nextDeckID,
		Name:    name,
		Rank:    rankFor(members),
		Pokemon: members,
	}
	s.nextDeckID++
	s.decks[id] = append(s.decks[id], deck)

	serverLogger().Info().Int("character", id).Str("deck", name).Str("rank", deck.Rank).Msg("created deck")
	c.JSON(http.StatusCreated, networking.Deck{ID: deck.DeckID, Name: deck.Name, Rank: deck.Rank, PokemonIDs: req.PokemonIDs})
}

// Must be called with mu held
func (s *Server) find(id int) (*character, error) {
	ch, ok := lo.Find(s.characters, func(ch *character) bool { return ch.info.ID == id })
	if !ok {
		return nil, fmt.Errorf("%w: %d", errNoSuchCharacter, id)
	}

	return ch, nil
}

// Must be called with mu held
func (s *Server) characterInfo(ch *character) networking.Character {
	info := ch.info
	info.DeckCount = len(s.decks[info.ID])
	return info
}

// Must be called with mu held
func (s *Server) newPokemon(sp species) networking.Pokemon {
	p := networking.Pokemon{
		ID:                s.nextPokemonID,
		Name:              sp.Name,
		Types:             sp.Types,
		Hp:                sp.Hp,
		Attack:            sp.Attack,
		Defence:           sp.Defence,
		SpriteURL:         sp.spriteURL(),
		SpriteOfficialURL: sp.officialURL(),
	}
	s.nextPokemonID++

	return p
}

// Ranks a deck by the average of its members' summed stats
func rankFor(members []networking.Pokemon) string {
	if len(members) == 0 {
		return "C"
	}

	total := lo.SumBy(members, func(p networking.Pokemon) int {
		return p.Hp + p.Attack + p.Defence
	})
	avg := total / len(members)

	switch {
	case avg >= 200:
		return "S"
	case avg >= 160:
		return "A"
	case avg >= 130:
		return "B"
	default:
		return "C"
	}
}
