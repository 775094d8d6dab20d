package fakeserver

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/nathanieltooley/pokedex/errorutils"
	"github.com/samber/lo"
)

//go:generate go run ../scripts catalog -out data/gen1.csv -ids 1,2,4,5,7,8,10,13,16,19,21,23,25,27,29,32,35,37,39,41,43,50,52,54,56,58,60,63,66,74,77,92,95,129,133,143,147

//go:embed data/gen1.csv
var catalogCSV []byte

type species struct {
	Dex     int
	Name    string
	Types   string
	Hp      int
	Attack  int
	Defence int
}

const (
	spriteBase   = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"
	officialBase = spriteBase + "/other/official-artwork"
)

func (s species) spriteURL() string {
	return fmt.Sprintf("%s/%d.png", spriteBase, s.Dex)
}

func (s species) officialURL() string {
	return fmt.Sprintf("%s/%d.png", officialBase, s.Dex)
}

var (
	// Everything gather can hand out
	catalog = loadCatalog(catalogCSV)

	starters = map[string]species{
		"Bulbasaur":  findSpecies("bulbasaur"),
		"Charmander": findSpecies("charmander"),
		"Squirtle":   findSpecies("squirtle"),
	}
)

func loadCatalog(data []byte) []species {
	csvReader := csv.NewReader(bytes.NewReader(data))
	// header
	_ = errorutils.Must(csvReader.Read())
	rows := errorutils.Must(csvReader.ReadAll())

	return lo.Map(rows, func(row []string, _ int) species {
		// The file is embedded so a bad row is a programming error
		return species{
			Dex:     errorutils.Must(strconv.Atoi(row[0])),
			Name:    row[1],
			Types:   row[2],
			Hp:      errorutils.Must(strconv.Atoi(row[3])),
			Attack:  errorutils.Must(strconv.Atoi(row[4])),
			Defence: errorutils.Must(strconv.Atoi(row[5])),
		}
	})
}

func findSpecies(name string) species {
	s, ok := lo.Find(catalog, func(s species) bool { return s.Name == name })
	if !ok {
		panic(fmt.Sprintf("%s is missing from the catalog", name))
	}

	return s
}
