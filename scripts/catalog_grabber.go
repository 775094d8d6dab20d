package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

type pokemonType struct {
	Slot int
	Type namedAPIResource
}

type pokemonStat struct {
	BaseStat int `json:"base_stat"`
	Stat     namedAPIResource
}

type pokemonResponse struct {
	Id    int
	Name  string
	Types []pokemonType
	Stats []pokemonStat
}

type catalogRow struct {
	Dex     int
	Name    string
	Types   string
	Hp      int
	Attack  int
	Defence int
}

// Builds the fake server's species catalog from PokeAPI
func catalogMain(args []string) {
	flags := flag.NewFlagSet("catalog", flag.ExitOnError)
	out := flags.String("out", "./fakeserver/data/gen1.csv", "where to write the csv")
	limit := flags.Int("limit", 151, "grab every pokemon up to this dex number")
	ids := flags.String("ids", "", "comma separated dex numbers, overrides -limit")
	_ = flags.Parse(args)

	dexNumbers, err := parseDexNumbers(*ids, *limit)
	if err != nil {
		log.Fatal(err)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	rows, err := grabCatalog(client, pokeAPIBase, dexNumbers)
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := writeCatalog(f, rows); err != nil {
		log.Fatal(err)
	}

	log.Printf("Wrote %d pokemon to %s\n", len(rows), *out)
}

func parseDexNumbers(ids string, limit int) ([]int, error) {
	if ids == "" {
		return lo.RangeFrom(1, limit), nil
	}

	numbers := make([]int, 0)
	for _, id := range strings.Split(ids, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(id))
		if err != nil {
			return nil, fmt.Errorf("bad dex number %q: %w", id, err)
		}
		numbers = append(numbers, n)
	}

	return numbers, nil
}

func grabCatalog(client *http.Client, baseURL string, dexNumbers []int) ([]catalogRow, error) {
	rows := make([]catalogRow, 0, len(dexNumbers))

	for _, dex := range dexNumbers {
		log.Printf("Getting pokemon #%d\n", dex)

		pokemon, err := fetchResource[pokemonResponse](client, fmt.Sprintf("%s/pokemon/%d", baseURL, dex))
		if err != nil {
			return nil, err
		}

		rows = append(rows, toCatalogRow(pokemon))
	}

	return rows, nil
}

func toCatalogRow(p pokemonResponse) catalogRow {
	types := slices.Clone(p.Types)
	slices.SortFunc(types, func(a, b pokemonType) int {
		return a.Slot - b.Slot
	})

	stats := lo.SliceToMap(p.Stats, func(s pokemonStat) (string, int) {
		return s.Stat.Name, s.BaseStat
	})

	return catalogRow{
		Dex:     p.Id,
		Name:    p.Name,
		Types:   strings.Join(lo.Map(types, func(t pokemonType, _ int) string { return t.Type.Name }), "/"),
		Hp:      stats["hp"],
		Attack:  stats["attack"],
		Defence: stats["defense"],
	}
}

func writeCatalog(w io.Writer, rows []catalogRow) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write([]string{"dex", "name", "types", "hp", "attack", "defence"}); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Dex),
			row.Name,
			row.Types,
			strconv.Itoa(row.Hp),
			strconv.Itoa(row.Attack),
			strconv.Itoa(row.Defence),
		}

		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}
