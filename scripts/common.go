package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const pokeAPIBase = "https://pokeapi.co/api/v2"

type namedAPIResource struct {
	Name string
	Url  string
}

func fetchResource[T any](client *http.Client, url string) (T, error) {
	var result T

	response, err := client.Get(url)
	if err != nil {
		return result, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return result, fmt.Errorf("GET %s: %s", url, response.Status)
	}

	bytes, err := io.ReadAll(response.Body)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(bytes, &result); err != nil {
		return result, fmt.Errorf("decoding %s: %w", url, err)
	}

	return result, nil
}
