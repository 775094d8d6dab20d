package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/nathanieltooley/pokedex/fakeserver"
	"github.com/nathanieltooley/pokedex/global"
	"github.com/nathanieltooley/pokedex/networking"
	"github.com/nathanieltooley/pokedex/rendering/components"
	"github.com/nathanieltooley/pokedex/state"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	baseURL     string
	debug       bool
	characterID int

	fakeServerPort     int
	fakeServerCooldown time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "pokedex",
	Short: "Pokedex terminal client",
	Long:  `Browse characters, gather Pokémon and build decks against a pokedex backend.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		global.GlobalInit(debug)

		if cmd.Flags().Changed("base-url") {
			global.Opt.BaseURL = baseURL
		}

		if debug {
			global.Opt.Debug = true
			global.UpdateLogLevel(zerolog.DebugLevel)
		}
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runTUI(characterID)
	},
}

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "List all characters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := requestContext(cmd.Context())
		defer cancel()

		characters, err := newAPI().ListCharacters(ctx)
		if err != nil {
			return err
		}

		fmt.Println(components.CharacterCards(characters, state.LoadReady, -1))
		return nil
	},
}

var inventoryCmd = &cobra.Command{
	Use:   "inventory <character id>",
	Short: "List a character's Pokémon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseCharacterID(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := requestContext(cmd.Context())
		defer cancel()

		items, err := newAPI().ListInventory(ctx, id)
		if err != nil {
			return err
		}

		tracker := state.NewInventoryTracker()
		fmt.Println(components.InventoryGrid(components.InventoryView{
			Inventory: tracker.Load(items),
			Load:      state.LoadReady,
			Cursor:    -1,
		}))
		return nil
	},
}

var decksCmd = &cobra.Command{
	Use:   "decks <character id>",
	Short: "List a character's decks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseCharacterID(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := requestContext(cmd.Context())
		defer cancel()

		decks, err := newAPI().ListDeckDetails(ctx, id)
		if err != nil {
			return err
		}

		fmt.Println(components.DeckList(decks, state.LoadReady))
		return nil
	},
}

var gatherCmd = &cobra.Command{
	Use:   "gather <character id>",
	Short: "Gather Pokémon for a character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseCharacterID(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := requestContext(cmd.Context())
		defer cancel()

		result, err := newAPI().Gather(ctx, id)
		if err != nil {
			return err
		}

		cooldown := state.NewCooldown()
		cooldown.Start(result, global.Opt.GatherCooldown)

		fmt.Println(result.Message)
		fmt.Printf("Gathered %d Pokémon, next: %s\n", result.Count, cooldown.Label())
		return nil
	},
}

var fakeServerCmd = &cobra.Command{
	Use:   "fakeserver",
	Short: "Run an in-memory pokedex backend",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		server := &http.Server{
			Addr:              fmt.Sprintf(":%d", fakeServerPort),
			Handler:           fakeserver.New(fakeserver.WithCooldown(fakeServerCooldown)).Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}

		errChan := make(chan error, 1)
		go func() {
			errChan <- server.ListenAndServe()
		}()

		fmt.Printf("Fake pokedex backend listening on http://localhost:%d/api\n", fakeServerPort)
		log.Info().Int("port", fakeServerPort).Msg("fake server started")

		select {
		case err := <-errChan:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("fake server stopped: %w", err)
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		log.Info().Msg("shutting down fake server")
		return server.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "backend base url, overrides the config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.Flags().IntVar(&characterID, "character", 0, "open a character's page directly")

	fakeServerCmd.Flags().IntVar(&fakeServerPort, "port", 3000, "port to listen on")
	fakeServerCmd.Flags().DurationVar(&fakeServerCooldown, "cooldown", fakeserver.DefaultCooldown, "time between gathers")

	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(decksCmd)
	rootCmd.AddCommand(gatherCmd)
	rootCmd.AddCommand(fakeServerCmd)
}

func newAPI() *networking.Client {
	return networking.NewClient(global.Opt.BaseURL, global.Opt.RequestTimeout)
}

func requestContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, global.Opt.RequestTimeout)
}

func parseCharacterID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid character id %q", arg)
	}

	return id, nil
}
