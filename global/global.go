package global

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/zerologr"
	"github.com/nathanieltooley/pokedex/networking"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

var (
	TERM_WIDTH, TERM_HEIGHT, _ = term.GetSize(int(os.Stdout.Fd()))

	SelectKey = key.NewBinding(
		key.WithKeys("enter"),
	)
	MoveDownKey = key.NewBinding(
		key.WithKeys("down", "j"),
	)
	MoveUpKey = key.NewBinding(
		key.WithKeys("up", "k"),
	)
	ToggleKey = key.NewBinding(
		key.WithKeys(" "),
	)

	DownTabKey = key.NewBinding(key.WithKeys(tea.KeyTab.String()))
	UpTabKey   = key.NewBinding(key.WithKeys(tea.KeyShiftTab.String()))

	BackKey = key.NewBinding(key.WithKeys(tea.KeyEsc.String()))

	ReloadKey      = key.NewBinding(key.WithKeys("r"))
	CreateKey      = key.NewBinding(key.WithKeys("c"))
	GatherKey      = key.NewBinding(key.WithKeys("g"))
	CreateDeckKey  = key.NewBinding(key.WithKeys("d"))
	PokemonInfoKey = key.NewBinding(key.WithKeys("i"))
	QuitKey        = key.NewBinding(key.WithKeys("ctrl+c"))

	Opt = populateConfig(GlobalConfig{})

	initLogger zerolog.Logger
)

func GlobalInit(shouldLog bool) {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout}

	configDir := DefaultConfigDir()

	// Basic logging for config debugging
	initLogger = zerolog.New(consoleWriter).With().Timestamp().Logger()
	if !shouldLog {
		initLogger = zerolog.Nop()
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		initLogger.Err(err).Msg("error occured trying to create config dir")
	}

	config, err := LoadConfig(DefaultConfigLocation())
	if err != nil {
		initLogger.Err(err).Msg("error occurred while reading the config file, using defaults")
	}

	config, err = ApplyEnv(config)
	if err != nil {
		initLogger.Err(err).Msg("error occurred while reading config from the environment")
	}

	Opt = config

	level := zerolog.InfoLevel
	if Opt.Debug {
		level = zerolog.DebugLevel
	}

	if shouldLog {
		initLogger = zerolog.New(zerolog.MultiLevelWriter(consoleWriter, createFileWriter(configDir))).With().Timestamp().Logger().Level(level)
	}

	// Main global logger, stdout belongs to the TUI so this only goes to file
	log.Logger = createLogger(configDir, level)
	networking.SetInternalLogger(zerologr.New(&log.Logger))

	initLogger.Info().Str("baseUrl", Opt.BaseURL).Dur("gatherCooldown", Opt.GatherCooldown).Msg("config loaded")
}

func createFileWriter(configDir string) zerolog.ConsoleWriter {
	rollingWriter := NewRollingFileWriter(filepath.Join(configDir, "logs/"), "pokedex")
	return zerolog.ConsoleWriter{Out: rollingWriter, NoColor: true}
}

func createLogger(configDir string, level zerolog.Level) zerolog.Logger {
	return zerolog.New(createFileWriter(configDir)).With().Timestamp().Caller().Logger().Level(level)
}

func StopLogging() {
	log.Logger = zerolog.Nop()
	networking.SetInternalLogger(zerologr.New(&log.Logger))
}

func UpdateLogLevel(level zerolog.Level) {
	log.Logger = log.Logger.Level(level)
}

func SetTermSize(width int, height int) {
	TERM_WIDTH = width
	TERM_HEIGHT = height
}
