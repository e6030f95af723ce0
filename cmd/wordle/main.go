package main

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jakobteuber/wordle/automatic"
	"github.com/jakobteuber/wordle/config"
	"github.com/jakobteuber/wordle/lexicon"
	"github.com/jakobteuber/wordle/shell"
	"github.com/jakobteuber/wordle/word"
)

//go:embed wordle.txt
var wordlebanner string

func usage() {
	fmt.Fprint(os.Stderr, `usage:
  wordle [flags] assist <word-file>
      Help with a game you are playing elsewhere. Enter your guesses
      and the feedback you got; the program suggests candidate words.
  wordle [flags] play <word-file>
      Play a normal game of Wordle against this program.
  wordle [flags] batch <word-file> <solution-file>
      Run one simulated game per solution to measure the algorithm.
`)
}

func main() {
	fmt.Println(wordlebanner)

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	var logger zerolog.Logger
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	log.Debug().Msgf("Loaded config: %v", cfg.SanitizedSettings())

	if len(cfg.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithCancel(context.Background())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info().Msg("got quit signal...")
		cancel()
	}()

	opening, err := word.Parse(cfg.GetString(config.ConfigOpeningWord))
	if err != nil {
		log.Fatal().Err(err).Msg("bad opening word")
	}

	var cmdErr error
	switch cfg.Args[0] {
	case "assist", "play":
		words, err := lexicon.Get(cfg.Args[1])
		if err != nil {
			log.Fatal().Err(err).Msg("loading word list")
		}
		sc := shell.NewShellController(shell.ControllerOptions{
			MaxRounds:   cfg.GetInt(config.ConfigMaxRounds),
			OpeningWord: opening,
			Threads:     cfg.GetInt(config.ConfigThreads),
			Seed:        cfg.GetUint64(config.ConfigSeed),
		})
		defer sc.Close()
		if cfg.Args[0] == "assist" {
			cmdErr = sc.Assist(ctx, words)
		} else {
			cmdErr = sc.Play(ctx, words)
		}

	case "batch":
		if len(cfg.Args) < 3 {
			usage()
			os.Exit(2)
		}
		cmdErr = runBatch(ctx, cfg, opening)

	default:
		usage()
		os.Exit(2)
	}

	if cmdErr != nil {
		log.Fatal().Err(cmdErr).Msg("")
	}
}

func runBatch(ctx context.Context, cfg *config.Config, opening word.Word) error {
	words, err := lexicon.Get(cfg.Args[1])
	if err != nil {
		return err
	}
	solutions, err := lexicon.Get(cfg.Args[2])
	if err != nil {
		return err
	}

	opts := []automatic.Option{
		automatic.WithOpeningWord(opening),
		automatic.WithMaxRounds(cfg.GetInt(config.ConfigMaxRounds)),
		automatic.WithThreads(cfg.GetInt(config.ConfigThreads)),
	}
	if path := cfg.GetString(config.ConfigGameLog); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		opts = append(opts, automatic.WithLogStream(f))
	}

	var csvOut io.Writer
	if path := cfg.GetString(config.ConfigBatchCSV); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if _, err := f.WriteString(automatic.CSVHeader); err != nil {
			return err
		}
		csvOut = f
	}

	runner := automatic.NewGameRunner(words, opts...)
	summary, err := runner.Run(ctx, solutions, csvOut)
	if err != nil {
		return err
	}
	return summary.Fprint(os.Stdout)
}
