// Command zhot plays an extended game of Scissors-Paper-Rock: any odd
// number of moves, loaded from a CSV file or the built-in classic three.
//
// Usage:
//
//	zhot [-config zhot.toml] [moves.csv]
//
// In-game words: a move name (or any fragment of one), ‘score’, ‘rounds’,
// ‘help’, ‘diagram’ (writes the rules picture as SVG), ‘exit’.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/zhot/catalog"
	"github.com/katalvlaran/zhot/config"
	"github.com/katalvlaran/zhot/diagram"
	"github.com/katalvlaran/zhot/game"
	"github.com/katalvlaran/zhot/render"
)

func main() {
	configPath := flag.String("config", "zhot.toml", "optional settings file")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "zhot: cannot build logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("settings file unusable", zap.String("path", *configPath), zap.Error(err))
	}

	cat, source := loadCatalog(logger, flag.Arg(0))

	var opts []game.Option
	if cfg.Game.Seed != 0 {
		opts = append(opts, game.WithSeed(cfg.Game.Seed))
	}
	session, err := game.NewSession(cat, opts...)
	if err != nil {
		logger.Fatal("cannot start game", zap.Error(err))
	}

	fmt.Printf("Starting game with %s.\n", source)
	run(session, cfg, logger)
}

// loadCatalog resolves the move list: the CSV at path when given, the
// classic defaults otherwise. A bad file ends the process with a clear
// report rather than a half-loaded game.
func loadCatalog(logger *zap.Logger, path string) (*catalog.Catalog, string) {
	if path == "" {
		return catalog.Default(), "default rules"
	}
	cat, err := catalog.FromCSVFile(path)
	if err != nil {
		logger.Fatal("cannot load moves", zap.String("path", path), zap.Error(err))
	}
	return cat, fmt.Sprintf("rules from %s", path)
}

// run is the interactive loop: prompt, parse, dispatch, repeat until quit.
func run(session *game.Session, cfg config.Config, logger *zap.Logger) {
	cat := session.Catalog()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("Options: %s.\n", cat)
		fmt.Print("What is your move? ")
		if !scanner.Scan() {
			fmt.Println()
			farewell(session)
			return
		}

		switch action := game.Parse(scanner.Text(), cat); action.Kind {
		case game.ActionPlay:
			out := session.PlayRound(action.Move)
			fmt.Println(out.Moves + out.Result)
		case game.ActionScore:
			fmt.Println(session.Score())
		case game.ActionRounds:
			fmt.Printf("%d rounds have been played so far.\n", session.Rounds())
		case game.ActionRules:
			fmt.Println(session.Rules())
		case game.ActionDiagram:
			saveDiagram(session, cfg, logger)
		case game.ActionQuit:
			fmt.Println("Exiting game.")
			farewell(session)
			return
		default:
			// Unparseable input: reprompt.
		}
	}
}

// saveDiagram lays out, assembles and writes the rules picture.
func saveDiagram(session *game.Session, cfg config.Config, logger *zap.Logger) {
	cat := session.Catalog()
	points, err := diagram.Layout(cat.Len(), cfg.Diagram.Size)
	if err != nil {
		logger.Error("diagram layout failed", zap.Int("size", cfg.Diagram.Size), zap.Error(err))
		return
	}
	scene, err := diagram.Assemble(cat, session.Tournament(), points, cfg.Diagram.Size,
		diagram.WithDiagnostic(func(msg string) { logger.Warn(msg) }))
	if err != nil {
		logger.Error("diagram assembly failed", zap.Error(err))
		return
	}
	if err := render.SVGFile(cfg.Diagram.Output, scene); err != nil {
		logger.Error("diagram write failed", zap.String("path", cfg.Diagram.Output), zap.Error(err))
		return
	}
	fmt.Printf("Diagram saved to %s.\n", cfg.Diagram.Output)
}

// farewell prints the tally and the verdict on the way out.
func farewell(session *game.Session) {
	fmt.Printf("%s %d rounds played.\n", session.Score(), session.Rounds())
	fmt.Println(session.Score().Upshot())
}
