package main

import (
	"log/slog"
	"os"

	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/scoundrel/config"
	"github.com/luca-patrignani/scoundrel/domain/game"
	"github.com/luca-patrignani/scoundrel/leaderboard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Printfln("configuration: %v", err)
		os.Exit(1)
	}
	level, _ := cfg.SlogLevel()

	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(level)))

	// Create a new slog logger with the handler
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("S", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("coundrel", pterm.FgDarkGray.ToStyle()),
	).Render()

	board := leaderboard.NewBoard(leaderboard.FileStore{Path: cfg.ScoresPath})
	g := game.New(board, cfg.PlayerName)

	area, err := pterm.DefaultArea.WithFullscreen().Start()
	if err != nil {
		logger.Error("failed to start render area", "error", err)
		os.Exit(1)
	}
	defer area.Stop()
	render(area, g.Snapshot())

	err = keyboard.Listen(func(key keys.Key) (bool, error) {
		if handleKey(g, key) {
			return true, nil
		}
		render(area, g.Snapshot())
		return false, nil
	})
	if err != nil {
		logger.Error("input loop failed", "error", err)
		os.Exit(1)
	}
}

// handleKey translates one keystroke into an engine intent. It returns
// true when the player wants to quit.
func handleKey(g *game.Game, key keys.Key) bool {
	snap := g.Snapshot()
	inName := snap.Phase == game.PhaseNameEntry

	switch key.Code {
	case keys.CtrlC, keys.Esc:
		return true
	case keys.Up:
		if snap.Phase == game.PhaseMenu {
			g.MenuUp()
		}
	case keys.Down:
		if snap.Phase == game.PhaseMenu {
			g.MenuDown()
		}
	case keys.Left:
		g.MoveSelection(-1)
	case keys.Right:
		g.MoveSelection(1)
	case keys.Enter:
		switch snap.Phase {
		case game.PhaseMenu:
			if snap.MenuSelected == 2 {
				return true
			}
			g.MenuActivate()
		case game.PhaseNameEntry:
			g.NameInputSubmit()
		case game.PhaseRunning:
			g.TakeSelected(game.UseDefault)
		}
	case keys.Backspace:
		g.NameInputBackspace()
	case keys.Space:
		if inName {
			g.NameInputChar(' ')
		} else {
			g.TakeSelected(game.UseDefault)
		}
	case keys.RuneKey:
		for _, r := range key.Runes {
			if inName {
				g.NameInputChar(r)
				continue
			}
			if handleRune(g, snap.Phase, r) {
				return true
			}
		}
	}
	return false
}

func handleRune(g *game.Game, phase game.Phase, r rune) bool {
	switch r {
	case 'q':
		return true
	case 'n':
		switch phase {
		case game.PhaseMenu, game.PhaseGameOver, game.PhaseLeaderboard:
			g.StartNameEntry()
		default:
			g.NewRun()
		}
	case 'v':
		g.AvoidRoom()
	case 'b':
		g.TakeSelected(game.UseBarehand)
	case 'w':
		g.TakeSelected(game.UseWeapon)
	case '1', '2', '3', '4':
		g.SelectSlot(int(r - '1'))
		g.TakeSelected(game.UseDefault)
	case 'l':
		g.OpenLeaderboard()
	case 'm':
		g.OpenMenu()
	}
	return false
}

func ptermLevel(level slog.Level) pterm.LogLevel {
	switch level {
	case slog.LevelDebug:
		return pterm.LogLevelDebug
	case slog.LevelWarn:
		return pterm.LogLevelWarn
	case slog.LevelError:
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}
