package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/paddle-duel/audio"
	"github.com/lixenwraith/paddle-duel/engine"
	"github.com/lixenwraith/paddle-duel/input"
	"github.com/lixenwraith/paddle-duel/parameter"
	"github.com/lixenwraith/paddle-duel/remote"
	"github.com/lixenwraith/paddle-duel/render"
)

// Optional environment switches; the game itself takes no flags
const (
	envRemote = "PADDLE_DUEL_REMOTE" // listen address for the websocket producer
	envLog    = "PADDLE_DUEL_LOG"    // log file path; logs are discarded otherwise
)

type game struct {
	screen  tcell.Screen
	state   *engine.GameState
	queue   *engine.CommandQueue
	source  input.Source
	surface *render.Surface
	status  render.StatusDisplay
	effects *audio.Effects
}

func newGame() (*game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	state := engine.NewGameState(engine.NewMonotonicTimeProvider(), time.Now().UnixNano())

	effects := audio.NewEffects()
	if err := effects.Init(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("audio initialization failed: %v", err)
	}
	state.SetEffects(effects)

	src := input.NewScreenSource(screen)
	src.SetResizeHook(screen.Sync)
	source := input.NewLogSource(src, log.Default())
	bindDefaults(source)

	return &game{
		screen:  screen,
		state:   state,
		queue:   engine.NewCommandQueue(),
		source:  source,
		surface: render.NewSurface(screen),
		status:  render.NewScoreStatus(screen),
		effects: effects,
	}, nil
}

// bindDefaults installs the default key bindings: W/S drive player 1,
// the arrow keys player 2, Escape toggles pause, R restarts, Q and
// Ctrl+C quit
func bindDefaults(source input.Source) {
	source.RegisterBinding(input.RuneKey('w'), engine.MovePaddleUpCommand{Player: 1})
	source.RegisterBinding(input.RuneKey('s'), engine.MovePaddleDownCommand{Player: 1})
	source.RegisterBinding(input.SpecialKey(tcell.KeyUp), engine.MovePaddleUpCommand{Player: 2})
	source.RegisterBinding(input.SpecialKey(tcell.KeyDown), engine.MovePaddleDownCommand{Player: 2})
	source.RegisterBinding(input.SpecialKey(tcell.KeyEscape), engine.PauseCommand{})
	source.RegisterBinding(input.RuneKey('r'), engine.ResetCommand{})
	source.RegisterBinding(input.RuneKey('q'), engine.StopCommand{})
	source.RegisterBinding(input.SpecialKey(tcell.KeyCtrlC), engine.StopCommand{})
}

// run is the frame loop: physics step if due, one input poll, playfield,
// status line, then the fixed frame delay. Exits when the game stops
func (g *game) run() {
	go g.queue.RunWorker(g.state)

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	for g.state.Running() {
		g.state.Update()
		g.source.PollAndDispatch(g.state)

		snap := g.state.Snapshot()
		g.surface.Draw(snap)
		g.status.DisplayStatus(snap)
		g.screen.Show()

		<-ticker.C
	}
}

func (g *game) cleanup() {
	g.effects.Close()
	g.screen.Fini()
}

// configureLogging keeps log output away from the terminal the game
// draws on
func configureLogging() {
	if path := os.Getenv(envLog); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			log.SetOutput(f)
			return
		}
	}
	log.SetOutput(io.Discard)
}

func main() {
	configureLogging()

	g, err := newGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer g.cleanup()

	if addr := os.Getenv(envRemote); addr != "" {
		srv := remote.NewServer(g.queue)
		go func() {
			if err := srv.ListenAndServe(addr); err != nil {
				log.Printf("remote: %v", err)
			}
		}()
	}

	g.run()
}
