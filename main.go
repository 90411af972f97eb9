package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"gridbot/pkg/game/audio"
	"gridbot/pkg/game/gameplay"
	"gridbot/pkg/game/levels"
	"gridbot/pkg/game/renderer"
	ebitenbackend "gridbot/pkg/game/renderer/ebiten"
	screenbackend "gridbot/pkg/game/renderer/screen"
	tuibackend "gridbot/pkg/game/renderer/tui"
	"gridbot/pkg/game/state"
	"gridbot/pkg/game/watch"
)

func main() {
	level := flag.String("level", "intro", "built-in level to play, one of: "+strings.Join(levels.Names(), ", "))
	levelFile := flag.String("level-file", "", "load a level layout from a file instead of a built-in")
	backend := flag.String("backend", "tui", "renderer backend: tui, screen or ebiten")
	watchAddr := flag.String("watch", "", "serve a websocket spectator feed on this address, eg :8080")
	sound := flag.Bool("sound", false, "play sound cues")
	verbose := flag.Bool("verbose", false, "log debug messages")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	rows, err := loadLayout(*level, *levelFile)
	if err != nil {
		log.WithError(err).Fatal("loading level")
	}

	g, err := state.NewGame(rows)
	if err != nil {
		log.WithError(err).Fatal("building game")
	}

	var hub *watch.Hub
	if *watchAddr != "" {
		hub = watch.NewHub()
		hub.Serve(*watchAddr)
	}

	var cues *audio.Player
	if *sound {
		cues = audio.NewPlayer()
		if err := cues.Init(); err != nil {
			log.WithError(err).Warn("sound unavailable")
			cues = nil
		}
	}

	r, err := buildRenderer(*backend)
	if err != nil {
		log.WithError(err).Fatal("building renderer")
	}
	if err := r.Init(); err != nil {
		log.WithError(err).Fatal("initializing renderer")
	}

	if eb, ok := r.(*ebitenbackend.EbitenRenderer); ok {
		go runGame(g, r, hub, cues)
		if err := eb.Run("gridbot"); err != nil {
			log.WithError(err).Fatal("window loop")
		}
		return
	}

	runGame(g, r, hub, cues)
	r.Close()

	switch g.Status {
	case state.Won:
		fmt.Println(gotext.Get("The robot reached the exit!"))
	case state.Lost:
		fmt.Println(gotext.Get("The robot was lost."))
	}
}

// loadLayout resolves the level rows from either a file or a built-in.
func loadLayout(name, path string) ([]string, error) {
	if path != "" {
		return levels.LoadFile(path)
	}
	return levels.Load(name)
}

// buildRenderer picks a backend by name.
func buildRenderer(name string) (renderer.Renderer, error) {
	switch name {
	case "tui":
		return tuibackend.New(), nil
	case "screen":
		return screenbackend.New(), nil
	case "ebiten":
		return ebitenbackend.New(), nil
	}
	return nil, fmt.Errorf("unknown backend %q", name)
}

// runGame drives the turn loop: render, wait for an intent, apply it.
// After the game ends one final frame stays on screen until the next
// keypress so the player sees the outcome.
func runGame(g *state.Game, r renderer.Renderer, hub *watch.Hub, cues *audio.Player) {
	for g.Status == state.Running {
		f := renderer.Snapshot(g)
		r.RenderFrame(f)
		if hub != nil {
			hub.Publish(f)
		}

		in, err := r.NextIntent()
		if err != nil {
			log.WithError(err).Error("reading input")
			g.Finish(state.Lost)
			break
		}

		keysBefore := g.Robot.Keys
		gameplay.ProcessIntent(g, in)
		playCues(cues, g, keysBefore)
	}

	f := renderer.Snapshot(g)
	r.RenderFrame(f)
	if hub != nil {
		hub.Publish(f)
	}
	r.NextIntent()
}

// playCues sounds the events a turn produced, inferred from state
// deltas so gameplay stays free of audio concerns.
func playCues(cues *audio.Player, g *state.Game, keysBefore int) {
	if cues == nil {
		return
	}
	switch {
	case g.Status == state.Won:
		cues.Play(audio.CueWin)
	case g.Status == state.Lost:
		cues.Play(audio.CueLost)
	case g.Robot.Keys > keysBefore:
		cues.Play(audio.CueKey)
	case g.Robot.Keys < keysBefore:
		cues.Play(audio.CueDoor)
	}
}
