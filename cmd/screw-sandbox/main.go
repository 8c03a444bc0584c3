// Command screw-sandbox plays generated stages in the terminal.
// Click a screw to remove it; keys: h hint, e expose, d drill, s shuffle,
// n next stage, b buy (then h/e/d/s), q quit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/screw-puzzle/config"
	"github.com/lixenwraith/screw-puzzle/generator"
	"github.com/lixenwraith/screw-puzzle/logging"
	"github.com/lixenwraith/screw-puzzle/session"
)

var (
	configFlag = flag.String("config", "", "YAML config file")
	debugFlag  = flag.Bool("debug", false, "write debug log to logs/")
	seedFlag   = flag.Uint64("seed", 0, "random seed (0 = config or time-based)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	logFile, err := logging.Setup(*debugFlag || cfg.Log.Debug, cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Restore the terminal before printing a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nSANDBOX CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse()

	opts := cfg.GeneratorOptions()
	opts.Logger = slog.Default()
	sc := cfg.SessionConfig()
	sc.Logger = slog.Default()
	cols, rows := screen.Size()
	sc.HitRadius = newViewport(cols, rows, cfg.Viewport.Width, cfg.Viewport.Height).tapRadius(cfg.Play.HitRadius)

	g := newGame(screen, session.New(generator.New(opts), sc), cfg.Viewport.Width, cfg.Viewport.Height)
	g.run()
}

// game is the sandbox event loop state
type game struct {
	screen        tcell.Screen
	s             *session.Session
	width, height float64
	view          viewport
	hl            highlights
	msg           string
	buying        bool
}

func newGame(screen tcell.Screen, s *session.Session, width, height float64) *game {
	g := &game{screen: screen, s: s, width: width, height: height}
	g.resize()
	g.msg = "click a screw"
	return g
}

func (g *game) resize() {
	cols, rows := g.screen.Size()
	g.view = newViewport(cols, rows, g.width, g.height)
}

func (g *game) run() {
	for {
		draw(g.screen, g.view, g.s, g.hl, g.msg)
		switch ev := g.screen.PollEvent().(type) {
		case *tcell.EventResize:
			g.screen.Sync()
			g.resize()
		case *tcell.EventKey:
			if !g.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 != 0 {
				x, y := ev.Position()
				g.click(x, y)
			}
		}
	}
}

// handleKey returns false to quit
func (g *game) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}

	item, isItem := runeItems[ev.Rune()]
	if g.buying {
		g.buying = false
		if !isItem {
			g.msg = "purchase cancelled"
			return true
		}
		g.report(g.s.Purchase(item), fmt.Sprintf("bought %s", item))
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'b':
		g.buying = true
		g.msg = "buy which item? h/e/d/s"
	case 'n':
		if !g.s.Stage().AllCleared() {
			g.msg = "clear the stage first"
			return true
		}
		g.hl = highlights{}
		res := g.s.NextStage()
		g.msg = fmt.Sprintf("stage %d", res.Stage.Number)
		g.warnUnsolvable()
	default:
		if isItem {
			g.useItem(item)
		}
	}
	return true
}

var runeItems = map[rune]session.Item{
	'h': session.ItemHint,
	'e': session.ItemExpose,
	'd': session.ItemDrill,
	's': session.ItemShuffle,
}

func (g *game) useItem(item session.Item) {
	g.hl = highlights{}
	switch item {
	case session.ItemHint:
		hits, err := g.s.Hint()
		if g.report(err, fmt.Sprintf("%d removable screws", len(hits))) {
			g.hl.hinted = make(map[int]bool, len(hits))
			for _, h := range hits {
				g.hl.hinted[h.Screw.ID] = true
			}
		}
	case session.ItemShuffle:
		_, err := g.s.Shuffle()
		if g.report(err, "stage shuffled") {
			g.warnUnsolvable()
		}
	default:
		if g.report(g.s.Arm(item), fmt.Sprintf("%s armed, click a screw", item)) && g.s.Armed() == "" {
			g.msg = fmt.Sprintf("%s cancelled", item)
		}
	}
}

func (g *game) click(x, y int) {
	if y >= g.view.rows {
		return
	}
	g.hl = highlights{}
	out, err := g.s.Tap(g.view.toStage(x, y))
	if errors.Is(err, session.ErrNoScrew) {
		return
	}
	if !g.report(err, "") {
		return
	}

	switch out.Item {
	case session.ItemExpose:
		g.hl.covering = make(map[int]bool, len(out.Covering))
		for _, p := range out.Covering {
			g.hl.covering[p.ID] = true
		}
		if len(out.Covering) == 0 {
			g.msg = "this screw is free"
		} else {
			g.msg = fmt.Sprintf("%d plates cover this screw", len(out.Covering))
		}
		return
	case session.ItemDrill:
		g.msg = "drilled out"
	}

	res := out.Remove
	switch {
	case res.StageCleared:
		g.msg = fmt.Sprintf("CLEAR! +%d points, press n for the next stage", res.Reward)
	case res.PlateCleared:
		g.msg = "plate fell"
	case res.Outcome == session.OutcomeBlocked:
		g.msg = fmt.Sprintf("blocked by %d plate(s) above", len(res.Covering))
	case res.Outcome == session.OutcomeRemoved && out.Item == "":
		g.msg = "removed"
	}

	if g.s.Stuck() {
		g.msg += "  (no free screws: try drill or shuffle)"
	}
}

// report sets the message from err or ok, returning whether err was nil
func (g *game) report(err error, ok string) bool {
	if err != nil {
		g.msg = err.Error()
		return false
	}
	if ok != "" {
		g.msg = ok
	}
	return true
}

func (g *game) warnUnsolvable() {
	if g.s.MaybeUnsolvable() {
		g.msg += "  (warning: stage may be unsolvable)"
	}
}
