package tui

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/Leghis/sorting-visualizer/config"
	"github.com/Leghis/sorting-visualizer/engine"
	"github.com/Leghis/sorting-visualizer/history"
	"github.com/Leghis/sorting-visualizer/output"
)

// App represents the TUI application
type App struct {
	app       *tview.Application
	screen    tcell.Screen
	pages     *tview.Pages
	barsView  *tview.TextView
	statsView *tview.TextView
	statusBar *tview.TextView

	session  *engine.Session
	recorder *history.Recorder
	cfg      *config.VisualizeConfig

	// Shared mutable state protected by mu (written from the run goroutine)
	mu        sync.Mutex
	elems     []engine.Element
	lastStats engine.Stats

	// Atomic flags for cross-goroutine signaling (no mutex needed)
	runActive atomic.Bool
	soundOn   atomic.Bool
}

// NewApp creates a TUI application for the given visualization config.
// The recorder may be shared with other front ends; runs finished here are
// appended to it.
func NewApp(cfg *config.VisualizeConfig, recorder *history.Recorder) *App {
	a := &App{
		app:      tview.NewApplication(),
		pages:    tview.NewPages(),
		session:  engine.NewSession(cfg.Speed),
		recorder: recorder,
		cfg:      cfg,
	}
	a.soundOn.Store(cfg.Sound)

	a.session.OnUpdate = func(snapshot []engine.Element) {
		a.mu.Lock()
		a.elems = snapshot
		a.mu.Unlock()
		a.app.QueueUpdateDraw(a.renderBars)
	}
	a.session.OnSwap = func(i, j int) {
		if a.soundOn.Load() && a.screen != nil {
			a.screen.Beep()
		}
	}

	a.setupUI()
	return a
}

// Run starts the TUI application and kicks off the first sort run.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	a.screen = screen
	a.app.SetScreen(screen)

	a.startRun()
	return a.app.Run()
}

// setupUI initializes the user interface
func (a *App) setupUI() {
	a.barsView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	a.barsView.SetBorder(true).SetTitle(" sortviz ").SetTitleAlign(tview.AlignCenter)

	a.statsView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	a.statsView.SetBorder(true).SetTitle(" Statistics ").SetTitleAlign(tview.AlignLeft)

	a.statusBar = tview.NewTextView().
		SetDynamicColors(true).
		SetText("[yellow]Starting...[white] | 'p': pause, 'n': new run, 's': sound, 'q': quit")
	a.statusBar.SetBorder(false)

	main := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.barsView, 0, 3, true).
		AddItem(a.statsView, 9, 0, false).
		AddItem(a.statusBar, 1, 0, false)

	a.pages.AddPage("main", main, true, true)

	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'q', 'Q':
			a.app.Stop()
			return nil
		case 'p', 'P', ' ':
			a.togglePause()
			return nil
		case 'n', 'N':
			a.startRun()
			return nil
		case 's', 'S':
			on := !a.soundOn.Load()
			a.soundOn.Store(on)
			a.updateStatusBar()
			return nil
		}

		switch event.Key() {
		case tcell.KeyUp:
			row, col := a.barsView.GetScrollOffset()
			if row > 0 {
				a.barsView.ScrollTo(row-1, col)
			}
			return nil
		case tcell.KeyDown:
			row, col := a.barsView.GetScrollOffset()
			a.barsView.ScrollTo(row+1, col)
			return nil
		}

		return event
	})

	a.app.SetRoot(a.pages, true)
}

// startRun generates a fresh array and runs the configured algorithm in a
// background goroutine. While a run is in flight, further starts are
// rejected and reported on the status bar (the engine would reject them
// too; we never get that far).
func (a *App) startRun() {
	if !a.runActive.CompareAndSwap(false, true) {
		a.statusBar.SetText("[red]A run is already active[white] | 'p': pause, 'q': quit")
		return
	}

	alg := engine.Algorithm(a.cfg.Algorithm)

	go func() {
		defer a.runActive.Store(false)

		var values []int
		var err error
		if a.cfg.Seed != 0 {
			values, err = engine.GenerateSeeded(a.cfg.Size, a.cfg.MinValue, a.cfg.MaxValue, a.cfg.Seed)
		} else {
			values, err = engine.Generate(a.cfg.Size, a.cfg.MinValue, a.cfg.MaxValue)
		}
		if err != nil {
			a.showError(fmt.Sprintf("generate failed: %v", err))
			return
		}

		a.app.QueueUpdateDraw(func() {
			a.statusBar.SetText(fmt.Sprintf("[yellow]Sorting with %s...[white] | 'p': pause, 's': sound, 'q': quit", alg))
		})

		_, stats, err := a.session.Run(alg, values)
		if err != nil {
			a.showError(fmt.Sprintf("run failed: %v", err))
			return
		}

		a.recorder.Record(alg, len(values), stats)

		a.mu.Lock()
		a.lastStats = stats
		a.mu.Unlock()

		a.app.QueueUpdateDraw(func() {
			a.renderStats()
			a.updateStatusBar()
		})
	}()
}

// togglePause flips the pacer's pause flag; only interactive suspension
// points are affected.
func (a *App) togglePause() {
	if !a.runActive.Load() {
		return
	}
	if a.session.Pacer().Toggle() {
		a.statusBar.SetText("[red]Paused[white] | 'p': resume, 'q': quit")
	} else {
		a.statusBar.SetText("[yellow]Resumed[white] | 'p': pause, 'q': quit")
	}
}

// showError surfaces a failure on the status bar.
func (a *App) showError(message string) {
	a.app.QueueUpdateDraw(func() {
		a.statusBar.SetText(fmt.Sprintf("[red]Error:[white] %s | 'n': retry, 'q': quit", message))
	})
}

func (a *App) updateStatusBar() {
	sound := "off"
	if a.soundOn.Load() {
		sound = "on"
	}
	if a.runActive.Load() {
		a.statusBar.SetText(fmt.Sprintf("[yellow]Sorting...[white] | sound %s | 'p': pause, 's': sound, 'q': quit", sound))
		return
	}
	a.statusBar.SetText(fmt.Sprintf("[green]Sorted![white] | sound %s | 'n': new run, 's': sound, 'q': quit", sound))
}

// renderBars redraws the element bars from the latest snapshot. Must run
// on the UI thread.
func (a *App) renderBars() {
	a.mu.Lock()
	elems := a.elems
	a.mu.Unlock()
	a.barsView.SetText(RenderBars(elems))
}

// renderStats redraws the statistics panel. Must run on the UI thread.
func (a *App) renderStats() {
	a.mu.Lock()
	stats := a.lastStats
	a.mu.Unlock()

	a.statsView.SetText(statsText(a.cfg, stats, a.recorder))
}

// statsText builds the statistics panel: the run that just finished, the
// one before it for comparison, and the session mean for the configured
// algorithm.
func statsText(cfg *config.VisualizeConfig, stats engine.Stats, rec *history.Recorder) string {
	text := fmt.Sprintf(`[white::b]Last Run[white::-]

[dim]Algorithm:[white]   %s
[dim]Array size:[white]  %s
[dim]Comparisons:[white] %s
[dim]Swaps:[white]       %s
[dim]Elapsed:[white]     %dms
`,
		cfg.Algorithm,
		output.FormatNumber(cfg.Size),
		output.FormatNumber(int(stats.Comparisons)),
		output.FormatNumber(int(stats.Swaps)),
		stats.ElapsedMS)

	alg := engine.Algorithm(cfg.Algorithm)
	if runs := rec.EntriesFor(alg); len(runs) > 1 {
		prev := runs[len(runs)-2]
		text += fmt.Sprintf("[dim]Previous run:[white] %dms, %s comparisons\n",
			prev.ElapsedMS, output.FormatNumber(int(prev.Comparisons)))
	}

	if agg, ok := rec.Aggregates()[alg]; ok {
		text += fmt.Sprintf("[dim]Mean over %d runs:[white] %.1fms, %.1f comparisons\n",
			agg.Runs, agg.MeanElapsedMS, agg.MeanComparisons)
	}

	return text
}
