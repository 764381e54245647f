package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/peek/internal/app"
	"github.com/marcus/peek/internal/config"
	"github.com/marcus/peek/internal/dock"
	"github.com/marcus/peek/internal/keymap"
	"github.com/marcus/peek/internal/msg"
	"github.com/marcus/peek/internal/note"
	"github.com/marcus/peek/internal/search"
	"github.com/marcus/peek/internal/state"
	"github.com/marcus/peek/internal/storage"
	"github.com/marcus/peek/internal/styles"
)

// Version is set at build time via ldflags
var Version = ""

var (
	configPath   = flag.String("config", "", "path to config file")
	debugFlag    = flag.Bool("debug", false, "enable debug logging")
	versionFlag  = flag.Bool("version", false, "print version and exit")
	shortVersion = flag.Bool("v", false, "print version and exit (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *shortVersion {
		fmt.Printf("peek version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// Load configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Load persistent session state (ignore errors - state is optional)
	_ = state.Init()

	styles.ApplyTheme(cfg.UI.Theme)

	// Open the persistence backend and load the collection
	backend := storage.Open(cfg.Notes.Dir, config.DataDir(), logger)
	var notes []note.Note
	if backend != nil {
		notes, err = backend.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load notes from %s: %v\n", backend.Location(), err)
			os.Exit(1)
		}
	} else {
		logger.Warn("no storage backend available, notes will not persist")
	}
	if len(notes) == 0 {
		notes = []note.Note{note.Welcome()}
	}

	var saver note.Saver
	if backend != nil {
		saver = backend
	}
	store := note.NewStore(notes, saver, logger)

	// Full-text search index (optional; substring filtering covers its absence)
	var index *search.Index
	if idx, err := search.Open(filepath.Join(config.DataDir(), "search.db")); err != nil {
		logger.Warn("search index unavailable", "err", err)
	} else {
		index = idx
		defer index.Close()
	}

	// Create keymap registry and apply user overrides
	km := keymap.NewRegistry()
	keymap.RegisterDefaults(km)
	km.ApplyOverrides(cfg.Keymap.Overrides)

	model := app.New(store, index, km, cfg, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Edge-docking controller, when a desktop host is available
	if cfg.Dock.Enabled {
		if host, name, ok := dock.DetectHost(); ok {
			logger.Info("dock host detected", "host", name)
			ctrl := dock.NewController(host, dock.Options{
				PollInterval:  cfg.Dock.PollInterval,
				EdgeThreshold: cfg.Dock.EdgeThreshold,
				PeekWidth:     cfg.Dock.PeekWidth,
				Hysteresis:    cfg.Dock.Hysteresis,
			}, logger)
			go ctrl.Run(ctx)
			go watchDockState(ctx, ctrl, cfg.Dock.PollInterval, p)
		} else {
			logger.Debug("no dock host available")
		}
	}

	// Watch the notes file for foreign writes
	if fb, ok := backend.(*storage.FileBackend); ok {
		reloads, stop, err := storage.WatchFile(fb, func(err error) {
			logger.Warn("notes watch error", "err", err)
		})
		if err != nil {
			logger.Warn("notes watch unavailable", "err", err)
		} else {
			defer stop()
			go func() {
				for notes := range reloads {
					p.Send(msg.NotesReloadedMsg{Notes: notes})
				}
			}()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

// watchDockState forwards docking state changes to the UI.
func watchDockState(ctx context.Context, ctrl *dock.Controller, interval time.Duration, p *tea.Program) {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last dock.State
	first := true
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s := ctrl.State()
			if first || s != last {
				first = false
				last = s
				p.Send(msg.DockStateMsg{Name: s.String()})
			}
		}
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if revision != "" {
		ver := "devel+" + revision
		if len(ver) > 20 {
			ver = ver[:20]
		}
		if dirty {
			ver += "+dirty"
		}
		return ver
	}
	return "unknown"
}
