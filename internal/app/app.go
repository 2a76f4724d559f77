package app

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/hexstorm/internal/config"
	"github.com/dshills/hexstorm/internal/engine/buffer"
	"github.com/dshills/hexstorm/internal/engine/grid"
	"github.com/dshills/hexstorm/internal/engine/view"
	"github.com/dshills/hexstorm/internal/renderer"
	"github.com/dshills/hexstorm/internal/renderer/backend"
	"github.com/dshills/hexstorm/internal/script"
	"github.com/dshills/hexstorm/internal/storage"
)

// selfSaveWindow is how long after our own save a watcher notice is
// attributed to that save rather than to an external writer.
const selfSaveWindow = 500 * time.Millisecond

// Options configures a new Application.
type Options struct {
	// ConfigPath overrides the default config file location.
	ConfigPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// ReadOnly opens files without allowing edits or saves.
	ReadOnly bool

	// File is an optional file to open at startup.
	File string
}

// Application owns all editor state and coordinates the components.
// Everything runs on a single thread of control: one command is fully
// processed before the next event is polled.
type Application struct {
	opts      Options
	cfg       config.Config
	log       *Logger
	sessionID string

	layout grid.Layout
	buf    *buffer.Buffer
	view   *view.View
	cursor grid.Cursor
	status renderer.Status

	backend backend.Backend
	rend    *renderer.Renderer
	store   storage.Storage
	watcher *storage.Watcher
	scripts *script.Engine

	lastSave time.Time
	running  bool
	finished bool
}

// New creates an application from options. The backend is attached
// separately with SetBackend so tests can supply their own.
func New(opts Options) (*Application, error) {
	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.ReadOnly {
		cfg.ReadOnly = true
	}

	log := NewNopLogger()
	if cfg.LogFile != "" {
		log, err = NewFileLogger(cfg.LogFile, ParseLogLevel(cfg.LogLevel))
		if err != nil {
			return nil, err
		}
	}

	app := &Application{
		opts:      opts,
		cfg:       cfg,
		log:       log,
		sessionID: uuid.NewString(),
		layout:    grid.DefaultLayout(),
		buf:       buffer.New(),
		store:     storage.NewDisk(),
		scripts:   script.NewEngine(),
	}

	if err := app.scripts.LoadDir(cfg.ScriptDir); err != nil {
		// A broken user script should not keep the editor from
		// starting; the hook simply stays unloaded.
		app.log.Errorf("loading scripts: %v", err)
	}

	app.log.Infof("session %s starting", app.sessionID)
	return app, nil
}

// SetBackend attaches the terminal backend. Must be called before Run.
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// SetStorage replaces the storage collaborator. Used by tests.
func (app *Application) SetStorage(s storage.Storage) {
	app.store = s
}

// Config returns the effective configuration.
func (app *Application) Config() config.Config {
	return app.cfg
}

// Run initializes the backend and processes events until quit.
// A normal quit returns ErrQuit.
func (app *Application) Run() error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if app.running {
		return ErrAlreadyRunning
	}
	app.running = true

	if err := app.backend.Init(); err != nil {
		return NewOperationError("init backend", "", err)
	}

	app.rend = renderer.New(app.backend, app.layout)
	app.view = view.New(app.layout, app.rend.VisibleRows())

	if app.cfg.WatchFile {
		w, err := storage.NewWatcher(app.backend.PostWake)
		if err != nil {
			app.log.Warnf("file watcher unavailable: %v", err)
		} else {
			app.watcher = w
		}
	}

	if app.opts.File != "" {
		app.openPath(app.opts.File)
	}

	return app.loop()
}

// Shutdown releases all resources. Safe to call more than once.
func (app *Application) Shutdown() {
	if app.finished {
		return
	}
	app.finished = true

	if app.backend != nil && app.running {
		app.backend.Fini()
	}
	if app.watcher != nil {
		_ = app.watcher.Close()
	}
	app.scripts.Close()

	app.log.Infof("session %s finished", app.sessionID)
	_ = app.log.Close()
}

// frame assembles the current render state.
func (app *Application) frame() renderer.Frame {
	return renderer.Frame{
		Data:       app.buf.Bytes(),
		ViewOffset: app.view.Offset(),
		Cursor:     app.cursor,
		Path:       app.buf.Path(),
		Modified:   app.buf.Modified(),
		ReadOnly:   app.cfg.ReadOnly,
		Status:     app.status,
	}
}
