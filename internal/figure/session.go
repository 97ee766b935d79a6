package figure

import (
	"context"
	"fmt"

	"github.com/damca/ficus/internal/config"
	"github.com/damca/ficus/internal/display"
	"github.com/damca/ficus/internal/fsutil"
	"github.com/damca/ficus/internal/monitoring"
	"github.com/damca/ficus/internal/security"
	"github.com/google/uuid"
)

// Options configure a Session. Zero values fall back to Defaults (or
// config.Defaults when Defaults is nil).
type Options struct {
	// Filename, if set, is saved on clean exit; the extension picks the format.
	Filename string
	// Show displays the figure on clean exit and blocks until dismissed.
	Show bool
	// DPI is the save resolution. It does not affect on-screen rendering.
	DPI int
	// Rows and Cols shape the subplot grid; 0 means 1.
	Rows, Cols int
	// TightLayoutRect, if set, fits the subplots into this rectangle.
	TightLayoutRect *Rect
	// FigSize in inches; nil uses the configured default.
	FigSize *Size
	// GridSpec spacing; unset fields use the configured defaults.
	GridSpec config.GridOptions
	// Share selects axis sharing between subplots.
	Share ShareSpec
	// Move repositions the window before showing; nil uses the default (true).
	Move *bool

	Registry  Registry
	Displayer display.Displayer
	FS        fsutil.FileSystem
	Defaults  *config.FigureDefaults
	// AllowedDirs, if non-empty, restricts Filename to these directories.
	AllowedDirs []string
}

// Session owns one figure from construction until exit. It is not safe for
// concurrent use.
type Session struct {
	id        uuid.UUID
	registry  Registry
	fig       *Figure
	axes      AxesSet
	filename  string
	dpi       int
	show      bool
	move      bool
	displayer display.Displayer
	fs        fsutil.FileSystem
	exited    bool
}

// New allocates a figure, lays out its subplots and verifies the figure is
// the registry's active one. On any failure the figure created here is
// released before the error is returned.
func New(opts Options) (*Session, error) {
	defaults := opts.Defaults
	if defaults == nil {
		defaults = config.Defaults()
	}

	rows, cols := opts.Rows, opts.Cols
	if rows == 0 {
		rows = 1
	}
	if cols == 0 {
		cols = 1
	}
	grid, err := NewGridSpec(rows, cols, opts.GridSpec.Merge(defaults.GridSpec))
	if err != nil {
		return nil, err
	}

	size := Size{}
	size.Width, size.Height = defaults.GetFigSize()
	if opts.FigSize != nil {
		size = *opts.FigSize
	}
	if err := size.validate(); err != nil {
		return nil, err
	}

	dpi := opts.DPI
	if dpi == 0 {
		dpi = defaults.GetDPI()
	}
	if dpi < 0 {
		return nil, fmt.Errorf("%w: dpi must be positive, got %d", ErrInvalidOptions, dpi)
	}

	move := defaults.GetMove()
	if opts.Move != nil {
		move = *opts.Move
	}

	if opts.TightLayoutRect != nil {
		if err := opts.TightLayoutRect.validate(); err != nil {
			return nil, err
		}
	}

	if opts.Filename != "" {
		if _, err := FormatOf(opts.Filename); err != nil {
			return nil, err
		}
		if err := security.ValidatePathWithinAllowedDirs(opts.Filename, opts.AllowedDirs); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
		}
	}

	displayer := opts.Displayer
	if opts.Show && displayer == nil {
		displayer, err = display.ForBackend(defaults.GetDisplay(), defaults.GetHTTPAddr())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
		}
	}

	registry := opts.Registry
	if registry == nil {
		registry = DefaultRegistry
	}
	fsys := opts.FS
	if fsys == nil {
		fsys = fsutil.OSFileSystem{}
	}

	s := &Session{
		id:        uuid.New(),
		registry:  registry,
		filename:  opts.Filename,
		dpi:       dpi,
		show:      opts.Show,
		move:      move,
		displayer: displayer,
		fs:        fsys,
	}

	want := NextID(registry)
	monitoring.Logf("Making Figure %d (session %s)", want, s.id)
	fig, created := registry.Open(want, size)
	if !created {
		return nil, &StateMismatchError{Want: want, Active: activeID(registry), Reused: true}
	}
	s.fig = fig

	if err := fig.layout(grid, opts.Share); err != nil {
		s.Close()
		return nil, err
	}
	s.axes = fig.Axes()

	if opts.TightLayoutRect != nil {
		if err := fig.TightLayout(*opts.TightLayoutRect); err != nil {
			s.Close()
			return nil, err
		}
	}

	if registry.Active() != fig {
		mismatch := &StateMismatchError{Want: want, Active: activeID(registry)}
		s.Close()
		return nil, mismatch
	}
	return s, nil
}

// With runs fn inside a new session; see Session.Do.
func With(ctx context.Context, opts Options, fn func(fig *Figure, axes AxesSet) error) error {
	s, err := New(opts)
	if err != nil {
		return err
	}
	return s.Do(ctx, fn)
}

// ID identifies the session in log lines.
func (s *Session) ID() string { return s.id.String() }

// Figure returns the owned figure, nil after Close.
func (s *Session) Figure() *Figure { return s.fig }

// Axes returns the subplots in row-major order, nil after Close.
func (s *Session) Axes() AxesSet { return s.axes }

// Ax returns the only subplot of a 1×1 session, nil otherwise.
func (s *Session) Ax() *Axes { return s.axes.Single() }

// Enter returns the figure and its subplots. Pair it with Exit.
func (s *Session) Enter() (*Figure, AxesSet) { return s.fig, s.axes }

// Do enters the session, runs fn and exits. When fn returns nil the figure
// is saved and/or shown; when fn fails or panics those steps are skipped.
// The figure is released in every case, and fn's error or panic propagates
// unchanged.
func (s *Session) Do(ctx context.Context, fn func(fig *Figure, axes AxesSet) error) error {
	if s.exited || s.fig == nil {
		return ErrSessionClosed
	}
	defer s.Close()
	fig, axes := s.Enter()
	return s.Exit(ctx, fn(fig, axes))
}

// Exit ends the session. A nil cause saves and shows the figure first; a
// non-nil cause is returned as is. The figure is released either way. Exiting
// an already exited or closed session with a nil cause returns
// ErrSessionClosed.
func (s *Session) Exit(ctx context.Context, cause error) error {
	defer s.Close()
	if cause != nil {
		s.exited = true
		return cause
	}
	if s.exited || s.fig == nil {
		return ErrSessionClosed
	}
	s.exited = true
	return s.finish(ctx)
}

func (s *Session) finish(ctx context.Context) error {
	fig := s.fig
	if s.filename != "" {
		if err := fig.Save(s.fs, s.filename, s.dpi); err != nil {
			return fmt.Errorf("save figure %d: %w", fig.ID(), err)
		}
		monitoring.Logf("Saved figure %d to %s", fig.ID(), s.filename)
	}

	if s.show {
		frame := display.Frame{Title: fig.Title(), Image: fig.Image(ScreenDPI)}
		if s.move {
			frame.OnOpen = func(w display.Window) {
				if err := display.PlaceWindow(w); err != nil {
					monitoring.Logf("figure %d: window placement skipped: %v", fig.ID(), err)
				}
			}
		}
		if err := s.displayer.Show(ctx, frame); err != nil {
			return fmt.Errorf("show figure %d: %w", fig.ID(), err)
		}
	}
	return nil
}

// Close releases the figure from the registry. It is idempotent and never
// fails; it returns an error only to satisfy io.Closer.
func (s *Session) Close() error {
	if s.fig == nil {
		return nil
	}
	s.registry.Close(s.fig.ID())
	s.fig = nil
	s.axes = nil
	return nil
}
