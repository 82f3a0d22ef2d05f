package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/postview/internal/client/repositories/kv"
	"github.com/dmitrijs2005/postview/internal/logging"
)

// Theme is the display preference, stored as its string value.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ErrUnknownTheme is returned for values other than light and dark.
var ErrUnknownTheme = errors.New("unknown theme")

// ParseTheme accepts exactly "light" or "dark".
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(s); t {
	case ThemeLight, ThemeDark:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
	}
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ThemeState is the observable theme: the current value and whether the
// stored preference is still loading.
type ThemeState struct {
	Theme     Theme
	IsLoading bool
}

// ThemeService holds the display preference. It starts as light and loading
// until Load completes.
type ThemeService struct {
	repo   kv.Repository
	logger logging.Logger

	mu    sync.RWMutex
	state ThemeState
	obs   observers[ThemeState]
}

// NewThemeService returns a service showing light until Load runs.
func NewThemeService(repo kv.Repository, logger logging.Logger) *ThemeService {
	return &ThemeService{
		repo:   repo,
		logger: logger.With("component", "theme"),
		state:  ThemeState{Theme: ThemeLight, IsLoading: true},
	}
}

// State returns the current state.
func (s *ThemeService) State() ThemeState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Theme returns the current theme.
func (s *ThemeService) Theme() Theme {
	return s.State().Theme
}

// Subscribe registers fn to be called after every change.
func (s *ThemeService) Subscribe(fn func(ThemeState)) (unsubscribe func()) {
	return s.obs.subscribe(fn)
}

func (s *ThemeService) update(fn func(*ThemeState)) {
	s.mu.Lock()
	fn(&s.state)
	st := s.state
	s.mu.Unlock()

	s.obs.notify(st)
}

// Load applies the stored preference. Missing or unknown values and storage
// errors keep the current theme.
func (s *ThemeService) Load(ctx context.Context) {
	saved, ok, err := s.repo.Get(ctx, ThemeKey)
	if err != nil {
		s.logger.Error(ctx, "error loading theme", "err", err)
	}

	theme, perr := ParseTheme(saved)
	if ok && perr != nil {
		s.logger.Warn(ctx, "ignoring stored theme", "err", perr)
	}

	s.update(func(st *ThemeState) {
		if err == nil && ok && perr == nil {
			st.Theme = theme
		}
		st.IsLoading = false
	})
}

// SetTheme persists t and then applies it. A storage failure is logged and
// leaves the theme unchanged.
func (s *ThemeService) SetTheme(ctx context.Context, t Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return err
	}

	if err := s.repo.Set(ctx, ThemeKey, string(t)); err != nil {
		s.logger.Error(ctx, "error saving theme", "err", err)
		return nil
	}

	s.update(func(st *ThemeState) { st.Theme = t })
	return nil
}

// Toggle switches between light and dark.
func (s *ThemeService) Toggle(ctx context.Context) error {
	return s.SetTheme(ctx, s.Theme().Opposite())
}
