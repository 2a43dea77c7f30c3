package usecase_session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/indicai/core/internal/model"
	usecase_profile "github.com/indicai/core/internal/usecase/profile"
	usecase_quota "github.com/indicai/core/internal/usecase/quota"
)

var (
	ErrUnableToLoad    = errors.New("unable to load session state")
	ErrUnableToPersist = errors.New("unable to persist session state")
	ErrInvalidAction   = errors.New("invalid action")
)

// Storage keys are fixed; the session is single-device state.
const (
	keyPreferences  = "indicai_user_preferences"
	keyHistory      = "indicai_user_history"
	keyDailyChoices = "indicai_daily_choices"
)

//go:generate mockery --name=Store --output=./mocks/session/store --filename=store.go
type Store interface {
	Read(ctx context.Context, key string) (value string, found bool, err error)
	Write(ctx context.Context, key string, value string) error
}

// Session holds the user's taste profile, interaction history and
// daily quota, synced to the store after every transition. Stored
// state that fails to parse is dropped back to its default instead of
// failing startup.
//
// One instance is shared across concurrent HTTP handlers; mu keeps
// the quota check-then-record and the profile/history folds atomic.
type Session struct {
	store Store

	mu      sync.Mutex
	profile model.TasteProfile
	history model.History
	quota   *usecase_quota.Tracker

	now    func() time.Time
	logger *slog.Logger
}

type Option func(*Session)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

func Load(ctx context.Context, store Store, opts ...Option) (*Session, error) {
	s := &Session{
		store:  store,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.readInto(ctx, keyPreferences, &s.profile); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnableToLoad, err)
	}
	if err := s.readInto(ctx, keyHistory, &s.history); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnableToLoad, err)
	}

	var choices model.DailyChoices
	if err := s.readInto(ctx, keyDailyChoices, &choices); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnableToLoad, err)
	}
	s.quota = usecase_quota.New(choices, usecase_quota.WithClock(s.now))

	return s, nil
}

// readInto leaves dst at its zero value on a missing key or corrupt
// payload. Only a failing store is an error.
func (s *Session) readInto(ctx context.Context, key string, dst any) error {
	raw, found, err := s.store.Read(ctx, key)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.logger.Warn("dropping corrupt stored state",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
	return nil
}

// Swipe records one resolved interaction: it consumes quota, appends
// to history, folds the item's genres into the profile and persists
// all three before returning. Returns false without mutating anything
// once the daily quota is exhausted. Skips consume quota like any
// other action.
func (s *Session) Swipe(ctx context.Context, item model.MediaItem, action model.Action) (bool, error) {
	if !action.Valid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.quota.RecordChoice(item.ID) {
		return false, nil
	}

	in := model.Interaction{
		ItemID:    item.ID,
		Action:    action,
		Timestamp: s.now().UnixMilli(),
	}
	s.history = s.history.Push(in)
	s.profile = usecase_profile.Apply(s.profile, in, []model.MediaItem{item})

	if err := s.persist(ctx); err != nil {
		return true, fmt.Errorf("%w: %w", ErrUnableToPersist, err)
	}
	return true, nil
}

func (s *Session) persist(ctx context.Context) error {
	writes := []struct {
		key   string
		value any
	}{
		{keyPreferences, s.profile},
		{keyHistory, s.history},
		{keyDailyChoices, s.quota.State()},
	}

	var errs []error
	for _, w := range writes {
		raw, err := json.Marshal(w.value)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := s.store.Write(ctx, w.key, string(raw)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Session) Profile() model.TasteProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.profile.Clone()
}

func (s *Session) History() model.History {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.history.Clone()
}

func (s *Session) Stats() usecase_profile.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return usecase_profile.BuildStats(s.history)
}

func (s *Session) ChosenIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.quota.ChosenIDs()
}

func (s *Session) RemainingChoices() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.quota.Remaining()
}

func (s *Session) IsDailyLimitReached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.quota.IsExhausted()
}
