package usecase_quota

import (
	"time"

	"github.com/indicai/core/internal/model"
)

const dayLayout = "2006-01-02"

// Tracker owns the daily choice state. It has exactly two transitions:
// the chosen-set filling up to model.DailyChoiceLimit, and the
// day-rollover reset that happens lazily on any access once the stored
// day no longer matches the device-local calendar day.
type Tracker struct {
	state model.DailyChoices
	now   func() time.Time
}

type Option func(*Tracker)

// WithClock overrides the wall clock. Tests pin rollover behavior
// through this.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

func New(state model.DailyChoices, opts ...Option) *Tracker {
	t := &Tracker{
		state: state.Clone(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) currentDay() string {
	return t.now().Format(dayLayout)
}

func (t *Tracker) rollover() {
	if day := t.currentDay(); t.state.Day != day {
		t.state = model.DailyChoices{Day: day}
	}
}

func (t *Tracker) IsExhausted() bool {
	t.rollover()
	return t.state.Count() >= model.DailyChoiceLimit
}

func (t *Tracker) Remaining() int {
	t.rollover()
	remaining := model.DailyChoiceLimit - t.state.Count()
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

// RecordChoice marks an item as acted on today. Returns false when the
// quota is already exhausted. Recording an item twice in one day is a
// no-op that still reports success.
func (t *Tracker) RecordChoice(itemID string) bool {
	t.rollover()
	if t.state.Count() >= model.DailyChoiceLimit {
		return false
	}
	if t.state.Contains(itemID) {
		return true
	}
	t.state.ChosenIDs = append(t.state.ChosenIDs, itemID)
	return true
}

func (t *Tracker) ChosenIDs() []string {
	t.rollover()
	ids := make([]string, len(t.state.ChosenIDs))
	copy(ids, t.state.ChosenIDs)
	return ids
}

func (t *Tracker) State() model.DailyChoices {
	t.rollover()
	return t.state.Clone()
}
