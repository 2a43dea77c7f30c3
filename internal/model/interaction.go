package model

type Action string

const (
	ActionLike      Action = "like"
	ActionDislike   Action = "dislike"
	ActionSuperlike Action = "superlike"
	ActionSkip      Action = "skip"
	ActionNone      Action = ""
)

func (a Action) Valid() bool {
	switch a {
	case ActionLike, ActionDislike, ActionSuperlike, ActionSkip:
		return true
	}
	return false
}

// Interaction is a single resolved swipe. Timestamp is unix millis,
// used only for ordering and trimming.
type Interaction struct {
	ItemID    string `json:"itemId"`
	Action    Action `json:"action"`
	Timestamp int64  `json:"timestamp"`
}

const MaxHistoryLen = 1000

// History keeps interactions most-recent-first.
type History []Interaction

// Push prepends an interaction and evicts the oldest entries past
// MaxHistoryLen. The receiver is left untouched.
func (h History) Push(in Interaction) History {
	out := make(History, 0, len(h)+1)
	out = append(out, in)
	out = append(out, h...)
	if len(out) > MaxHistoryLen {
		out = out[:MaxHistoryLen]
	}
	return out
}

func (h History) Clone() History {
	out := make(History, len(h))
	copy(out, h)
	return out
}
