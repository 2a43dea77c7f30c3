package model

type MediaKind string

const (
	KindMovie  MediaKind = "movie"
	KindSeries MediaKind = "series"
	KindBook   MediaKind = "book"
	KindMusic  MediaKind = "music"
)

// MediaItem is an immutable card produced by a content source.
// IDs are provider-scoped strings, never regenerated locally.
type MediaItem struct {
	ID          string
	Kind        MediaKind
	Title       string
	Rating      float64
	Year        int
	Genres      []string
	Cast        []string
	Director    string
	Description string
	ImageLink   string

	// UserRating is set once the user has judged the item.
	// Items carrying a rating are never recommended again.
	UserRating Action
}

func (m MediaItem) Rated() bool {
	return m.UserRating != ActionNone
}
