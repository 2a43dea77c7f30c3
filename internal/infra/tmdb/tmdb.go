package infra_tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/indicai/core/internal/config"
	"github.com/indicai/core/internal/model"
)

var (
	ErrRequestFailed = errors.New("tmdb request failed")
	ErrBadStatus     = errors.New("tmdb returned non-200 status")
)

const (
	defaultTimeout = 10 * time.Second
	imageBaseURL   = "https://image.tmdb.org/t/p/w500"
)

// Genre id tables, pt-BR labels. TMDB splits them per media type.
var movieGenreLabels = map[int]string{
	28:    "Ação",
	12:    "Aventura",
	16:    "Animação",
	35:    "Comédia",
	80:    "Crime",
	99:    "Documentário",
	18:    "Drama",
	10751: "Família",
	14:    "Fantasia",
	36:    "História",
	27:    "Terror",
	10402: "Música",
	9648:  "Mistério",
	10749: "Romance",
	878:   "Ficção Científica",
	10770: "Cinema TV",
	53:    "Thriller",
	10752: "Guerra",
	37:    "Faroeste",
}

var tvGenreLabels = map[int]string{
	10759: "Ação",
	16:    "Animação",
	35:    "Comédia",
	80:    "Crime",
	99:    "Documentário",
	18:    "Drama",
	10751: "Família",
	10762: "Infantil",
	9648:  "Mistério",
	10764: "Reality",
	10765: "Ficção Científica",
	10766: "Novela",
	10768: "Guerra",
	37:    "Faroeste",
}

// Client fetches popular movies and series from the TMDB REST API and
// maps them onto media cards.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	language   string

	logger *slog.Logger
}

type ClientOption func(*Client)

func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(cfg config.TMDB, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		language:   cfg.Language,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type listResponseDTO struct {
	Results []entryDTO `json:"results"`
}

type entryDTO struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	VoteAverage  float64 `json:"vote_average"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	GenreIDs     []int   `json:"genre_ids"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
}

// FetchPopularContent returns the current popular movies and series in
// a single merged batch, movies first. One endpoint failing still
// yields the other's batch; only both failing is an error.
func (c *Client) FetchPopularContent(ctx context.Context) ([]model.MediaItem, error) {
	movies, movieErr := c.fetchPopular(ctx, "/movie/popular", model.KindMovie, movieGenreLabels)
	if movieErr != nil {
		c.logger.Warn("popular movies fetch failed", slog.String("error", movieErr.Error()))
	}

	series, seriesErr := c.fetchPopular(ctx, "/tv/popular", model.KindSeries, tvGenreLabels)
	if seriesErr != nil {
		c.logger.Warn("popular series fetch failed", slog.String("error", seriesErr.Error()))
	}

	if movieErr != nil && seriesErr != nil {
		return nil, errors.Join(movieErr, seriesErr)
	}

	return append(movies, series...), nil
}

func (c *Client) fetchPopular(ctx context.Context, path string, kind model.MediaKind, genreLabels map[int]string) ([]model.MediaItem, error) {
	endpoint := fmt.Sprintf("%s%s?api_key=%s&language=%s&page=1",
		c.baseURL, path, url.QueryEscape(c.apiKey), url.QueryEscape(c.language))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s %d", ErrBadStatus, path, resp.StatusCode)
	}

	var list listResponseDTO
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	items := make([]model.MediaItem, 0, len(list.Results))
	for _, entry := range list.Results {
		items = append(items, entry.toDomain(kind, genreLabels))
	}
	return items, nil
}

func (e entryDTO) toDomain(kind model.MediaKind, genreLabels map[int]string) model.MediaItem {
	title := e.Title
	if title == "" {
		title = e.Name
	}

	genres := make([]string, 0, len(e.GenreIDs))
	for _, id := range e.GenreIDs {
		if label, ok := genreLabels[id]; ok {
			genres = append(genres, label)
		}
	}

	var imageLink string
	if e.PosterPath != "" {
		imageLink = imageBaseURL + e.PosterPath
	}

	return model.MediaItem{
		ID:          strconv.Itoa(e.ID),
		Kind:        kind,
		Title:       title,
		Rating:      e.VoteAverage,
		Year:        parseYear(e.ReleaseDate, e.FirstAirDate),
		Genres:      genres,
		Description: e.Overview,
		ImageLink:   imageLink,
	}
}

func parseYear(dates ...string) int {
	for _, d := range dates {
		if len(d) < 4 {
			continue
		}
		if year, err := strconv.Atoi(d[:4]); err == nil {
			return year
		}
	}
	return 0
}
