package infra_gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/indicai/core/internal/config"
	"github.com/indicai/core/internal/model"
)

var (
	ErrRequestFailed = errors.New("gemini request failed")
	ErrBadStatus     = errors.New("gemini returned non-200 status")
	ErrEmptyReply    = errors.New("gemini returned no usable reply")
)

const (
	defaultTimeout = 20 * time.Second

	// The model only reorders ids from the supplied pool, so a short
	// history window is enough signal.
	historyWindow = 20
	maxPicks      = 20
)

// Client asks a Gemini model to pick and order the best-fitting items
// out of a candidate pool, given the user's genre weights and recent
// swipes. The reply is a JSON array of item ids.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string

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

func New(cfg config.Gemini, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type generateRequestDTO struct {
	Contents []contentDTO `json:"contents"`
}

type contentDTO struct {
	Parts []partDTO `json:"parts"`
}

type partDTO struct {
	Text string `json:"text"`
}

type generateResponseDTO struct {
	Candidates []struct {
		Content contentDTO `json:"content"`
	} `json:"candidates"`
}

func (c *Client) FetchPersonalizedSuggestions(
	ctx context.Context,
	genres []string,
	history model.History,
	pool []model.MediaItem,
) ([]model.MediaItem, error) {
	if len(pool) == 0 {
		return []model.MediaItem{}, nil
	}

	prompt := buildPrompt(genres, history, pool)

	body, err := json.Marshal(generateRequestDTO{
		Contents: []contentDTO{{Parts: []partDTO{{Text: prompt}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	var reply generateResponseDTO
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	ids, err := extractIDs(reply)
	if err != nil {
		return nil, err
	}

	return resolve(ids, pool), nil
}

func buildPrompt(genres []string, history model.History, pool []model.MediaItem) string {
	var b strings.Builder

	b.WriteString("You rank media items for a swipe-based discovery app.\n")
	b.WriteString("User genre preferences, strongest first: ")
	if len(genres) == 0 {
		b.WriteString("(none yet, cold start)")
	} else {
		b.WriteString(strings.Join(genres, ", "))
	}
	b.WriteString("\n\nRecent swipes (newest first):\n")

	window := history
	if len(window) > historyWindow {
		window = window[:historyWindow]
	}
	if len(window) == 0 {
		b.WriteString("(none)\n")
	}
	for _, in := range window {
		fmt.Fprintf(&b, "- item %s: %s\n", in.ItemID, in.Action)
	}

	b.WriteString("\nCandidate pool:\n")
	for _, item := range pool {
		fmt.Fprintf(&b, "- id=%s | %s | %s | genres: %s | rating %.1f\n",
			item.ID, item.Kind, item.Title, strings.Join(item.Genres, "/"), item.Rating)
	}

	fmt.Fprintf(&b, "\nReply with ONLY a JSON array of up to %d ids from the pool, best match first. Example: [\"123\",\"456\"]\n", maxPicks)
	return b.String()
}

// extractIDs tolerates markdown fences and prose around the array.
func extractIDs(reply generateResponseDTO) ([]string, error) {
	if len(reply.Candidates) == 0 || len(reply.Candidates[0].Content.Parts) == 0 {
		return nil, ErrEmptyReply
	}
	text := reply.Candidates[0].Content.Parts[0].Text

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("%w: no JSON array in reply", ErrEmptyReply)
	}

	var ids []string
	if err := json.Unmarshal([]byte(text[start:end+1]), &ids); err != nil {
		// Some replies come back as bare numbers.
		var numeric []json.Number
		if err2 := json.Unmarshal([]byte(text[start:end+1]), &numeric); err2 != nil {
			return nil, fmt.Errorf("%w: %w", ErrEmptyReply, err)
		}
		ids = make([]string, len(numeric))
		for i, n := range numeric {
			ids[i] = n.String()
		}
	}
	return ids, nil
}

// resolve maps the reply back onto pool items, keeping the model's
// order and dropping hallucinated ids.
func resolve(ids []string, pool []model.MediaItem) []model.MediaItem {
	byID := make(map[string]model.MediaItem, len(pool))
	for _, item := range pool {
		byID[item.ID] = item
	}

	items := make([]model.MediaItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			items = append(items, item)
		}
		if len(items) == maxPicks {
			break
		}
	}
	return items
}
