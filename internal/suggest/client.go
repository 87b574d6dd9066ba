// ABOUTME: Read-only HTTP client for a wger-style exercise suggestion API.
// ABOUTME: Classifies failures into unavailable, server, and malformed classes.
package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the public wger API.
const DefaultBaseURL = "https://wger.de/api/v2"

// DefaultLanguage selects English results.
const DefaultLanguage = 2

// requestTimeout bounds connect plus read for one fetch. Timed-out
// requests fail and are never retried automatically.
const requestTimeout = 30 * time.Second

// The three user-facing failure classes for the suggestion source.
var (
	// ErrUnavailable: the service could not be reached at all.
	ErrUnavailable = errors.New("exercise service unavailable")
	// ErrServer: the service answered with a non-2xx status.
	ErrServer = errors.New("exercise service error")
	// ErrMalformed: the response body could not be decoded.
	ErrMalformed = errors.New("exercise service sent a malformed response")
)

// UserMessage maps a suggestion fetch error to the message shown to the
// user. Unclassified errors get a generic message.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrUnavailable):
		return "Could not reach the exercise service. Check your connection."
	case errors.Is(err, ErrServer):
		return "The exercise service returned an error. Try again later."
	case errors.Is(err, ErrMalformed):
		return "The exercise service sent an unreadable response."
	default:
		return "Could not load workout suggestions."
	}
}

// Query selects a page of suggestions. Zero values mean "no filter";
// Limit 0 uses the service default page size.
type Query struct {
	Limit     int
	Offset    int
	Category  int
	Muscle    int
	Equipment int
	Search    string
}

// cacheKey is a stable string identity for the query, shared by the
// session cache and in-flight deduplication.
func (q Query) cacheKey(language int) string {
	return fmt.Sprintf("l%d:n%d:o%d:c%d:m%d:e%d:s%s",
		language, q.Limit, q.Offset, q.Category, q.Muscle, q.Equipment, q.Search)
}

// Fetcher is anything that can produce suggestions for a query. The
// Client and its session cache both implement it.
type Fetcher interface {
	Suggestions(ctx context.Context, q Query) ([]Suggestion, error)
}

// Client fetches workout suggestions over HTTP GET. Responses are never
// persisted; each session refetches.
type Client struct {
	baseURL    string
	language   int
	httpClient *http.Client
}

// NewClient creates a suggestion client for the given API base URL and
// language id. An empty baseURL uses the public wger API; language 0
// uses English.
func NewClient(baseURL string, language int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if language == 0 {
		language = DefaultLanguage
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   language,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// pageResponse mirrors the service's pagination envelope.
type pageResponse struct {
	Count    int            `json:"count"`
	Next     *string        `json:"next"`
	Previous *string        `json:"previous"`
	Results  []exerciseInfo `json:"results"`
}

// exerciseInfo mirrors one exercise object. Description carries HTML.
type exerciseInfo struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Category         namedObject     `json:"category"`
	Muscles          []namedObject   `json:"muscles"`
	MusclesSecondary []namedObject   `json:"muscles_secondary"`
	Equipment        []namedObject   `json:"equipment"`
	Images           []exerciseImage `json:"images"`
}

type namedObject struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type exerciseImage struct {
	Image  string `json:"image"`
	IsMain bool   `json:"is_main"`
}

// Suggestions fetches one page of exercise suggestions and translates
// them to flat values. Failures map onto the three error classes and are
// never retried here.
func (c *Client) Suggestions(ctx context.Context, q Query) ([]Suggestion, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(q), nil)
	if err != nil {
		return nil, fmt.Errorf("build suggestion request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrServer, resp.StatusCode)
	}

	var page pageResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	suggestions := make([]Suggestion, 0, len(page.Results))
	for _, e := range page.Results {
		suggestions = append(suggestions, toSuggestion(e))
	}
	return suggestions, nil
}

func (c *Client) requestURL(q Query) string {
	params := url.Values{}
	params.Set("language", strconv.Itoa(c.language))
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		params.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Category > 0 {
		params.Set("category", strconv.Itoa(q.Category))
	}
	if q.Muscle > 0 {
		params.Set("muscles", strconv.Itoa(q.Muscle))
	}
	if q.Equipment > 0 {
		params.Set("equipment", strconv.Itoa(q.Equipment))
	}
	if q.Search != "" {
		params.Set("name", q.Search)
	}
	return c.baseURL + "/exerciseinfo/?" + params.Encode()
}
