// Package wikiwho fetches authorship data from the WikiWho API.
package wikiwho

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Drolfothesgnir/whocolor/authorship"
)

var (
	ErrNotFound = errors.New("article or revision unknown to wikiwho")
	ErrUpstream = errors.New("wikiwho api failure")
)

// Client is a WikiWho API client.
type Client struct {
	http *http.Client

	// apiURL is the base URL template with a single %s verb for the language,
	// e.g. "https://wikiwho-api.wmcloud.org/%s/api/v1.0.0-beta".
	apiURL string
}

// NewClient creates a client.
func NewClient(apiURL string, timeout time.Duration) *Client {
	return &Client{
		http:   &http.Client{Timeout: timeout},
		apiURL: apiURL,
	}
}

type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

func (e envelope) err() error {
	if e.Success != nil && !*e.Success {
		return fmt.Errorf("%w: %s", ErrNotFound, e.Message)
	}
	return nil
}

// get requests path relative to the language base URL and decodes the response into dst.
func (c *Client) get(ctx context.Context, lang, path string, query url.Values, dst any) error {
	endpoint := fmt.Sprintf(c.apiURL, lang) + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: status %d", ErrNotFound, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: unexpected status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", ErrUpstream, err)
	}

	return nil
}

type revisionsResponse struct {
	envelope
	Revisions []struct {
		ID        int64     `json:"id"`
		Timestamp time.Time `json:"timestamp"`
		Editor    string    `json:"editor"`
	} `json:"revisions"`
}

// Revisions returns the ordered revision history of the article with parents set.
// pageID takes precedence over title.
func (c *Client) Revisions(ctx context.Context, lang string, pageID int64, title string) ([]authorship.Revision, error) {
	var path string
	switch {
	case pageID > 0:
		path = "/rev_ids/page_id/" + strconv.FormatInt(pageID, 10) + "/"
	case title != "":
		path = "/rev_ids/" + url.PathEscape(title) + "/"
	default:
		return nil, errors.New("either page id or title must be provided")
	}

	query := url.Values{
		"editor":    {"true"},
		"timestamp": {"true"},
	}

	var resp revisionsResponse
	if err := c.get(ctx, lang, path, query, &resp); err != nil {
		return nil, err
	}

	if err := resp.err(); err != nil {
		return nil, err
	}

	if len(resp.Revisions) == 0 {
		return nil, fmt.Errorf("%w: empty revision history", ErrNotFound)
	}

	history := make([]authorship.Revision, len(resp.Revisions))
	var parent int64
	for i, rev := range resp.Revisions {
		history[i] = authorship.Revision{
			ID:        rev.ID,
			Timestamp: rev.Timestamp,
			ParentID:  parent,
			Editor:    rev.Editor,
		}
		parent = rev.ID
	}

	return history, nil
}

type contentResponse struct {
	envelope
	Revisions []map[string]struct {
		Tokens []struct {
			Str         string  `json:"str"`
			OriginRevID int64   `json:"o_rev_id"`
			Editor      string  `json:"editor"`
			In          []int64 `json:"in"`
			Out         []int64 `json:"out"`
		} `json:"tokens"`
	} `json:"revisions"`
}

// Tokens returns the ordered tokens of the revision.
func (c *Client) Tokens(ctx context.Context, lang string, revID int64) ([]authorship.Token, error) {
	if revID <= 0 {
		return nil, fmt.Errorf("invalid revision id %d", revID)
	}

	path := "/rev_content/rev_id/" + strconv.FormatInt(revID, 10) + "/"
	query := url.Values{
		"o_rev_id": {"true"},
		"editor":   {"true"},
		"token_id": {"false"},
		"out":      {"true"},
		"in":       {"true"},
	}

	var resp contentResponse
	if err := c.get(ctx, lang, path, query, &resp); err != nil {
		return nil, err
	}

	if err := resp.err(); err != nil {
		return nil, err
	}

	if len(resp.Revisions) == 0 {
		return nil, fmt.Errorf("%w: revision %d has no content", ErrNotFound, revID)
	}

	content, ok := resp.Revisions[0][strconv.FormatInt(revID, 10)]
	if !ok {
		return nil, fmt.Errorf("%w: revision %d missing in response", ErrUpstream, revID)
	}

	tokens := make([]authorship.Token, len(content.Tokens))
	for i, t := range content.Tokens {
		tokens[i] = authorship.Token{
			Str:         t.Str,
			Editor:      t.Editor,
			OriginRevID: t.OriginRevID,
			In:          t.In,
			Out:         t.Out,
		}
	}

	return tokens, nil
}
