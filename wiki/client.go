// Package wiki talks to the MediaWiki action API: it fetches revision markup,
// renders markup into HTML and resolves editor names.
package wiki

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

// DefaultBatchSize is the number of user ids MediaWiki accepts per query for anonymous clients.
const DefaultBatchSize = 50

var (
	ErrNotFound = errors.New("page or revision not found")
	ErrUpstream = errors.New("wikipedia api failure")
)

// APIError is the error object returned by the action API.
type APIError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

func (e *APIError) Error() string {
	return e.Code + ": " + e.Info
}

// Client is a MediaWiki action API client.
type Client struct {
	http *http.Client

	// apiURL is the endpoint template with a single %s verb for the language.
	apiURL string

	batchSize int
}

// NewClient creates a client. apiURL must contain a %s verb for the language,
// e.g. "https://%s.wikipedia.org/w/api.php".
func NewClient(apiURL string, timeout time.Duration, batchSize int) *Client {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &Client{
		http:      &http.Client{Timeout: timeout},
		apiURL:    apiURL,
		batchSize: batchSize,
	}
}

func (c *Client) endpoint(lang string) string {
	return fmt.Sprintf(c.apiURL, lang)
}

// post sends the form to the API and decodes the JSON response into dst.
func (c *Client) post(ctx context.Context, lang string, form url.Values, dst any) error {
	form.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(lang), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", ErrUpstream, err)
	}

	return nil
}

// PageQuery selects a page by id or by title, and optionally a revision.
// PageID takes precedence over Title. Zero RevID means the latest revision.
type PageQuery struct {
	Title  string
	PageID int64
	RevID  int64
}

// Revision is the markup of a single page revision.
type Revision struct {
	PageID    int64
	Namespace int
	Title     string
	RevID     int64
	Text      string
}

type revisionsResponse struct {
	Error *APIError `json:"error"`
	Query struct {
		Pages map[string]struct {
			PageID    int64   `json:"pageid"`
			Namespace int     `json:"ns"`
			Title     string  `json:"title"`
			Missing   *string `json:"missing"`
			Invalid   *string `json:"invalid"`
			Revisions []struct {
				RevID   int64  `json:"revid"`
				Content string `json:"*"`
			} `json:"revisions"`
		} `json:"pages"`
	} `json:"query"`
}

// RevisionText returns the markup of the requested revision,
// or of the latest one if q.RevID is zero.
func (c *Client) RevisionText(ctx context.Context, lang string, q PageQuery) (*Revision, error) {
	form := url.Values{
		"action":  {"query"},
		"prop":    {"revisions"},
		"rvprop":  {"content|ids"},
		"rvlimit": {"1"},
	}

	switch {
	case q.PageID > 0:
		form.Set("pageids", strconv.FormatInt(q.PageID, 10))
	case q.Title != "":
		form.Set("titles", q.Title)
	default:
		return nil, errors.New("either page id or title must be provided")
	}

	if q.RevID > 0 {
		form.Set("rvstartid", strconv.FormatInt(q.RevID, 10))
	}

	var resp revisionsResponse
	if err := c.post(ctx, lang, form, &resp); err != nil {
		return nil, err
	}

	if resp.Error != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, resp.Error)
	}

	if _, ok := resp.Query.Pages["-1"]; ok {
		return nil, ErrNotFound
	}

	for id, page := range resp.Query.Pages {
		if page.Missing != nil || page.Invalid != nil || len(page.Revisions) == 0 {
			return nil, ErrNotFound
		}

		pageID := page.PageID
		if pageID == 0 {
			pageID, _ = strconv.ParseInt(id, 10, 64)
		}

		return &Revision{
			PageID:    pageID,
			Namespace: page.Namespace,
			Title:     page.Title,
			RevID:     page.Revisions[0].RevID,
			Text:      page.Revisions[0].Content,
		}, nil
	}

	return nil, ErrNotFound
}

type parseResponse struct {
	Error *APIError `json:"error"`
	Parse struct {
		Text struct {
			Content string `json:"*"`
		} `json:"text"`
	} `json:"parse"`
}

// RenderHTML converts markup into HTML in the context of the page title.
func (c *Client) RenderHTML(ctx context.Context, lang, title, markup string) (string, error) {
	if title == "" {
		return "", errors.New("title is required to render markup")
	}

	form := url.Values{
		"action": {"parse"},
		"title":  {title},
		"text":   {markup},
		"prop":   {"text"},
	}

	var resp parseResponse
	if err := c.post(ctx, lang, form, &resp); err != nil {
		return "", err
	}

	if resp.Error != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, resp.Error)
	}

	return resp.Parse.Text.Content, nil
}

type usersResponse struct {
	Error *APIError `json:"error"`
	Query struct {
		Users []struct {
			UserID  int64   `json:"userid"`
			Name    string  `json:"name"`
			Missing *string `json:"missing"`
		} `json:"users"`
	} `json:"query"`
}

// EditorNames resolves numeric editor ids into user names, querying them in batches.
// Ids unknown to the wiki are absent from the result.
func (c *Client) EditorNames(ctx context.Context, lang string, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))

	for from := 0; from < len(ids); from += c.batchSize {
		to := min(from+c.batchSize, len(ids))

		form := url.Values{
			"action":    {"query"},
			"list":      {"users"},
			"ususerids": {strings.Join(ids[from:to], "|")},
		}

		var resp usersResponse
		if err := c.post(ctx, lang, form, &resp); err != nil {
			return nil, err
		}

		if resp.Error != nil {
			return nil, fmt.Errorf("%w: %w", ErrUpstream, resp.Error)
		}

		for _, u := range resp.Query.Users {
			if u.Missing != nil || u.Name == "" {
				continue
			}
			names[strconv.FormatInt(u.UserID, 10)] = u.Name
		}
	}

	return names, nil
}
