package whocolor

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidRequest = errors.New("either page id or title must be provided")

// Request selects the article revision to annotate.
type Request struct {
	Lang   string
	Title  string
	PageID int64

	// RevID is the revision to annotate, zero means the latest one.
	RevID int64
}

// Validate checks that the request addresses a page.
func (r Request) Validate() error {
	if r.Lang == "" {
		return errors.New("language is required")
	}

	if r.PageID <= 0 && strings.TrimSpace(r.Title) == "" {
		return ErrInvalidRequest
	}

	return nil
}

// CacheKey identifies the request among cached results.
// Page ids take precedence over titles, same as in the providers.
func (r Request) CacheKey() string {
	if r.PageID > 0 {
		return fmt.Sprintf("%s:page_id:%d:rev:%d", r.Lang, r.PageID, r.RevID)
	}
	return fmt.Sprintf("%s:title:%s:rev:%d", r.Lang, strings.ReplaceAll(strings.TrimSpace(r.Title), " ", "_"), r.RevID)
}
