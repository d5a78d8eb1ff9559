// Package whocolor assembles the authorship annotation of a wiki revision:
// it fetches the markup and the attribution data, scores the tokens,
// annotates the markup and renders it into HTML.
package whocolor

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/Drolfothesgnir/whocolor/authorship"
	"github.com/Drolfothesgnir/whocolor/markup"
	"github.com/Drolfothesgnir/whocolor/wiki"
	"github.com/Drolfothesgnir/whocolor/wikiwho"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog"
)

// ErrNotFound is returned when the page or the revision is unknown to either provider.
var ErrNotFound = errors.New("article not found")

// TextProvider serves revision markup, renders markup and resolves editor names.
type TextProvider interface {
	RevisionText(ctx context.Context, lang string, q wiki.PageQuery) (*wiki.Revision, error)
	RenderHTML(ctx context.Context, lang, title, markup string) (string, error)
	EditorNames(ctx context.Context, lang string, ids []string) (map[string]string, error)
}

// AttributionProvider serves the revision history and the attributed tokens of a revision.
type AttributionProvider interface {
	Revisions(ctx context.Context, lang string, pageID int64, title string) ([]authorship.Revision, error)
	Tokens(ctx context.Context, lang string, revID int64) ([]authorship.Token, error)
}

// Handler runs the annotation pipeline.
type Handler struct {
	text        TextProvider
	attribution AttributionProvider
	log         zerolog.Logger
	now         func() time.Time
}

// Option configures the [Handler].
type Option func(*Handler)

// WithLogger sets the logger of the handler and of the markup scanner.
func WithLogger(l zerolog.Logger) Option {
	return func(h *Handler) {
		h.log = l
	}
}

// WithClock overrides the clock used to compute token ages.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		h.now = now
	}
}

func NewHandler(text TextProvider, attribution AttributionProvider, opts ...Option) *Handler {
	h := &Handler{
		text:        text,
		attribution: attribution,
		log:         zerolog.Nop(),
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Handle produces the annotated revision requested by req.
func (h *Handler) Handle(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log := h.log.With().
		Str("lang", req.Lang).
		Str("title", req.Title).
		Int64("page_id", req.PageID).
		Int64("rev_id", req.RevID).
		Logger()

	rev, err := h.text.RevisionText(ctx, req.Lang, wiki.PageQuery{
		Title:  req.Title,
		PageID: req.PageID,
		RevID:  req.RevID,
	})
	if err != nil {
		return nil, wrapProviderError("failed to get revision text", err)
	}

	history, err := h.attribution.Revisions(ctx, req.Lang, rev.PageID, rev.Title)
	if err != nil {
		return nil, wrapProviderError("failed to get revision history", err)
	}

	index := authorship.NewRevisionIndex(history)

	names, err := h.editorNames(ctx, req.Lang, history)
	if err != nil {
		return nil, fmt.Errorf("failed to get editor names: %w", err)
	}

	tokens, err := h.attribution.Tokens(ctx, req.Lang, rev.RevID)
	if err != nil {
		return nil, wrapProviderError("failed to get revision tokens", err)
	}

	if err := h.describeTokens(tokens, index, names); err != nil {
		return nil, err
	}

	biggest, err := authorship.ScoreTokens(tokens, index)
	if err != nil {
		return nil, err
	}

	annotated, err := markup.Annotate(rev.Text, tokens, markup.WithLogger(log))
	if err != nil {
		return nil, err
	}

	html, err := h.text.RenderHTML(ctx, req.Lang, rev.Title, annotated.Text)
	if err != nil {
		return nil, wrapProviderError("failed to render annotated markup", err)
	}

	log.Info().
		Int("tokens", len(tokens)).
		Int("dropped", annotated.Stats.DroppedTokens).
		Int("unresolved", annotated.Stats.UnresolvedRegions).
		Int("biggest_conflict_score", biggest).
		Msg("revision annotated")

	compact := make([]CompactToken, len(tokens))
	for i := range tokens {
		compact[i] = newCompactToken(tokens[i])
	}

	return &Result{
		PageID:               rev.PageID,
		RevID:                rev.RevID,
		Title:                rev.Title,
		Lang:                 req.Lang,
		ExtendedHTML:         html,
		PresentEditors:       annotated.Editors,
		Revisions:            revisionEntries(index, names),
		Tokens:               compact,
		BiggestConflictScore: biggest,
		Stats:                annotated.Stats,
	}, nil
}

// editorNames resolves the names of the registered editors of the history.
func (h *Handler) editorNames(ctx context.Context, lang string, history []authorship.Revision) (map[string]string, error) {
	ids := mapset.NewThreadUnsafeSet[string]()
	for _, rev := range history {
		if rev.Editor != "" && !authorship.IsAnonymous(rev.Editor) {
			ids.Add(rev.Editor)
		}
	}

	if ids.Cardinality() == 0 {
		return map[string]string{}, nil
	}

	sorted := ids.ToSlice()
	slices.Sort(sorted)

	return h.text.EditorNames(ctx, lang, sorted)
}

// describeTokens sets display names, class names and ages of the tokens.
func (h *Handler) describeTokens(tokens []authorship.Token, index authorship.RevisionIndex, names map[string]string) error {
	now := h.now()

	for i := range tokens {
		tok := &tokens[i]

		origin, ok := index[tok.OriginRevID]
		if !ok {
			return authorship.NewContractError(
				authorship.IssueUnknownRevision,
				i,
				fmt.Errorf("%w: %d", authorship.ErrUnknownRevision, tok.OriginRevID),
			)
		}

		tok.EditorName = authorship.DisplayName(tok.Editor, names)
		tok.ClassName = authorship.ClassName(tok.Editor)
		tok.Age = now.Sub(origin.Timestamp).Seconds()
	}

	return nil
}

func revisionEntries(index authorship.RevisionIndex, names map[string]string) map[int64]RevisionEntry {
	entries := make(map[int64]RevisionEntry, len(index))
	for id, rev := range index {
		entries[id] = RevisionEntry{
			Timestamp:  rev.Timestamp,
			ParentID:   rev.ParentID,
			ClassName:  authorship.ClassName(rev.Editor),
			EditorName: authorship.DisplayName(rev.Editor, names),
		}
	}
	return entries
}

func wrapProviderError(msg string, err error) error {
	if errors.Is(err, wiki.ErrNotFound) || errors.Is(err, wikiwho.ErrNotFound) {
		return fmt.Errorf("%s: %w: %w", msg, ErrNotFound, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
