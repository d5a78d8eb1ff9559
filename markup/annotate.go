// Package markup annotates wiki markup with per-token authorship.
//
// The annotation walks the raw markup in lock-step with the ordered tokens of the
// attribution service and wraps every token of plain prose into a span carrying the
// editor's class name. Wiki constructs listed in the rule table, like templates,
// tags or tables, are copied without spans inside, so the markup stays renderable.
package markup

import (
	"github.com/Drolfothesgnir/whocolor/authorship"
	"github.com/rs/zerolog"
)

// Stats are the diagnostics of a single annotation.
type Stats struct {
	LocatedTokens     int `json:"located_tokens"`
	DroppedTokens     int `json:"dropped_tokens"`
	Spans             int `json:"spans"`
	EnteredRegions    int `json:"entered_regions"`
	MaxDepth          int `json:"max_depth"`
	UnresolvedRegions int `json:"unresolved_regions"`
}

// Result is the outcome of [Annotate].
type Result struct {
	// Text is the annotated markup.
	Text string

	// Editors is the editor presence summary, sorted by percentage descending.
	Editors []EditorPresence

	Stats Stats
}

type options struct {
	log zerolog.Logger
}

// Option configures [Annotate].
type Option func(*options)

// WithLogger makes Annotate report markup idiosyncrasies to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// Annotate wraps the tokens found in text into editor spans.
//
// tokens must be in the order they appear in text, and every token must carry its
// editor id and class name. Annotate sets [authorship.Token.End] of every located token.
// It returns a *[authorship.ContractError] for an empty token sequence or a token without editor.
func Annotate(text string, tokens []authorship.Token, opts ...Option) (*Result, error) {
	if err := authorship.ValidateTokens(tokens); err != nil {
		return nil, err
	}

	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	s := newState(encodeNewlines(text), tokens, o.log)

	s.locateToken()
	s.scan(true, nil, false)
	s.closeSpan()

	return &Result{
		Text:    decodeNewlines(s.out.String()),
		Editors: s.presence.finalize(len(tokens)),
		Stats:   s.stats,
	}, nil
}
