package markup

import (
	"regexp"
	"strings"

	"github.com/Drolfothesgnir/whocolor/authorship"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog"
)

// region is an occurrence of a [Rule] in the markup text.
type region struct {
	rule  *Rule
	start int // byte offset of the start match
	width int // byte length of the start match
}

// regionEnd describes where the enclosing region stops.
type regionEnd struct {
	start int // offset of the end match
	stop  int // offset right after the end match
}

// ruleMatch is the cached first match of a rule at or after the cursor.
type ruleMatch struct {
	start int
	width int

	// scanned is false until the rule has been searched once.
	scanned bool

	// exhausted is true when the rule has no match left in the text.
	exhausted bool
}

// state holds all mutable state of a single Annotate call.
type state struct {
	// text is the markup with newlines replaced by placeholders.
	text string

	tokens []authorship.Token

	// tokenIdx is the index of the current token in tokens.
	tokenIdx int

	// cur points to the current located token, nil once the tokens are exhausted.
	cur *authorship.Token

	// pos is the cursor inside text.
	pos int

	// openSpan is true while an annotation span is written but not closed yet.
	openSpan bool

	// entered holds start offsets of the regions the scanner has already descended into.
	// Without it the same region would be found again after the descent and entered forever.
	entered mapset.Set[int]

	// unresolved holds start offsets of block regions without an end match,
	// so each of them is reported only once.
	unresolved mapset.Set[int]

	// frames is the chain of regions enclosing the cursor.
	frames stack[region]

	// matches holds the next match of every rule of the table, by rule index.
	// The cursor never moves back, so a match stays valid until the cursor passes its start.
	matches []ruleMatch

	// needles caches compiled case-insensitive token patterns by literal.
	// A nil pattern marks a literal which can't be compiled.
	needles map[string]*regexp.Regexp

	out strings.Builder

	presence presenceCounter

	stats Stats

	log zerolog.Logger
}

func newState(text string, tokens []authorship.Token, log zerolog.Logger) *state {
	s := &state{
		text:       text,
		tokens:     tokens,
		entered:    mapset.NewThreadUnsafeSet[int](),
		unresolved: mapset.NewThreadUnsafeSet[int](),
		matches:    make([]ruleMatch, len(ruleTable)),
		needles:    make(map[string]*regexp.Regexp),
		presence:   newPresenceCounter(),
		log:        log,
	}

	s.out.Grow(len(text) + len(tokens)*64)

	return s
}

func (s *state) enterRegion(r region) {
	s.entered.Add(r.start)
	s.frames.push(r)
	s.stats.EnteredRegions++
	s.stats.MaxDepth = max(s.stats.MaxDepth, len(s.frames.v))
}

func (s *state) leaveRegion() {
	s.frames.pop()
}

type stack[T any] struct {
	v []T
}

func (s *stack[T]) push(t T) {
	s.v = append(s.v, t)
}

func (s *stack[T]) pop() {
	if len(s.v) > 0 {
		s.v = s.v[:len(s.v)-1]
	}
}
