package markup

import (
	"regexp"
	"strconv"
)

const (
	spanClose       = "</span>"
	spanOpenPrefix  = `<span class="editor-token token-editor-`
	spanOpenIDInfix = `" id="token-`
	spanOpenSuffix  = `">`
)

// locateToken makes the first locatable token starting from tokenIdx the current one.
//
// The token text is searched case-insensitively from the cursor. Tokens which can't be
// found, e.g. because their case mapping changes the byte length like in "İstanbul",
// are skipped and never show up in the output or in the presence summary.
func (s *state) locateToken() {
	s.cur = nil

	for ; s.tokenIdx < len(s.tokens); s.tokenIdx++ {
		tok := &s.tokens[s.tokenIdx]

		var loc []int
		if re := s.needle(tok.Str); re != nil {
			loc = re.FindStringIndex(s.text[s.pos:])
		}

		if loc == nil {
			s.stats.DroppedTokens++
			s.log.Debug().
				Int("index", s.tokenIdx).
				Int("pos", s.pos).
				Str("token", tok.Str).
				Msg("token not found in markup, skipping")
			continue
		}

		tok.End = s.pos + loc[1]
		s.cur = tok
		s.stats.LocatedTokens++
		s.presence.add(tok)
		return
	}
}

// nextToken moves past the current token.
func (s *state) nextToken() {
	s.tokenIdx++
	s.locateToken()
}

// needle returns the case-insensitive pattern of the token literal str,
// or nil if str is not valid UTF-8.
func (s *state) needle(str string) *regexp.Regexp {
	if re, ok := s.needles[str]; ok {
		return re
	}

	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(str))
	if err != nil {
		s.log.Debug().Err(err).Str("token", str).Msg("token can't be searched for")
		re = nil
	}

	s.needles[str] = re
	return re
}

// nextRegion returns the earliest region starting at or after the cursor.
//
// Only the first match of each rule is considered, and it is ignored if the region
// was already entered. Ties are resolved by the table order.
func (s *state) nextRegion() (region, bool) {
	var (
		next  region
		found bool
	)

	for i := range ruleTable {
		m := s.nextMatch(i)
		if m.exhausted || s.entered.Contains(m.start) {
			continue
		}

		if !found || m.start < next.start {
			next = region{rule: &ruleTable[i], start: m.start, width: m.width}
			found = true
		}
	}

	return next, found
}

// nextMatch returns the first match of the i-th rule at or after the cursor.
//
// The rules have no anchors or look-behind, so a match found from an earlier cursor
// is still the first one as long as it doesn't start before the cursor.
func (s *state) nextMatch(i int) *ruleMatch {
	m := &s.matches[i]
	if m.exhausted || (m.scanned && m.start >= s.pos) {
		return m
	}

	m.scanned = true

	loc := ruleTable[i].Start.FindStringIndex(s.text[s.pos:])
	if loc == nil {
		m.exhausted = true
		return m
	}

	m.start = s.pos + loc[0]
	m.width = loc[1] - loc[0]
	return m
}

// regionEnd resolves where r stops, searching the end match from the cursor,
// or from the region start if the cursor hasn't reached it yet.
// A block region without an end match extends to the end of the text.
func (s *state) regionEnd(r region) regionEnd {
	if r.rule.IsAtomic() {
		stop := r.start + r.width
		return regionEnd{start: r.start, stop: stop}
	}

	n := len(s.text)

	// the end match doesn't show up later if it wasn't there before
	if s.unresolved.Contains(r.start) {
		return regionEnd{start: n, stop: n}
	}

	from := max(s.pos, r.start)

	loc := r.rule.End.FindStringIndex(s.text[from:])
	if loc != nil {
		return regionEnd{start: from + loc[0], stop: from + loc[1]}
	}

	s.unresolved.Add(r.start)
	s.stats.UnresolvedRegions++
	s.log.Warn().
		Str("rule", r.rule.Name).
		Int("pos", r.start).
		Msg("markup region is not closed, extending it to the end of the text")

	return regionEnd{start: n, stop: n}
}

// scan walks the text in lock-step with the tokens.
//
// wrap enables span-wrapping of the tokens at this level, enclosing is the region
// the cursor is inside of (nil on the top level), noJump disables the recognition
// of nested regions. scan returns when the enclosing region ends, or the text does.
func (s *state) scan(wrap bool, enclosing *region, noJump bool) {
	var end regionEnd
	if enclosing != nil {
		end = s.regionEnd(*enclosing)
	}

	var (
		next    region
		hasNext bool
	)
	if !noJump {
		next, hasNext = s.nextRegion()
	}

	for s.pos < len(s.text) {
		if s.cur == nil {
			// no tokens left, the rest is copied as is
			s.out.WriteString(s.text[s.pos:])
			s.pos = len(s.text)
			return
		}

		// descending into the next region if it starts before the current token ends
		if !noJump && hasNext && (enclosing == nil || (s.pos < end.start && next.start < end.start)) &&
			next.start < s.cur.End {

			if wrap {
				s.wrapSpan(!next.rule.NoSpans)
			}

			inner := next
			s.enterRegion(inner)
			s.scan(false, &inner, inner.rule.NoJump)
			s.leaveRegion()

			// the cursor has moved
			if enclosing != nil {
				end = s.regionEnd(*enclosing)
			}
			next, hasNext = s.nextRegion()
			continue
		}

		// the region ends before the token does, the token belongs to the parent
		if enclosing != nil && end.stop < s.cur.End {
			if s.pos < end.stop {
				s.out.WriteString(s.text[s.pos:end.stop])
				s.pos = end.stop
			}
			return
		}

		if wrap {
			s.wrapSpan(true)
		}

		s.out.WriteString(s.text[s.pos:s.cur.End])
		s.pos = s.cur.End
		s.nextToken()
	}

	s.closeSpan()
}

// wrapSpan closes the open span and, if open is true, opens a new one for the current token.
func (s *state) wrapSpan(open bool) {
	s.closeSpan()

	if !open {
		return
	}

	s.out.WriteString(spanOpenPrefix)
	s.out.WriteString(s.cur.ClassName)
	s.out.WriteString(spanOpenIDInfix)
	s.out.WriteString(strconv.Itoa(s.tokenIdx))
	s.out.WriteString(spanOpenSuffix)
	s.openSpan = true
	s.stats.Spans++
}

func (s *state) closeSpan() {
	if s.openSpan {
		s.out.WriteString(spanClose)
		s.openSpan = false
	}
}
