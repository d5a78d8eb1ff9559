package markup

import "regexp"

// Rule describes a wiki markup construct which must not be word-wrapped like plain prose.
//
// A Rule without End is atomic: its region is exactly the Start match.
// Otherwise the region spans from the Start match to the first End match after it.
type Rule struct {
	Name  string
	Start *regexp.Regexp
	End   *regexp.Regexp

	// NoSpans suppresses span-wrapping of the tokens inside the region.
	NoSpans bool

	// NoJump suppresses the recognition of nested regions inside the region.
	NoJump bool
}

// IsAtomic reports whether the rule region is its start match only.
func (r *Rule) IsAtomic() bool {
	return r.End == nil
}

// magicWords lists the behavior switches of MediaWiki, like __NOTOC__.
const magicWords = `NOTOC|FORCETOC|TOC|NOEDITSECTION|NEWSECTIONLINK|NONEWSECTIONLINK|NOGALLERY|` +
	`HIDDENCAT|NOCONTENTCONVERT|NOCC|NOTITLECONVERT|NOTC|START|END|INDEX|NOINDEX|` +
	`STATICREDIRECT|DISAMBIG`

// htmlTags lists the tags whose opening fragment "<tag ... >" is treated as markup.
// Closing tags are matched by the same rule thanks to the optional slash.
const htmlTags = `ref|h1|h2|h3|h4|h5|h6|p|br|hr|!--|abbr|b|bdi|bdo|blockquote|cite|code|data|del|dfn|em|i|` +
	`ins|kbd|mark|pre|q|ruby|rt|rp|s|samp|small|strong|sub|sup|time|u|var|wbr|dl|dt|dd|ol|ul|li|` +
	`div|span|table|tr|td|th|caption`

// ruleTable is the ordered table of special markup.
// The order is the priority: when two rules match at the same offset, the first one wins.
var ruleTable = []Rule{
	{
		Name:  "internal_link",
		Start: regexp.MustCompile(`\[\[`),
		End:   regexp.MustCompile(`\]\]`),
	},
	{
		Name:  "external_link",
		Start: regexp.MustCompile(`\[`),
		End:   regexp.MustCompile(`\]`),
	},
	{
		Name:    "template",
		Start:   regexp.MustCompile(`\{\{`),
		End:     regexp.MustCompile(`\}\}`),
		NoSpans: true,
	},
	{
		Name:    "nowiki_single",
		Start:   regexp.MustCompile(`<nowiki */>`),
		NoSpans: true,
		NoJump:  true,
	},
	{
		Name:    "verbatim_block",
		Start:   regexp.MustCompile(`<(?:math|timeline|nowiki)[^>]*>`),
		End:     regexp.MustCompile(`</(?:math|timeline|nowiki)>`),
		NoSpans: true,
	},
	{
		Name:    "html_tag",
		Start:   regexp.MustCompile(`</?(?:` + htmlTags + `)`),
		End:     regexp.MustCompile(`>`),
		NoSpans: true,
	},
	{
		Name:    "heading",
		Start:   regexp.MustCompile(`=+|;`),
		NoSpans: true,
		NoJump:  true,
	},
	{
		Name:    "list_item",
		Start:   regexp.MustCompile(`[\\*#:]+`),
		NoSpans: true,
		NoJump:  true,
	},
	{
		Name:    "horizontal_rule",
		Start:   regexp.MustCompile(`-----*`),
		NoSpans: true,
		NoJump:  true,
	},
	{
		Name:    "table",
		Start:   regexp.MustCompile(`\{\|`),
		End:     regexp.MustCompile(`\|\}`),
		NoSpans: true,
	},
	{
		Name:    "linebreaks",
		Start:   regexp.MustCompile(`(?:` + placeholderPattern + `)+`),
		NoSpans: true,
		NoJump:  true,
	},
	{
		Name:    "html_entity",
		Start:   regexp.MustCompile(`&(?:[a-z\d]+|#\d+|#x[a-f\d]+);`),
		NoSpans: true,
		NoJump:  true,
	},
	{
		Name:    "magic_word",
		Start:   regexp.MustCompile(`__(?:` + magicWords + `)__`),
		NoSpans: true,
		NoJump:  true,
	},
	{
		Name:    "formatting",
		Start:   regexp.MustCompile(`''+`),
		NoSpans: true,
		NoJump:  true,
	},
}
