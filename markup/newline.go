package markup

import "strings"

// Newlines are replaced with placeholders before scanning, so a run of blank lines
// can be matched by a single atomic rule without line anchors.
//
// Each newline flavor has its own placeholder to be restored exactly. Placeholders
// are made of control characters only: tokens are searched case-insensitively, and
// a placeholder spelled with letters would be found by word tokens like "color".
const (
	placeholderLF   = "\x01\x02"
	placeholderCRLF = "\x01\x03"
	placeholderCR   = "\x01\x04"

	placeholderPattern = `\x01[\x02-\x04]`
)

var (
	newlineEncoder = strings.NewReplacer(
		"\r\n", placeholderCRLF,
		"\n", placeholderLF,
		"\r", placeholderCR,
	)

	newlineDecoder = strings.NewReplacer(
		placeholderCRLF, "\r\n",
		placeholderLF, "\n",
		placeholderCR, "\r",
	)
)

// encodeNewlines replaces every "\r\n", "\n" and "\r" with its placeholder.
func encodeNewlines(s string) string {
	return newlineEncoder.Replace(s)
}

// decodeNewlines restores newlines replaced by encodeNewlines.
func decodeNewlines(s string) string {
	return newlineDecoder.Replace(s)
}
