package markup

import (
	"strconv"
	"strings"
	"testing"

	"github.com/Drolfothesgnir/whocolor/authorship"
)

// benchmarkInput builds an article of n paragraphs with links, templates and formatting.
func benchmarkInput(n int) (string, []authorship.Token) {
	var (
		sb     strings.Builder
		tokens []authorship.Token
	)

	words := []string{"the", "city", "of", "cologne", "lies", "on", "the", "rhine"}

	for i := range n {
		editor := strconv.Itoa(i % 7)

		sb.WriteString("== Section ==\n")
		tokens = append(tokens, tok("==", editor), tok("section", editor), tok("==", editor))

		for _, w := range words {
			sb.WriteString(w)
			sb.WriteByte(' ')
			tokens = append(tokens, tok(w, editor))
		}

		sb.WriteString("[[Rhine|river]] {{cite web|url=x}} '''bold'''.\n\n")
		tokens = append(tokens,
			tok("[[", editor), tok("rhine", editor), tok("|", editor), tok("river", editor), tok("]]", editor),
			tok("{{", editor), tok("cite", editor), tok("web", editor), tok("|", editor),
			tok("url", editor), tok("=", editor), tok("x", editor), tok("}}", editor),
			tok("'''", editor), tok("bold", editor), tok("'''", editor), tok(".", editor),
		)
	}

	return sb.String(), tokens
}

func BenchmarkAnnotate(b *testing.B) {
	text, tokens := benchmarkInput(200)
	b.SetBytes(int64(len(text)))
	b.ReportAllocs()

	for b.Loop() {
		if _, err := Annotate(text, tokens); err != nil {
			b.Fatal(err)
		}
	}
}

// largeArticle builds lines of words, links, formatting and templates,
// roughly 42 bytes and 10 tokens per line.
func largeArticle(lines int) (string, []authorship.Token) {
	var (
		sb     strings.Builder
		tokens = make([]authorship.Token, 0, lines*10)
	)

	for i := range lines {
		n := strconv.Itoa(i)
		editor := strconv.Itoa(i % 11)

		sb.WriteString("word" + n + " [[link" + n + "]] ''it" + n + "'' {{t" + n + "}}\n")
		tokens = append(tokens,
			tok("word"+n, editor), tok("[[", editor), tok("link"+n, editor), tok("]]", editor),
			tok("''", editor), tok("it"+n, editor), tok("''", editor),
			tok("{{", editor), tok("t"+n, editor), tok("}}", editor),
		)
	}

	return sb.String(), tokens
}

func BenchmarkAnnotate_LargeArticle(b *testing.B) {
	text, tokens := largeArticle(4000)
	b.SetBytes(int64(len(text)))

	for b.Loop() {
		if _, err := Annotate(text, tokens); err != nil {
			b.Fatal(err)
		}
	}
}
