package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"github.com/Drolfothesgnir/whocolor/authorship"
	"github.com/Drolfothesgnir/whocolor/markup"
	"github.com/rs/zerolog/log"
	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate <markup-file> <tokens-file>",
	Short: "Annotate a local markup file with tokens from a JSON file",
	Long: `Annotates wiki markup offline.

The tokens file holds a JSON array of tokens in text order, e.g.
  [{"str": "cologne", "editor": "1465"}, {"str": "is", "editor": "0|127.0.0.1"}]
Class names and editor names default to the ones derived from the editor id.

The annotated markup is printed to stdout, followed by the editor presence
with --presence, and the scan statistics with --dump.`,
	Args: cobra.ExactArgs(2),
	RunE: runAnnotate,
}

// editorDump leaves out the raw editor ids, anonymous ones are addresses.
var editorDump = litter.Options{FieldExclusions: regexp.MustCompile(`^EditorID$`)}

func init() {
	annotateCmd.Flags().Bool("presence", false, "Print the editor presence after the markup")
	annotateCmd.Flags().Bool("dump", false, "Dump the scan statistics and presence")
}

func readTokens(path string) ([]authorship.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read tokens: %w", err)
	}

	var tokens []authorship.Token
	if err := json.Unmarshal(data, &tokens); err != nil {
		return nil, fmt.Errorf("cannot parse tokens: %w", err)
	}

	for i := range tokens {
		tok := &tokens[i]
		if tok.ClassName == "" {
			tok.ClassName = authorship.ClassName(tok.Editor)
		}
		if tok.EditorName == "" || authorship.IsAnonymous(tok.Editor) {
			tok.EditorName = authorship.DisplayName(tok.Editor, nil)
		}
	}

	return tokens, nil
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	text, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read markup: %w", err)
	}

	tokens, err := readTokens(args[1])
	if err != nil {
		return err
	}

	res, err := markup.Annotate(string(text), tokens, markup.WithLogger(log.Logger))
	if err != nil {
		return fmt.Errorf("cannot annotate: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, res.Text)

	if presence, _ := cmd.Flags().GetBool("presence"); presence {
		for _, e := range res.Editors {
			fmt.Fprintf(out, "%-32s %-32s %6.2f%%\n", e.Name, e.ClassName, e.Percentage)
		}
	}

	if dump, _ := cmd.Flags().GetBool("dump"); dump {
		fmt.Fprintln(out, litter.Sdump(res.Stats))
		fmt.Fprintln(out, editorDump.Sdump(res.Editors))
	}

	return nil
}
