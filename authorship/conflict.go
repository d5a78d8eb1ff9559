package authorship

// EditorLookup resolves the editor of a revision.
type EditorLookup interface {
	EditorOf(revID int64) (editor string, ok bool)
}

// ConflictScore counts editor disagreements in the removal/reinsertion history
// of a single token.
//
// out[i] is a removal, in[i] is the reinsertion following it. A removal is counted
// when its editor differs from the editor of the previous reinsertion, so the very
// first removal is never counted. A reinsertion is counted when its editor differs
// from the editor of the removal it undoes, so self reverts are never counted.
//
// idx is the token position used in the returned [ContractError].
func ConflictScore(out, in []int64, lookup EditorLookup, idx int) (int, error) {
	score := 0
	prevIn := ""
	hasPrevIn := false

	for i, revID := range out {
		outEditor, ok := lookup.EditorOf(revID)
		if !ok {
			return 0, newUnknownRevisionError(idx, revID)
		}

		if hasPrevIn && prevIn != outEditor {
			score++
		}

		if i >= len(in) {
			// removed and never restored
			continue
		}

		inEditor, ok := lookup.EditorOf(in[i])
		if !ok {
			return 0, newUnknownRevisionError(idx, in[i])
		}

		if inEditor != outEditor {
			score++
		}

		prevIn = inEditor
		hasPrevIn = true
	}

	return score, nil
}

// ScoreTokens sets [Token.ConflictScore] on every token and returns the biggest score of the batch.
func ScoreTokens(tokens []Token, lookup EditorLookup) (maxScore int, err error) {
	for i := range tokens {
		score, err := ConflictScore(tokens[i].Out, tokens[i].In, lookup, i)
		if err != nil {
			return 0, err
		}

		tokens[i].ConflictScore = score
		maxScore = max(maxScore, score)
	}

	return maxScore, nil
}
