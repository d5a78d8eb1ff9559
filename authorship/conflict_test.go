package authorship

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func revs(editors map[int64]string) RevisionIndex {
	idx := make(RevisionIndex, len(editors))
	for id, e := range editors {
		idx[id] = Revision{ID: id, Editor: e}
	}
	return idx
}

func TestConflictScore(t *testing.T) {
	lookup := revs(map[int64]string{
		1: "A",
		2: "B",
		3: "B",
		4: "A",
		5: "C",
	})

	tests := []struct {
		name string
		out  []int64
		in   []int64
		want int
	}{
		{
			name: "no_history",
			want: 0,
		},
		{
			name: "single_removal_never_restored",
			out:  []int64{1},
			want: 0,
		},
		{
			name: "self_revert",
			out:  []int64{1},
			in:   []int64{4},
			want: 0,
		},
		{
			name: "repeated_self_reverts",
			out:  []int64{1, 4},
			in:   []int64{4, 1},
			want: 0,
		},
		{
			name: "restored_by_other_then_removed_by_restorer",
			out:  []int64{1, 3},
			in:   []int64{2},
			want: 1,
		},
		{
			name: "restored_by_other_then_removed_by_third",
			out:  []int64{1, 5},
			in:   []int64{2},
			want: 2,
		},
		{
			name: "edit_war",
			out:  []int64{1, 2, 1},
			in:   []int64{2, 1, 2},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConflictScore(tt.out, tt.in, lookup, 0)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestConflictScore_UnknownRevision(t *testing.T) {
	lookup := revs(map[int64]string{1: "A"})

	_, err := ConflictScore([]int64{1}, []int64{42}, lookup, 7)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownRevision))

	var ce *ContractError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, IssueUnknownRevision, ce.Issue)
	require.Equal(t, 7, ce.Index)
}

func TestScoreTokens(t *testing.T) {
	lookup := revs(map[int64]string{1: "A", 2: "B", 3: "B"})

	tokens := []Token{
		{Str: "calm", Editor: "A"},
		{Str: "war", Editor: "A", Out: []int64{1, 3}, In: []int64{2}},
		{Str: "undo", Editor: "A", Out: []int64{2}, In: []int64{3}},
	}

	maxScore, err := ScoreTokens(tokens, lookup)
	require.NoError(t, err)
	require.Equal(t, 1, maxScore)
	require.Equal(t, 0, tokens[0].ConflictScore)
	require.Equal(t, 1, tokens[1].ConflictScore)
	require.Equal(t, 0, tokens[2].ConflictScore)
}

func TestScoreTokens_PropagatesLookupMiss(t *testing.T) {
	tokens := []Token{
		{Str: "ok", Editor: "A"},
		{Str: "broken", Editor: "A", Out: []int64{99}},
	}

	_, err := ScoreTokens(tokens, RevisionIndex{})

	var ce *ContractError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, 1, ce.Index)
}
