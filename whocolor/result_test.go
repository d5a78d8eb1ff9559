package whocolor

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Drolfothesgnir/whocolor/markup"
	"github.com/stretchr/testify/require"
)

func TestResultJSONShape(t *testing.T) {
	ts := time.Date(2002, 1, 25, 18, 11, 47, 0, time.UTC)

	res := Result{
		PageID: 6187,
		RevID:  15,
		Title:  "Cologne",
		Lang:   "en",
		PresentEditors: []markup.EditorPresence{
			{EditorID: "1465", Name: "Alice", ClassName: "1465", Count: 1, Percentage: 100},
		},
		Revisions: map[int64]RevisionEntry{
			15: {Timestamp: ts, ParentID: 10, ClassName: "1465", EditorName: "Alice"},
		},
		Tokens: []CompactToken{
			{ConflictScore: 2, Str: "cologne", OriginRevID: 15, In: []int64{}, Out: []int64{}, ClassName: "1465", Age: 1.5},
		},
		BiggestConflictScore: 2,
	}

	data, err := json.Marshal(res)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	require.JSONEq(t, `[["Alice","1465",100]]`, string(raw["present_editors"]))
	require.JSONEq(t, `{"15":["2002-01-25T18:11:47Z",10,"1465","Alice"]}`, string(raw["revisions"]))
	require.JSONEq(t, `[[2,"cologne",15,[],[],"1465",1.5]]`, string(raw["tokens"]))
	require.JSONEq(t, `2`, string(raw["biggest_conflict_score"]))

	var back Result
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, res.Revisions, back.Revisions)
	require.Equal(t, res.Tokens, back.Tokens)
	require.Equal(t, "Alice", back.PresentEditors[0].Name)
}

func TestRequestCacheKey(t *testing.T) {
	testCases := []struct {
		name string
		req  Request
		want string
	}{
		{
			name: "page id wins",
			req:  Request{Lang: "en", Title: "Cologne", PageID: 6187},
			want: "en:page_id:6187:rev:0",
		},
		{
			name: "title normalized",
			req:  Request{Lang: "de", Title: " New York ", RevID: 7},
			want: "de:title:New_York:rev:7",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.req.CacheKey())
		})
	}
}
