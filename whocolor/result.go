package whocolor

import (
	"encoding/json"
	"time"

	"github.com/Drolfothesgnir/whocolor/authorship"
	"github.com/Drolfothesgnir/whocolor/markup"
)

// Result is the annotated revision together with its authorship data.
type Result struct {
	PageID int64  `json:"page_id"`
	RevID  int64  `json:"rev_id"`
	Title  string `json:"title"`
	Lang   string `json:"lang"`

	// ExtendedHTML is the rendered annotated markup.
	ExtendedHTML string `json:"extended_html"`

	PresentEditors []markup.EditorPresence `json:"present_editors"`
	Revisions      map[int64]RevisionEntry `json:"revisions"`
	Tokens         []CompactToken          `json:"tokens"`

	BiggestConflictScore int `json:"biggest_conflict_score"`

	Stats markup.Stats `json:"stats"`
}

// RevisionEntry is the exported form of a revision,
// encoded as a [timestamp, parent_id, class_name, editor_name] tuple.
type RevisionEntry struct {
	Timestamp  time.Time
	ParentID   int64
	ClassName  string
	EditorName string
}

func (e RevisionEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]any{e.Timestamp, e.ParentID, e.ClassName, e.EditorName})
}

func (e *RevisionEntry) UnmarshalJSON(data []byte) error {
	var tuple [4]json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}

	for i, dst := range []any{&e.Timestamp, &e.ParentID, &e.ClassName, &e.EditorName} {
		if err := json.Unmarshal(tuple[i], dst); err != nil {
			return err
		}
	}

	return nil
}

// CompactToken is the exported form of a token,
// encoded as a [conflict_score, str, o_rev_id, in, out, class_name, age] tuple.
type CompactToken struct {
	ConflictScore int
	Str           string
	OriginRevID   int64
	In            []int64
	Out           []int64
	ClassName     string
	Age           float64
}

func newCompactToken(t authorship.Token) CompactToken {
	return CompactToken{
		ConflictScore: t.ConflictScore,
		Str:           t.Str,
		OriginRevID:   t.OriginRevID,
		In:            nonNil(t.In),
		Out:           nonNil(t.Out),
		ClassName:     t.ClassName,
		Age:           t.Age,
	}
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}

func (t CompactToken) MarshalJSON() ([]byte, error) {
	return json.Marshal([7]any{t.ConflictScore, t.Str, t.OriginRevID, t.In, t.Out, t.ClassName, t.Age})
}

func (t *CompactToken) UnmarshalJSON(data []byte) error {
	var tuple [7]json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}

	fields := []any{&t.ConflictScore, &t.Str, &t.OriginRevID, &t.In, &t.Out, &t.ClassName, &t.Age}
	for i, dst := range fields {
		if err := json.Unmarshal(tuple[i], dst); err != nil {
			return err
		}
	}

	return nil
}
