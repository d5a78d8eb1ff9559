package authorship

import "time"

// Token is a contiguous unit of article content attributed to one editor.
type Token struct {
	// Str is the literal text of the token as the attribution service reports it.
	Str string `json:"str"`

	// Editor is the stable editor identifier: either a numeric account id, or
	// an anonymous attribution marked with [AnonymousPrefix].
	Editor string `json:"editor"`

	// EditorName is the display name of the editor.
	EditorName string `json:"editor_name"`

	// ClassName is the opaque editor identifier exposed to the output.
	// Anonymous editors are hashed, see [ClassName].
	ClassName string `json:"class_name"`

	// ConflictScore counts editor disagreements over the token's history.
	ConflictScore int `json:"conflict_score"`

	// OriginRevID is the revision in which the token first appeared.
	OriginRevID int64 `json:"o_rev_id"`

	// Out holds the revisions in which the token was removed.
	Out []int64 `json:"out"`

	// In holds the revisions in which the token was reinserted.
	// In[i] chronologically follows Out[i].
	In []int64 `json:"in"`

	// Age is the number of seconds passed since OriginRevID was saved.
	Age float64 `json:"age"`

	// End is the byte offset right after the token inside the markup text.
	// It is set by the scanner once the token is located and is never supplied by the caller.
	End int `json:"-"`
}

// Revision is a single entry of the article's revision history.
type Revision struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	ParentID   int64     `json:"parent_id"`
	Editor     string    `json:"editor"`
	EditorName string    `json:"editor_name"`
}

// RevisionIndex maps revision ids to revisions.
type RevisionIndex map[int64]Revision

// EditorOf implements [EditorLookup].
func (idx RevisionIndex) EditorOf(revID int64) (string, bool) {
	rev, ok := idx[revID]
	if !ok {
		return "", false
	}
	return rev.Editor, true
}

// NewRevisionIndex builds the index from the ordered history.
// The first revision gets parent 0, every next one gets the previous revision as its parent.
func NewRevisionIndex(history []Revision) RevisionIndex {
	idx := make(RevisionIndex, len(history))

	var parent int64
	for _, rev := range history {
		rev.ParentID = parent
		idx[rev.ID] = rev
		parent = rev.ID
	}

	return idx
}
