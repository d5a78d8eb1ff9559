package markup

import (
	"encoding/json"
	"sort"

	"github.com/Drolfothesgnir/whocolor/authorship"
)

// EditorPresence is the share of the located tokens owned by one editor.
type EditorPresence struct {
	EditorID  string
	Name      string
	ClassName string

	// Count is the number of tokens of the editor located in the markup.
	Count int

	// Percentage is Count relative to the whole token sequence, not only the located tokens.
	Percentage float64
}

// MarshalJSON encodes the entry as a [name, class_name, percentage] tuple.
func (p EditorPresence) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]any{p.Name, p.ClassName, p.Percentage})
}

// UnmarshalJSON decodes the tuple produced by MarshalJSON.
func (p *EditorPresence) UnmarshalJSON(data []byte) error {
	var tuple [3]json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}

	if err := json.Unmarshal(tuple[0], &p.Name); err != nil {
		return err
	}
	if err := json.Unmarshal(tuple[1], &p.ClassName); err != nil {
		return err
	}
	return json.Unmarshal(tuple[2], &p.Percentage)
}

// presenceCounter counts located tokens per editor in first-seen order.
type presenceCounter struct {
	order   []string
	entries map[string]*EditorPresence
}

func newPresenceCounter() presenceCounter {
	return presenceCounter{entries: make(map[string]*EditorPresence)}
}

func (c *presenceCounter) add(tok *authorship.Token) {
	if e, ok := c.entries[tok.Editor]; ok {
		e.Count++
		return
	}

	c.entries[tok.Editor] = &EditorPresence{
		EditorID:  tok.Editor,
		Name:      tok.EditorName,
		ClassName: tok.ClassName,
		Count:     1,
	}
	c.order = append(c.order, tok.Editor)
}

// finalize computes the percentages against total and sorts the entries by percentage,
// highest first. Equal percentages keep the first-seen order.
func (c *presenceCounter) finalize(total int) []EditorPresence {
	list := make([]EditorPresence, 0, len(c.order))

	for _, id := range c.order {
		e := *c.entries[id]
		if total > 0 {
			e.Percentage = float64(e.Count) * 100 / float64(total)
		}
		list = append(list, e)
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Percentage > list[j].Percentage
	})

	return list
}
