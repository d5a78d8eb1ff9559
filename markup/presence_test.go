package markup

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresenceCounter(t *testing.T) {
	c := newPresenceCounter()

	for _, e := range []string{"1", "2", "2", "3", "1", "2"} {
		tk := tok("w", e)
		c.add(&tk)
	}

	list := c.finalize(10)
	require.Len(t, list, 3)

	require.Equal(t, "2", list[0].EditorID)
	require.Equal(t, 3, list[0].Count)
	require.InDelta(t, 30.0, list[0].Percentage, 1e-9)

	require.Equal(t, "1", list[1].EditorID)
	require.InDelta(t, 20.0, list[1].Percentage, 1e-9)

	require.Equal(t, "3", list[2].EditorID)
	require.Equal(t, "name-3", list[2].Name)
	require.InDelta(t, 10.0, list[2].Percentage, 1e-9)
}

func TestPresenceCounter_StableOnTies(t *testing.T) {
	c := newPresenceCounter()

	for _, e := range []string{"b", "a", "c", "a", "b"} {
		tk := tok("w", e)
		c.add(&tk)
	}

	list := c.finalize(5)
	require.Equal(t, "b", list[0].EditorID)
	require.Equal(t, "a", list[1].EditorID)
	require.Equal(t, "c", list[2].EditorID)
}

func TestEditorPresence_JSON(t *testing.T) {
	p := EditorPresence{EditorID: "7", Name: "Alice", ClassName: "7", Count: 3, Percentage: 12.5}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	require.JSONEq(t, `["Alice", "7", 12.5]`, string(data))

	var back EditorPresence
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, "Alice", back.Name)
	require.Equal(t, "7", back.ClassName)
	require.InDelta(t, 12.5, back.Percentage, 1e-9)

}
