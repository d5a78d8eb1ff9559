package db

import (
	"context"
	"errors"
	"testing"

	"github.com/Drolfothesgnir/whocolor/util"
	"github.com/Drolfothesgnir/whocolor/whocolor"
	"github.com/stretchr/testify/require"
)

func randomResult() *whocolor.Result {
	return &whocolor.Result{
		PageID:       util.RandomInt(1, 1_000_000),
		RevID:        util.RandomInt(1, 1_000_000_000),
		Title:        util.RandomString(10),
		Lang:         "test",
		ExtendedHTML: "<p>" + util.RandomString(20) + "</p>",
		Tokens: []whocolor.CompactToken{
			{ConflictScore: 1, Str: "a", OriginRevID: 1, In: []int64{3}, Out: []int64{2}, ClassName: "1", Age: 10},
		},
		Revisions:            map[int64]whocolor.RevisionEntry{},
		BiggestConflictScore: 1,
	}
}

func TestUpsertAndGetAnnotation(t *testing.T) {
	store := requireTestStore(t)
	ctx := context.Background()
	res := randomResult()

	created, err := store.UpsertAnnotation(ctx, UpsertAnnotationParams{Lang: "test", Result: res})
	require.NoError(t, err)
	require.Equal(t, res.RevID, created.RevID)
	require.Equal(t, res.Title, created.Title)
	require.Equal(t, res.Tokens, created.Result.Tokens)

	got, err := store.GetAnnotation(ctx, "test", res.RevID)
	require.NoError(t, err)
	require.Equal(t, created.Result.ExtendedHTML, got.Result.ExtendedHTML)
	require.WithinDuration(t, created.CreatedAt, got.CreatedAt, 0)

	// re-annotating the same revision replaces the result
	res.ExtendedHTML = "<p>updated</p>"
	updated, err := store.UpsertAnnotation(ctx, UpsertAnnotationParams{Lang: "test", Result: res})
	require.NoError(t, err)
	require.Equal(t, "<p>updated</p>", updated.Result.ExtendedHTML)
	require.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	require.NoError(t, store.DeleteAnnotation(ctx, "test", res.RevID))

	_, err = store.GetAnnotation(ctx, "test", res.RevID)
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestUpsertAnnotation_Invalid(t *testing.T) {
	store := &SQLStore{}

	_, err := store.UpsertAnnotation(context.Background(), UpsertAnnotationParams{Lang: "en"})
	require.Error(t, err)

	var opErr *OpError
	require.True(t, errors.As(err, &opErr))
	require.Equal(t, KindInvalid, opErr.Kind)
}

func TestOpError(t *testing.T) {
	err := notFoundError(opGetAnnotation, "en", 15)
	require.ErrorIs(t, err, ErrRecordNotFound)
	require.Equal(t, "get-annotation [not_found] en/15: record not found", err.Error())
	require.Equal(t, "internal", KindInternal.String())
}
