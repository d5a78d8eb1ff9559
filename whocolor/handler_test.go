package whocolor_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Drolfothesgnir/whocolor/authorship"
	"github.com/Drolfothesgnir/whocolor/whocolor"
	mockwc "github.com/Drolfothesgnir/whocolor/whocolor/mock"
	"github.com/Drolfothesgnir/whocolor/wiki"
	"github.com/Drolfothesgnir/whocolor/wikiwho"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const anon = "0|127.0.0.1"

var (
	t0 = time.Date(2002, 1, 1, 0, 0, 0, 0, time.UTC)
	t1 = time.Date(2002, 2, 1, 0, 0, 0, 0, time.UTC)
	t2 = time.Date(2002, 3, 1, 0, 0, 0, 0, time.UTC)

	now = t2.Add(time.Hour)
)

func testHistory() []authorship.Revision {
	return []authorship.Revision{
		{ID: 10, Timestamp: t0, Editor: "1465"},
		{ID: 11, Timestamp: t1, Editor: anon},
		{ID: 15, Timestamp: t2, Editor: "42"},
	}
}

func testTokens() []authorship.Token {
	return []authorship.Token{
		{Str: "cologne", Editor: "1465", OriginRevID: 10},
		{Str: "is", Editor: anon, OriginRevID: 11},
		{Str: "a", Editor: "1465", OriginRevID: 10, Out: []int64{11}, In: []int64{15}},
		{Str: "city", Editor: "42", OriginRevID: 15},
	}
}

func span(class string, idx int, content string) string {
	return fmt.Sprintf(`<span class="editor-token token-editor-%s" id="token-%d">%s</span>`, class, idx, content)
}

type providers struct {
	text        *mockwc.MockTextProvider
	attribution *mockwc.MockAttributionProvider
}

func newTestHandler(t *testing.T) (*whocolor.Handler, providers) {
	ctrl := gomock.NewController(t)

	p := providers{
		text:        mockwc.NewMockTextProvider(ctrl),
		attribution: mockwc.NewMockAttributionProvider(ctrl),
	}

	h := whocolor.NewHandler(p.text, p.attribution, whocolor.WithClock(func() time.Time { return now }))
	return h, p
}

func TestHandle(t *testing.T) {
	h, p := newTestHandler(t)
	ctx := context.Background()
	anonClass := authorship.ClassName(anon)

	wantMarkup := span("1465", 0, "Cologne") +
		span(anonClass, 1, " is") +
		span("1465", 2, " a") +
		span("42", 3, " city")

	p.text.EXPECT().
		RevisionText(gomock.Any(), "en", wiki.PageQuery{Title: "Cologne"}).
		Times(1).
		Return(&wiki.Revision{PageID: 6187, Title: "Cologne", RevID: 15, Text: "Cologne is a city"}, nil)

	p.attribution.EXPECT().
		Revisions(gomock.Any(), "en", int64(6187), "Cologne").
		Times(1).
		Return(testHistory(), nil)

	p.text.EXPECT().
		EditorNames(gomock.Any(), "en", []string{"1465", "42"}).
		Times(1).
		Return(map[string]string{"1465": "Alice"}, nil)

	p.attribution.EXPECT().
		Tokens(gomock.Any(), "en", int64(15)).
		Times(1).
		Return(testTokens(), nil)

	p.text.EXPECT().
		RenderHTML(gomock.Any(), "en", "Cologne", wantMarkup).
		Times(1).
		Return("<p>rendered</p>", nil)

	res, err := h.Handle(ctx, whocolor.Request{Lang: "en", Title: "Cologne"})
	require.NoError(t, err)

	require.EqualValues(t, 6187, res.PageID)
	require.EqualValues(t, 15, res.RevID)
	require.Equal(t, "Cologne", res.Title)
	require.Equal(t, "en", res.Lang)
	require.Equal(t, "<p>rendered</p>", res.ExtendedHTML)
	require.Equal(t, 1, res.BiggestConflictScore)
	require.Equal(t, 4, res.Stats.LocatedTokens)

	require.Equal(t, map[int64]whocolor.RevisionEntry{
		10: {Timestamp: t0, ParentID: 0, ClassName: "1465", EditorName: "Alice"},
		11: {Timestamp: t1, ParentID: 10, ClassName: anonClass, EditorName: anonClass},
		15: {Timestamp: t2, ParentID: 11, ClassName: "42", EditorName: "42"},
	}, res.Revisions)

	require.Len(t, res.Tokens, 4)
	require.Equal(t, whocolor.CompactToken{
		ConflictScore: 1,
		Str:           "a",
		OriginRevID:   10,
		In:            []int64{15},
		Out:           []int64{11},
		ClassName:     "1465",
		Age:           now.Sub(t0).Seconds(),
	}, res.Tokens[2])
	require.Equal(t, anonClass, res.Tokens[1].ClassName)
	require.Equal(t, []int64{}, res.Tokens[0].In)
	require.InDelta(t, time.Hour.Seconds(), res.Tokens[3].Age, 1e-9)

	require.Len(t, res.PresentEditors, 3)
	require.Equal(t, "Alice", res.PresentEditors[0].Name)
	require.InDelta(t, 50.0, res.PresentEditors[0].Percentage, 1e-9)
	require.Equal(t, anonClass, res.PresentEditors[1].ClassName)
	require.Equal(t, anonClass, res.PresentEditors[1].Name)
	require.Equal(t, "42", res.PresentEditors[2].Name)

	data, err := json.Marshal(res)
	require.NoError(t, err)
	require.NotContains(t, string(data), "127.0.0.1")
}

func TestHandle_InvalidRequest(t *testing.T) {
	h, p := newTestHandler(t)

	p.text.EXPECT().RevisionText(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := h.Handle(context.Background(), whocolor.Request{Lang: "en"})
	require.ErrorIs(t, err, whocolor.ErrInvalidRequest)

	_, err = h.Handle(context.Background(), whocolor.Request{Title: "Cologne"})
	require.Error(t, err)
}

func TestHandle_NotFound(t *testing.T) {
	testCases := []struct {
		name       string
		buildStubs func(p providers)
		target     error
	}{
		{
			name: "MissingPage",
			buildStubs: func(p providers) {
				p.text.EXPECT().
					RevisionText(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil, wiki.ErrNotFound)
				p.attribution.EXPECT().Revisions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			target: wiki.ErrNotFound,
		},
		{
			name: "UnknownToWikiWho",
			buildStubs: func(p providers) {
				p.text.EXPECT().
					RevisionText(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(&wiki.Revision{PageID: 1, Title: "X", RevID: 2, Text: "x"}, nil)
				p.attribution.EXPECT().
					Revisions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil, fmt.Errorf("%w: status 400", wikiwho.ErrNotFound))
				p.attribution.EXPECT().Tokens(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			target: wikiwho.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, p := newTestHandler(t)
			tc.buildStubs(p)

			_, err := h.Handle(context.Background(), whocolor.Request{Lang: "en", PageID: 1})
			require.ErrorIs(t, err, whocolor.ErrNotFound)
			require.ErrorIs(t, err, tc.target)
		})
	}
}

func TestHandle_UpstreamFailure(t *testing.T) {
	h, p := newTestHandler(t)

	p.text.EXPECT().
		RevisionText(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1).
		Return(nil, fmt.Errorf("%w: unexpected status 503", wiki.ErrUpstream))

	_, err := h.Handle(context.Background(), whocolor.Request{Lang: "en", PageID: 1})
	require.ErrorIs(t, err, wiki.ErrUpstream)
	require.False(t, errors.Is(err, whocolor.ErrNotFound))
}

func TestHandle_UnknownOriginRevision(t *testing.T) {
	h, p := newTestHandler(t)

	tokens := testTokens()
	tokens[3].OriginRevID = 99

	p.text.EXPECT().
		RevisionText(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1).
		Return(&wiki.Revision{PageID: 6187, Title: "Cologne", RevID: 15, Text: "Cologne is a city"}, nil)
	p.attribution.EXPECT().
		Revisions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1).
		Return(testHistory(), nil)
	p.text.EXPECT().
		EditorNames(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1).
		Return(map[string]string{}, nil)
	p.attribution.EXPECT().
		Tokens(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1).
		Return(tokens, nil)
	p.text.EXPECT().RenderHTML(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := h.Handle(context.Background(), whocolor.Request{Lang: "en", PageID: 6187})
	require.ErrorIs(t, err, authorship.ErrUnknownRevision)

	var contractErr *authorship.ContractError
	require.True(t, errors.As(err, &contractErr))
	require.Equal(t, authorship.IssueUnknownRevision, contractErr.Issue)
	require.Equal(t, 3, contractErr.Index)
}

func TestHandle_AnonymousOnlyHistorySkipsNameLookup(t *testing.T) {
	h, p := newTestHandler(t)

	p.text.EXPECT().
		RevisionText(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1).
		Return(&wiki.Revision{PageID: 1, Title: "X", RevID: 11, Text: "Hi"}, nil)
	p.attribution.EXPECT().
		Revisions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1).
		Return([]authorship.Revision{{ID: 11, Timestamp: t1, Editor: anon}}, nil)
	p.text.EXPECT().EditorNames(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	p.attribution.EXPECT().
		Tokens(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1).
		Return([]authorship.Token{{Str: "hi", Editor: anon, OriginRevID: 11}}, nil)
	p.text.EXPECT().
		RenderHTML(gomock.Any(), gomock.Any(), "X", span(authorship.ClassName(anon), 0, "Hi")).
		Times(1).
		Return("<p>Hi</p>", nil)

	res, err := h.Handle(context.Background(), whocolor.Request{Lang: "en", PageID: 1})
	require.NoError(t, err)
	require.Equal(t, 0, res.BiggestConflictScore)
	require.Len(t, res.PresentEditors, 1)
	require.InDelta(t, 100.0, res.PresentEditors[0].Percentage, 1e-9)
}
