// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-assistant/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.HistoryConfig{DataDir: t.TempDir(), MaxResults: 20})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRun() (types.QueryAnalysis, types.SearchResponse) {
	analysis := types.QueryAnalysis{
		Language: types.LangEnglish,
		Intent:   types.IntentExplanation,
		Category: types.CategoryTech,
	}
	resp := types.SearchResponse{
		Results: []types.SearchResult{
			{
				ID:                "res-1",
				Title:             "First Result",
				URL:               "https://a.example/1",
				Domain:            "a.example",
				Category:          types.CategoryTech,
				SourceType:        types.SourceExpert,
				RelevanceScore:    90,
				AuthorCredibility: 80,
				PublishDate:       time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			},
			{
				ID:                "res-2",
				Title:             "Second Result",
				URL:               "https://b.example/2",
				Domain:            "b.example",
				Category:          types.CategoryAcademic,
				SourceType:        types.SourceAcademic,
				RelevanceScore:    75,
				AuthorCredibility: 95,
				PublishDate:       time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			},
		},
		TotalResults: 2,
		SearchTime:   42,
	}
	return analysis, resp
}

func TestSaveSearchRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	analysis, resp := sampleRun()

	id, err := s.SaveSearch(ctx, "golang concurrency", true, analysis, resp)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	records, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "golang concurrency", rec.Query)
	assert.Equal(t, types.LangEnglish, rec.Language)
	assert.Equal(t, types.IntentExplanation, rec.Intent)
	assert.Equal(t, types.CategoryTech, rec.Category)
	assert.True(t, rec.Deep)
	assert.Equal(t, 2, rec.TotalResults)
	assert.Equal(t, int64(42), rec.SearchTime)
	assert.False(t, rec.CreatedAt.IsZero())

	results, err := s.Results(ctx, id)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "res-1", results[0].ID)
	assert.Equal(t, "First Result", results[0].Title)
	assert.Equal(t, types.SourceExpert, results[0].SourceType)
	assert.Equal(t, 90, results[0].RelevanceScore)
	assert.Equal(t, 80, results[0].AuthorCredibility)
	assert.Equal(t, types.ScanPending, results[0].ScanStatus)
	assert.True(t, results[0].PublishDate.Equal(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)))

	// Rank order holds.
	assert.Equal(t, "res-2", results[1].ID)
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	analysis, resp := sampleRun()
	resp.Results = nil
	resp.TotalResults = 0

	var ids []string
	for _, q := range []string{"first", "second", "third"} {
		id, err := s.SaveSearch(ctx, q, false, analysis, resp)
		require.NoError(t, err)
		ids = append(ids, id)
		// RFC3339Nano timestamps need distinct clock readings to order.
		time.Sleep(2 * time.Millisecond)
	}

	records, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, ids[2], records[0].ID)
	assert.Equal(t, "third", records[0].Query)
	assert.Equal(t, ids[0], records[2].ID)
}

func TestRecentLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	analysis, resp := sampleRun()
	resp.Results = nil

	for i := 0; i < 5; i++ {
		_, err := s.SaveSearch(ctx, "query", false, analysis, resp)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	records, err := s.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestResultsUnknownSearch(t *testing.T) {
	s := newTestStore(t)
	results, err := s.Results(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFormatRecords(t *testing.T) {
	var buf bytes.Buffer
	FormatRecords(nil, &buf)
	assert.Contains(t, buf.String(), "No saved searches.")

	buf.Reset()
	FormatRecords([]Record{
		{
			ID:           "abc-123",
			Query:        "quantum computing",
			Deep:         true,
			TotalResults: 7,
			CreatedAt:    time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
		},
	}, &buf)
	out := buf.String()
	assert.Contains(t, out, "abc-123")
	assert.Contains(t, out, "quantum computing")
	assert.Contains(t, out, "yes")
}

func TestSaveSearchDuplicateResultIDFails(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	analysis, resp := sampleRun()
	resp.Results[1].ID = resp.Results[0].ID

	_, err := s.SaveSearch(ctx, "dupes", false, analysis, resp)
	require.Error(t, err)

	// The transaction rolled back; nothing was recorded.
	records, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
