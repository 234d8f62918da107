// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/research-assistant/pkg/types"
)

func sources(n int) []types.SearchResult {
	out := make([]types.SearchResult, n)
	for i := range out {
		out[i] = types.SearchResult{
			ID:                string(rune('a' + i)),
			Title:             "Source Title " + string(rune('A'+i)),
			Snippet:           "Snippet body " + string(rune('A'+i)) + ".",
			Domain:            "example.org",
			AuthorCredibility: 70 + i,
		}
	}
	return out
}

func TestBuildPrompt(t *testing.T) {
	results := sources(3)
	results[0].Content = "Scanned page content for the first source."

	prompt, err := BuildPrompt("what is quantum computing", nil, results)
	if err != nil {
		t.Fatalf("BuildPrompt: %v", err)
	}

	for _, want := range []string{
		"Question: what is quantum computing",
		"[1] Source Title A",
		"[2] Source Title B",
		"[3] Source Title C",
		"Scanned page content for the first source.",
		"Snippet body B.",
		"credibility 70/100",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if strings.Contains(prompt, "Conversation so far") {
		t.Error("history block rendered without history")
	}
}

func TestBuildPromptWithHistory(t *testing.T) {
	history := []Turn{
		{Role: "user", Content: "earlier question"},
		{Role: "assistant", Content: "earlier answer"},
	}
	prompt, err := BuildPrompt("follow-up", history, sources(1))
	if err != nil {
		t.Fatalf("BuildPrompt: %v", err)
	}
	for _, want := range []string{
		"Conversation so far:",
		"user: earlier question",
		"assistant: earlier answer",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPromptCapsSources(t *testing.T) {
	prompt, err := BuildPrompt("q", nil, sources(12))
	if err != nil {
		t.Fatalf("BuildPrompt: %v", err)
	}
	if !strings.Contains(prompt, "[8]") {
		t.Error("prompt should include the eighth source")
	}
	if strings.Contains(prompt, "[9]") {
		t.Error("prompt should cap at eight sources")
	}
}

func TestStreamReassembles(t *testing.T) {
	s := NewStreamer(types.ComposeConfig{}, 1)

	var chunks []string
	err := s.Stream(context.Background(), "the quick brown fox", func(c string) {
		chunks = append(chunks, c)
	})
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}
	if len(chunks) != 4 {
		t.Fatalf("got %d chunks, want 4", len(chunks))
	}
	if chunks[0] != "the" {
		t.Errorf("first chunk = %q, want bare word", chunks[0])
	}
	for i, c := range chunks[1:] {
		if !strings.HasPrefix(c, " ") {
			t.Errorf("chunk %d = %q, want leading space", i+1, c)
		}
	}
	if got := strings.Join(chunks, ""); got != "the quick brown fox" {
		t.Errorf("reassembled %q", got)
	}
}

func TestStreamEmptyText(t *testing.T) {
	s := NewStreamer(types.ComposeConfig{}, 1)
	calls := 0
	if err := s.Stream(context.Background(), "   ", func(string) { calls++ }); err != nil {
		t.Fatalf("Stream: %v", err)
	}
	if calls != 0 {
		t.Errorf("whitespace-only text produced %d chunks", calls)
	}
}

func TestStreamCancellation(t *testing.T) {
	cfg := types.ComposeConfig{
		MinChunkDelay: 50 * time.Millisecond,
		MaxChunkDelay: 80 * time.Millisecond,
	}
	s := NewStreamer(cfg, 1)

	ctx, cancel := context.WithCancel(context.Background())
	var chunks int
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Stream(ctx, strings.Repeat("word ", 200), func(string) { chunks++ })
	}()

	time.Sleep(120 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if err != context.Canceled {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not stop after cancellation")
	}
	if chunks >= 200 {
		t.Errorf("stream drained all %d chunks despite cancellation", chunks)
	}
}

func TestSummarize(t *testing.T) {
	results := sources(7)
	results[0].Content = "Scanned content wins over the snippet."

	out := Summarize("test query", results)
	if !strings.Contains(out, `"test query"`) {
		t.Errorf("summary does not mention the query:\n%s", out)
	}
	if !strings.Contains(out, "Scanned content wins over the snippet.") {
		t.Error("summary should prefer scanned content")
	}
	if !strings.Contains(out, "[5]") {
		t.Error("summary should include five sources")
	}
	if strings.Contains(out, "[6]") {
		t.Error("summary should cap at five sources")
	}
}

func TestSummarizeNoResults(t *testing.T) {
	out := Summarize("anything", nil)
	if !strings.Contains(out, "No sources") {
		t.Errorf("empty summary = %q", out)
	}
}

// fakeGenerator returns fixed output or a fixed error.
type fakeGenerator struct {
	text string
	err  error
}

func (f *fakeGenerator) Generate(_ context.Context, _ string) (string, error) {
	return f.text, f.err
}

func TestGeneratorErrorPropagates(t *testing.T) {
	wantErr := errors.New("backend unavailable")
	var gen Generator = &fakeGenerator{err: wantErr}

	_, err := gen.Generate(context.Background(), "prompt")
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}
