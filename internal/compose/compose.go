// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compose turns ranked, scanned results into a streamed answer.
// It builds the prompt, delegates text generation to a Generator, and
// delivers the reply as word chunks with a human-feeling cadence.
// Generation failures propagate to the caller — unlike search, a failed
// answer must be visible, not silently empty.
// See docs/ARCHITECTURE § Composition.
package compose

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"strings"
	"text/template"
	"time"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// Generator produces the full answer text for a prompt. The langchaingo
// implementation lives in llm.go; tests substitute a fake.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ChunkFunc receives one incremental piece of the streamed answer.
type ChunkFunc func(chunk string)

// Turn is one prior exchange in the conversation.
type Turn struct {
	Role    string
	Content string
}

// answerPromptTmpl instructs the model to answer from the supplied
// sources, cite them by number, and admit gaps rather than invent.
var answerPromptTmpl = template.Must(template.New("answer").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`You are a research assistant. Answer the user's question using the sources below.

Rules:
- Ground every claim in the numbered sources and cite them like [1].
- If the sources do not cover something, say so instead of guessing.
- Answer in the same language as the question.
{{if .History}}
Conversation so far:
{{range .History}}{{.Role}}: {{.Content}}
{{end}}{{end}}
Question: {{.Query}}

Sources:
{{range $i, $r := .Results}}[{{inc $i}}] {{$r.Title}} ({{$r.Domain}}, credibility {{$r.AuthorCredibility}}/100)
{{$r.Snippet}}
{{if $r.Content}}{{$r.Content}}
{{end}}{{end}}`))

// BuildPrompt renders the answer prompt from the query, conversation
// history, and the top results. Results past maxSources are dropped to
// keep the prompt bounded.
func BuildPrompt(query string, history []Turn, results []types.SearchResult) (string, error) {
	const maxSources = 8
	if len(results) > maxSources {
		results = results[:maxSources]
	}

	var buf bytes.Buffer
	err := answerPromptTmpl.Execute(&buf, struct {
		Query   string
		History []Turn
		Results []types.SearchResult
	}{query, history, results})
	if err != nil {
		return "", fmt.Errorf("rendering answer prompt: %w", err)
	}
	return buf.String(), nil
}

// Streamer chunks generated text word by word with a randomized delay
// between chunks.
type Streamer struct {
	cfg types.ComposeConfig
	rng *rand.Rand
}

// NewStreamer builds a Streamer. A zero seed uses the clock.
func NewStreamer(cfg types.ComposeConfig, seed int64) *Streamer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Streamer{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

// Stream delivers text to fn one word at a time, sleeping between chunks.
// The context is checked before every chunk so cancellation interrupts the
// stream promptly instead of draining the remaining words.
func (s *Streamer) Stream(ctx context.Context, text string, fn ChunkFunc) error {
	words := strings.Fields(text)
	for i, word := range words {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			if err := s.pause(ctx); err != nil {
				return err
			}
			fn(" " + word)
			continue
		}
		fn(word)
	}
	return nil
}

func (s *Streamer) pause(ctx context.Context) error {
	if s.cfg.MaxChunkDelay <= 0 {
		return nil
	}
	delay := s.cfg.MinChunkDelay
	if jitter := s.cfg.MaxChunkDelay - s.cfg.MinChunkDelay; jitter > 0 {
		delay += time.Duration(s.rng.Int63n(int64(jitter)))
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// Summarize builds an extractive offline answer straight from the ranked
// results, for use when no generation backend is configured.
func Summarize(query string, results []types.SearchResult) string {
	if len(results) == 0 {
		return "No sources were found for this question."
	}

	const maxSources = 5
	if len(results) > maxSources {
		results = results[:maxSources]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here is what the top sources say about %q:\n\n", strings.TrimSpace(query))
	for i, r := range results {
		body := r.Snippet
		if r.Content != "" {
			body = r.Content
		}
		fmt.Fprintf(&b, "[%d] %s — %s\n%s\n\n", i+1, r.Title, r.Domain, body)
	}
	return strings.TrimSpace(b.String())
}
