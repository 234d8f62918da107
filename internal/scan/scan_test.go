// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// zeroDelay produces a scanner that skips the simulated pause.
func zeroDelay(maxContent int) types.ScanConfig {
	return types.ScanConfig{MaxContentLen: maxContent}
}

func TestScanKnownDomain(t *testing.T) {
	s := NewScanner(zeroDelay(0), 1)
	tests := []struct {
		name   string
		url    string
		domain string
	}{
		{"exact domain", "https://arxiv.org/abs/2403.1234", "arxiv.org"},
		{"www prefix stripped", "https://www.statista.com/search/?q=x", "statista.com"},
		{"subdomain matches parent entry", "https://en.wikipedia.org/wiki/Topic", "wikipedia.org"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := s.Scan(context.Background(), tt.url)
			if out.Status != types.ScanCompleted {
				t.Fatalf("status = %q, want completed", out.Status)
			}
			if out.Content != cannedContent[tt.domain] {
				t.Errorf("content does not match the %s entry", tt.domain)
			}
		})
	}
}

func TestScanUnknownDomainFallsBack(t *testing.T) {
	s := NewScanner(zeroDelay(0), 1)
	out := s.Scan(context.Background(), "https://no-such-entry.example/page")
	if out.Status != types.ScanCompleted {
		t.Fatalf("status = %q, want completed", out.Status)
	}
	if out.Content != fallbackContent {
		t.Errorf("unknown domain should serve the fallback excerpt")
	}
}

func TestScanTruncatesContent(t *testing.T) {
	s := NewScanner(zeroDelay(40), 1)
	out := s.Scan(context.Background(), "https://arxiv.org/abs/1")
	runes := []rune(out.Content)
	if len(runes) != 41 {
		t.Fatalf("content has %d runes, want 40 plus ellipsis", len(runes))
	}
	if !strings.HasSuffix(out.Content, Ellipsis) {
		t.Errorf("truncated content should end with %q", Ellipsis)
	}
}

func TestScanCancelledContext(t *testing.T) {
	cfg := types.ScanConfig{
		MinDelay:      time.Second,
		MaxDelay:      2 * time.Second,
		MaxContentLen: 800,
	}
	s := NewScanner(cfg, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	out := s.Scan(ctx, "https://arxiv.org/abs/1")
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("cancelled scan took %v, should return promptly", elapsed)
	}
	if out.Status != types.ScanError {
		t.Errorf("status = %q, want error on cancellation", out.Status)
	}
	if out.Content != "" {
		t.Errorf("cancelled scan should carry no content")
	}
}

func TestScanDelayWithinBounds(t *testing.T) {
	cfg := types.ScanConfig{
		MinDelay:      20 * time.Millisecond,
		MaxDelay:      60 * time.Millisecond,
		MaxContentLen: 800,
	}
	s := NewScanner(cfg, 1)

	start := time.Now()
	out := s.Scan(context.Background(), "https://github.com/x")
	elapsed := time.Since(start)
	if out.Status != types.ScanCompleted {
		t.Fatalf("status = %q, want completed", out.Status)
	}
	if elapsed < cfg.MinDelay {
		t.Errorf("scan returned after %v, before the %v minimum delay", elapsed, cfg.MinDelay)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short passes through", "hello", 10, "hello"},
		{"exact length passes through", "hello", 5, "hello"},
		{"long is cut with ellipsis", "hello world", 5, "hello" + Ellipsis},
		{"zero max disables truncation", "hello world", 0, "hello world"},
		{"multibyte counts runes not bytes", "مرحبا بالعالم", 6, "مرحبا " + Ellipsis},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestDomainOf(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://www.example.com/path", "example.com"},
		{"https://en.wikipedia.org/wiki/X", "en.wikipedia.org"},
		{"not a url", "not a url"},
	}
	for _, tt := range tests {
		if got := domainOf(tt.in); got != tt.want {
			t.Errorf("domainOf(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
