package redact

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/dshills/prreview/internal/github"
)

const placeholder = "[REDACTED]"

type pattern struct {
	kind string
	re   *regexp.Regexp
}

// patterns are checked in order; provider-specific shapes come before the
// generic ones so the reported kind is the most precise match.
var patterns = []pattern{
	{"private-key", regexp.MustCompile(`-----BEGIN\s+(RSA\s+|EC\s+|OPENSSH\s+)?PRIVATE KEY-----`)},
	{"aws-access-key", regexp.MustCompile(`AKIA[0-9A-Z]{16}`)},
	{"aws-secret-key", regexp.MustCompile(`(?i)(aws[_-]?secret[_-]?access[_-]?key)\s*[:=]\s*["']?([A-Za-z0-9/+=]{40})["']?`)},
	{"github-token", regexp.MustCompile(`(gh[pousr]_[A-Za-z0-9_]{36,}|github_pat_[A-Za-z0-9_]{22,})`)},
	{"slack-token", regexp.MustCompile(`xox[bporas]-[A-Za-z0-9-]{10,}`)},
	{"anthropic-key", regexp.MustCompile(`sk-ant-[A-Za-z0-9_-]{20,}`)},
	{"openai-key", regexp.MustCompile(`sk-(proj-)?[A-Za-z0-9_-]{20,}`)},
	{"jwt", regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`)},
	{"bearer", regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9._-]{20,}`)},
	{"api-key", regexp.MustCompile(`(?i)(api[_-]?key|apikey|api[_-]?secret)\s*[:=]\s*["']?([A-Za-z0-9/+=_-]{20,})["']?`)},
	{"assignment", regexp.MustCompile(`(?i)(secret|token|password|passwd|credential)\s*[:=]\s*["']([^"']{8,})["']`)},
	{"hex-secret", regexp.MustCompile(`(?i)(key|secret|token)\s*[:=]\s*["']?[0-9a-f]{32,}["']?`)},
}

// Secrets replaces detected secrets in text with [REDACTED] and returns the
// kinds that matched.
func Secrets(text string) (string, []string) {
	var kinds []string
	for _, p := range patterns {
		if !p.re.MatchString(text) {
			continue
		}
		kinds = append(kinds, p.kind)
		text = p.re.ReplaceAllLiteralString(text, placeholder)
	}
	return text, kinds
}

// ShouldRedactPath checks if a file path matches any of the redaction path patterns.
func ShouldRedactPath(path string, globs []string) bool {
	for _, glob := range globs {
		if matched, err := filepath.Match(glob, path); err == nil && matched {
			return true
		}
		// "**/.env" matches .env at any depth.
		if base := strings.TrimPrefix(glob, "**/"); base != glob {
			if matched, err := filepath.Match(base, filepath.Base(path)); err == nil && matched {
				return true
			}
		}
	}
	return false
}

// Stats summarises a redaction pass.
type Stats struct {
	FilesWithheld int
	Secrets       map[string]int
}

// Total is the number of patches that were changed.
func (s Stats) Total() int {
	n := s.FilesWithheld
	for _, c := range s.Secrets {
		n += c
	}
	return n
}

// Files returns a copy of files with secrets scrubbed from each patch.
// Patches of files matching withheld are replaced entirely. The input slice
// is not modified.
func Files(files []github.ChangedFile, withheld []string) ([]github.ChangedFile, Stats) {
	stats := Stats{Secrets: map[string]int{}}
	out := make([]github.ChangedFile, len(files))
	for i, f := range files {
		out[i] = f
		if f.Patch == "" {
			continue
		}
		if ShouldRedactPath(f.Filename, withheld) {
			out[i].Patch = placeholder + " (patch withheld by path policy)"
			stats.FilesWithheld++
			continue
		}
		scrubbed, kinds := Secrets(f.Patch)
		out[i].Patch = scrubbed
		for _, k := range kinds {
			stats.Secrets[k]++
		}
	}
	return out, stats
}
