// Package output renders a dry-run [Preview] of the review prreview would post.
//
// Four formats are supported:
//   - text: aligned terminal table (default)
//   - json: the preview as indented JSON
//   - yaml: the preview as YAML
//   - markdown: a table suitable for pasting into a PR conversation
//
// Use [GetWriter] to obtain a [Writer] for a format string, or [WritePreview]
// to render straight to a file path or stdout.
package output
