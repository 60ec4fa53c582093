// Package review turns pull request patches into a model prompt and the
// model's answer into inline review comments.
//
// The prompt is a fixed instruction template wrapped around a diff summary of
// "File: <name>" blocks. The answer must be a JSON array of
// {file, line, comment} objects, optionally wrapped in a single code fence.
// Comments are passed through without range or duplicate checks.
package review
