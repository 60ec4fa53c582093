// Package pipeline runs one prreview pass: locate the newest open pull
// request, fetch its patches, ask the model for comments and post them as a
// single review.
//
// Failures while locating the pull request or fetching its files are fatal
// and returned to the caller. Everything from the model request onwards runs
// behind one error boundary: a failure there is logged and recorded on the
// [Outcome] but never returned, so a malformed model answer cannot crash the
// run. A rejected review submission is handled the same way.
package pipeline
