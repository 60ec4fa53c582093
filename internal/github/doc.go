// Package github is the hosting-service side of prreview: it locates the most
// recently opened pull request, lists its changed files with patches, and
// submits a single review carrying inline comments.
//
// Requests go through the go-gh REST client. Pull-request scoped endpoints are
// addressed through the pull request's own API URL, exactly as returned by
// the listing call.
package github
