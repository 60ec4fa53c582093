// Package redact scrubs secrets from pull request patches before they are
// embedded in a model prompt.
//
// Detection is a set of named regex heuristics (provider API keys, cloud
// credentials, JWTs, private key headers, bearer tokens and secret-looking
// assignments). Files whose paths match a configured glob have their whole
// patch replaced instead of being scanned.
//
// Redaction is opt-in; by default prreview sends patches unmodified.
package redact
