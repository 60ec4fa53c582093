// Package providers implements the Reviewer interface for the language-model
// service prreview asks for line-level review comments.
//
// The OpenAI provider speaks the chat-completions protocol, so any compatible
// endpoint can be targeted by overriding the base URL. A request is a single
// user-role message; the first choice's text is returned whitespace-trimmed.
// Failed calls are not retried.
package providers
