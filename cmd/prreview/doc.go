// Prreview reviews the most recently opened pull request of a GitHub
// repository with an LLM and posts the suggestions as inline review comments.
//
// It is meant to run as a CI step. Configuration comes from the environment
// (or a .env file):
//
//	GH_TOKEN            token used for the GitHub REST API
//	OPENAI_API_KEY      key for the chat-completions endpoint
//	GITHUB_REPOSITORY   owner/name of the repository to review
//
// Usage:
//
//	prreview                        # review and post
//	prreview --dry-run --format md  # review and print, post nothing
//	prreview config                 # show effective configuration
package main
