// Package config loads the prreview run configuration from the environment.
//
// Values come from, highest precedence first:
//  1. Process environment (GH_TOKEN, OPENAI_API_KEY, GITHUB_REPOSITORY, PRREVIEW_*)
//  2. An optional .env file, loaded without overriding variables already set
//  3. Built-in defaults declared in struct tags
//
// Use [Load] to obtain a validated [Config]. Missing credentials are reported
// as a [ConfigError] before any network call is made.
package config
