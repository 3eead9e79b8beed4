// Package integrations provides the shared HTTP client for remote APIs.
//
// # Overview
//
// API-specific clients live in subpackages and embed [Client]:
//
//   - [github]: GitHub REST API commit lookups
//
// # Client Pattern
//
//	client := github.NewClient(github.DefaultBaseURL, "teskann", "quax", token)
//	commit, err := client.FetchCommit(ctx, sha)
//
// [Client] handles:
//   - Default and per-request headers
//   - JSON decoding of 200 responses
//   - Status mapping to [ErrNotFound], [ErrNetwork] and rate-limit errors
//
// There is no caching and no retry: every call issues exactly one request
// and the deadline is taken from the context.
//
// [github]: github.com/teskann/quaxtools/pkg/integrations/github
package integrations
