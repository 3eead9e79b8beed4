// Package github provides an HTTP client for the GitHub REST API.
//
// # Overview
//
// This package looks up commits of a single repository
// (https://api.github.com/repos/{owner}/{repo}/commits/{sha}) so release
// notes can credit the GitHub account behind each change.
//
// # Usage
//
//	client := github.NewClient(github.DefaultBaseURL, "teskann", "quax", os.Getenv("GITHUB_TOKEN"))
//
//	login, err := client.FetchAuthorLogin(ctx, sha)
//	if err != nil {
//	    // not found, rate limited, no linked account, ...
//	}
//
// # Authentication
//
// A GitHub token is optional. Without a token no Authorization header is sent
// and the client is limited to 60 requests/hour. With a token it is sent as
// "Bearer <token>".
//
// # Errors
//
// [FetchCommit] returns [integrations.ErrNotFound] for unknown commits,
// [integrations.ErrNetwork] for transport failures and unexpected statuses,
// and an errors.RateLimitedError when the rate limit is exhausted.
// [FetchAuthorLogin] additionally returns [ErrNoAuthor] when the commit is
// not linked to an account.
package github
