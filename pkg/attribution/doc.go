// Package attribution credits commit authors in release notes.
//
// A [Resolver] maps a commit and the committer's display name to one of three
// outcomes:
//
//   - [Exempt]: the name belongs to an exempt identity (the maintainer);
//     no request is made and nothing is printed.
//   - [Resolved]: GitHub linked the commit to an account; the credit is
//     "@login".
//   - [Fallback]: anything else (404, rate limit, network failure, a
//     response without an author); the credit is the display name as given.
//
// All three render through [Result.Line] as "(by <name>) ", with Exempt
// rendering as the empty string.
package attribution
