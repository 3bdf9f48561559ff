// Package github reads Stockholm alignments stored in a GitHub repository.
//
// Alignments live under a directory of the repository (source.path) and are
// addressed by the configured key format. Fetch downloads a single file on
// the configured ref; List enumerates the directory.
//
// # Authentication
//
// A personal access token (github.token or GITHUB_TOKEN) is optional for
// public repositories. Unauthenticated requests are limited to 60 per hour.
//
// # Rate Limiting
//
// Requests pass through a token bucket and the limiter tracks the
// X-RateLimit-Remaining and X-RateLimit-Reset headers. When the remaining
// quota falls below a small reserve the client waits for the reset.
//
// # Error Handling
//
// A missing file or repository is reported as [domain.ErrNotFound]; any
// other API failure unwraps to [domain.ErrSourceUnavailable].
package github
