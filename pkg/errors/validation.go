package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxRefLength bounds commit identifiers; full SHA-256 object names are 64 hex chars.
const maxRefLength = 256

// ValidateCommitRef validates a commit identifier before it is interpolated
// into an API path.
//
// The rules are intentionally conservative:
//   - No empty refs
//   - No whitespace or control characters
//   - No path traversal sequences (..) or leading slash
//   - No query or fragment delimiters
func ValidateCommitRef(ref string) error {
	if ref == "" {
		return New(ErrCodeInvalidRef, "commit ref cannot be empty")
	}
	if len(ref) > maxRefLength {
		return New(ErrCodeInvalidRef, "commit ref too long (max %d characters)", maxRefLength)
	}

	for _, r := range ref {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidRef, "commit ref contains invalid characters")
		}
	}

	if strings.HasPrefix(ref, "/") || strings.Contains(ref, "..") {
		return New(ErrCodeInvalidRef, "commit ref cannot contain path traversal sequences")
	}
	if strings.ContainsAny(ref, "?#\\") {
		return New(ErrCodeInvalidRef, "commit ref contains invalid characters: %q", ref)
	}

	return nil
}

// repositoryRegex matches GitHub "owner/name" repository references.
var repositoryRegex = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?/[A-Za-z0-9._-]+$`)

// ValidateRepository validates an "owner/name" repository reference and
// returns its two parts.
func ValidateRepository(repo string) (owner, name string, err error) {
	if repo == "" {
		return "", "", New(ErrCodeInvalidRepo, "repository cannot be empty")
	}
	if !repositoryRegex.MatchString(repo) {
		return "", "", New(ErrCodeInvalidRepo, "invalid repository %q (expected owner/name)", repo)
	}
	owner, name, _ = strings.Cut(repo, "/")
	if name == "." || name == ".." {
		return "", "", New(ErrCodeInvalidRepo, "invalid repository name %q", name)
	}
	return owner, name, nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
