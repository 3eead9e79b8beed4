package attribution

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Kind tells which path produced a [Result].
type Kind int

const (
	// Fallback means the lookup failed and the supplied full name is used.
	Fallback Kind = iota
	// Resolved means the commit author's GitHub login was found.
	Resolved
	// Exempt means the full name matched an exempt identity; nothing is credited.
	Exempt
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case Resolved:
		return "resolved"
	case Exempt:
		return "exempt"
	default:
		return "fallback"
	}
}

// Result is the outcome of resolving a commit author.
type Result struct {
	Kind Kind
	Name string // "@login" when Resolved, the supplied full name otherwise
	Err  error  // why a Fallback happened; nil for the other kinds
}

// Line renders the result for release notes: "(by <name>) ".
// Exempt results render as the empty string.
func (r Result) Line() string {
	if r.Kind == Exempt {
		return ""
	}
	return fmt.Sprintf("(by %s) ", r.Name)
}

// AuthorLookup resolves the GitHub login of a commit's author.
// [github.Client] implements it.
type AuthorLookup interface {
	FetchAuthorLogin(ctx context.Context, sha string) (string, error)
}

// Resolver turns a commit and a fallback display name into a [Result].
type Resolver struct {
	lookup AuthorLookup
	exempt []string
	logger *log.Logger
}

// NewResolver creates a Resolver. Names in exempt are compared case-insensitively.
// A nil logger discards debug output.
func NewResolver(lookup AuthorLookup, exempt []string, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Resolver{lookup: lookup, exempt: exempt, logger: logger}
}

// IsExempt reports whether fullName matches an exempt identity.
func (r *Resolver) IsExempt(fullName string) bool {
	for _, id := range r.exempt {
		if strings.EqualFold(fullName, id) {
			return true
		}
	}
	return false
}

// Resolve never fails: any lookup error becomes a Fallback result carrying
// the error for diagnostics. Exempt names short-circuit before any request.
func (r *Resolver) Resolve(ctx context.Context, sha, fullName string) Result {
	if r.IsExempt(fullName) {
		r.logger.Debug("exempt identity, skipping lookup", "name", fullName)
		return Result{Kind: Exempt, Name: fullName}
	}

	login, err := r.lookup.FetchAuthorLogin(ctx, sha)
	if err != nil {
		r.logger.Debug("author lookup failed, using fallback", "commit", sha, "err", err)
		return Result{Kind: Fallback, Name: fullName, Err: err}
	}

	r.logger.Debug("resolved author", "commit", sha, "login", login)
	return Result{Kind: Resolved, Name: "@" + login}
}
