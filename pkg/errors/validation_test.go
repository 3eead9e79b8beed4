package errors

import (
	"strings"
	"testing"
)

func TestValidateCommitRef(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"full sha", "3f2c9a1b7d4e5f60718293a4b5c6d7e8f9012345", false},
		{"short sha", "3f2c9a1", false},
		{"branch name", "main", false},
		{"tag", "v1.2.3", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"space", "abc def", true},
		{"newline", "abc\n", true},
		{"control char", "abc\x01", true},
		{"path traversal", "../../user", true},
		{"leading slash", "/abc", true},
		{"query", "abc?x=1", true},
		{"fragment", "abc#frag", true},
		{"backslash", "abc\\def", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCommitRef(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCommitRef(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidRef) {
				t.Errorf("ValidateCommitRef(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidRef)
			}
		})
	}
}

func TestValidateRepository(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantOwner string
		wantName  string
		wantErr   bool
	}{
		{"valid", "teskann/quax", "teskann", "quax", false},
		{"dots and dashes", "my-org/my.repo_name", "my-org", "my.repo_name", false},

		{"empty", "", "", "", true},
		{"no slash", "quax", "", "", true},
		{"too many parts", "a/b/c", "", "", true},
		{"leading dash owner", "-bad/repo", "", "", true},
		{"dot dot name", "owner/..", "", "", true},
		{"space", "owner/re po", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, name, err := ValidateRepository(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateRepository(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if owner != tt.wantOwner || name != tt.wantName {
				t.Errorf("ValidateRepository(%q) = %q, %q, want %q, %q", tt.input, owner, name, tt.wantOwner, tt.wantName)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://api.github.com", false},
		{"http", "http://127.0.0.1:8080", false},
		{"empty", "", true},
		{"no scheme", "api.github.com", true},
		{"file scheme", "file:///etc/passwd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
