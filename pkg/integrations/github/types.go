package github

// User represents a GitHub account as embedded in commit responses.
type User struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Type  string `json:"type"` // "User" or "Bot"
}

// Commit represents the fields of a GitHub commit response used by quaxtools.
// Author is nil when GitHub could not link the commit to an account.
type Commit struct {
	SHA     string        `json:"sha"`
	HTMLURL string        `json:"html_url"`
	Author  *User         `json:"author"`
	Details CommitDetails `json:"commit"`
}

// CommitDetails holds the raw git metadata of a commit.
type CommitDetails struct {
	Message string       `json:"message"`
	Author  GitSignature `json:"author"`
}

// GitSignature is the name/email pair recorded in the git object.
type GitSignature struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Date  string `json:"date"`
}
