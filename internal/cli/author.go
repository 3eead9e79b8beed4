package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/teskann/quaxtools/pkg/attribution"
	"github.com/teskann/quaxtools/pkg/config"
	"github.com/teskann/quaxtools/pkg/errors"
	"github.com/teskann/quaxtools/pkg/integrations/github"
)

// authorOpts holds the command-line flags for the author command.
type authorOpts struct {
	repository string
	apiURL     string
	exempt     []string
	timeout    time.Duration
}

func (o authorOpts) apply(cfg *config.Author) {
	if o.repository != "" {
		cfg.Repository = o.repository
	}
	if o.apiURL != "" {
		cfg.APIURL = o.apiURL
	}
	if o.exempt != nil {
		cfg.Exempt = o.exempt
	}
	if o.timeout > 0 {
		cfg.Timeout = config.Duration{Duration: o.timeout}
	}
}

// authorCommand creates the author command.
func (c *CLI) authorCommand() *cobra.Command {
	var opts authorOpts

	cmd := &cobra.Command{
		Use:   "author <commit> <full-name>",
		Short: "Print the release-notes credit for a commit",
		Long: `Print the release-notes credit for a commit.

The commit is looked up on GitHub and its author credited as "(by @login) ".
If the lookup fails for any reason the given full name is used instead:
"(by <full-name>) ". Exempt identities (the maintainer) print nothing.

The command always exits 0 once its arguments and config are valid, so a
GitHub outage never breaks a release. A token is read from $GITHUB_TOKEN
when set.

Examples:
  quaxtools author 3f2c9a1 "Mona Lisa"
  quaxtools author "$GITHUB_SHA" "$(git log -1 --format=%an)"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAuthor(cmd.Context(), args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.repository, "repo", "", "GitHub repository as owner/name (default teskann/quax)")
	cmd.Flags().StringVar(&opts.apiURL, "api-url", "", "GitHub API base URL (default "+github.DefaultBaseURL+")")
	cmd.Flags().StringSliceVar(&opts.exempt, "exempt", nil, "identities that are never credited (default teskann)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "deadline for the GitHub lookup (default none)")

	return cmd
}

func (c *CLI) runAuthor(ctx context.Context, sha, fullName string, opts authorOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	opts.apply(&cfg.Author)
	if err := cfg.Validate(); err != nil {
		return err
	}

	owner, repo, err := errors.ValidateRepository(cfg.Author.Repository)
	if err != nil {
		return err
	}

	token := cfg.Author.Token()
	if token == "" {
		logger.Debug("no API token, sending unauthenticated request", "env", cfg.Author.TokenEnv)
	}
	client := github.NewClient(cfg.Author.APIURL, owner, repo, token)
	resolver := attribution.NewResolver(client, cfg.Author.Exempt, logger)

	if timeout := cfg.Author.Timeout.Duration; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	result := resolver.Resolve(ctx, sha, fullName)
	logger.Debug("author resolution", "kind", result.Kind, "name", result.Name)

	if line := result.Line(); line != "" {
		fmt.Fprintln(c.Out, line)
	}
	return nil
}
