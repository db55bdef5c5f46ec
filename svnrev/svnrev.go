package svnrev

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/progress"
	"github.com/bitrise-io/go-utils/stringutil"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/hashicorp/go-version"
	"github.com/kballard/go-shellquote"
)

// ErrMalformedEndpoint marks an SVN repository URL that cannot be used.
var ErrMalformedEndpoint = errors.New("malformed SVN repository URL")

// outputTailLines limits how much svn output a protocol error carries.
const outputTailLines = 10

// Repository is a validated SVN endpoint with optional credentials. Empty
// credentials mean anonymous access.
type Repository struct {
	url               *url.URL
	username          string
	password          stepconf.Secret
	additionalOptions []string
}

// NewRepository validates and normalizes the endpoint URL and parses the
// extra svn command line options.
func NewRepository(rawURL, username string, password stepconf.Secret, additionalOptions string) (Repository, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return Repository{}, fmt.Errorf("%w (%s): %s", ErrMalformedEndpoint, rawURL, err)
	}
	if parsed.Scheme == "" {
		return Repository{}, fmt.Errorf("%w (%s): missing scheme", ErrMalformedEndpoint, rawURL)
	}
	if parsed.Host == "" && parsed.Scheme != "file" {
		return Repository{}, fmt.Errorf("%w (%s): missing host", ErrMalformedEndpoint, rawURL)
	}
	parsed.Path = strings.TrimSuffix(parsed.Path, "/")

	var options []string
	if additionalOptions != "" {
		options, err = shellquote.Split(additionalOptions)
		if err != nil {
			return Repository{}, fmt.Errorf("parse additional svn options (%s): %s", additionalOptions, err)
		}
	}

	return Repository{
		url:               parsed,
		username:          username,
		password:          password,
		additionalOptions: options,
	}, nil
}

// URL returns the normalized repository endpoint.
func (r Repository) URL() *url.URL {
	return r.url
}

// ProtocolError marks a failed exchange with the SVN repository.
type ProtocolError struct {
	RepoURL string
	Output  string
	Err     error
}

func (e *ProtocolError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("query SVN repository (%s): %s: %s", e.RepoURL, e.Err, e.Output)
	}
	return fmt.Sprintf("query SVN repository (%s): %s", e.RepoURL, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// Client reads repository information through the svn command line tool.
type Client interface {
	Version() (*version.Version, error)
	LatestRevision(repo Repository) (int64, error)
}

type client struct {
	commandFactory command.Factory
	logger         log.Logger
}

// NewClient ...
func NewClient(commandFactory command.Factory, logger log.Logger) Client {
	return &client{
		commandFactory: commandFactory,
		logger:         logger,
	}
}

// Version reports the installed svn client version.
func (c *client) Version() (*version.Version, error) {
	cmd := c.commandFactory.Create("svn", []string{"--version", "--quiet"}, nil)

	out, err := cmd.RunAndReturnTrimmedCombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("get svn version: %w", err)
	}

	ver, err := version.NewVersion(out)
	if err != nil {
		return nil, fmt.Errorf("parse svn version (%s): %w", out, err)
	}

	return ver, nil
}

// LatestRevision asks the repository HEAD for its revision number.
func (c *client) LatestRevision(repo Repository) (int64, error) {
	args := []string{"info", repo.url.String(), "--show-item", "revision", "--non-interactive"}
	if repo.username != "" {
		args = append(args, "--username", repo.username)
	}
	if repo.password != "" {
		args = append(args, "--password", string(repo.password))
	}
	args = append(args, repo.additionalOptions...)

	cmd := c.commandFactory.Create("svn", args, nil)
	c.logger.Printf("$ %s", printableArgs(args))

	var out string
	var err error
	progress.SimpleProgress(".", 5*time.Second, func() {
		out, err = cmd.RunAndReturnTrimmedCombinedOutput()
	})
	if err != nil {
		return 0, &ProtocolError{RepoURL: repo.url.String(), Output: stringutil.LastNLines(out, outputTailLines), Err: err}
	}

	revision, err := strconv.ParseInt(strings.TrimSpace(out), 10, 64)
	if err != nil {
		return 0, &ProtocolError{RepoURL: repo.url.String(), Output: stringutil.LastNLines(out, outputTailLines), Err: errors.New("unexpected revision output")}
	}
	if revision <= 0 {
		return 0, &ProtocolError{RepoURL: repo.url.String(), Err: fmt.Errorf("repository reported revision %d", revision)}
	}

	return revision, nil
}

// printableArgs renders the svn command line with the password redacted.
func printableArgs(args []string) string {
	printable := make([]string, len(args))
	for i, arg := range args {
		printable[i] = arg
		if i > 0 && args[i-1] == "--password" {
			printable[i] = "[REDACTED]"
		}
	}

	return strings.Join(append([]string{"svn"}, printable...), " ")
}
