// Package gateway provides a gateway to the public GitHub REST API,
// abstracting away the underlying go-github client.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"go.uber.org/zap"

	"github.com/naka-gawa/portfolio/internal/domain"
)

// Page sizes requested from the API.
const (
	RepoLimit  = 6
	EventLimit = 100
)

// Fetcher defines the behavior of a gateway for fetching public GitHub data.
type Fetcher interface {
	FetchProfile(ctx context.Context, handle string) (*domain.Profile, error)
	FetchRepositories(ctx context.Context, handle string) ([]domain.Repository, error)
	FetchEvents(ctx context.Context, handle string) ([]domain.ActivityEvent, error)
}

// StatusError reports a response that arrived with a non-success status code.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s request returned status %d: %v", e.Endpoint, e.StatusCode, e.Err)
}

func (e *StatusError) Unwrap() error { return e.Err }

// GitHubGateway is the concrete implementation of the Fetcher interface.
// Requests are unauthenticated.
type GitHubGateway struct {
	restClient *github.Client
	logger     *zap.Logger
}

// NewGitHubGateway creates a gateway using httpClient (http.DefaultClient when nil).
// An empty baseURL keeps the public api.github.com endpoint.
func NewGitHubGateway(httpClient *http.Client, baseURL string, logger *zap.Logger) (*GitHubGateway, error) {
	client := github.NewClient(httpClient)
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", baseURL, err)
		}
		client.BaseURL = u
	}
	return &GitHubGateway{restClient: client, logger: logger}, nil
}

// FetchProfile fetches the public profile of handle.
func (g *GitHubGateway) FetchProfile(ctx context.Context, handle string) (*domain.Profile, error) {
	g.logger.Debug("fetching profile", zap.String("handle", handle))
	user, resp, err := g.restClient.Users.Get(ctx, handle)
	if err != nil {
		return nil, wrapError("profile", resp, err)
	}
	return &domain.Profile{
		Login:       user.GetLogin(),
		AvatarURL:   user.GetAvatarURL(),
		HTMLURL:     user.GetHTMLURL(),
		Name:        user.GetName(),
		Bio:         user.GetBio(),
		PublicRepos: user.GetPublicRepos(),
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
		CreatedAt:   user.GetCreatedAt().Time,
	}, nil
}

// FetchRepositories fetches the most recently updated repositories of handle.
func (g *GitHubGateway) FetchRepositories(ctx context.Context, handle string) ([]domain.Repository, error) {
	g.logger.Debug("fetching repositories", zap.String("handle", handle))
	opts := &github.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: RepoLimit},
	}
	repos, resp, err := g.restClient.Repositories.ListByUser(ctx, handle, opts)
	if err != nil {
		return nil, wrapError("repositories", resp, err)
	}
	out := make([]domain.Repository, 0, len(repos))
	for _, r := range repos {
		out = append(out, domain.Repository{
			ID:          r.GetID(),
			Name:        r.GetName(),
			HTMLURL:     r.GetHTMLURL(),
			Description: r.GetDescription(),
			Language:    r.GetLanguage(),
			Stars:       r.GetStargazersCount(),
			Forks:       r.GetForksCount(),
			UpdatedAt:   r.GetUpdatedAt().Time,
		})
	}
	return out, nil
}

// FetchEvents fetches the public events performed by handle, newest first.
func (g *GitHubGateway) FetchEvents(ctx context.Context, handle string) ([]domain.ActivityEvent, error) {
	g.logger.Debug("fetching public events", zap.String("handle", handle))
	start := time.Now()
	events, resp, err := g.restClient.Activity.ListEventsPerformedByUser(ctx, handle, true, &github.ListOptions{PerPage: EventLimit})
	if err != nil {
		return nil, wrapError("events", resp, err)
	}
	out := make([]domain.ActivityEvent, 0, len(events))
	for _, e := range events {
		out = append(out, domain.ActivityEvent{
			ID:        e.GetID(),
			Type:      e.GetType(),
			RepoName:  e.GetRepo().GetName(),
			CreatedAt: e.GetCreatedAt().Time,
		})
	}
	g.logger.Debug("fetched public events", zap.Int("count", len(out)), zap.Duration("elapsed", time.Since(start)))
	return out, nil
}

func wrapError(endpoint string, resp *github.Response, err error) error {
	if resp != nil && resp.Response != nil && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Err: err}
	}
	return fmt.Errorf("failed to fetch %s: %w", endpoint, err)
}
