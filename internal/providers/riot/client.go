package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/lol-match-coach/internal/domain/matches"
	"github.com/preston-bernstein/lol-match-coach/internal/domain/routing"
	"github.com/preston-bernstein/lol-match-coach/internal/logging"
	"github.com/preston-bernstein/lol-match-coach/internal/providers"
)

// Config controls how the client reaches the Riot API.
type Config struct {
	// BaseURL may contain "{route}", replaced by the platform or regional host label.
	BaseURL         string
	APIKey          string
	HTTPClient      *http.Client
	Routes          routing.Table
	LookupTimeout   time.Duration
	TimelineTimeout time.Duration
	Logger          *slog.Logger
}

// Client resolves identities and fetches match records from the Riot API.
type Client struct {
	baseURL         string
	apiKey          string
	httpClient      httpDoer
	routes          routing.Table
	lookupTimeout   time.Duration
	timelineTimeout time.Duration
	logger          *slog.Logger
}

// NewClient constructs a Riot API client. A missing key is not an error here;
// every call reports providers.ErrNotConfigured instead.
func NewClient(cfg Config) *Client {
	if cfg.Routes.Empty() {
		cfg.Routes = routing.DefaultTable()
	}
	return &Client{
		baseURL:         normalizeBaseURL(cfg.BaseURL),
		apiKey:          strings.TrimSpace(cfg.APIKey),
		httpClient:      resolveHTTPClient(cfg.HTTPClient),
		routes:          cfg.Routes,
		lookupTimeout:   resolveTimeout(cfg.LookupTimeout, defaultLookupTimeout),
		timelineTimeout: resolveTimeout(cfg.TimelineTimeout, defaultTimelineTimeout),
		logger:          cfg.Logger,
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// LookupPUUID resolves a Riot ID through the regional account service and falls
// back to the platform summoner-by-name lookup when the account is not found.
func (c *Client) LookupPUUID(ctx context.Context, gameName, tagLine string, platform routing.Platform) (string, error) {
	gameName = strings.TrimSpace(gameName)
	tagLine = strings.TrimSpace(tagLine)
	if gameName == "" {
		return "", fmt.Errorf("riot: empty game name: %w", providers.ErrNotFound)
	}

	if tagLine != "" {
		var account accountResponse
		path := fmt.Sprintf(accountByRiotIDPath, url.PathEscape(gameName), url.PathEscape(tagLine))
		err := c.getJSON(ctx, c.lookupTimeout, c.regionalHost(platform), path, nil, &account)
		switch {
		case err == nil && account.PUUID != "":
			return account.PUUID, nil
		case err != nil && !errors.Is(err, providers.ErrNotFound):
			return "", err
		}
		c.logDebug(ctx, "account lookup missed, trying summoner by name", platform)
	}

	var summoner summonerResponse
	path := fmt.Sprintf(summonerByNamePath, url.PathEscape(gameName))
	if err := c.getJSON(ctx, c.lookupTimeout, c.platformHost(platform), path, nil, &summoner); err != nil {
		return "", err
	}
	if summoner.PUUID == "" {
		return "", fmt.Errorf("riot: summoner %q has no puuid: %w", gameName, providers.ErrNotFound)
	}
	return summoner.PUUID, nil
}

// ListRecentMatchIDs returns up to count match ids for the player, most recent first.
func (c *Client) ListRecentMatchIDs(ctx context.Context, puuid string, count int, platform routing.Platform) ([]string, error) {
	q := url.Values{}
	q.Set("start", "0")
	q.Set("count", strconv.Itoa(count))

	var ids []string
	path := fmt.Sprintf(matchIDsPath, url.PathEscape(puuid))
	if err := c.getJSON(ctx, c.lookupTimeout, c.regionalHost(platform), path, q, &ids); err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// FetchMatch retrieves the full match record.
func (c *Client) FetchMatch(ctx context.Context, matchID string, platform routing.Platform) (matches.Match, error) {
	var resp matchResponse
	path := fmt.Sprintf(matchPath, url.PathEscape(matchID))
	if err := c.getJSON(ctx, c.lookupTimeout, c.matchHost(matchID, platform), path, nil, &resp); err != nil {
		return matches.Match{}, err
	}
	m := mapMatch(resp)
	if m.ID == "" {
		m.ID = matchID
	}
	return m, nil
}

// FetchTimeline retrieves the frame/event stream of a match.
func (c *Client) FetchTimeline(ctx context.Context, matchID string, platform routing.Platform) (matches.Timeline, error) {
	var resp timelineResponse
	path := fmt.Sprintf(timelinePath, url.PathEscape(matchID))
	if err := c.getJSON(ctx, c.timelineTimeout, c.matchHost(matchID, platform), path, nil, &resp); err != nil {
		return matches.Timeline{}, err
	}
	tl := mapTimeline(resp)
	if tl.MatchID == "" {
		tl.MatchID = matchID
	}
	return tl, nil
}

func (c *Client) platformHost(platform routing.Platform) string {
	return hostFor(c.baseURL, string(routing.Normalize(string(platform))))
}

func (c *Client) regionalHost(platform routing.Platform) string {
	return hostFor(c.baseURL, string(c.routes.Region(routing.Normalize(string(platform)))))
}

// matchHost routes by the platform prefix of the match id when it is a known shard.
func (c *Client) matchHost(matchID string, platform routing.Platform) string {
	if prefix, _, ok := strings.Cut(matchID, "_"); ok {
		if p := routing.Normalize(prefix); c.routes.Known(p) {
			platform = p
		}
	}
	return c.regionalHost(platform)
}

func (c *Client) getJSON(ctx context.Context, timeout time.Duration, host, path string, query url.Values, out any) error {
	if c.apiKey == "" {
		return providers.ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	target := host + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &providers.TransportError{Provider: providerName, Op: path, Err: err}
	}
	req.Header.Set(tokenHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &providers.TransportError{Provider: providerName, Op: path, Err: err}
	}
	defer resp.Body.Close()

	logging.Debug(logging.FromContext(ctx, c.logger), "riot request",
		logging.FieldProvider, providerName,
		logging.FieldPath, path,
		logging.FieldStatusCode, resp.StatusCode,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    "riot: rate limited",
		}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("riot: unexpected status %d on %s: %s: %w",
			resp.StatusCode, path, strings.TrimSpace(string(body)), providers.ErrNotFound)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &providers.TransportError{Provider: providerName, Op: path, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

func (c *Client) logDebug(ctx context.Context, msg string, platform routing.Platform) {
	logging.Debug(logging.FromContext(ctx, c.logger), msg,
		logging.FieldProvider, providerName,
		logging.FieldPlatform, string(platform),
	)
}
