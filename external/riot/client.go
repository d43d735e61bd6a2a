package riot

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/match-ingestion/internal/domain/player"
	"github.com/riskibarqy/match-ingestion/internal/platform/logging"
	"github.com/riskibarqy/match-ingestion/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"
)

const (
	defaultHostTemplate = "https://%s.api.riotgames.com"
	defaultRetryBackoff = 10 * time.Second
	maxResponseBytes    = 8 << 20
	apiKeyHeader        = "X-Riot-Token"
)

var apiKeyRegex = regexp.MustCompile(`RGAPI-[0-9a-fA-F-]+`)
var errRiotTransient = crerr.New("riot transient failure")

// ClientConfig configures the API client. A non-empty BaseURL replaces the per-host
// https://{host}.api.riotgames.com root.
type ClientConfig struct {
	HTTPClient   *http.Client
	BaseURL      string
	APIKey       string
	Timeout      time.Duration
	RetryBackoff time.Duration
	Logger       *logging.Logger
}

// Client talks to the match-v5, account-v1, league-v4 and spectator-v5 APIs.
// Every request gets at most one retry after RetryBackoff; throttling and not-found are never retried.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	apiKey       string
	retryBackoff time.Duration
	logger       *logging.Logger
	flight       singleflight.Group
}

var _ usecase.MatchProvider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}

	return &Client{
		httpClient:   httpClient,
		baseURL:      strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:       strings.TrimSpace(cfg.APIKey),
		retryBackoff: backoff,
		logger:       logger,
	}
}

func (c *Client) FetchMatch(ctx context.Context, region, externalID string) ([]byte, error) {
	route, err := c.matchRoute(region, externalID)
	if err != nil {
		return nil, err
	}
	raw, err := c.get(ctx, route.Cluster, "/lol/match/v5/matches/"+url.PathEscape(externalID), nil)
	if err != nil {
		return nil, fmt.Errorf("fetch match external_id=%s: %w", externalID, err)
	}
	return raw, nil
}

func (c *Client) FetchTimeline(ctx context.Context, region, externalID string) ([]byte, error) {
	route, err := c.matchRoute(region, externalID)
	if err != nil {
		return nil, err
	}
	raw, err := c.get(ctx, route.Cluster, "/lol/match/v5/matches/"+url.PathEscape(externalID)+"/timeline", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch timeline external_id=%s: %w", externalID, err)
	}
	return raw, nil
}

func (c *Client) FetchMatchIDs(ctx context.Context, region, puuid string, query usecase.MatchListQuery) ([]string, error) {
	route, err := ResolveRoute(region)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(puuid) == "" {
		return nil, fmt.Errorf("%w: puuid is required", usecase.ErrInvalidInput)
	}

	values := url.Values{}
	values.Set("start", strconv.Itoa(query.Start))
	if query.Count > 0 {
		values.Set("count", strconv.Itoa(query.Count))
	}
	for _, queue := range query.Queues {
		values.Add("queue", strconv.Itoa(queue))
	}
	if query.StartTime != nil {
		values.Set("startTime", strconv.FormatInt(query.StartTime.Unix(), 10))
	}
	if query.EndTime != nil {
		values.Set("endTime", strconv.FormatInt(query.EndTime.Unix(), 10))
	}

	var ids []string
	path := "/lol/match/v5/matches/by-puuid/" + url.PathEscape(puuid) + "/ids"
	if err := c.getJSON(ctx, route.Cluster, path, values, &ids); err != nil {
		return nil, fmt.Errorf("fetch match ids puuid=%s start=%d: %w", puuid, query.Start, err)
	}
	return ids, nil
}

func (c *Client) FetchAccountByRiotID(ctx context.Context, region, gameName, tagLine string) (usecase.ExternalAccount, error) {
	route, err := ResolveRoute(region)
	if err != nil {
		return usecase.ExternalAccount{}, err
	}

	var payload accountPayload
	path := "/riot/account/v1/accounts/by-riot-id/" + url.PathEscape(gameName) + "/" + url.PathEscape(tagLine)
	if err := c.getJSON(ctx, route.Cluster, path, nil, &payload); err != nil {
		return usecase.ExternalAccount{}, fmt.Errorf("fetch account riot_id=%s#%s: %w", gameName, tagLine, err)
	}
	return usecase.ExternalAccount{
		PUUID:    payload.PUUID,
		GameName: payload.GameName,
		TagLine:  payload.TagLine,
	}, nil
}

func (c *Client) FetchLeagueEntries(ctx context.Context, region, puuid string) ([]player.RankPosition, error) {
	route, err := ResolveRoute(region)
	if err != nil {
		return nil, err
	}

	var payload []leagueEntryPayload
	if err := c.getJSON(ctx, route.Platform, "/lol/league/v4/entries/by-puuid/"+url.PathEscape(puuid), nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch league entries puuid=%s: %w", puuid, err)
	}

	out := make([]player.RankPosition, 0, len(payload))
	for _, item := range payload {
		out = append(out, player.RankPosition{
			QueueType:    item.QueueType,
			Tier:         item.Tier,
			Rank:         item.Rank,
			LeaguePoints: item.LeaguePoints,
			Wins:         item.Wins,
			Losses:       item.Losses,
		})
	}
	return out, nil
}

func (c *Client) FetchLiveGame(ctx context.Context, region, puuid string) (usecase.ExternalLiveGame, error) {
	route, err := ResolveRoute(region)
	if err != nil {
		return usecase.ExternalLiveGame{}, err
	}

	var payload liveGamePayload
	if err := c.getJSON(ctx, route.Platform, "/lol/spectator/v5/active-games/by-summoner/"+url.PathEscape(puuid), nil, &payload); err != nil {
		return usecase.ExternalLiveGame{}, fmt.Errorf("fetch live game puuid=%s: %w", puuid, err)
	}

	out := usecase.ExternalLiveGame{
		GameID:        payload.GameID,
		PlatformID:    payload.PlatformID,
		GameMode:      payload.GameMode,
		QueueID:       payload.QueueID,
		EncryptionKey: payload.Observers.EncryptionKey,
		Participants:  make([]usecase.ExternalLiveParticipant, 0, len(payload.Participants)),
	}
	for _, item := range payload.Participants {
		out.Participants = append(out.Participants, usecase.ExternalLiveParticipant(item))
	}
	return out, nil
}

func (c *Client) matchRoute(region, externalID string) (Route, error) {
	if strings.TrimSpace(externalID) == "" {
		return Route{}, fmt.Errorf("%w: match id is required", usecase.ErrInvalidInput)
	}
	if strings.TrimSpace(region) == "" {
		region = externalID
	}
	return ResolveRoute(region)
}

func (c *Client) getJSON(ctx context.Context, host, path string, query url.Values, target any) error {
	raw, err := c.get(ctx, host, path, query)
	if err != nil {
		return err
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, host, path string, query url.Values) ([]byte, error) {
	fullURL := c.hostURL(host) + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		return c.executeRequest(ctx, fullURL)
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}
	return raw, nil
}

func (c *Client) hostURL(host string) string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return fmt.Sprintf(defaultHostTemplate, host)
}

// executeRequest makes one attempt plus one retry for transient failures.
func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			timer := time.NewTimer(c.retryBackoff)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}

		raw, err := c.do(ctx, fullURL)
		if err == nil {
			return raw, nil
		}
		if !stderrors.Is(err, errRiotTransient) {
			return nil, err
		}
		lastErr = err
		c.logger.WarnContext(ctx, "riot request attempt failed", "url", redactAPIURL(fullURL), "attempt", attempt+1, "error", err)
	}

	return nil, fmt.Errorf("%w: %v", usecase.ErrTransient, lastErr)
}

func (c *Client) do(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: send request: %s", errRiotTransient, sanitizeSensitiveText(err.Error(), c.apiKey))
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxResponseBytes)); err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", errRiotTransient, err)
	}
	body := buf.Bytes()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: retry_after=%s", usecase.ErrThrottled, resp.Header.Get("Retry-After"))
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", usecase.ErrNotFound, redactAPIURL(fullURL))
	case isRetryableStatus(resp.StatusCode):
		return nil, fmt.Errorf("%w: provider status=%d body=%s", errRiotTransient, resp.StatusCode, abbreviateBody(string(body), 240))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("%w: provider status=%d body=%s", usecase.ErrUpstreamRejected, resp.StatusCode, abbreviateBody(string(body), 240))
	}

	if !sonic.Valid(body) {
		return nil, fmt.Errorf("%w: malformed response body", errRiotTransient)
	}

	out := make([]byte, len(body))
	copy(out, body)
	return out, nil
}

func isRetryableStatus(code int) bool {
	return code >= http.StatusInternalServerError
}

func sanitizeSensitiveText(value, apiKey string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if apiKey != "" {
		value = strings.ReplaceAll(value, apiKey, "REDACTED")
	}
	return apiKeyRegex.ReplaceAllString(value, "REDACTED")
}

func redactAPIURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := parsed.Query()
	if query.Has("api_key") {
		query.Set("api_key", "REDACTED")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func abbreviateBody(text string, limit int) string {
	text = strings.TrimSpace(text)
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
