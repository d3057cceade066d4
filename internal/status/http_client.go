package status

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/genricoloni/artblob/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"
)

const (
	_maxImageSize  = 10 * 1024 * 1024 // 10 MB
	_maxStatusSize = 1024 * 1024
	userAgent      = "artblob/1.0"
)

// Ensure HTTPClient implements domain.StatusClient at compile time.
var _ domain.StatusClient = (*HTTPClient)(nil)

// HTTPClient talks to the Acoustics HTTP API.
// All requests share one cookie jar, so a session established by
// Authenticate applies to every later call.
type HTTPClient struct {
	logger        *zap.Logger
	client        *http.Client
	statusURL     string
	authURL       string
	authenticated atomic.Bool
}

// NewHTTPClient builds a client for the API rooted at prefix.
// A zero timeout leaves requests bounded only by their context.
func NewHTTPClient(logger *zap.Logger, prefix, statusPath, authPath string, timeout time.Duration) (*HTTPClient, error) {
	base, err := url.Parse(prefix)
	if err != nil {
		return nil, fmt.Errorf("parse api prefix %q: %w", prefix, err)
	}

	statusURL, err := base.Parse(statusPath)
	if err != nil {
		return nil, fmt.Errorf("parse status path %q: %w", statusPath, err)
	}
	authURL, err := base.Parse(authPath)
	if err != nil {
		return nil, fmt.Errorf("parse auth path %q: %w", authPath, err)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	return &HTTPClient{
		logger:    logger,
		statusURL: statusURL.String(),
		authURL:   authURL.String(),
		client: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
	}, nil
}

// NewFromConfig builds the client described by cfg
func NewFromConfig(logger *zap.Logger, cfg domain.Config) (*HTTPClient, error) {
	return NewHTTPClient(logger, cfg.GetURL(), cfg.GetStatusPath(), cfg.GetAuthPath(), cfg.GetTimeout())
}

// nowPlayingResponse mirrors the status endpoint body.
// now_playing is kept raw so a malformed value degrades to "nothing playing"
// instead of failing the whole decode.
type nowPlayingResponse struct {
	NowPlaying json.RawMessage `json:"now_playing"`
}

// Query polls the status endpoint. Any failure is reported as nothing playing.
func (c *HTTPClient) Query(ctx context.Context) domain.QueryResult {
	body, err := c.get(ctx, c.statusURL, _maxStatusSize)
	if err != nil {
		c.logger.Debug("Status query failed, treating as nothing playing", zap.Error(err))
		return domain.QueryResult{}
	}

	track, err := decodeNowPlaying(body)
	if err != nil {
		c.logger.Debug("Malformed status response, treating as nothing playing", zap.Error(err))
		return domain.QueryResult{}
	}
	return domain.QueryResult{NowPlaying: track}
}

func decodeNowPlaying(body []byte) (*domain.TrackInfo, error) {
	var payload nowPlayingResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(payload.NowPlaying) == 0 || string(payload.NowPlaying) == "null" {
		return nil, nil
	}

	var track domain.TrackInfo
	if err := json.Unmarshal(payload.NowPlaying, &track); err != nil {
		return nil, fmt.Errorf("decode now_playing: %w", err)
	}
	if track.SongID == "" {
		return nil, errors.New("now_playing has no song_id")
	}
	return &track, nil
}

// FetchArtwork downloads album art for a song. Unlike Query, failures are returned.
func (c *HTTPClient) FetchArtwork(ctx context.Context, songID domain.SongID, size int) ([]byte, error) {
	artURL := c.modeURL("art",
		"song_id", string(songID),
		"size", strconv.Itoa(size))

	data, err := c.get(ctx, artURL, _maxImageSize)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("empty artwork body")
	}

	c.logger.Debug("Artwork fetched successfully",
		zap.Int("bytes", len(data)),
		zap.String("songID", string(songID)),
		zap.Int("size", size))
	return data, nil
}

// SendControl issues a playback command. The response and any failure are discarded.
func (c *HTTPClient) SendControl(ctx context.Context, action domain.ControlAction) {
	mode, err := action.Mode()
	if err != nil {
		c.logger.Warn("Ignoring control action", zap.Error(err))
		return
	}

	if _, err := c.get(ctx, c.modeURL(mode), _maxStatusSize); err != nil {
		c.logger.Debug("Control request failed", zap.String("action", string(action)), zap.Error(err))
		return
	}
	c.logger.Debug("Control request sent", zap.String("action", string(action)))
}

// Authenticate performs one Basic-Auth handshake against the auth endpoint.
// The session cookie it yields is kept in the client's jar.
func (c *HTTPClient) Authenticate(ctx context.Context, user, password string) bool {
	req, err := c.newRequest(ctx, c.authURL)
	if err != nil {
		c.logger.Warn("Failed to create auth request", zap.Error(err))
		return false
	}
	token := base64.StdEncoding.EncodeToString([]byte(user + ":" + password))
	req.Header.Set("Authorization", "Basic "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("Authentication failed", zap.String("user", user), zap.Error(err))
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, _maxStatusSize))

	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.Warn("Authentication rejected",
			zap.String("user", user),
			zap.Int("status", resp.StatusCode))
		return false
	}

	c.authenticated.Store(true)
	c.logger.Info("Authenticated", zap.String("user", user))
	return true
}

// IsAuthenticated reports whether a previous Authenticate call succeeded
func (c *HTTPClient) IsAuthenticated() bool {
	return c.authenticated.Load()
}

// modeURL builds "<status>?mode=<mode>;k=v;..." the way the server expects,
// with ';' separating parameters
func (c *HTTPClient) modeURL(mode string, kv ...string) string {
	u := c.statusURL + "?mode=" + url.QueryEscape(mode)
	for i := 0; i+1 < len(kv); i += 2 {
		u += ";" + kv[i] + "=" + url.QueryEscape(kv[i+1])
	}
	return u
}

func (c *HTTPClient) newRequest(ctx context.Context, rawURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	return req, nil
}

func (c *HTTPClient) get(ctx context.Context, rawURL string, limit int64) ([]byte, error) {
	req, err := c.newRequest(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	// Read one byte past the limit so an oversized body is rejected, not truncated
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("response exceeds %d bytes", limit)
	}
	return data, nil
}
