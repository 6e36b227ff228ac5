package grammarly

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/cookiejar"

	"github.com/farcloser/primordium/fault"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/net/publicsuffix"

	"github.com/farcloser/grammarify/internal/types"
)

// Client opens one anonymous checking session per Analyse call.
// It holds no per-session state and is safe for concurrent use.
type Client struct {
	baseURL    string
	socketURL  string
	origin     string
	userAgent  string
	dialect    types.Dialect
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the page fetched to obtain session cookies.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithSocketURL sets the websocket endpoint.
func WithSocketURL(u string) Option {
	return func(c *Client) { c.socketURL = u }
}

// WithDialect sets the English variant to check against.
func WithDialect(d types.Dialect) Option {
	return func(c *Client) { c.dialect = d }
}

// WithUserAgent overrides the browser user agent presented to the service.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithHTTPClient sets the client used for the cookie request. Its Jar is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New returns a Client for the public endpoint unless overridden.
func New(opts ...Option) *Client {
	client := &Client{
		baseURL:    defaultBaseURL,
		socketURL:  defaultSocketURL,
		origin:     defaultOrigin,
		userAgent:  defaultUserAgent,
		dialect:    types.DialectAmerican,
		httpClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Analyse submits text and collects every alert until the service reports the session finished.
// Cancelling ctx aborts the session.
func (c *Client) Analyse(ctx context.Context, text string) (*types.Result, error) {
	slog.Debug("grammarly.Analyse", "stage", "start", "length", len(text))

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	if err = c.fetchCookies(ctx, jar); err != nil {
		return nil, err
	}

	conn, err := c.dial(ctx, jar)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	// Unblocks the read loop when the caller gives up.
	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	if err = c.submit(conn, text); err != nil {
		return nil, contextOr(ctx, err)
	}

	result, err := collect(conn, text)
	if err != nil {
		slog.Debug("grammarly.Analyse", "stage", "error")

		return nil, contextOr(ctx, err)
	}

	slog.Debug("grammarly.Analyse", "stage", "finished", "alerts", len(result.Alerts))

	return result, nil
}

func (c *Client) fetchCookies(ctx context.Context, jar http.CookieJar) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return fmt.Errorf("building cookie request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html")

	hc := *c.httpClient
	hc.Jar = jar

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: fetching %s session cookies: %w", fault.ErrCommandFailure, name, err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: fetching %s session cookies: status %d", fault.ErrCommandFailure, name, resp.StatusCode)
	}

	return nil
}

func (c *Client) dial(ctx context.Context, jar http.CookieJar) (*websocket.Conn, error) {
	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: handshakeTimeout,
		Jar:              jar,
	}

	header := http.Header{}
	header.Set("Origin", c.origin)
	header.Set("User-Agent", c.userAgent)

	conn, resp, err := dialer.DialContext(ctx, c.socketURL, header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, fmt.Errorf("%w: %s handshake after %v", fault.ErrTimeout, name, handshakeTimeout)
		}

		return nil, fmt.Errorf("%w: connecting to %s: %w", fault.ErrCommandFailure, name, err)
	}

	return conn, nil
}

func (c *Client) submit(conn *websocket.Conn, text string) error {
	start := startFrame{
		Type:            "initial",
		DocID:           uuid.NewString(),
		Client:          clientName,
		ProtocolVersion: protocolVersion,
		ClientSupports:  clientSupports,
		Dialect:         c.dialect.String(),
		ClientVersion:   clientVersion,
		ExtDomain:       extDomain,
		Action:          actionStart,
		ID:              0,
	}

	if err := conn.WriteJSON(start); err != nil {
		return fmt.Errorf("%w: sending start frame: %w", fault.ErrCommandFailure, err)
	}

	document := submitFrame{
		Ch:     []string{"+0:0:" + text + ":0"},
		Rev:    0,
		Action: actionSubmitOT,
		ID:     0,
	}

	if err := conn.WriteJSON(document); err != nil {
		return fmt.Errorf("%w: sending document: %w", fault.ErrCommandFailure, err)
	}

	return nil
}

func collect(conn *websocket.Conn, text string) (*types.Result, error) {
	result := &types.Result{Original: text}

	for {
		kind, payload, err := conn.ReadMessage()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSessionClosed, err)
		}

		if kind != websocket.TextMessage {
			continue
		}

		var frame inboundFrame
		if err = json.Unmarshal(payload, &frame); err != nil {
			return nil, fmt.Errorf("%w: %w", fault.ErrInvalidJSON, err)
		}

		switch frame.Action {
		case actionAlert:
			result.Alerts = append(result.Alerts, frame.toAlert())
		case actionRemove:
			result.Alerts = removeAlert(result.Alerts, frame.ID)
		case actionFinished:
			result.Score = frame.Score
			result.GeneralScore = frame.GeneralScore

			return result, nil
		case actionError:
			return nil, fmt.Errorf("%w: %s (%s)", ErrServiceError, frame.Error, frame.Severity)
		default:
			// start and submit_ot acknowledgements, emotions, stats...
		}
	}
}

func removeAlert(alerts []types.Alert, id int) []types.Alert {
	kept := alerts[:0]

	for _, alert := range alerts {
		if alert.ID != id {
			kept = append(kept, alert)
		}
	}

	return kept
}

// contextOr prefers the context error when the session was aborted by the caller.
func contextOr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s session aborted: %w", name, ctxErr)
	}

	return err
}
