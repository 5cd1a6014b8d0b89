package piano

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"go.mau.fi/util/random"
)

const (
	DefaultBaseURL         = "https://www.pandora.com"
	DefaultProtocolVersion = "20"
	DefaultMaxRetries      = 3
)

// HTTPDoer executes HTTP requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds the configuration for [NewClient].
type ClientConfig struct {
	// BaseURL is the service root. Defaults to [DefaultBaseURL].
	BaseURL string
	// ProtocolVersion is the XML-RPC endpoint version. Defaults to
	// [DefaultProtocolVersion].
	ProtocolVersion string

	// HTTPClient defaults to a client with a 30 second timeout.
	HTTPClient HTTPDoer

	// Encrypter encrypts request bodies (required).
	Encrypter Encrypter
	// Decrypter decrypts the audio URLs of playlist entries (required).
	Decrypter Decrypter

	// MaxRetries is how often a call is retried after a transport failure
	// or a 5xx response. Defaults to [DefaultMaxRetries].
	MaxRetries uint64
	// RetryInterval is the first backoff interval. Defaults to 500ms.
	RetryInterval time.Duration

	Logger zerolog.Logger
}

// Client talks to the service's XML-RPC endpoint. Calls made after Login use
// its session; Login itself must not run concurrently with other calls.
type Client struct {
	endpoint   *url.URL
	httpClient HTTPDoer
	encrypter  Encrypter
	decrypter  Decrypter
	maxRetries uint64
	retryInt   time.Duration
	log        zerolog.Logger

	user *UserInfo
}

func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.Encrypter == nil || cfg.Decrypter == nil {
		return nil, errors.New("both an encrypter and a decrypter are required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.ProtocolVersion == "" {
		cfg.ProtocolVersion = DefaultProtocolVersion
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.RetryInterval == 0 {
		cfg.RetryInterval = 500 * time.Millisecond
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	return &Client{
		endpoint:   base.JoinPath("radio", "xmlrpc", "v"+cfg.ProtocolVersion),
		httpClient: cfg.HTTPClient,
		encrypter:  cfg.Encrypter,
		decrypter:  cfg.Decrypter,
		maxRetries: cfg.MaxRetries,
		retryInt:   cfg.RetryInterval,
		log:        cfg.Logger,
	}, nil
}

// User returns the session of the last successful [Client.Login], or nil.
func (c *Client) User() *UserInfo {
	return c.user
}

// call sends method with params and returns the raw response document.
func (c *Client) call(ctx context.Context, method string, params ...any) (string, error) {
	body, err := EncodeRequest(method, params...)
	if err != nil {
		return "", err
	}

	q := callQuery{
		RouteID: random.String(7) + "P",
		Method:  method[strings.LastIndex(method, ".")+1:],
	}
	if c.user != nil {
		q.ListenerID = c.user.ListenerID
	}
	query, err := marshalQuery(q)
	if err != nil {
		return "", err
	}
	u := *c.endpoint
	u.RawQuery = query.Encode()

	log := c.log.With().Str("method", method).Str("rid", q.RouteID).Logger()
	encrypted := c.encrypter.Encrypt(body)

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.retryInt
	bo := backoff.WithContext(backoff.WithMaxRetries(exp, c.maxRetries), ctx)
	var doc string
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), strings.NewReader(encrypted))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "text/xml")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			log.Warn().Err(err).Msg("request failed")
			return err
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		switch {
		case resp.StatusCode >= 500:
			log.Warn().Int("status", resp.StatusCode).Msg("server error")
			return fmt.Errorf("server returned status %d", resp.StatusCode)
		case resp.StatusCode >= 300:
			return backoff.Permanent(fmt.Errorf("server returned status %d", resp.StatusCode))
		}
		log.Debug().Int("status", resp.StatusCode).Int("bytes", len(respBody)).Msg("call finished")
		doc = string(respBody)
		return nil
	}
	if err := backoff.Retry(operation, bo); err != nil {
		return "", fmt.Errorf("call %s: %w", method, err)
	}
	return doc, nil
}

// callSimple performs a call whose response is a single acknowledgement flag.
func (c *Client) callSimple(ctx context.Context, method string, params ...any) error {
	doc, err := c.call(ctx, method, params...)
	if err != nil {
		return err
	}
	result, err := ParseSimpleResult(doc)
	if err != nil {
		return fmt.Errorf("parse %s response: %w", method, err)
	}
	if result != ResultOK {
		return fmt.Errorf("%s: %w", method, ErrNotAcknowledged)
	}
	return nil
}

func (c *Client) authToken() (string, error) {
	if c.user == nil || c.user.AuthToken == "" {
		return "", ErrNotLoggedIn
	}
	return c.user.AuthToken, nil
}
