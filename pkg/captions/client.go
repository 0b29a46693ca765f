package captions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/tidwall/gjson"

	"github.com/goliatone/go-studioedit/pkg/host"
)

// NoCaptionsMessage is returned when the host lists no assets.
const NoCaptionsMessage = "No captions/transcripts available for selected video."

// Asset is one downloadable caption file.
type Asset struct {
	DownloadURL string `json:"download_url"`
	NameFile    string `json:"name_file"`
}

// Result is a successful fetch. Exactly one of Message and Assets is set.
type Result struct {
	Message string
	Assets  []Asset
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for fetches.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithEmptyMessage replaces NoCaptionsMessage, typically with a translation.
func WithEmptyMessage(message string) Option {
	return func(c *Client) {
		if strings.TrimSpace(message) != "" {
			c.emptyMessage = message
		}
	}
}

// Client calls the get_captions handler.
type Client struct {
	runtime      host.Runtime
	http         *http.Client
	emptyMessage string
}

// NewClient builds a client bound to runtime.
func NewClient(runtime host.Runtime, opts ...Option) (*Client, error) {
	if runtime == nil {
		return nil, fmt.Errorf("captions: runtime is required")
	}
	c := &Client{
		runtime:      runtime,
		http:         http.DefaultClient,
		emptyMessage: NoCaptionsMessage,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

type fetchRequest struct {
	AssetID string `json:"asset_id"`
}

// Fetch posts {asset_id} and interprets the reply. A {result:"error"} envelope
// and an empty list both come back as Result.Message.
func (c *Client) Fetch(ctx context.Context, assetID string) (Result, error) {
	if strings.TrimSpace(assetID) == "" {
		return Result{}, ErrAssetRequired
	}
	endpoint, err := c.runtime.HandlerURL(host.HandlerGetCaptions)
	if err != nil {
		return Result{}, err
	}

	payload, err := json.Marshal(fetchRequest{AssetID: assetID})
	if err != nil {
		return Result{}, fmt.Errorf("captions: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("captions: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, &TransportError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, &TransportError{Status: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, &TransportError{Status: resp.StatusCode, Body: body}
	}
	result, err := c.decode(body)
	if err != nil {
		return Result{}, &TransportError{Status: resp.StatusCode, Body: body, Err: err}
	}
	return result, nil
}

func (c *Client) decode(body []byte) (Result, error) {
	if !gjson.ValidBytes(body) {
		return Result{}, ErrMalformedResponse
	}
	parsed := gjson.ParseBytes(body)
	if parsed.IsObject() && parsed.Get("result").String() == "error" {
		return Result{Message: sanitize(parsed.Get("message").String())}, nil
	}
	if !parsed.IsArray() {
		return Result{}, ErrMalformedResponse
	}

	var assets []Asset
	if err := json.Unmarshal(body, &assets); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(assets) == 0 {
		return Result{Message: c.emptyMessage}, nil
	}
	for i := range assets {
		assets[i].NameFile = sanitize(assets[i].NameFile)
	}
	return Result{Assets: assets}, nil
}

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

func sanitize(raw string) string {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(strictPolicy.Sanitize(raw))
}
