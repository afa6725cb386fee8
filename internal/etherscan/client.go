package etherscan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// DefaultBaseURL is the Etherscan V2 unified endpoint
	DefaultBaseURL = "https://api.etherscan.io/v2/api"

	// MainnetChainID selects Ethereum mainnet on the V2 endpoint
	MainnetChainID = 1

	// StatusOK is the explorer's own success flag, distinct from the HTTP status
	StatusOK = "1"

	txListPage   = 1
	txListOffset = 100
)

// ErrInvalidJSON is returned when the explorer answers with a body that is not JSON
var ErrInvalidJSON = errors.New("response body is not valid JSON")

// Response is an explorer reply. Status, Message and Result are lifted out of
// the envelope; Raw keeps the body exactly as received.
type Response struct {
	Status  string
	Message string
	Result  json.RawMessage
	Raw     json.RawMessage
}

// OK reports whether the explorer flagged the call as successful
func (r *Response) OK() bool {
	return r.Status == StatusOK
}

// Client issues account queries against the explorer. One outbound attempt
// per call, bounded by the client timeout.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given endpoint
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchBalance returns the latest balance document for address
func (c *Client) FetchBalance(ctx context.Context, address, apiKey string) (*Response, error) {
	q := c.query("balance", address, apiKey)
	q.Set("tag", "latest")
	return c.get(ctx, q)
}

// FetchTransactions returns the most recent normal transactions of address,
// newest first, first page only
func (c *Client) FetchTransactions(ctx context.Context, address, apiKey string) (*Response, error) {
	q := c.query("txlist", address, apiKey)
	q.Set("page", strconv.Itoa(txListPage))
	q.Set("offset", strconv.Itoa(txListOffset))
	q.Set("sort", "desc")
	return c.get(ctx, q)
}

func (c *Client) query(action, address, apiKey string) url.Values {
	q := url.Values{}
	q.Set("chainid", strconv.Itoa(MainnetChainID))
	q.Set("module", "account")
	q.Set("action", action)
	q.Set("address", address)
	q.Set("apikey", apiKey)
	return q
}

func (c *Client) get(ctx context.Context, q url.Values) (*Response, error) {
	reqURL := c.baseURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", RedactURL(reqURL), unwrapURLError(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return Decode(body)
}

// Decode parses an explorer body. Any valid JSON is accepted; the envelope
// members are only filled when the body is an object.
func Decode(body []byte) (*Response, error) {
	if !json.Valid(body) {
		return nil, ErrInvalidJSON
	}

	r := &Response{Raw: json.RawMessage(body)}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return r, nil
	}
	// Non-string status or message are left empty
	if s, ok := envelope["status"]; ok {
		_ = json.Unmarshal(s, &r.Status)
	}
	if m, ok := envelope["message"]; ok {
		_ = json.Unmarshal(m, &r.Message)
	}
	r.Result = envelope["result"]

	return r, nil
}

// RedactURL masks the apikey query parameter
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if q.Has("apikey") {
		q.Set("apikey", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// unwrapURLError drops the *url.Error wrapper, which repeats the unredacted URL
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
