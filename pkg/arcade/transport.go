package arcade

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 10 << 20

// Params is a flat map of query parameters. Nil values are omitted; other
// values are stringified.
type Params map[string]any

// Outcome is the classification of a single transport attempt.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeRetryable
	OutcomeTerminal
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeRetryable:
		return "retryable"
	case OutcomeTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Request describes one outbound call. It is immutable once built.
type Request struct {
	Method string
	URL    string
	Header http.Header
}

// Result is what a Transport returns for one attempt. Body is set on
// success; Err is set otherwise.
type Result struct {
	Outcome    Outcome
	StatusCode int
	Body       json.RawMessage
	Err        *APIError
}

// Transport performs a single attempt of a request.
type Transport interface {
	Send(ctx context.Context, req Request) Result
}

// HTTPTransport is a Transport over net/http with a per-attempt deadline.
type HTTPTransport struct {
	client  *http.Client
	timeout time.Duration
}

// NewHTTPTransport returns a transport that aborts each attempt after
// timeout. A nil client uses a fresh http.Client.
func NewHTTPTransport(client *http.Client, timeout time.Duration) *HTTPTransport {
	if client == nil {
		client = &http.Client{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPTransport{client: client, timeout: timeout}
}

// Send issues req once and classifies the response.
func (t *HTTPTransport) Send(ctx context.Context, req Request) Result {
	attemptCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(attemptCtx, req.Method, req.URL, nil)
	if err != nil {
		return Result{
			Outcome: OutcomeTerminal,
			Err:     &APIError{Code: "RequestError", Message: err.Error(), Kind: KindConfig, cause: err},
		}
	}
	for k, v := range req.Header {
		httpReq.Header[k] = v
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return classifyTransportError(ctx, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		if err := json.Unmarshal(body, &eb); err != nil {
			eb = errorBody{}
		}
		apiErr := newUpstreamError(resp.StatusCode, eb)
		outcome := OutcomeTerminal
		if apiErr.Retryable() {
			outcome = OutcomeRetryable
		}
		return Result{Outcome: outcome, StatusCode: resp.StatusCode, Err: apiErr}
	}

	if len(body) == 0 {
		body = []byte("null")
	}
	if !json.Valid(body) {
		return Result{
			Outcome:    OutcomeTerminal,
			StatusCode: resp.StatusCode,
			Err:        newParseError("response body from %s is not valid JSON", req.URL),
		}
	}

	return Result{Outcome: OutcomeSuccess, StatusCode: resp.StatusCode, Body: body}
}

// classifyTransportError maps an error raised before a complete response was
// read. ctx is the caller context, not the per-attempt one: when the caller
// gave up the failure is terminal, otherwise it is retryable.
func classifyTransportError(ctx context.Context, err error) Result {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Result{Outcome: OutcomeTerminal, Err: newCanceledError(ctxErr)}
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return Result{Outcome: OutcomeRetryable, Err: newTimeoutError(err)}
	}
	return Result{Outcome: OutcomeRetryable, Err: newNetworkError(err)}
}

// BuildURL resolves path against baseURL and appends params as the query
// string. Keys are encoded in sorted order.
func BuildURL(baseURL, path string, params Params) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base URL: %w", err)
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse path %q: %w", path, err)
	}
	u := base.ResolveReference(ref)

	if len(params) == 0 {
		return u.String(), nil
	}

	q := u.Query()
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if s, ok := stringify(params[k]); ok {
			q.Add(k, s)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func stringify(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	case int:
		return strconv.Itoa(val), true
	case int32:
		return strconv.FormatInt(int64(val), 10), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case uint:
		return strconv.FormatUint(uint64(val), 10), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case *string:
		if val == nil {
			return "", false
		}
		return *val, true
	case *int:
		if val == nil {
			return "", false
		}
		return strconv.Itoa(*val), true
	case fmt.Stringer:
		return val.String(), true
	default:
		return fmt.Sprint(val), true
	}
}
