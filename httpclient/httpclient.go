package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"bangla-news/internal/logger"
	"bangla-news/trace"
)

// ErrNotFound 는 DoJSON 이 404 응답에 대해 반환한다.
var ErrNotFound = errors.New("httpclient: resource not found")

// Config는 HTTP 클라이언트 공통 설정이다.
type Config struct {
	Timeout time.Duration
}

// loggingRoundTripper는 모든 아웃바운드 HTTP 호출에 대해 공통 로깅과
// X-Request-Id / X-Span-Id 헤더 전파를 수행한다.
type loggingRoundTripper struct {
	inner http.RoundTripper
}

const maxBodyLog = 1024

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	requestID, spanID := trace.NextSpanID(req.Context())
	req.Header.Set(trace.HeaderRequestID, requestID)
	req.Header.Set(trace.HeaderSpanID, spanID)

	query := req.URL.RawQuery
	var bodySnippet string
	if req.Body != nil {
		if bodyBytes, err := io.ReadAll(req.Body); err == nil {
			bodySnippet = snippet(bodyBytes)
			// 실제 전송을 위해 Body 를 복원한다.
			req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}
	}

	fields := logger.Fields{
		"method":     req.Method,
		"host":       req.URL.Host,
		"path":       req.URL.Path,
		"query":      query,
		"request_id": requestID,
		"span_id":    spanID,
	}
	if bodySnippet != "" {
		fields["body"] = bodySnippet
	}

	resp, err := l.inner.RoundTrip(req)
	fields["duration"] = time.Since(start).String()
	if err != nil {
		fields["error"] = err.Error()
		logger.ErrorWithFields("httpclient request failed", fields)
		return nil, err
	}

	fields["status"] = resp.StatusCode
	logger.DebugWithFields("httpclient request success", fields)
	return resp, nil
}

func snippet(b []byte) string {
	if len(b) > maxBodyLog {
		return string(b[:maxBodyLog])
	}
	return string(b)
}

// BaseClient는 공통 HTTP 클라이언트와 baseURL, 기본 헤더를 묶어둔다.
type BaseClient struct {
	HTTPClient *http.Client
	BaseURL    string
	// Header 는 모든 요청에 복사된다. (Authorization 등)
	Header http.Header
}

func NewBaseClient(baseURL string, cfg Config) *BaseClient {
	return NewBaseClientWithClient(New(cfg), baseURL)
}

// NewBaseClientWithClient는 이미 생성된 http.Client를 사용한다. nil 이면 기본 클라이언트.
func NewBaseClientWithClient(httpClient *http.Client, baseURL string) *BaseClient {
	if httpClient == nil {
		httpClient = NewDefault()
	}
	return &BaseClient{
		HTTPClient: httpClient,
		BaseURL:    baseURL,
		Header:     http.Header{},
	}
}

// NewRequest는 baseURL과 상대 경로, 쿼리, 바디로 요청을 생성한다.
// relPath에 쿼리(?)가 포함되면 path.Join이 손상시키므로 에러를 반환한다.
func (c *BaseClient) NewRequest(ctx context.Context, method, relPath string, query url.Values, body io.Reader) (*http.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.Contains(relPath, "?") {
		return nil, fmt.Errorf("httpclient: relPath must not contain query string (use query parameter instead): %s", relPath)
	}
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, err
	}
	if relPath != "" {
		base.Path = path.Join(base.Path, relPath)
	}
	if query != nil {
		base.RawQuery = query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, base.String(), body)
	if err != nil {
		return nil, err
	}
	for key, values := range c.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *BaseClient) Do(req *http.Request) (*http.Response, error) {
	return c.HTTPClient.Do(req)
}

// DoJSON 은 req 를 보내고 2xx JSON 바디를 out 에 디코딩한다. (out 은 nil 가능)
// 404 는 ErrNotFound, 그 외 non-2xx 는 바디 일부를 에러에 담는다.
func (c *BaseClient) DoJSON(req *http.Request, op string, out any) error {
	resp, err := c.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("%s: status=%d body=%s", op, resp.StatusCode, string(body))
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decoding response: %w", op, err)
	}
	return nil
}

// New는 주어진 설정으로 로깅 RoundTripper 가 붙은 http.Client를 생성한다.
// Timeout이 0이면 기본값 10초를 사용한다.
func New(cfg Config) *http.Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &loggingRoundTripper{inner: http.DefaultTransport},
	}
}

func NewDefault() *http.Client {
	return New(Config{})
}
