package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const GOOGLE_TRANSLATE_ENDPOINT = "https://translate.googleapis.com/translate_a/single"

// GoogleTranslateClient calls the public Google Translate web endpoint, the
// same one the googletrans family of libraries uses.
type GoogleTranslateClient struct {
	Client     *http.Client
	Endpoint   string
	MaxRetries int
	backoff    time.Duration
}

func NewGoogleTranslateClient(endpoint string, timeout time.Duration, maxRetries int) *GoogleTranslateClient {
	if endpoint == "" {
		endpoint = GOOGLE_TRANSLATE_ENDPOINT
	}
	if maxRetries < 1 {
		maxRetries = 1
	}
	slog.Info("[GoogleTranslateClient] Initializing Client",
		slog.String("endpoint", endpoint),
		slog.Duration("timeout", timeout),
		slog.Int("max_retries", maxRetries))

	return &GoogleTranslateClient{
		Client:     &http.Client{Timeout: timeout},
		Endpoint:   endpoint,
		MaxRetries: maxRetries,
		backoff:    INITIAL_BACKOFF,
	}
}

func (g *GoogleTranslateClient) Translate(ctx context.Context, text, source, target string) (string, error) {
	start := time.Now()

	resp, err := g.DoWithRetry(ctx, func() (*http.Request, error) {
		return g.newRequest(ctx, text, source, target)
	})
	if err != nil {
		slog.Error("[GoogleTranslateClient] Translation request failed",
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	translated, err := parseGoogleResponse(body)
	if err != nil {
		slog.Error("[GoogleTranslateClient] Failed to parse response",
			slog.String("error", err.Error()),
			getPreview(body),
			slog.Int("raw_response_length", len(body)))
		return "", err
	}

	slog.Info("[GoogleTranslateClient] Translation request successful",
		slog.Duration("elapsed", time.Since(start)))
	return translated, nil
}

func (g *GoogleTranslateClient) newRequest(ctx context.Context, text, source, target string) (*http.Request, error) {
	endpoint, err := url.Parse(g.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse endpoint: %w", err)
	}
	query := endpoint.Query()
	query.Set("client", "gtx")
	query.Set("sl", source)
	query.Set("tl", target)
	query.Set("dt", "t")
	endpoint.RawQuery = query.Encode()

	form := url.Values{"q": {text}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=utf-8")
	req.Header.Set("User-Agent", USER_AGENT)
	return req, nil
}

// DoWithRetry retries on transport errors, 429 and 5xx responses with
// exponential backoff. A fresh request is built for every attempt.
func (g *GoogleTranslateClient) DoWithRetry(ctx context.Context, build func() (*http.Request, error)) (*http.Response, error) {
	var resp *http.Response
	var err error
	backoff := g.backoff

	for attempt := 0; attempt < g.MaxRetries; attempt++ {
		var req *http.Request
		req, err = build()
		if err != nil {
			return nil, err
		}

		resp, err = g.Client.Do(req)
		if err == nil && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		slog.Warn("[GoogleTranslateClient] Request failed",
			slog.Int("attempt", attempt+1),
			slog.String("error", errMsg(err, resp)))

		if attempt == g.MaxRetries-1 {
			break
		}
		if resp != nil {
			resp.Body.Close()
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, MAX_BACKOFF)
	}

	if err != nil {
		return nil, err
	}
	return resp, nil
}

// parseGoogleResponse joins the translated segments of a response shaped like
// [[["translated","original",...],...],null,"es",...].
func parseGoogleResponse(body []byte) (string, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("malformed response: empty payload")
	}

	var segments [][]any
	if err := json.Unmarshal(raw[0], &segments); err != nil {
		return "", fmt.Errorf("malformed response segments: %w", err)
	}

	var out strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		if s, ok := segment[0].(string); ok {
			out.WriteString(s)
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("malformed response: no translated segments")
	}
	return out.String(), nil
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}

func errMsg(err error, resp *http.Response) string {
	if err != nil {
		return err.Error()
	}
	if resp != nil {
		return fmt.Sprintf("status code %d", resp.StatusCode)
	}
	return "unknown error"
}
