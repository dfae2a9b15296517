package gateway

import (
	"context"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
)

// TokenSource yields the bearer credential for outgoing requests. An empty
// string means no credential is held.
type TokenSource interface {
	Token() string
}

// Gateway wraps outgoing HTTP calls, attaching the bearer credential when
// one is held. It makes a single attempt per call with no retry or backoff
// and returns the raw response, including non-2xx statuses; interpreting
// status codes is the caller's job.
type Gateway struct {
	client *http.Client
	tokens TokenSource
}

func New(client *http.Client, tokens TokenSource) *Gateway {
	if client == nil {
		client = http.DefaultClient
	}
	return &Gateway{client: client, tokens: tokens}
}

// Do issues the request. Caller-supplied headers are preserved; the
// Authorization header is merged in when a token is held. Every request
// carries a generated correlation id for log matching.
func (g *Gateway) Do(ctx context.Context, method, url string, body io.Reader, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)

	token := ""
	if g.tokens != nil {
		token = g.tokens.Token()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
		log.Printf("[Gateway] %s %s request_id=%s token=%s", method, url, requestID, tokenPreview(token))
	} else {
		log.Printf("[Gateway] %s %s request_id=%s no token held", method, url, requestID)
	}

	return g.client.Do(req)
}

// tokenPreview truncates the token for diagnostic logging.
func tokenPreview(token string) string {
	if len(token) <= 20 {
		return token + "..."
	}
	return token[:20] + "..."
}
