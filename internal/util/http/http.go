// Package http fetches remote documents for auditing.
package http

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"slices"
	"time"

	"github.com/moeen/hemam-theme/internal/security"
	"github.com/moeen/hemam-theme/internal/version"
)

const (
	// UserAgentName prefixes the User-Agent header.
	UserAgentName = "hemam-theme"

	// DefaultTimeout bounds a whole fetch, redirects included.
	DefaultTimeout = 10 * time.Second

	maxRedirects = 5
)

// ErrContentType is returned when the response is not one of the accepted
// media types.
var ErrContentType = errors.New("unexpected content type")

// FetchOptions configures Fetch.
type FetchOptions struct {
	// Timeout defaults to DefaultTimeout.
	Timeout time.Duration

	// MaxBytes caps the response body. Zero means security.MaxDocumentSize.
	MaxBytes int64

	// Headers are added to the request.
	Headers map[string]string

	// ContentTypes, when set, lists the media types the response may have.
	ContentTypes []string

	// Client replaces the default client. Its redirect policy is kept.
	Client *http.Client
}

// Fetch GETs url and returns the body. Redirects must pass
// security.ValidateHTTPURL, so a public HTTPS page cannot bounce the
// request to plain HTTP or a private address. Only 200 responses succeed.
func Fetch(ctx context.Context, url string, opts FetchOptions) ([]byte, error) {
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxBytes == 0 {
		opts.MaxBytes = security.MaxDocumentSize
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout, CheckRedirect: checkRedirect}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent())
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}
	if len(opts.ContentTypes) > 0 {
		mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
		if !slices.Contains(opts.ContentTypes, mediaType) {
			return nil, fmt.Errorf("%w %q", ErrContentType, mediaType)
		}
	}

	data, err := security.ReadAllLimited(resp.Body, opts.MaxBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return data, nil
}

func checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("stopped after %d redirects", maxRedirects)
	}
	if err := security.ValidateHTTPURL(req.URL.String()); err != nil {
		return fmt.Errorf("refusing redirect: %w", err)
	}
	return nil
}

// UserAgent is the User-Agent header Fetch sends.
func UserAgent() string {
	return UserAgentName + "/" + version.Short()
}
