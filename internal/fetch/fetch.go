// Package fetch implements the HTTP GET executor: header and URL validation,
// one request, and either a streamed save to disk with progress or an inline
// display of the response body.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/net/http/httpguts"

	"github.com/mcncl/swiftline/internal/errors"
	"github.com/mcncl/swiftline/internal/httpclient"
	"github.com/mcncl/swiftline/internal/jsonval"
	"github.com/mcncl/swiftline/internal/progress"
	"github.com/mcncl/swiftline/internal/render"
	"github.com/mcncl/swiftline/internal/style"
)

// DefaultTimeout is the request timeout used when none is supplied.
const DefaultTimeout = 30 * time.Second

// Options describes one GET invocation. The request timeout is fixed at
// client construction time, see New.
type Options struct {
	URL     string
	Headers []string // raw key:value entries, duplicates additive
	Save    string   // stream the body to this path when non-empty
	Pretty  bool     // pretty-print JSON responses
}

// Executor performs GET requests. The zero value is not usable; call New.
type Executor struct {
	Client *http.Client
	Out    io.Writer // data output
	Meta   io.Writer // progress rendering
	// Colorize enables colored JSON output; the caller decides from
	// terminal detection.
	Colorize bool
	// ShowProgress gates progress bar rendering on Meta.
	ShowProgress bool
}

// New builds an executor with a tuned client for the given timeout, writing
// data to stdout and progress to stderr.
func New(timeout time.Duration) *Executor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Executor{
		Client:       httpclient.New(timeout),
		Out:          os.Stdout,
		Meta:         os.Stderr,
		Colorize:     style.IsTerminal(os.Stdout),
		ShowProgress: style.IsTerminal(os.Stderr),
	}
}

// Run validates opts, performs the GET, and renders or persists the result.
// All validation happens before any network activity.
func (e *Executor) Run(ctx context.Context, opts Options) error {
	parsed, err := parseURL(opts.URL)
	if err != nil {
		return err
	}

	headers, err := ParseHeaders(opts.Headers)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return errors.NewURLError(fmt.Sprintf("cannot build request for '%s'", opts.URL), err)
	}
	req.Header = headers

	slog.Info("sending request", "method", http.MethodGet, "url", parsed.String())

	resp, err := e.Client.Do(req)
	if err != nil {
		return errors.NewNetworkError(fmt.Sprintf("request to %s failed", parsed.String()), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if opts.Save != "" {
		return e.save(resp, opts.Save)
	}
	return e.display(resp, opts.Pretty)
}

// parseURL accepts only absolute http/https URLs with a host.
func parseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, errors.NewURLError(fmt.Sprintf("'%s' is not a valid URL", raw), err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.NewURLError(fmt.Sprintf("'%s' must be an absolute http or https URL", raw), nil)
	}
	if u.Host == "" {
		return nil, errors.NewURLError(fmt.Sprintf("'%s' has no host", raw), nil)
	}
	return u, nil
}

// ParseHeaders converts raw key:value entries into a header map. The split
// is on the first colon only, keys and values are trimmed, and duplicate
// keys append rather than overwrite.
func ParseHeaders(items []string) (http.Header, error) {
	headers := http.Header{}
	for _, item := range items {
		key, value, found := strings.Cut(item, ":")
		if !found {
			return nil, errors.NewHeaderError(fmt.Sprintf("header must be key:value, got '%s'", item), errors.ErrMissingColon)
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || !httpguts.ValidHeaderFieldName(key) {
			return nil, errors.NewHeaderError(fmt.Sprintf("invalid header name in '%s'", item), nil)
		}
		if !httpguts.ValidHeaderFieldValue(value) {
			return nil, errors.NewHeaderError(fmt.Sprintf("invalid header value in '%s'", item), nil)
		}

		headers.Add(key, value)
	}
	return headers, nil
}

// save streams the response body to path, writing chunks strictly in arrival
// order. A partially written file is removed on any failure so a truncated
// download is never mistaken for a complete one.
func (e *Executor) save(resp *http.Response, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.NewIOError(fmt.Sprintf("cannot create file '%s'", path), err)
	}

	bar := progress.Bytes(resp.ContentLength, "downloading", e.Meta, e.ShowProgress)

	discard := func() {
		_ = file.Close()
		_ = os.Remove(path)
	}

	var written int64
	buf := make([]byte, 32*1024)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := file.Write(buf[:n]); writeErr != nil {
				discard()
				return errors.NewIOError(fmt.Sprintf("failed writing to '%s'", path), writeErr)
			}
			written += int64(n)
			_ = bar.Add(n)
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			discard()
			return errors.NewNetworkError("error reading response stream", readErr)
		}
	}
	_ = bar.Finish()

	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return errors.NewIOError(fmt.Sprintf("failed writing to '%s'", path), err)
	}

	slog.Debug("download complete", "path", path, "bytes", written)

	style.Status(e.Out, resp.Status)
	style.OK(e.Out, fmt.Sprintf("Saved to: %s (%d bytes)", path, written))
	return nil
}

// display buffers the body and prints it after the status line, pretty
// printing JSON when requested and the content type indicates it.
func (e *Executor) display(resp *http.Response, pretty bool) error {
	contentType := resp.Header.Get("Content-Type")

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewNetworkError("error reading response body", err)
	}

	if pretty && strings.Contains(contentType, "application/json") {
		v, parseErr := jsonval.ParseStrict(strings.TrimSpace(string(body)))
		if parseErr != nil {
			return errors.NewResponseError(fmt.Sprintf("failed to parse JSON response (status %s)", resp.Status), parseErr)
		}
		style.Status(e.Out, resp.Status)
		fmt.Fprintln(e.Out, render.JSON(v, e.Colorize))
		return nil
	}

	style.Status(e.Out, resp.Status)
	fmt.Fprintln(e.Out, string(body))
	return nil
}
