package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"

	tls2 "github.com/refraction-networking/utls"
	"golang.org/x/net/html/charset"

	"github.com/reelscout/reelscout/config"
	"github.com/reelscout/reelscout/models"
)

// fetcher performs bounded page fetches with a Chrome TLS fingerprint
// (utls), so product pages that block the default Go TLS stack still
// respond.
type fetcher struct {
	cfg config.ScraperConfig
}

func newFetcher(cfg config.ScraperConfig) *fetcher {
	return &fetcher{cfg: cfg}
}

// fetch retrieves rawURL and returns the final URL after redirects plus
// the response body decoded to UTF-8. Every failure is a typed
// *models.ScrapeError; the fetch deadline cancels the in-flight request
// through the context rather than abandoning it.
func (f *fetcher) fetch(ctx context.Context, rawURL string) (finalURL string, body string, err error) {
	parsed, parseErr := url.Parse(strings.TrimSpace(rawURL))
	if parseErr != nil || !parsed.IsAbs() || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", "", models.NewScrapeError(models.ErrCodeInvalidURL,
			fmt.Sprintf("not an absolute http(s) URL: %q", rawURL), parseErr)
	}

	ctx, cancel := context.WithTimeout(ctx, f.cfg.FetchTimeout)
	defer cancel()

	transport := &http.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return dialTLSChrome(ctx, network, addr, f.cfg.Proxy)
		},
	}
	if f.cfg.Proxy != "" {
		proxyURL, proxyErr := url.Parse(f.cfg.Proxy)
		if proxyErr == nil && (proxyURL.Scheme == "http" || proxyURL.Scheme == "https") {
			transport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	client := &http.Client{Transport: transport}
	defer client.CloseIdleConnections()

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if reqErr != nil {
		return "", "", models.NewScrapeError(models.ErrCodeInvalidURL, "cannot build request", reqErr)
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, doErr := client.Do(req)
	if doErr != nil {
		if errors.Is(doErr, context.DeadlineExceeded) {
			return "", "", models.NewScrapeError(models.ErrCodeTimeout,
				fmt.Sprintf("fetch exceeded %s deadline", f.cfg.FetchTimeout), doErr)
		}
		return "", "", models.NewScrapeError(models.ErrCodeFetchFailed, "request failed", doErr)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", "", models.NewScrapeError(models.ErrCodeHTTPError,
			fmt.Sprintf("page responded with HTTP %d", resp.StatusCode), nil)
	}

	contentType := resp.Header.Get("Content-Type")
	mediaType, _, _ := mime.ParseMediaType(contentType)
	if mediaType != "text/html" && mediaType != "application/xhtml+xml" {
		return "", "", models.NewScrapeError(models.ErrCodeContentType,
			fmt.Sprintf("expected an HTML page, got %q", contentType), nil)
	}

	// Convert declared non-UTF-8 charsets before scanning.
	reader, charsetErr := charset.NewReader(io.LimitReader(resp.Body, f.cfg.MaxBodyBytes), contentType)
	if charsetErr != nil {
		return "", "", models.NewScrapeError(models.ErrCodeFetchFailed, "decode body charset", charsetErr)
	}

	raw, readErr := io.ReadAll(reader)
	if readErr != nil {
		if errors.Is(readErr, context.DeadlineExceeded) {
			return "", "", models.NewScrapeError(models.ErrCodeTimeout,
				fmt.Sprintf("fetch exceeded %s deadline", f.cfg.FetchTimeout), readErr)
		}
		return "", "", models.NewScrapeError(models.ErrCodeFetchFailed, "read body", readErr)
	}

	return resp.Request.URL.String(), string(raw), nil
}

// dialTLSChrome establishes a TLS connection using a Chrome fingerprint
// via utls.
func dialTLSChrome(ctx context.Context, network, addr, proxy string) (net.Conn, error) {
	var rawConn net.Conn
	var err error

	dialer := &net.Dialer{}

	if proxy != "" {
		proxyURL, parseErr := url.Parse(proxy)
		if parseErr == nil && (proxyURL.Scheme == "socks5" || proxyURL.Scheme == "socks5h") {
			socksConn, socksErr := dialer.DialContext(ctx, "tcp", proxyURL.Host)
			if socksErr != nil {
				return nil, fmt.Errorf("socks5 dial: %w", socksErr)
			}
			rawConn = socksConn
		}
	}

	if rawConn == nil {
		rawConn, err = dialer.DialContext(ctx, network, addr)
		if err != nil {
			return nil, err
		}
	}

	host, _, _ := net.SplitHostPort(addr)
	tlsConn := tls2.UClient(rawConn, &tls2.Config{
		ServerName: host,
	}, tls2.HelloChrome_Auto)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		rawConn.Close()
		return nil, err
	}
	return tlsConn, nil
}
