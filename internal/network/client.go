package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/proxy"

	"ocreader/internal/logger"
)

var ErrUnsupportedProxy = errors.New("unsupported proxy scheme")

type Options struct {
	// ProxyURL is an http, https, socks5 or socks5h URL. Empty means
	// direct connections.
	ProxyURL  string
	UserAgent string
}

// ClientFactory hands out HTTP clients sharing one transport, so
// connections to the News server and to feed hosts are pooled.
type ClientFactory struct {
	transport http.RoundTripper
	userAgent string
	proxyHost string
}

func NewClientFactory(opts Options) (*ClientFactory, error) {
	var proxyURL *url.URL
	if opts.ProxyURL != "" {
		parsed, err := url.Parse(opts.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("parse proxy url: %w", err)
		}
		proxyURL = parsed
	}

	transport, err := newTransport(proxyURL)
	if err != nil {
		return nil, err
	}

	f := &ClientFactory{transport: transport, userAgent: opts.UserAgent}
	if proxyURL != nil {
		f.proxyHost = proxyURL.Host
		logger.Info("proxy configured", "module", "network", "action", "init", "resource", "proxy", "result", "ok", "scheme", proxyURL.Scheme, "host", proxyURL.Host)
	}
	return f, nil
}

func (f *ClientFactory) NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &userAgentTransport{base: f.transport, userAgent: f.userAgent},
	}
}

// ProxyHost returns the host of the configured proxy, empty when direct.
func (f *ClientFactory) ProxyHost() string {
	return f.proxyHost
}

func newTransport(proxyURL *url.URL) (*http.Transport, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if proxyURL == nil {
		return transport, nil
	}

	switch proxyURL.Scheme {
	case "http", "https":
		transport.Proxy = http.ProxyURL(proxyURL)
	case "socks5", "socks5h":
		dialer, err := proxy.FromURL(proxyURL, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("create socks dialer: %w", err)
		}
		transport.Proxy = nil
		if contextDialer, ok := dialer.(proxy.ContextDialer); ok {
			transport.DialContext = contextDialer.DialContext
		} else {
			transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProxy, proxyURL.Scheme)
	}
	return transport, nil
}

// userAgentTransport fills in the User-Agent header when the request has none.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(req)
}

// Direct returns a factory without a proxy.
func Direct(userAgent string) *ClientFactory {
	transport, _ := newTransport(nil)
	return &ClientFactory{transport: transport, userAgent: userAgent}
}
