package assertvalid

import (
	"io"
	"net/http"
	"time"

	"go.trai.ch/markcheck/internal/core/domain"
	"go.trai.ch/markcheck/internal/core/ports"
)

type (
	// Config is the full validator configuration.
	Config = domain.Config
	// Kind identifies the type of document being validated.
	Kind = domain.Kind
	// CacheKey identifies one cache slot.
	CacheKey = domain.CacheKey
	// Verdict is the pass/fail result of one check.
	Verdict = domain.Verdict
	// Tracer starts spans around checks and validator round trips.
	Tracer = ports.Tracer
)

const (
	// KindMarkup is an HTML or XHTML document or fragment.
	KindMarkup = domain.KindMarkup
	// KindCSS is a CSS stylesheet.
	KindCSS = domain.KindCSS
)

// DefaultConfig returns the configuration used when no markcheck.yaml is found.
func DefaultConfig() Config {
	return domain.DefaultConfig()
}

// Option configures a Validator.
type Option func(*options)

type options struct {
	config     *Config
	configFile string

	cacheDir       string
	proxy          *domain.ProxyConfig
	timeout        time.Duration
	markupEndpoint string
	cssEndpoint    string

	httpClient *http.Client
	logOutput  io.Writer
	tracer     Tracer
}

// WithConfig uses cfg instead of discovering markcheck.yaml.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = &cfg
	}
}

// WithConfigFile loads the configuration from path instead of discovering markcheck.yaml.
func WithConfigFile(path string) Option {
	return func(o *options) {
		o.configFile = path
	}
}

// WithCacheDir overrides the response cache directory.
func WithCacheDir(dir string) Option {
	return func(o *options) {
		o.cacheDir = dir
	}
}

// WithProxy routes validator requests through the HTTP proxy at host:port.
func WithProxy(host string, port int) Option {
	return func(o *options) {
		o.proxy = &domain.ProxyConfig{Host: host, Port: port}
	}
}

// WithTimeout bounds each validator round trip.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithHTTPClient sends validator requests with c.
// The configured proxy and timeout do not apply to a caller-supplied client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithMarkupEndpoint overrides the markup validator URL.
func WithMarkupEndpoint(endpoint string) Option {
	return func(o *options) {
		o.markupEndpoint = endpoint
	}
}

// WithCSSEndpoint overrides the CSS validator URL.
func WithCSSEndpoint(endpoint string) Option {
	return func(o *options) {
		o.cssEndpoint = endpoint
	}
}

// WithLogOutput sends cache warnings to w. The default is stderr.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) {
		o.logOutput = w
	}
}

// WithTracer records a span per check with t.
func WithTracer(t Tracer) Option {
	return func(o *options) {
		o.tracer = t
	}
}

// override applies the per-field options on top of cfg.
func (o *options) override(cfg Config) Config {
	if o.cacheDir != "" {
		cfg.CacheDir = o.cacheDir
	}
	if o.proxy != nil {
		proxy := *o.proxy
		cfg.Proxy = &proxy
	}
	if o.timeout > 0 {
		cfg.Timeout = o.timeout
	}
	if o.markupEndpoint != "" {
		cfg.Markup.Endpoint = o.markupEndpoint
	}
	if o.cssEndpoint != "" {
		cfg.CSS.Endpoint = o.cssEndpoint
	}
	return cfg
}
