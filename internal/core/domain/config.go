package domain

import (
	"net"
	"strconv"
	"time"
)

const (
	// DefaultMarkupEndpoint is the W3C markup validator check URL.
	DefaultMarkupEndpoint = "https://validator.w3.org/check"
	// DefaultCSSEndpoint is the W3C CSS validator URL.
	DefaultCSSEndpoint = "https://jigsaw.w3.org/css-validator/validator"
	// DefaultTimeout bounds a single validator round trip.
	DefaultTimeout = 30 * time.Second
)

// Config holds everything the checker needs to reach the validators and store results.
type Config struct {
	// CacheDir is the base directory of the response cache.
	CacheDir string
	// Timeout bounds each validator request.
	Timeout time.Duration
	// Proxy routes validator requests through an HTTP proxy when set.
	Proxy  *ProxyConfig
	Markup MarkupConfig
	CSS    CSSConfig
}

// ProxyConfig is an outbound HTTP proxy.
type ProxyConfig struct {
	Host string
	Port int
}

// Address returns host:port.
func (p ProxyConfig) Address() string {
	return net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
}

// MarkupConfig configures the markup validator.
type MarkupConfig struct {
	Endpoint string
}

// CSSConfig configures the CSS validator and the form fields sent along with the stylesheet.
type CSSConfig struct {
	Endpoint   string
	Warning    string
	Profile    string
	UserMedium string
}

// DefaultConfig returns the configuration used when no markcheck.yaml is found.
func DefaultConfig() Config {
	return Config{
		CacheDir: DefaultCachePath(),
		Timeout:  DefaultTimeout,
		Markup: MarkupConfig{
			Endpoint: DefaultMarkupEndpoint,
		},
		CSS: CSSConfig{
			Endpoint:   DefaultCSSEndpoint,
			Warning:    "1",
			Profile:    "css2",
			UserMedium: "all",
		},
	}
}
