package assertvalid

import (
	"context"
	"io"
	"net/http/httptest"
	"os"
	"sync"

	"github.com/stretchr/testify/require"
	"go.trai.ch/markcheck/internal/adapters/cas"
	"go.trai.ch/markcheck/internal/adapters/config"
	"go.trai.ch/markcheck/internal/adapters/fs"
	"go.trai.ch/markcheck/internal/adapters/logger"
	"go.trai.ch/markcheck/internal/adapters/report"
	"go.trai.ch/markcheck/internal/adapters/telemetry"
	"go.trai.ch/markcheck/internal/adapters/w3c"
	"go.trai.ch/markcheck/internal/core/domain"
	"go.trai.ch/markcheck/internal/core/ports"
	"go.trai.ch/markcheck/internal/engine/checker"
)

// TestingT is the subset of *testing.T used to report results.
type TestingT interface {
	Helper()
	Name() string
	Errorf(format string, args ...any)
	FailNow()
}

// Validator checks documents on behalf of tests, caching validator replies on disk.
type Validator struct {
	config  Config
	checker *checker.Checker
}

// New builds a Validator. Without WithConfig or WithConfigFile the configuration is read from
// the nearest markcheck.yaml above the working directory, falling back to DefaultConfig.
func New(opts ...Option) (*Validator, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var log ports.Logger
	if o.logOutput != nil {
		log = logger.NewWithWriter(o.logOutput)
	} else {
		log = logger.New()
	}

	cfg, err := o.baseConfig(log)
	if err != nil {
		return nil, err
	}
	cfg = o.override(cfg)

	var validator *w3c.Client
	if o.httpClient != nil {
		validator = w3c.NewClientWithHTTP(cfg, o.httpClient)
	} else {
		validator = w3c.NewClient(cfg)
	}

	tracer := o.tracer
	if tracer == nil {
		tracer = telemetry.NewOTelTracer(telemetry.InstrumentationName)
	}

	store := cas.NewStore(cfg.CacheDir, fs.NewHasher(), log)

	return &Validator{
		config:  cfg,
		checker: checker.NewChecker(store, validator, report.NewInterpreter(), tracer),
	}, nil
}

func (o *options) baseConfig(log ports.Logger) (Config, error) {
	switch {
	case o.config != nil:
		return *o.config, nil
	case o.configFile != "":
		return config.NewLoader(log).LoadFile(o.configFile)
	default:
		cwd, err := os.Getwd()
		if err != nil {
			return Config{}, err
		}
		return config.NewLoader(log).Load(cwd)
	}
}

// Config returns the resolved configuration.
func (v *Validator) Config() Config {
	return v.config
}

// Check validates doc under key and returns the verdict.
// Errors are storage, transport or protocol failures; an invalid document is not an error.
func (v *Validator) Check(ctx context.Context, key CacheKey, doc []byte) (Verdict, error) {
	result, err := v.checker.Check(ctx, key, doc)
	if err != nil {
		return Verdict{}, err
	}
	return result.Verdict, nil
}

// Assert validates doc as the given kind and reports invalid documents through t.Errorf.
// Failures to reach the validator or use the cache stop the test.
func (v *Validator) Assert(t TestingT, kind Kind, doc []byte) bool {
	t.Helper()
	return v.assert(t, callerSuite(), kind, doc)
}

// Markup validates an HTML fragment or document.
func (v *Validator) Markup(t TestingT, fragment string) bool {
	t.Helper()
	return v.assert(t, callerSuite(), KindMarkup, []byte(fragment))
}

// CSS validates a stylesheet.
func (v *Validator) CSS(t TestingT, css string) bool {
	t.Helper()
	return v.assert(t, callerSuite(), KindCSS, []byte(css))
}

// MarkupReader validates markup read from r.
func (v *Validator) MarkupReader(t TestingT, r io.Reader) bool {
	t.Helper()
	suite := callerSuite()

	doc, err := io.ReadAll(r)
	if err != nil {
		require.NoError(t, err, "reading markup")
		return false
	}
	return v.assert(t, suite, KindMarkup, doc)
}

// MarkupRecorder validates the body an HTTP handler wrote to rec.
func (v *Validator) MarkupRecorder(t TestingT, rec *httptest.ResponseRecorder) bool {
	t.Helper()
	return v.assert(t, callerSuite(), KindMarkup, recordedBody(rec))
}

func (v *Validator) assert(t TestingT, suite string, kind Kind, doc []byte) bool {
	t.Helper()

	key, err := domain.NewCacheKey(suite, t.Name(), kind)
	if err != nil {
		require.NoError(t, err, "building cache key")
		return false
	}

	verdict, err := v.Check(context.Background(), key, doc)
	if err != nil {
		require.NoError(t, err, "validating %s", key)
		return false
	}

	if !verdict.Valid {
		t.Errorf("%s", verdict.Failure(kind))
		return false
	}
	return true
}

func recordedBody(rec *httptest.ResponseRecorder) []byte {
	if rec == nil || rec.Body == nil {
		return nil
	}
	return rec.Body.Bytes()
}

var defaultValidator = sync.OnceValues(func() (*Validator, error) {
	return New()
})

func defaultFor(t TestingT) (*Validator, bool) {
	t.Helper()
	v, err := defaultValidator()
	if err != nil {
		require.NoError(t, err, "configuring the default validator")
		return nil, false
	}
	return v, true
}

// Markup validates an HTML fragment or document with the default Validator.
func Markup(t TestingT, fragment string) bool {
	t.Helper()
	v, ok := defaultFor(t)
	if !ok {
		return false
	}
	return v.assert(t, callerSuite(), KindMarkup, []byte(fragment))
}

// CSS validates a stylesheet with the default Validator.
func CSS(t TestingT, css string) bool {
	t.Helper()
	v, ok := defaultFor(t)
	if !ok {
		return false
	}
	return v.assert(t, callerSuite(), KindCSS, []byte(css))
}

// MarkupRecorder validates a recorded handler response with the default Validator.
func MarkupRecorder(t TestingT, rec *httptest.ResponseRecorder) bool {
	t.Helper()
	v, ok := defaultFor(t)
	if !ok {
		return false
	}
	return v.assert(t, callerSuite(), KindMarkup, recordedBody(rec))
}
