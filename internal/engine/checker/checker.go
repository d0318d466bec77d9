// Package checker sequences a single validation: fingerprint, cache lookup, remote round trip
// on a miss, persistence and interpretation.
package checker

import (
	"context"
	"time"

	"go.trai.ch/markcheck/internal/core/domain"
	"go.trai.ch/markcheck/internal/core/ports"
)

// Span attribute keys.
const (
	attrKey      = "markcheck.key"
	attrKind     = "markcheck.kind"
	attrCache    = "markcheck.cache"
	attrValid    = "markcheck.valid"
	attrMessages = "markcheck.messages"
)

// Result is the outcome of one check.
type Result struct {
	Key     domain.CacheKey
	Verdict domain.Verdict
	// Cache reports whether the verdict came from a stored response.
	Cache domain.CacheState
}

// Checker runs checks against a response cache and a remote validator.
// It is safe for concurrent use as long as concurrent calls use distinct keys.
type Checker struct {
	cache       ports.ResponseCache
	validator   ports.Validator
	interpreter ports.Interpreter
	tracer      ports.Tracer
	now         func() time.Time
}

// NewChecker creates a new Checker with the given dependencies.
func NewChecker(
	cache ports.ResponseCache,
	validator ports.Validator,
	interpreter ports.Interpreter,
	tracer ports.Tracer,
) *Checker {
	return &Checker{
		cache:       cache,
		validator:   validator,
		interpreter: interpreter,
		tracer:      tracer,
		now:         time.Now,
	}
}

// Check validates doc under key. The validator is contacted only when no response produced
// from byte-identical input is stored for key. Storage, transport and protocol failures are
// returned as errors; an invalid document is a Result with Verdict.Valid false.
func (c *Checker) Check(ctx context.Context, key domain.CacheKey, doc []byte) (Result, error) {
	ctx, span := c.tracer.Start(ctx, "markcheck.check")
	defer span.End()

	span.SetAttribute(attrKey, key.String())
	span.SetAttribute(attrKind, key.Kind.String())

	result, err := c.check(ctx, key, doc)
	if err != nil {
		span.RecordError(err)
		return Result{}, err
	}

	span.SetAttribute(attrCache, result.Cache.String())
	span.SetAttribute(attrValid, result.Verdict.Valid)
	span.SetAttribute(attrMessages, len(result.Verdict.Messages))
	return result, nil
}

func (c *Checker) check(ctx context.Context, key domain.CacheKey, doc []byte) (Result, error) {
	loc, err := c.cache.Locate(key)
	if err != nil {
		return Result{}, err
	}

	lookup, err := c.cache.Refresh(loc, doc)
	if err != nil {
		return Result{}, err
	}

	if lookup.State == domain.CacheFresh && lookup.Response != nil {
		verdict, err := c.interpreter.Interpret(key.Kind, lookup.Response)
		if err != nil {
			return Result{}, err
		}
		return Result{Key: key, Verdict: verdict, Cache: domain.CacheFresh}, nil
	}

	resp, err := c.submit(ctx, key.Kind, doc)
	if err != nil {
		return Result{}, err
	}

	// A reply the interpreter rejects is never persisted, so the next run asks again.
	verdict, err := c.interpreter.Interpret(key.Kind, resp)
	if err != nil {
		return Result{}, err
	}

	entry := domain.CacheEntry{
		InputDigest: lookup.Digest,
		Response:    *resp,
		StoredAt:    c.now().UTC(),
	}
	if err := c.cache.Save(loc, entry); err != nil {
		return Result{}, err
	}

	return Result{Key: key, Verdict: verdict, Cache: domain.CacheStale}, nil
}

func (c *Checker) submit(ctx context.Context, kind domain.Kind, doc []byte) (*domain.Response, error) {
	ctx, span := c.tracer.Start(ctx, "markcheck.submit")
	defer span.End()

	span.SetAttribute(attrKind, kind.String())

	resp, err := c.validator.Submit(ctx, kind, doc)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttribute("http.response.status_code", resp.StatusCode)
	return resp, nil
}
