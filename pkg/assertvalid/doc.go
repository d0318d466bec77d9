// Package assertvalid checks HTML and CSS produced by Go tests against the W3C validators.
//
// Every assertion is keyed by the calling test: the package path of the test function and
// t.Name(). The document and the validator's raw reply are cached on disk under that key,
// so a test whose output has not changed since the last run never touches the network.
//
//	func TestIndexPage(t *testing.T) {
//		rec := httptest.NewRecorder()
//		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
//		assertvalid.MarkupRecorder(t, rec)
//	}
//
// The package-level helpers use a Validator configured from the nearest markcheck.yaml
// above the working directory. Build one with New to configure it in code instead:
//
//	v, err := assertvalid.New(
//		assertvalid.WithCacheDir("testdata/.validator"),
//		assertvalid.WithProxy("proxy.internal", 3128),
//	)
package assertvalid
