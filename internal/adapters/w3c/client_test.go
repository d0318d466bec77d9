package w3c_test

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/markcheck/internal/adapters/w3c"
	"go.trai.ch/markcheck/internal/core/domain"
)

func configFor(serverURL string) domain.Config {
	cfg := domain.DefaultConfig()
	cfg.Timeout = 5 * time.Second
	cfg.Markup.Endpoint = serverURL + "/check"
	cfg.CSS.Endpoint = serverURL + "/css-validator/validator"
	return cfg
}

func validHeaders() http.Header {
	h := make(http.Header)
	h.Set(domain.StatusHeader, "Valid")
	return h
}

func TestClient_Submit_Markup(t *testing.T) {
	handler, requests := httphelpers.RecordingHandler(
		httphelpers.HandlerWithResponse(http.StatusOK, validHeaders(), []byte("<messages/>")),
	)

	httphelpers.WithServer(handler, func(server *httptest.Server) {
		client := w3c.NewClient(configFor(server.URL))
		doc := []byte("<p>fish & chips</p>")

		resp, err := client.Submit(t.Context(), domain.KindMarkup, doc)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		status, ok := resp.HeaderValue(domain.StatusHeader)
		assert.True(t, ok)
		assert.Equal(t, "Valid", status)
		assert.Equal(t, "<messages/>", string(resp.Body))

		require.Len(t, requests, 1)
		info := <-requests
		assert.Equal(t, http.MethodPost, info.Request.Method)
		assert.Equal(t, "/check", info.Request.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", info.Request.Header.Get("Content-Type"))
		assert.True(t, strings.HasPrefix(info.Request.Header.Get("User-Agent"), "markcheck/"))

		form, err := url.ParseQuery(string(info.Body))
		require.NoError(t, err)
		assert.Equal(t, string(doc), form.Get("fragment"))
		assert.Equal(t, "xml", form.Get("output"))
	})
}

func TestEncodeMarkupForm(t *testing.T) {
	t.Parallel()

	got := w3c.EncodeMarkupForm([]byte("<p>a & b</p>"))
	assert.Equal(t, "fragment=%3Cp%3Ea+%26+b%3C%2Fp%3E&output=xml", string(got))
}

func TestClient_Submit_CSS(t *testing.T) {
	handler, requests := httphelpers.RecordingHandler(
		httphelpers.HandlerWithResponse(http.StatusOK, nil, []byte("<html></html>")),
	)

	httphelpers.WithServer(handler, func(server *httptest.Server) {
		cfg := configFor(server.URL)
		cfg.CSS.Profile = "css3"
		client := w3c.NewClient(cfg)
		doc := []byte("a { color: red }")

		_, err := client.Submit(t.Context(), domain.KindCSS, doc)
		require.NoError(t, err)

		info := <-requests
		assert.Equal(t, "/css-validator/validator", info.Request.URL.Path)

		mediaType, params, err := mime.ParseMediaType(info.Request.Header.Get("Content-Type"))
		require.NoError(t, err)
		assert.Equal(t, "multipart/form-data", mediaType)
		assert.Equal(t, w3c.Boundary(doc), params["boundary"])

		reader := multipart.NewReader(bytes.NewReader(info.Body), params["boundary"])
		var names, values []string
		for {
			part, err := reader.NextPart()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			data, err := io.ReadAll(part)
			require.NoError(t, err)
			names = append(names, part.FormName())
			values = append(values, string(data))
			if part.FormName() == "file" {
				assert.Equal(t, "file.css", part.FileName())
				assert.Equal(t, "text/css", part.Header.Get("Content-Type"))
				assert.Equal(t, "binary", part.Header.Get("Content-Transfer-Encoding"))
			}
		}

		assert.Equal(t, []string{"file", "warning", "profile", "usermedium"}, names)
		assert.Equal(t, []string{string(doc), "1", "css3", "all"}, values)
	})
}

func TestEncodeCSSForm_Framing(t *testing.T) {
	t.Parallel()

	doc := []byte("body { color: red; }\n")
	body, contentType, err := w3c.EncodeCSSForm(domain.DefaultConfig().CSS, doc)
	require.NoError(t, err)

	b := w3c.Boundary(doc)
	assert.Equal(t, "multipart/form-data; boundary="+b, contentType)

	g := goldie.New(t)
	g.Assert(t, "css_multipart", bytes.ReplaceAll(body, []byte(b), []byte("BOUNDARY")))
}

func TestBoundary(t *testing.T) {
	t.Parallel()

	doc := []byte("p { margin: 0 }")
	first := w3c.Boundary(doc)
	assert.Equal(t, first, w3c.Boundary(doc))
	assert.True(t, strings.HasPrefix(first, "markcheck-"))
	assert.NotEqual(t, first, w3c.Boundary([]byte("p { margin: 1px }")))

	// A document containing its own boundary gets another one.
	tricky := append([]byte("/* "), first...)
	tricky = append(tricky, " */"...)
	b := w3c.Boundary(tricky)
	assert.NotContains(t, string(tricky), b)
}

func TestClient_Submit_UnexpectedStatus(t *testing.T) {
	handler, _ := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(http.StatusServiceUnavailable))

	httphelpers.WithServer(handler, func(server *httptest.Server) {
		client := w3c.NewClient(configFor(server.URL))

		resp, err := client.Submit(t.Context(), domain.KindMarkup, []byte("<p/>"))
		require.Error(t, err)
		assert.Nil(t, resp)
		require.ErrorIs(t, err, domain.ErrProtocol)
		assert.ErrorContains(t, err, domain.ErrUnexpectedStatus.Error())
	})
}

func TestClient_Submit_TransportFailure(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(http.StatusOK))
	endpoint := server.URL
	server.Close()

	client := w3c.NewClient(configFor(endpoint))

	_, err := client.Submit(t.Context(), domain.KindCSS, []byte("p{}"))
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrTransport)
	assert.ErrorContains(t, err, domain.ErrRequestFailed.Error())
}

func TestClient_Submit_UnknownKind(t *testing.T) {
	t.Parallel()

	client := w3c.NewClient(domain.DefaultConfig())

	_, err := client.Submit(t.Context(), domain.KindUnknown, []byte("x"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownKind.Error())
}

func TestClient_Submit_ThroughProxy(t *testing.T) {
	handler, requests := httphelpers.RecordingHandler(
		httphelpers.HandlerWithResponse(http.StatusOK, validHeaders(), nil),
	)

	httphelpers.WithServer(handler, func(proxy *httptest.Server) {
		proxyURL, err := url.Parse(proxy.URL)
		require.NoError(t, err)
		host, portText, err := net.SplitHostPort(proxyURL.Host)
		require.NoError(t, err)
		port, err := strconv.Atoi(portText)
		require.NoError(t, err)

		cfg := configFor("http://validator.invalid")
		cfg.Proxy = &domain.ProxyConfig{Host: host, Port: port}
		client := w3c.NewClient(cfg)

		_, err = client.Submit(t.Context(), domain.KindMarkup, []byte("<p/>"))
		require.NoError(t, err)

		info := <-requests
		assert.Equal(t, "validator.invalid", info.Request.Host)
		assert.Equal(t, "/check", info.Request.URL.Path)
	})
}

func TestClient_Submit_IgnoresEnvironmentProxy(t *testing.T) {
	t.Setenv("HTTP_PROXY", "http://127.0.0.1:1")
	t.Setenv("http_proxy", "http://127.0.0.1:1")

	httphelpers.WithServer(httphelpers.HandlerWithResponse(http.StatusOK, validHeaders(), nil), func(server *httptest.Server) {
		client := w3c.NewClient(configFor(server.URL))

		_, err := client.Submit(t.Context(), domain.KindMarkup, []byte("<p/>"))
		require.NoError(t, err)
	})
}

func TestNewClientWithHTTP(t *testing.T) {
	httphelpers.WithServer(httphelpers.HandlerWithResponse(http.StatusOK, validHeaders(), nil), func(server *httptest.Server) {
		client := w3c.NewClientWithHTTP(configFor(server.URL), server.Client())

		resp, err := client.Submit(t.Context(), domain.KindMarkup, []byte("<p/>"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
