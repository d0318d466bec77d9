package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"go.trai.ch/markcheck/internal/core/domain"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"markcheck": func() {
			os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, graftProvider))
		},
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   filepath.Join("testdata", "script"),
		Setup: setupScript,
	})
}

// setupScript points each script at a local stand-in for the W3C validators.
func setupScript(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, domain.DirPerm); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	server := httptest.NewServer(validatorHandler())
	env.Defer(server.Close)

	config := fmt.Sprintf(`cache_dir: .markcheck/cache
timeout: 5s
markup:
  endpoint: %s/check
css:
  endpoint: %s/css-validator/validator
`, server.URL, server.URL)

	return os.WriteFile(filepath.Join(env.WorkDir, domain.ConfigFileName), []byte(config), domain.FilePerm)
}

// validatorHandler rejects markup containing <blink> and CSS containing the colr property.
func validatorHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		if strings.HasSuffix(r.URL.Path, "/check") {
			if bytes.Contains(body, []byte("blink")) {
				w.Header().Set(domain.StatusHeader, "Invalid")
				_, _ = io.WriteString(w, `<result><messages><msg line="1">element &quot;blink&quot; undefined</msg></messages></result>`)
				return
			}
			w.Header().Set(domain.StatusHeader, "Valid")
			return
		}

		if bytes.Contains(body, []byte("colr")) {
			_, _ = io.WriteString(w, `<html><body><div id="errors"><div><ul>`+
				`<li><span>Line: 1</span> Property colr doesn&#39;t exist</li></ul></div></div></body></html>`)
			return
		}
		_, _ = io.WriteString(w, `<html><body><div id="congrats">No Error Found.</div></body></html>`)
	})
}
