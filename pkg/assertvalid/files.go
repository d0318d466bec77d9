package assertvalid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/markcheck/internal/adapters/fs"
	"go.trai.ch/markcheck/internal/core/domain"
)

// Files runs one subtest per markup or CSS file under root, named by its slash-separated
// path relative to root. A zero kind checks both kinds, each file as the kind its extension names.
func (v *Validator) Files(t *testing.T, root string, kind Kind) {
	t.Helper()
	v.files(t, callerSuite(), root, kind)
}

// Files runs Validator.Files with the default Validator.
func Files(t *testing.T, root string, kind Kind) {
	t.Helper()
	v, ok := defaultFor(t)
	if !ok {
		return
	}
	v.files(t, callerSuite(), root, kind)
}

func (v *Validator) files(t *testing.T, suite, root string, kind Kind) {
	t.Helper()

	keep := func(path string) bool {
		k := domain.KindForPath(path)
		return k != domain.KindUnknown && (kind == domain.KindUnknown || k == kind)
	}

	found := false
	for path := range fs.NewWalker().WalkFiles(root, keep) {
		found = true
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)

		t.Run(filepath.ToSlash(rel), func(t *testing.T) {
			// #nosec G304 -- paths come from walking root
			doc, err := os.ReadFile(path)
			require.NoError(t, err)
			v.assert(t, suite, domain.KindForPath(path), doc)
		})
	}

	if !found {
		t.Errorf("no %s files found under %s", describe(kind), root)
	}
}

func describe(kind Kind) string {
	if kind == domain.KindUnknown {
		return "markup or css"
	}
	return kind.String()
}
