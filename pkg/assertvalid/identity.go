package assertvalid

import (
	"runtime"
	"strings"

	"go.trai.ch/markcheck/internal/core/domain"
)

const selfPackage = "go.trai.ch/markcheck/pkg/assertvalid"

// callerSuite returns the package path of the nearest caller outside this package.
func callerSuite() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		if pkg := packagePath(frame.Function); pkg != "" && pkg != selfPackage {
			return pkg
		}
		if !more {
			return domain.CLISuite
		}
	}
}

// packagePath extracts the import path from a fully qualified function name such as
// "example.com/web.TestIndex.func1" or "example.com/web.(*suite).TestIndex".
func packagePath(function string) string {
	slash := strings.LastIndex(function, "/")
	dot := strings.Index(function[slash+1:], ".")
	if dot < 0 {
		return ""
	}
	return function[:slash+1+dot]
}
