package xrview

import (
	"fmt"
	"os"
)

// warnf prints a non-fatal warning to stderr. Used for degraded features
// (missing material, empty animation list, failed texture loads) that
// must not take down the rest of the viewer.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[xrview] warning: "+format+"\n", args...)
}
