package index

import (
	"fmt"
	"strconv"
	"strings"
)

// VirtualScheme is the URI scheme prefix for macro-expansion virtual files.
const VirtualScheme = "macro-scheme:"

// VirtualURI builds the synthetic URI for a macro expansion at (line, col)
// inside macroName, anchored at originFile.
func VirtualURI(originFile, macroName string, line, col int) string {
	origin := strings.TrimPrefix(originFile, "file://")
	return fmt.Sprintf("%s%s/%s/%d_%d", VirtualScheme, origin, macroName, line, col)
}

// IsVirtualURI reports whether uri names a macro expansion.
func IsVirtualURI(uri string) bool {
	return strings.HasPrefix(uri, VirtualScheme)
}

// ParseVirtualURI decomposes a virtual URI back into its origin file, macro
// name, and expansion position. ok is false if uri is not a well-formed
// virtual URI.
func ParseVirtualURI(uri string) (origin, macroName string, line, col int, ok bool) {
	rest := strings.TrimPrefix(uri, VirtualScheme)
	if rest == uri {
		return "", "", 0, 0, false
	}
	idx := strings.LastIndex(rest, "/")
	if idx < 0 {
		return "", "", 0, 0, false
	}
	posPart := rest[idx+1:]
	withoutPos := rest[:idx]
	idx2 := strings.LastIndex(withoutPos, "/")
	if idx2 < 0 {
		return "", "", 0, 0, false
	}
	origin = withoutPos[:idx2]
	macroName = withoutPos[idx2+1:]
	under := strings.IndexByte(posPart, '_')
	if under < 0 {
		return "", "", 0, 0, false
	}
	l, err1 := strconv.Atoi(posPart[:under])
	c, err2 := strconv.Atoi(posPart[under+1:])
	if err1 != nil || err2 != nil {
		return "", "", 0, 0, false
	}
	return origin, macroName, l, c, true
}
