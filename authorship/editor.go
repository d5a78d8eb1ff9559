package authorship

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// AnonymousPrefix marks editor identifiers of anonymous (IP) attributions.
const AnonymousPrefix = "0|"

// IsAnonymous reports whether the editor identifier is an anonymous attribution.
func IsAnonymous(editor string) bool {
	return strings.HasPrefix(editor, AnonymousPrefix)
}

// ClassName returns the identifier of the editor which is safe to expose.
// Registered editors keep their numeric id, anonymous ones are replaced
// by the hex md5 digest of the whole attribution string.
func ClassName(editor string) string {
	if !IsAnonymous(editor) {
		return editor
	}

	sum := md5.Sum([]byte(editor))
	return hex.EncodeToString(sum[:])
}

// DisplayName resolves the editor's name, falling back to the identifier itself.
// Anonymous editors are named by their class name, so their address is never shown.
func DisplayName(editor string, names map[string]string) string {
	if IsAnonymous(editor) {
		return ClassName(editor)
	}

	if name, ok := names[editor]; ok && name != "" {
		return name
	}
	return editor
}
