package codec

import "sync/atomic"

// jsonEscapeSlash toggles whether the JSON encoder escapes "/" as "\/".
// Off by default; hosts that need output byte-compatible with serializers
// that escape the forward slash flip it on at startup.
var jsonEscapeSlash atomic.Bool

// SetJSONEscapeForwardSlash sets the process-wide forward slash escaping
// flag for the JSON codec.
func SetJSONEscapeForwardSlash(on bool) {
	jsonEscapeSlash.Store(on)
}

// JSONEscapeForwardSlash returns the current state of the forward slash
// escaping flag.
func JSONEscapeForwardSlash() bool {
	return jsonEscapeSlash.Load()
}
