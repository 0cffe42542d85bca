package runtime

import (
	"embed"
	"io/fs"
)

//go:embed assets/*.js
var embeddedAssets embed.FS

// ScriptName is the runtime bundle file name.
const ScriptName = "wizard.js"

// AssetsFS exposes the embedded runtime assets for callers that serve them
// separately instead of inlining.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

// Script returns the browser runtime source for inlining into a compiled
// document.
func Script() string {
	data, err := fs.ReadFile(embeddedAssets, "assets/"+ScriptName)
	if err != nil {
		return ""
	}
	return string(data)
}
