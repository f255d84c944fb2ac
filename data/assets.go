// Package data holds the default character class definitions and settings.
package data

import (
	"embed"
	"net/http"
)

//go:embed charclass.def dictbreak.json
var files embed.FS

// Assets serves the embedded defaults by file name.
var Assets http.FileSystem = http.FS(files)
