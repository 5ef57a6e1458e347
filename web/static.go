package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// StaticHandler serves the embedded assets under the given URL prefix.
func StaticHandler(prefix string) http.Handler {
	assets, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err) // embed layout is fixed at build time
	}
	return http.StripPrefix(prefix, http.FileServer(http.FS(assets)))
}
