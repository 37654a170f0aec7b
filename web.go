package main

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed web
var webFS embed.FS

// widgetPageHandler serves the embedded single-page widget.
func widgetPageHandler() http.Handler {
	sub, err := fs.Sub(webFS, "web")
	if err != nil {
		// The web directory is compiled in; a failure here is a build defect.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
