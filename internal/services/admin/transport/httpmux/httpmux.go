// Package httpmux composes the console's HTTP surface onto a root mux.
package httpmux

import (
	"io/fs"
	"net/http"

	routepath "github.com/chekout/admin/internal/services/admin/routepath"
)

// MountStatic wires static asset serving into the root mux.
func MountStatic(rootMux *http.ServeMux, staticFS fs.FS, withStaticMime func(http.Handler) http.Handler) {
	if rootMux == nil || staticFS == nil {
		return
	}
	staticHandler := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(staticFS)))
	if withStaticMime != nil {
		staticHandler = withStaticMime(staticHandler)
	}
	rootMux.Handle(routepath.StaticPrefix, staticHandler)
}

// MountConsoleRoutes mounts console application routes under the root path.
func MountConsoleRoutes(rootMux *http.ServeMux, consoleMux *http.ServeMux) {
	if rootMux == nil || consoleMux == nil {
		return
	}
	rootMux.Handle(routepath.Root, consoleMux)
}
