// Package web holds the server rendered views.
package web

import (
	"embed"
	"io/fs"
)

//go:embed views
var files embed.FS

// Views is rooted at the views directory, template names are paths without
// the .html suffix, e.g. "catalog/index".
func Views() fs.FS {
	views, err := fs.Sub(files, "views")
	if err != nil {
		panic(err)
	}
	return views
}
