// Package static serves the landing page assets.
package static

import (
	"embed"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
)

//go:embed assets
var embedded embed.FS

// Assets returns the embedded asset tree, or the directory dir when set.
func Assets(dir string) (fs.FS, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			return nil, errors.New(dir + " is not a directory")
		}
		return os.DirFS(dir), nil
	}
	return fs.Sub(embedded, "assets")
}

// Handler serves files from fsys for routes registered as "GET /static/{path...}".
// An empty path or a directory serves its index.html. Unlike http.FileServer it
// never redirects /index.html to the directory.
func Handler(fsys fs.FS) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean("/" + r.PathValue("path"))[1:]
		if name == "" {
			name = "index.html"
		}
		if !fs.ValidPath(name) {
			http.NotFound(w, r)
			return
		}

		f, info, err := open(fsys, name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		defer f.Close()

		rs, ok := f.(io.ReadSeeker)
		if !ok {
			http.Error(w, "file is not seekable", http.StatusInternalServerError)
			return
		}
		http.ServeContent(w, r, info.Name(), info.ModTime(), rs)
	})
}

func open(fsys fs.FS, name string) (fs.File, fs.FileInfo, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if !info.IsDir() {
		return f, info, nil
	}
	f.Close()
	return open(fsys, path.Join(name, "index.html"))
}
