package server

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"
)

//go:embed static/*
var staticFiles embed.FS

// staticAsset is one embedded stylesheet or script, held with its validator
type staticAsset struct {
	contentType string
	etag        string
	data        []byte
}

// loadStaticAssets reads every embedded asset up front, keyed by its request path without the
// leading slash (e.g. "css/style.css").
func loadStaticAssets() (map[string]staticAsset, error) {
	root, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to open static assets: %w", err)
	}

	assets := make(map[string]staticAsset)
	err = fs.WalkDir(root, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(root, name)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		sum := sha256.Sum256(data)
		assets[name] = staticAsset{
			contentType: assetContentType(name, data),
			etag:        `"` + hex.EncodeToString(sum[:8]) + `"`,
			data:        data,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assets, nil
}

func assetContentType(name string, data []byte) string {
	ctype := mime.TypeByExtension(strings.ToLower(path.Ext(name)))
	if ctype == "" {
		ctype = http.DetectContentType(data)
	}
	if strings.HasPrefix(ctype, "text/") && !strings.Contains(strings.ToLower(ctype), "charset=") {
		ctype += "; charset=utf-8"
	}
	return ctype
}

// serveAsset writes the named asset, answering 304 when the client already holds it
func (s *Server) serveAsset(w http.ResponseWriter, r *http.Request, name string) error {
	asset, ok := s.assets[name]
	if !ok {
		return fmt.Errorf("no static asset %s", name)
	}

	w.Header().Set("ETag", asset.etag)
	if r.Header.Get("If-None-Match") == asset.etag {
		w.WriteHeader(http.StatusNotModified)
		return nil
	}
	w.Header().Set("Content-Type", asset.contentType)
	if _, err := w.Write(asset.data); err != nil {
		return fmt.Errorf("failed to write %s content: %w", name, err)
	}
	return nil
}
