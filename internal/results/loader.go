// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package results

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"
)

// =============================================================================
// LOADING
// =============================================================================

// DefaultFileName is the document name the harness drops next to the suite
// it ran. Directory sources resolve to this file.
const DefaultFileName = "results.json"

// httpTimeout bounds a URL fetch when the caller's context carries no
// earlier deadline.
const httpTimeout = 30 * time.Second

// maxDocumentSize caps how much of a results document we will read. JMH
// documents for the full suite are a few MB; anything near this limit is
// not a results document.
const maxDocumentSize = 256 << 20

// Load retrieves and decodes a results document from a filesystem path or
// an http(s) URL, dispatching on the source's scheme prefix.
func Load(ctx context.Context, source string) (*Collection, error) {
	if IsURL(source) {
		return LoadURL(ctx, source)
	}
	return LoadFile(source)
}

// IsURL reports whether the source names an HTTP endpoint rather than a
// filesystem path.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// LoadFile reads and decodes a results document from disk. A directory
// source resolves to <dir>/results.json.
func LoadFile(path string) (*Collection, error) {
	resolved := path
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		resolved = filepath.Join(path, DefaultFileName)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("read results document %s: %w", resolved, err)
	}

	return newCollection(resolved, data)
}

// LoadURL fetches and decodes a results document over HTTP. Any non-200
// status is an error; the response content type is ignored.
func LoadURL(ctx context.Context, url string) (*Collection, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, httpTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build results request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch results document %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch results document %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("read results response from %s: %w", url, err)
	}

	return newCollection(url, data)
}

// newCollection decodes document bytes and fills in source metadata.
func newCollection(source string, data []byte) (*Collection, error) {
	records, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}

	return &Collection{
		Source:      source,
		Records:     records,
		Fingerprint: Fingerprint(data),
		Size:        int64(len(data)),
		LoadedAt:    time.Now(),
	}, nil
}

// Fingerprint returns the hex BLAKE2b-256 digest of a raw document. Equal
// bytes always produce equal fingerprints, which the run history store uses
// to deduplicate saves and the watcher uses to suppress no-op reloads.
func Fingerprint(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
