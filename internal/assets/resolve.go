package assets

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// maxAssetBytes caps how much of a single asset gets embedded.
const maxAssetBytes = 16 << 20

// resolve turns one reference into its embedded form. Already
// self-contained references and allowlisted remote endpoints pass through
// unchanged.
func (in *Inliner) resolve(ctx context.Context, client *http.Client, ref string) (string, error) {
	if isSelfContained(ref) || in.allowed(ref) {
		return ref, nil
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return in.fetchRemote(ctx, client, ref)
	}
	return in.readLocal(ref)
}

// isSelfContained reports whether ref already needs no network or disk.
func isSelfContained(ref string) bool {
	return strings.HasPrefix(ref, "data:") || strings.HasPrefix(ref, "<svg")
}

// allowed checks the reference against the allowlist patterns. Patterns
// match the host+path form of the URL, e.g. "platform.twitter.com/**".
func (in *Inliner) allowed(ref string) bool {
	if len(in.Allow) == 0 {
		return false
	}
	u, err := url.Parse(ref)
	if err != nil || u.Host == "" {
		return false
	}
	target := u.Host + u.Path
	for _, pattern := range in.Allow {
		if ok, err := doublestar.Match(pattern, target); err == nil && ok {
			return true
		}
		// Bare-host patterns should match regardless of path.
		if ok, err := doublestar.Match(pattern, u.Host); err == nil && ok {
			return true
		}
	}
	return false
}

// fetchRemote downloads the asset and encodes it as a data URI.
func (in *Inliner) fetchRemote(ctx context.Context, client *http.Client, ref string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching: status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetBytes+1))
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	if len(data) > maxAssetBytes {
		return "", fmt.Errorf("asset exceeds %d bytes", maxAssetBytes)
	}

	mimeType := resp.Header.Get("Content-Type")
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = mimeType[:i]
	}
	mimeType = strings.TrimSpace(mimeType)
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = sniffMime(ref, data)
	}
	return encodeDataURI(mimeType, data), nil
}

// readLocal embeds a file from disk, resolved against BaseDir.
func (in *Inliner) readLocal(ref string) (string, error) {
	path := ref
	if !filepath.IsAbs(path) {
		path = filepath.Join(in.BaseDir, filepath.FromSlash(ref))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	if len(data) > maxAssetBytes {
		return "", fmt.Errorf("asset exceeds %d bytes", maxAssetBytes)
	}
	return encodeDataURI(sniffMime(ref, data), data), nil
}

// sniffMime guesses a MIME type from the file extension, then the content.
func sniffMime(ref string, data []byte) string {
	if ext := filepath.Ext(strings.SplitN(ref, "?", 2)[0]); ext != "" {
		if t := mime.TypeByExtension(ext); t != "" {
			return t
		}
	}
	return http.DetectContentType(data)
}

func encodeDataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
