package sources

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"tertulia/internal/epid"
	"tertulia/internal/pipeline"
)

// FileHash returns the hex SHA-256 of a file, for snapshot change detection.
func FileHash(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	h := sha256.New()
	if _, err := io.Copy(h, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// hashPath is the sidecar file recording the source hash of a snapshot.
func hashPath(jsonPath string) string { return jsonPath + ".sha256" }

// IsOutdated reports whether the materialized JSON is missing or was parsed
// from a different version of its source, comparing the source hash against
// the one recorded when the JSON was written. A missing hash record counts
// as outdated; an unreadable source does not (there is nothing to re-parse).
func IsOutdated(sourcePath, jsonPath string) bool {
	if _, err := os.Stat(jsonPath); err != nil {
		return true
	}
	recorded, err := os.ReadFile(hashPath(jsonPath))
	if err != nil {
		return true
	}
	current, err := FileHash(sourcePath)
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(recorded)) != current
}

// WriteSnapshot materializes a parsed snapshot and records the hash of the
// source it came from, letting the next run skip an unchanged source.
func WriteSnapshot(jsonPath, sourcePath string, v any) error {
	if err := WriteJSON(jsonPath, v); err != nil {
		return err
	}
	hash, err := FileHash(sourcePath)
	if err != nil {
		return pipeline.Wrap(pipeline.ErrFatal, "sources", "write", sourcePath, err)
	}
	if err := os.WriteFile(hashPath(jsonPath), []byte(hash+"\n"), 0o644); err != nil {
		return pipeline.Wrap(pipeline.ErrFatal, "sources", "write", hashPath(jsonPath), err)
	}
	return nil
}

// WriteJSON materializes a snapshot as pretty-printed UTF-8 JSON with
// non-ASCII characters preserved literally, creating parent directories as
// needed. The write is a single buffered operation.
func WriteJSON(path string, v any) error {
	data, err := MarshalPretty(v)
	if err != nil {
		return pipeline.Wrap(pipeline.ErrFatal, "sources", "write", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return pipeline.Wrap(pipeline.ErrFatal, "sources", "write", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return pipeline.Wrap(pipeline.ErrFatal, "sources", "write", path, err)
	}
	return nil
}

// MarshalPretty encodes v with two-space indentation and HTML escaping
// disabled so accented titles and URLs stay readable in the output files.
func MarshalPretty(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// normalizeID canonicalizes an id, passing unparseable values through
// unchanged; the normalizer already trims them.
func normalizeID(raw string) string {
	normalized, _ := epid.Normalize(raw)
	return normalized
}
