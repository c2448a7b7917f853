// Copyright 2024 - 2026, the Weft contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/zstd"
	"github.com/tidwall/gjson"
)

// Decode errors.
var (
	ErrInvalidArtifact   = errors.New("invalid catalog artifact")
	ErrDuplicateKey      = errors.New("duplicate message key")
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// zstdMagic is the zstd frame magic number, used to sniff compressed artifacts.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// DecodeJSON decodes a bundler catalog artifact: a single JSON object whose
// values are strings (scalar messages) or arrays of strings (plural variants).
//
// Duplicate keys and values of any other shape are decode errors; the store
// contract requires unique keys, and a half-decoded catalog must never reach
// the runtime.
func DecodeJSON(data []byte) (*Catalog, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInvalidArtifact)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top level is not an object", ErrInvalidArtifact)
	}

	entries := make(map[string]Value)

	var decodeErr error

	root.ForEach(func(key, value gjson.Result) bool {
		name := key.String()

		if _, exists := entries[name]; exists {
			decodeErr = fmt.Errorf("%w: %q", ErrDuplicateKey, name)

			return false
		}

		switch {
		case value.Type == gjson.String:
			entries[name] = Scalar(value.String())
		case value.IsArray():
			variants := []string{}

			for _, item := range value.Array() {
				if item.Type != gjson.String {
					decodeErr = fmt.Errorf(
						"%w: key %q: variant %s is not a string", ErrInvalidArtifact, name, item.Raw)

					return false
				}

				variants = append(variants, item.String())
			}

			entries[name] = Plural(variants...)
		default:
			decodeErr = fmt.Errorf(
				"%w: key %q: value must be a string or an array of strings", ErrInvalidArtifact, name)

			return false
		}

		return true
	})

	if decodeErr != nil {
		return nil, decodeErr
	}

	return &Catalog{entries: entries}, nil
}

// DecodeYAML decodes the authoring form of a catalog: a YAML mapping with
// string or string-list values.
func DecodeYAML(data []byte) (*Catalog, error) {
	var raw map[string]any

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArtifact, err)
	}

	entries := make(map[string]Value, len(raw))

	for key, value := range raw {
		switch v := value.(type) {
		case string:
			entries[key] = Scalar(v)
		case []any:
			variants := make([]string, 0, len(v))

			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf(
						"%w: key %q: variant %v is not a string", ErrInvalidArtifact, key, item)
				}

				variants = append(variants, s)
			}

			entries[key] = Plural(variants...)
		default:
			return nil, fmt.Errorf(
				"%w: key %q: value must be a string or a list of strings", ErrInvalidArtifact, key)
		}
	}

	return &Catalog{entries: entries}, nil
}

// DecodeFile reads and decodes the artifact at path. The format is chosen by
// extension (.json, .yaml, .yml); a trailing .zst extension or a zstd frame
// magic triggers transparent decompression first.
func DecodeFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- loading a catalog named by the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	name := path
	if strings.HasSuffix(name, ".zst") || bytes.HasPrefix(data, zstdMagic) {
		data, err = decompress(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress catalog %s: %w", path, err)
		}

		name = strings.TrimSuffix(name, ".zst")
	}

	switch filepath.Ext(name) {
	case ".json":
		return DecodeJSON(data)
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(name))
	}
}

// decompress inflates a zstd frame.
func decompress(data []byte) ([]byte, error) {
	reader, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return io.ReadAll(reader)
}
