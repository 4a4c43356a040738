// Package persist encodes history snapshots and stores them on disk, one file per edited document.
package persist

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/retrace/internal/core/history"
	"github.com/mailru/easyjson"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown snapshot format")

// Format selects the snapshot encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
	FormatJSON
)

// ParseFormat maps a config name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "toml", "":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
}

// Ext is the file extension used for the format, without the dot.
func (f Format) Ext() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "toml"
	}
}

func (f Format) String() string { return f.Ext() }

// Encode serializes snap in the given format.
func Encode(snap history.Snapshot, f Format) ([]byte, error) {
	switch f {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(snap); err != nil {
			return nil, fmt.Errorf("encode toml snapshot: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		data, err := yaml.Marshal(snap)
		if err != nil {
			return nil, fmt.Errorf("encode yaml snapshot: %w", err)
		}
		return data, nil
	case FormatJSON:
		data, err := easyjson.Marshal(&snapshotJSON{snap})
		if err != nil {
			return nil, fmt.Errorf("encode json snapshot: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("encode: %w", ErrUnknownFormat)
}

// Decode parses a snapshot. It checks structure only; the history Manager
// validates the contents against live text when restoring.
func Decode(data []byte, f Format) (history.Snapshot, error) {
	var snap history.Snapshot
	switch f {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &snap); err != nil {
			return history.Snapshot{}, fmt.Errorf("decode toml snapshot: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return history.Snapshot{}, fmt.Errorf("decode yaml snapshot: %w", err)
		}
	case FormatJSON:
		v := snapshotJSON{}
		if err := easyjson.Unmarshal(data, &v); err != nil {
			return history.Snapshot{}, fmt.Errorf("decode json snapshot: %w", err)
		}
		snap = v.Snapshot
	default:
		return history.Snapshot{}, fmt.Errorf("decode: %w", ErrUnknownFormat)
	}
	return snap, nil
}
