package spec

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/staircast/staircast/pkg/errors"
)

// Spec documents are TOML by default:
//
//	total_height = 280.0
//	width = 100.0
//	num_steps = 14
//	step_depth = 25.0
//	slab_thickness = 18.0
//
//	[[landing]]
//	step_index = 7
//	depth = 100.0
//
// Files ending in .json are decoded as JSON instead, with the same
// field names in snake_case.

// Load reads and validates a staircase spec from path. The format is
// chosen by extension: .json is JSON, everything else is TOML.
func Load(path string) (Staircase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Staircase{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "spec file %s not found", path)
		}
		return Staircase{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "failed to read spec file %s", path)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes spec bytes. ext selects the format the way Load does;
// an empty ext means TOML.
func Parse(data []byte, ext string) (Staircase, error) {
	var s Staircase
	if strings.EqualFold(ext, ".json") {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return Staircase{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid JSON spec")
		}
	} else {
		md, err := toml.Decode(string(data), &s)
		if err != nil {
			return Staircase{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid TOML spec")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Staircase{}, errors.New(errors.ErrCodeInvalidFormat,
				"unknown key %q in spec", undecoded[0].String())
		}
	}

	if err := s.Validate(); err != nil {
		return Staircase{}, err
	}
	s.Normalize()
	return s, nil
}

// Save validates the spec and writes it to path, TOML by default and
// JSON for .json paths. Parent directories are created as needed.
func Save(path string, s Staircase) error {
	if err := s.Validate(); err != nil {
		return err
	}
	s.Normalize()

	data, err := Encode(s, filepath.Ext(path))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "failed to create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "failed to write spec file %s", path)
	}
	return nil
}

// Encode serializes the spec without touching the filesystem. ext
// selects the format the way Save does.
func Encode(s Staircase, ext string) ([]byte, error) {
	if strings.EqualFold(ext, ".json") {
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to encode spec as JSON")
		}
		return append(data, '\n'), nil
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to encode spec as TOML")
	}
	return buf.Bytes(), nil
}
