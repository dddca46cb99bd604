package config

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/a8m/envsubst"
	"github.com/pkg/errors"
)

// Read reads a config from the given file. Environment variables referenced as $VAR or ${VAR} are
// substituted before the file is decoded.
func Read(filePath string) (*Config, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %q", filePath)
	}

	cfg, err := FromReader(bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	cfg.ConfigFilePath = filePath
	return cfg, nil
}

// FromReader decodes and validates a config from the given reader.
func FromReader(r io.Reader) (*Config, error) {
	var cfg Config
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to decode Config from json")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &cfg, nil
}
