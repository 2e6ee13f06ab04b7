package patterns

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ygrebnov/errorc"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ygrebnov/inquire/errors"
)

// Format identifies the encoding of a pattern table file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatOf infers the format from the file extension.
func FormatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	case ".json":
		return FormatJSON, true
	default:
		return "", false
	}
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	logger *zap.Logger
}

// WithLogger sets the logger used by Load.
func WithLogger(logger *zap.Logger) LoadOption {
	return func(o *loadOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Load reads a flat "name: pattern" table from a YAML, TOML or JSON file.
// Patterns are not compiled here.
func Load(path string, opts ...LoadOption) (Table, error) {
	o := loadOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	format, ok := FormatOf(path)
	if !ok {
		return nil, errorc.With(
			errors.ErrUnsupportedFormat,
			errorc.String(errors.ErrorFieldPatternsPath, path),
		)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errorc.With(
			errors.ErrLoadPatterns,
			errorc.String(errors.ErrorFieldPatternsPath, path),
			errorc.Error(errors.ErrorFieldCause, err),
		)
	}
	defer f.Close()

	t, err := Decode(f, format)
	if err != nil {
		return nil, errorc.With(err, errorc.String(errors.ErrorFieldPatternsPath, path))
	}

	o.logger.Debug("patterns loaded",
		zap.String("path", path),
		zap.String("format", string(format)),
		zap.Strings("names", t.Names()),
	)
	return t, nil
}

// Decode reads a pattern table in the given format. Empty input yields an
// empty table.
func Decode(r io.Reader, format Format) (Table, error) {
	t := Table{}
	var err error
	switch format {
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&t)
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&t)
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&t)
	default:
		return nil, errorc.With(
			errors.ErrUnsupportedFormat,
			errorc.String(errors.ErrorFieldPatternsFormat, string(format)),
		)
	}
	if err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errorc.With(
			errors.ErrLoadPatterns,
			errorc.String(errors.ErrorFieldPatternsFormat, string(format)),
			errorc.Error(errors.ErrorFieldCause, err),
		)
	}
	if t == nil {
		t = Table{}
	}
	return t, nil
}
