package steady

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/zoobzio/capitan"
	"gopkg.in/yaml.v3"
)

// validate is the shared validator instance.
var validate = validator.New()

// Format specifies the expected status document format.
type Format int

const (
	// FormatAuto detects format from content (default).
	FormatAuto Format = iota
	// FormatJSON expects JSON format.
	FormatJSON
	// FormatYAML expects YAML format.
	FormatYAML
)

// statusDocument is the on-disk shape a connectivity agent writes.
type statusDocument struct {
	Status string `yaml:"status" json:"status" validate:"required"`
	Reason string `yaml:"reason" json:"reason"`
}

// FileSource watches a status document on disk and emits the statuses it
// decodes. The connectivity agent owns the file; this source only reads it.
// Documents that fail to decode or validate are skipped and the last known
// status is retained.
type FileSource struct {
	path   string
	format Format
	latest atomic.Int32
}

// FileOption configures a FileSource.
type FileOption func(*FileSource)

// WithJSON enforces JSON format for the status document.
// Without this option, format is auto-detected.
func WithJSON() FileOption {
	return func(f *FileSource) {
		f.format = FormatJSON
	}
}

// WithYAML enforces YAML format for the status document (which also accepts
// JSON). Without this option, format is auto-detected.
func WithYAML() FileOption {
	return func(f *FileSource) {
		f.format = FormatYAML
	}
}

// NewFileSource creates a FileSource for the given document path.
func NewFileSource(path string, opts ...FileOption) *FileSource {
	f := &FileSource{path: path}
	for _, opt := range opts {
		opt(f)
	}
	f.latest.Store(int32(StatusDisconnected))
	return f
}

// Latest returns the most recently decoded status, or StatusDisconnected if
// no document has been decoded yet.
func (f *FileSource) Latest() Status {
	return Status(f.latest.Load())
}

// Watch begins watching the document and returns a channel that emits a
// status whenever the file is written with a valid document. The current
// status is emitted immediately; an unreadable or invalid initial document
// reports Disconnected until the agent writes a good one.
func (f *FileSource) Watch(ctx context.Context) (<-chan Status, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := watcher.Add(f.path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch file %s: %w", f.path, err)
	}

	out := make(chan Status)

	go func() {
		defer close(out)
		defer watcher.Close()

		status, err := f.read(ctx)
		if err != nil {
			status = StatusDisconnected
		}
		f.latest.Store(int32(status))
		select {
		case out <- status:
		case <-ctx.Done():
			return
		}

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				// Only react to write or create events
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				status, err := f.read(ctx)
				if err != nil {
					continue
				}

				f.latest.Store(int32(status))
				select {
				case out <- status:
				case <-ctx.Done():
					return
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Continue watching despite errors
			}
		}
	}()

	return out, nil
}

// read loads, decodes, and validates the status document.
func (f *FileSource) read(ctx context.Context) (Status, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		capitan.Emit(ctx, SourceDecodeFailed,
			KeySourcePath.Field(f.path),
			KeyError.Field(err.Error()),
		)
		return StatusDisconnected, fmt.Errorf("read status document: %w", err)
	}

	var doc statusDocument
	if err := unmarshal(data, &doc, f.format); err != nil {
		capitan.Emit(ctx, SourceDecodeFailed,
			KeySourcePath.Field(f.path),
			KeyError.Field(err.Error()),
		)
		return StatusDisconnected, fmt.Errorf("decode status document: %w", err)
	}

	if err := validate.Struct(doc); err != nil {
		capitan.Emit(ctx, SourceValidationFailed,
			KeySourcePath.Field(f.path),
			KeyError.Field(err.Error()),
		)
		return StatusDisconnected, fmt.Errorf("validate status document: %w", err)
	}

	status, err := ParseStatus(doc.Status)
	if err != nil {
		capitan.Emit(ctx, SourceValidationFailed,
			KeySourcePath.Field(f.path),
			KeyError.Field(err.Error()),
		)
		return StatusDisconnected, fmt.Errorf("validate status document: %w", err)
	}

	return status, nil
}

// unmarshal parses bytes according to the specified format.
// If format is FormatAuto, it detects the format from content.
func unmarshal(data []byte, v any, format Format) error {
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("expected JSON: %w", err)
		}
		return nil

	case FormatYAML:
		return yaml.Unmarshal(data, v)

	default: // FormatAuto
		// Trim whitespace for detection
		trimmed := bytes.TrimSpace(data)

		// Detect JSON by leading character
		if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
			return json.Unmarshal(data, v)
		}

		// Default to YAML (which also handles plain JSON)
		return yaml.Unmarshal(data, v)
	}
}
