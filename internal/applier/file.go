package applier

import (
	"fmt"
	"os"
	"strings"
)

const (
	blockBegin = "/* seedtheme:begin */"
	blockEnd   = "/* seedtheme:end */"
)

// FileSink maintains a marker-delimited `:root` block inside a CSS
// file. Every SetProperty writes through to disk immediately, so a
// partially applied scheme is visible on disk the same way it would be
// on a live style surface.
type FileSink struct {
	path   string
	values map[string]string
	order  []string
}

// NewFileSink opens (or prepares to create) the CSS file at path and
// loads any properties from an existing managed block.
func NewFileSink(path string) (*FileSink, error) {
	sink := &FileSink{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return sink, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	sink.loadExisting(string(data))
	return sink, nil
}

// Path returns the managed file's location.
func (f *FileSink) Path() string {
	return f.path
}

// SetProperty records the property and rewrites the managed block.
func (f *FileSink) SetProperty(name, value string) error {
	if _, exists := f.values[name]; !exists {
		f.order = append(f.order, name)
	}
	f.values[name] = value
	return f.flush()
}

func (f *FileSink) loadExisting(content string) {
	begin := strings.Index(content, blockBegin)
	end := strings.Index(content, blockEnd)
	if begin == -1 || end == -1 || end < begin {
		return
	}

	for _, line := range strings.Split(content[begin+len(blockBegin):end], "\n") {
		trimmed := strings.TrimSuffix(strings.TrimSpace(line), ";")
		name, value, found := strings.Cut(trimmed, ":")
		if !found || !strings.HasPrefix(name, "--") {
			continue
		}
		name = strings.TrimSpace(name)
		if _, exists := f.values[name]; !exists {
			f.order = append(f.order, name)
		}
		f.values[name] = strings.TrimSpace(value)
	}
}

func (f *FileSink) flush() error {
	var block strings.Builder
	block.WriteString(blockBegin)
	block.WriteString("\n:root {\n")
	for _, name := range f.order {
		fmt.Fprintf(&block, "  %s: %s;\n", name, f.values[name])
	}
	block.WriteString("}\n")
	block.WriteString(blockEnd)

	existing, err := os.ReadFile(f.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read %s: %w", f.path, err)
	}

	content := string(existing)
	begin := strings.Index(content, blockBegin)
	end := strings.Index(content, blockEnd)

	var next string
	if begin != -1 && end != -1 && end >= begin {
		next = content[:begin] + block.String() + content[end+len(blockEnd):]
	} else if content == "" {
		next = block.String() + "\n"
	} else {
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		next = content + "\n" + block.String() + "\n"
	}

	if err := os.WriteFile(f.path, []byte(next), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}

var _ StyleSink = (*FileSink)(nil)
