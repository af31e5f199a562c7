package indexurl

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/go-ini/ini"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	sectionGlobal = "global"
	keyIndexURL   = "index-url"
)

// loadOptions read pip.conf close to the way pip's own parser does: option
// names fold to lower case, section names don't, and indented lines continue
// the previous value. Single and double surrounding quotes, inline comments,
// trailing backslashes and %(name)s references stay part of the value; go-ini
// still unwraps triple-quoted and backquoted values.
var loadOptions = ini.LoadOptions{
	InsensitiveKeys:            true,
	IgnoreInlineComment:        true,
	IgnoreContinuation:         true,
	PreserveSurroundedQuote:    true,
	AllowPythonMultilineValues: true,
	AllowShadows:               true,
}

var utf8BOM = []byte("\xef\xbb\xbf")

// ReadIndexURL returns global.index-url from the file at path. The boolean is
// false when the file is missing, lacks the key, or cannot be parsed; the last
// case is logged as a warning and never reported to the caller.
func (r *Resolver) ReadIndexURL(path string) (string, bool) {
	value, err := r.readIndexURL(path)
	switch {
	case err == nil:
		return value, true
	case errors.Is(err, errFileNotFound), errors.Is(err, errKeyNotFound):
		return "", false
	default:
		r.logger.Warn("pip config could not be read",
			zap.String("path", path),
			zap.Error(err),
		)
		return "", false
	}
}

func (r *Resolver) readIndexURL(path string) (string, error) {
	exists, err := afero.Exists(r.fs, path)
	if err != nil {
		return "", fmt.Errorf("stat: %w", err)
	}
	if !exists {
		return "", errFileNotFound
	}

	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	if err := checkSections(data); err != nil {
		return "", fmt.Errorf("parse INI: %w", err)
	}

	cfg, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return "", fmt.Errorf("parse INI: %w", err)
	}
	if err := checkDuplicateKeys(cfg); err != nil {
		return "", fmt.Errorf("parse INI: %w", err)
	}

	section, err := cfg.GetSection(sectionGlobal)
	if err != nil {
		return "", errKeyNotFound
	}
	if section.HasKey(keyIndexURL) {
		return section.Key(keyIndexURL).Value(), nil
	}

	// Options in [DEFAULT] apply to every section.
	if defaults, err := cfg.GetSection(ini.DefaultSection); err == nil && defaults.HasKey(keyIndexURL) {
		return defaults.Key(keyIndexURL).Value(), nil
	}
	return "", errKeyNotFound
}

// checkSections rejects files whose first entry is not a section header and
// files that repeat a section. go-ini accepts both silently, filing stray
// keys under DEFAULT and merging repeated sections.
func checkSections(data []byte) error {
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	lineNo := 0
	inSection := false

	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := strings.TrimSpace(raw)
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}
		// Indented lines continue the previous value.
		if inSection && (raw[0] == ' ' || raw[0] == '\t') {
			continue
		}

		if line[0] != '[' {
			if !inSection {
				return fmt.Errorf("%w: line %d: %s", errMissingSectionHeader, lineNo, line)
			}
			continue
		}

		end := strings.LastIndexByte(line, ']')
		if end < 0 {
			continue
		}
		name := line[1:end]
		if _, dup := seen[name]; dup && name != ini.DefaultSection {
			return fmt.Errorf("%w: line %d: %s", errDuplicateSection, lineNo, name)
		}
		seen[name] = struct{}{}
		inSection = true
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	return nil
}

// checkDuplicateKeys rejects an option set twice in one section with
// different values. go-ini folds repeats of the same value into one key.
func checkDuplicateKeys(cfg *ini.File) error {
	for _, section := range cfg.Sections() {
		for _, key := range section.Keys() {
			if len(key.ValueWithShadows()) > 1 {
				return fmt.Errorf("%w: [%s] %s", errDuplicateOption, section.Name(), key.Name())
			}
		}
	}
	return nil
}
