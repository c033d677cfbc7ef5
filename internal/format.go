package internal

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// Input formats.
const (
	FormatAuto = "auto"
	FormatCSV  = "csv"
	FormatTSV  = "tsv"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the accepted values of a format option.
var Formats = []string{FormatAuto, FormatCSV, FormatTSV, FormatJSON, FormatYAML}

var extensions = map[string]string{
	".csv":  FormatCSV,
	".tsv":  FormatTSV,
	".tab":  FormatTSV,
	".json": FormatJSON,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
}

// formatFor resolves format against the file extension of path.
func formatFor(format, path string) (string, error) {
	switch format {
	case "", FormatAuto:
	case FormatCSV, FormatTSV, FormatJSON, FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("cannot tell the format of %s, use --format", path)
}

// sniff guesses the format of a stream: JSON when it opens with a bracket
// or brace, CSV otherwise.
func sniff(data []byte) string {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
		return FormatJSON
	}
	return FormatCSV
}
