package services

import (
	"regexp"
	"strings"
)

// placeholderRegex matches {field_name} patterns in paragraph templates.
var placeholderRegex = regexp.MustCompile(`\{([a-z0-9_]+)\}`)

// ResolveTemplate replaces {field} placeholders with values from the
// record's flat field map. If any placeholder has no value the whole
// template is returned verbatim and a warning is logged; paragraph
// rendering never fails on a bad template.
func ResolveTemplate(content string, fields map[string]string, logger RenderLog) string {
	unresolved := ""
	out := placeholderRegex.ReplaceAllStringFunc(content, func(match string) string {
		key := strings.TrimSuffix(strings.TrimPrefix(match, "{"), "}")
		value, ok := fields[key]
		if !ok || value == "" {
			unresolved = key
			return match
		}
		return value
	})
	if unresolved != "" {
		logger.Warnf("Formatting failed for value %q: missing field %q", content, unresolved)
		return content
	}
	return out
}
