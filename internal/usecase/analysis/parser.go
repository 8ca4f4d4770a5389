package analysis

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/ideasage/backend/internal/entity"
)

// ExtractFields recovers the seven analysis fields from a free-text
// generative response using two tiers:
//
//  1. Structured: the substring between the first '{' and the last '}'
//     is parsed as a JSON object keyed by the field names.
//  2. Recovered: for each field, the raw text is scanned for the field
//     name (exact or camel case split into words, case-insensitive)
//     followed by a line break and one or more non-blank lines,
//     captured up to a blank line or end of text.
//
// Every field name is always present in the result; a field neither
// tier could locate holds a "No <field> provided" placeholder.
func ExtractFields(raw string) *entity.Extraction {
	if fields, ok := parseStructured(raw); ok {
		origins := make(map[string]entity.FieldOrigin, len(entity.AnalysisFields))
		for _, name := range entity.AnalysisFields {
			if v, present := fields[name]; present && v != "" {
				origins[name] = entity.OriginStructured
			} else {
				origins[name] = entity.OriginMissing
			}
		}
		return &entity.Extraction{
			Tier:    entity.TierStructured,
			Fields:  fields,
			Origins: origins,
		}
	}

	return recoverFromText(raw)
}

// parseStructured attempts the first tier. It reports ok=false when no
// JSON object can be located or the located substring is malformed.
func parseStructured(raw string) (map[string]string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, false
	}

	var parsed map[string]string
	if err := json.Unmarshal([]byte(raw[start:end+1]), &parsed); err != nil {
		return nil, false
	}

	// Keep only the known field names; the model sometimes adds
	// commentary keys alongside the requested ones.
	fields := make(map[string]string, len(entity.AnalysisFields))
	for _, name := range entity.AnalysisFields {
		if v, ok := parsed[name]; ok {
			fields[name] = v
		}
	}
	return fields, true
}

func recoverFromText(raw string) *entity.Extraction {
	fields := make(map[string]string, len(entity.AnalysisFields))
	origins := make(map[string]entity.FieldOrigin, len(entity.AnalysisFields))

	for _, name := range entity.AnalysisFields {
		re := fieldPattern(name)
		if m := re.FindStringSubmatch(raw); m != nil {
			fields[name] = strings.TrimSpace(m[1])
			origins[name] = entity.OriginRecovered
			continue
		}
		fields[name] = fmt.Sprintf("No %s provided", name)
		origins[name] = entity.OriginMissing
	}

	return &entity.Extraction{
		Tier:    entity.TierRecovered,
		Fields:  fields,
		Origins: origins,
	}
}

// fieldPattern matches the field name as a heading (camelCase form or
// space-separated words), the rest of that line, then captures the
// following non-blank block.
func fieldPattern(name string) *regexp.Regexp {
	spaced := splitCamelCase(name)
	return regexp.MustCompile(fmt.Sprintf(
		`(?i)(?:%s|%s)[^\n]*\n((?:.+\n?)+?)(?:\n\n|\z)`,
		regexp.QuoteMeta(name), regexp.QuoteMeta(spaced),
	))
}

// splitCamelCase inserts a space before each upper-case rune, turning
// "problemAnalysis" into "problem Analysis".
func splitCamelCase(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
