package dtos

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/launchhub/launchhub-backend/internal/models"
)

// Admin forms send list fields either as a JSON array or as one
// delimited string ("Go, SQL, Docker" or newline-separated bullet
// lists). CommaList and LineList normalize both shapes into trimmed,
// empty-free slices at bind time.

type CommaList []string

func (l *CommaList) UnmarshalJSON(data []byte) error {
	items, err := unmarshalFlexible(data, ",")
	if err != nil {
		return err
	}
	*l = items
	return nil
}

type LineList []string

func (l *LineList) UnmarshalJSON(data []byte) error {
	items, err := unmarshalFlexible(data, "\n")
	if err != nil {
		return err
	}
	*l = items
	return nil
}

func unmarshalFlexible(data []byte, sep string) ([]string, error) {
	if string(data) == "null" {
		return nil, nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		return splitAndTrim(s, sep), nil
	}
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return trimNonEmpty(raw), nil
}

func splitAndTrim(s, sep string) []string {
	return trimNonEmpty(strings.Split(s, sep))
}

func trimNonEmpty(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func toStringList(l []string) models.StringList {
	if l == nil {
		return models.StringList{}
	}
	return models.StringList(l)
}

// patch collects the non-nil fields of an update request into the
// column map handed to the store. Fields the caller omitted never
// appear, so an empty request body is a valid no-op update.
type patch struct {
	fields map[string]any
}

func newPatch() *patch {
	return &patch{fields: map[string]any{}}
}

func (p *patch) setString(column string, v *string) {
	if v != nil {
		p.fields[column] = *v
	}
}

func (p *patch) setBool(column string, v *bool) {
	if v != nil {
		p.fields[column] = *v
	}
}

func (p *patch) setInt(column string, v *int) {
	if v != nil {
		p.fields[column] = *v
	}
}

func (p *patch) setComma(column string, v *CommaList) {
	if v != nil {
		p.fields[column] = toStringList(*v)
	}
}

func (p *patch) setLines(column string, v *LineList) {
	if v != nil {
		p.fields[column] = toStringList(*v)
	}
}

func (p *patch) setTime(column string, v *time.Time) {
	if v != nil {
		p.fields[column] = *v
	}
}
