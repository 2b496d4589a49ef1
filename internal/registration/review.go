package registration

import (
	"encoding/json"
	"sort"

	"jaz-events-api/internal/formschema"

	"github.com/iancoleman/orderedmap"
)

// Review relabels a registration's answer map for admin display: keys are
// replaced by schema labels, listed in schema order. Answers whose field no
// longer exists in the schema keep their raw key and are appended after,
// in stable order, so nothing a visitor typed is hidden.
func Review(reg *Registration, schema formschema.Schema, locale string) (*orderedmap.OrderedMap, error) {
	var answers map[string]string
	if len(reg.Answers) > 0 {
		if err := json.Unmarshal(reg.Answers, &answers); err != nil {
			return nil, err
		}
	}

	out := orderedmap.New()
	seen := make(map[string]struct{}, len(schema))

	for _, f := range schema {
		seen[f.ID] = struct{}{}
		if v, ok := answers[f.ID]; ok {
			label := f.Label(locale)
			if label == "" {
				label = f.ID
			}
			out.Set(label, v)
		}
	}

	var orphaned []string
	for k := range answers {
		if _, ok := seen[k]; !ok {
			orphaned = append(orphaned, k)
		}
	}
	sort.Strings(orphaned)
	for _, k := range orphaned {
		out.Set(k, answers[k])
	}

	return out, nil
}
