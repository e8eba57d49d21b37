package loader

import (
	"log/slog"
	"strconv"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spboyer/evalreport/internal/models"
)

// recordFields is the loosely-typed shape of one results entry. Each field
// is checked individually so a wrong type only drops that field.
type recordFields struct {
	ID       any `mapstructure:"id"`
	Pass     any `mapstructure:"pass"`
	Scores   any `mapstructure:"scores"`
	Metadata any `mapstructure:"metadata"`
}

func decodeRecord(index int, raw map[string]any) (models.ResultRecord, error) {
	var f recordFields
	if err := mapstructure.Decode(raw, &f); err != nil {
		return models.ResultRecord{}, err
	}

	rec := models.ResultRecord{
		ID:       decodeID(index, f.ID),
		Passed:   decodePass(index, f.Pass),
		Scores:   decodeScores(index, f.Scores),
		Metadata: decodeMetadata(index, f.Metadata),
	}
	return rec, nil
}

func decodeID(index int, v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		logIgnored(index, "id", v)
		return ""
	}
}

func decodePass(index int, v any) bool {
	switch p := v.(type) {
	case nil:
		return false
	case bool:
		return p
	default:
		logIgnored(index, "pass", v)
		return false
	}
}

func decodeScores(index int, v any) map[string]models.Score {
	scores := map[string]models.Score{}
	if v == nil {
		return scores
	}
	m, ok := v.(map[string]any)
	if !ok {
		logIgnored(index, "scores", v)
		return scores
	}
	for name, raw := range m {
		if n, ok := raw.(float64); ok {
			scores[name] = models.NumericScore(n)
			continue
		}
		slog.Debug("Non-numeric score excluded from averages", "record", index, "metric", name, "type", typeName(raw))
		scores[name] = models.Score{Raw: raw}
	}
	return scores
}

func decodeMetadata(index int, v any) models.RecordMetadata {
	if v == nil {
		return models.RecordMetadata{}
	}
	m, ok := v.(map[string]any)
	if !ok {
		logIgnored(index, "metadata", v)
		return models.RecordMetadata{}
	}

	var meta models.RecordMetadata
	if err := mapstructure.Decode(m, &meta); err != nil {
		// Keep the rest of the metadata; only the language is unusable.
		logIgnored(index, "metadata.language", m["language"])
		meta = models.RecordMetadata{Extra: make(map[string]any, len(m))}
		for k, val := range m {
			if k != "language" {
				meta.Extra[k] = val
			}
		}
	}
	return meta
}

func logIgnored(index int, field string, v any) {
	slog.Debug("Ignoring wrong-typed field", "record", index, "field", field, "type", typeName(v))
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}
