package options

import (
	"context"

	"github.com/larkbridge-io/options-api/internal/lark"
	"github.com/larkbridge-io/options-api/internal/logger"
)

// RecordSource reads one page of rows for a table field.
type RecordSource interface {
	ListRecords(ctx context.Context, appToken, tableID, fieldName string) ([]lark.Record, error)
}

// Service turns raw table records into the deduplicated option list served
// to the form host.
type Service struct {
	source RecordSource
	logger *logger.Logger
}

func NewService(log *logger.Logger, source RecordSource) *Service {
	return &Service{
		source: source,
		logger: log,
	}
}

// Options fetches the field's records and assembles the option list.
// Records normalize in order; the first record producing a display string
// claims it, and later records with an equal string are dropped, ids
// included.
func (s *Service) Options(ctx context.Context, appToken, tableID, fieldName string) (*Result, error) {
	records, err := s.source.ListRecords(ctx, appToken, tableID, fieldName)
	if err != nil {
		return nil, err
	}

	result := newResult(len(records))
	seen := make(map[string]struct{}, len(records))
	for _, record := range records {
		value, ok := NormalizeFieldValue(record.Fields[fieldName])
		if !ok {
			continue
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		result.Options = append(result.Options, Option{ID: record.ID, Value: value})
	}

	s.logger.Debug("Assembled options",
		"field_name", fieldName,
		"records", len(records),
		"options", len(result.Options),
	)
	return result, nil
}
