package docdex

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/docdex/internal/repository/searchlog"
)

// QueryLogService reads an owner's recorded searches.
// Entries exist only when the client was created with WithSearchLog.
type QueryLogService struct {
	owner string
	svc   queryLogUseCase
	obs   *observer
}

// List returns the owner's recorded searches, newest first.
func (s *QueryLogService) List(ctx context.Context) (entries []QueryLogEntry, err error) {
	start := time.Now()
	defer func() { s.obs.observe("query_log_list", start, err) }()

	internal, err := s.svc.List(ctx, s.owner)
	if err != nil {
		return nil, fmt.Errorf("list queries: %w", err)
	}
	out := make([]QueryLogEntry, len(internal))
	for i := range internal {
		out[i] = fromInternalLogEntry(&internal[i])
	}
	return out, nil
}

func fromInternalLogEntry(e *searchlog.Entry) QueryLogEntry {
	return QueryLogEntry{
		ID:               e.ID,
		RecordedAt:       e.RecordedAt,
		Query:            e.Query,
		Mode:             SearchMode(e.Mode),
		DocumentsScanned: e.Scanned,
		ResultCount:      e.Results,
		Statistics:       fromInternalStatistics(e.Statistics),
	}
}
