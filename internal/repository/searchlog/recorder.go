package searchlog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/kailas-cloud/docdex/internal/domain"
	"github.com/kailas-cloud/docdex/internal/domain/search/result"
)

// store is the consumer interface for the search log (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Entry is a recorded search.
type Entry struct {
	ID         string            `json:"id"`
	RecordedAt time.Time         `json:"recorded_at"`
	Query      string            `json:"query"`
	Mode       string            `json:"mode"`
	Scanned    int               `json:"documents_scanned"`
	Results    int               `json:"result_count"`
	Statistics result.Statistics `json:"statistics"`
}

// Recorder persists search outcomes for later inspection.
// IDs are KSUIDs, so lexicographic key order is creation order.
type Recorder struct {
	store store
	ttl   time.Duration
	now   func() time.Time
}

// New creates a search log recorder. ttl of zero keeps entries forever.
func New(s store, ttl time.Duration) *Recorder {
	return &Recorder{store: s, ttl: ttl, now: time.Now}
}

// Record stores a search outcome and returns the generated entry ID.
func (r *Recorder) Record(ctx context.Context, owner string, out *result.Outcome) (string, error) {
	id := ksuid.New().String()
	entry := Entry{
		ID:         id,
		RecordedAt: r.now().UTC(),
		Query:      out.Query,
		Mode:       string(out.Mode),
		Scanned:    out.DocumentsScanned,
		Results:    len(out.Results),
		Statistics: out.Statistics,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return "", fmt.Errorf("marshal search log entry: %w", err)
	}

	key := logKey(owner, id)
	if r.ttl > 0 {
		err = r.store.SetWithTTL(ctx, key, data, r.ttl)
	} else {
		err = r.store.Set(ctx, key, data)
	}
	if err != nil {
		return "", fmt.Errorf("store search log entry %s: %w", key, err)
	}
	return id, nil
}

// List returns an owner's recorded searches, newest first.
func (r *Recorder) List(ctx context.Context, owner string) ([]Entry, error) {
	keys, err := r.store.Scan(ctx, logKey(owner, "*"))
	if err != nil {
		return nil, fmt.Errorf("scan search log for %s: %w", owner, err)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		data, err := r.store.Get(ctx, key)
		if err != nil {
			// Entry may have expired between SCAN and GET.
			continue
		}
		var e Entry
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("unmarshal search log entry %s: %w", key, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func logKey(owner, id string) string {
	return fmt.Sprintf("%s%s:query:%s", domain.KeyPrefix, owner, id)
}
