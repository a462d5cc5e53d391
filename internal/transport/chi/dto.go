package chi

import (
	"fmt"
	"time"

	domdoc "github.com/kailas-cloud/docdex/internal/domain/document"
	"github.com/kailas-cloud/docdex/internal/domain/search/mode"
	"github.com/kailas-cloud/docdex/internal/domain/search/request"
	"github.com/kailas-cloud/docdex/internal/domain/search/result"
	"github.com/kailas-cloud/docdex/internal/repository/searchlog"
)

// searchRequest is the POST search body.
type searchRequest struct {
	Query             string   `json:"query"`
	Mode              string   `json:"mode,omitempty"`
	TargetDocumentIDs []string `json:"targetDocumentIds,omitempty"`
	Limit             int      `json:"limit,omitempty"`
}

// searchResultItem is one ranked hit in the search response.
type searchResultItem struct {
	DocumentID        string   `json:"documentId"`
	DocumentName      string   `json:"documentName"`
	Relevance         float64  `json:"relevance"`
	SemanticRelevance *float64 `json:"semanticRelevance,omitempty"`
	Context           string   `json:"context"`
	OccurrenceCount   int      `json:"occurrenceCount"`
	MatchType         string   `json:"matchType"`
}

// searchStatistics mirrors result.Statistics with response field names.
type searchStatistics struct {
	DocumentsFound            int     `json:"documentsFound"`
	TotalMatches              int     `json:"totalMatches"`
	AverageMatchesPerDocument float64 `json:"averageMatchesPerDocument"`
	DocumentsOmitted          int     `json:"documentsOmitted,omitempty"`
}

// searchResponse is the POST search response body.
type searchResponse struct {
	Query                 string             `json:"query"`
	Mode                  string             `json:"mode"`
	TotalDocumentsScanned int                `json:"totalDocumentsScanned"`
	TotalResults          int                `json:"totalResults"`
	Results               []searchResultItem `json:"results"`
	Statistics            searchStatistics   `json:"statistics"`
}

// upsertDocumentRequest is the PUT document body.
type upsertDocumentRequest struct {
	DisplayName string `json:"displayName,omitempty"`
	Content     string `json:"content"`
}

// documentResponse is the document resource representation.
type documentResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Content     string `json:"content"`
}

// documentListResponse wraps the document list.
type documentListResponse struct {
	Items []documentResponse `json:"items"`
	Total int                `json:"total"`
}

// queryLogItem is one recorded search in the query log response.
type queryLogItem struct {
	ID         string           `json:"id"`
	RecordedAt time.Time        `json:"recordedAt"`
	Query      string           `json:"query"`
	Mode       string           `json:"mode"`
	Scanned    int              `json:"documentsScanned"`
	Results    int              `json:"resultCount"`
	Statistics searchStatistics `json:"statistics"`
}

// queryLogResponse wraps the query log list.
type queryLogResponse struct {
	Items []queryLogItem `json:"items"`
	Total int            `json:"total"`
}

// errorResponse is the uniform error body.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// healthResponse is the GET /health body.
type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func searchRequestFromDTO(req searchRequest) (request.Request, error) {
	r, err := request.New(req.Query, mode.Mode(req.Mode), req.TargetDocumentIDs, req.Limit)
	if err != nil {
		return request.Request{}, fmt.Errorf("build search request: %w", err)
	}
	return r, nil
}

func searchResultToDTO(r *result.Result) searchResultItem {
	item := searchResultItem{
		DocumentID:      r.DocumentID(),
		DocumentName:    r.DocumentName(),
		Relevance:       r.Relevance(),
		Context:         r.Context(),
		OccurrenceCount: r.Occurrences(),
		MatchType:       string(r.MatchType()),
	}
	if sim, ok := r.SemanticRelevance(); ok {
		item.SemanticRelevance = &sim
	}
	return item
}

func statisticsToDTO(s result.Statistics) searchStatistics {
	return searchStatistics{
		DocumentsFound:            s.DocumentsFound,
		TotalMatches:              s.TotalMatches,
		AverageMatchesPerDocument: s.AverageMatchesPerDoc,
		DocumentsOmitted:          s.DocumentsOmitted,
	}
}

func outcomeToDTO(out *result.Outcome) searchResponse {
	items := make([]searchResultItem, len(out.Results))
	for i := range out.Results {
		items[i] = searchResultToDTO(&out.Results[i])
	}
	return searchResponse{
		Query:                 out.Query,
		Mode:                  string(out.Mode),
		TotalDocumentsScanned: out.DocumentsScanned,
		TotalResults:          len(items),
		Results:               items,
		Statistics:            statisticsToDTO(out.Statistics),
	}
}

func documentToDTO(doc *domdoc.Document) documentResponse {
	return documentResponse{
		ID:          doc.ID(),
		DisplayName: doc.DisplayName(),
		Content:     doc.Content(),
	}
}

func logEntryToDTO(e searchlog.Entry) queryLogItem {
	return queryLogItem{
		ID:         e.ID,
		RecordedAt: e.RecordedAt,
		Query:      e.Query,
		Mode:       e.Mode,
		Scanned:    e.Scanned,
		Results:    e.Results,
		Statistics: statisticsToDTO(e.Statistics),
	}
}
