package docdex

import (
	"context"

	domdoc "github.com/kailas-cloud/docdex/internal/domain/document"
	"github.com/kailas-cloud/docdex/internal/domain/search/request"
	"github.com/kailas-cloud/docdex/internal/domain/search/result"
	"github.com/kailas-cloud/docdex/internal/repository/searchlog"
	healthuc "github.com/kailas-cloud/docdex/internal/usecase/health"
)

type mockSearchUC struct {
	searchFn func(ctx context.Context, owner string, req *request.Request) (*result.Outcome, error)
}

func (m *mockSearchUC) Search(ctx context.Context, owner string, req *request.Request) (*result.Outcome, error) {
	return m.searchFn(ctx, owner, req)
}

type mockDocumentUC struct {
	upsertFn func(ctx context.Context, owner string, doc *domdoc.Document) (bool, error)
	getFn    func(ctx context.Context, owner, id string) (domdoc.Document, error)
	listFn   func(ctx context.Context, owner string) ([]domdoc.Document, error)
	deleteFn func(ctx context.Context, owner, id string) error
}

func (m *mockDocumentUC) Upsert(ctx context.Context, owner string, doc *domdoc.Document) (bool, error) {
	return m.upsertFn(ctx, owner, doc)
}

func (m *mockDocumentUC) Get(ctx context.Context, owner, id string) (domdoc.Document, error) {
	return m.getFn(ctx, owner, id)
}

func (m *mockDocumentUC) List(ctx context.Context, owner string) ([]domdoc.Document, error) {
	return m.listFn(ctx, owner)
}

func (m *mockDocumentUC) Delete(ctx context.Context, owner, id string) error {
	return m.deleteFn(ctx, owner, id)
}

type mockQueryLogUC struct {
	listFn func(ctx context.Context, owner string) ([]searchlog.Entry, error)
}

func (m *mockQueryLogUC) List(ctx context.Context, owner string) ([]searchlog.Entry, error) {
	return m.listFn(ctx, owner)
}

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(_ context.Context) healthuc.Report {
	return m.report
}
