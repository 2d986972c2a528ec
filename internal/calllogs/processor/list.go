package processor

import (
	"context"

	"answering-service/internal/store"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// Pagination describes where a page sits in the full result.
type Pagination struct {
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

type ListCallsResult struct {
	Calls      []store.CallLog `json:"calls"`
	Pagination Pagination      `json:"pagination"`
}

// NormalizePage clamps page numbers below 1 to 1 and page sizes to [1, MaxPerPage], with
// sizes below 1 falling back to DefaultPerPage.
func NormalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

// ListCalls returns one page of call logs, newest first.
func (p CallLogProcessor) ListCalls(ctx context.Context, page, perPage int) (ListCallsResult, error) {
	page, perPage = NormalizePage(page, perPage)

	total, err := p.store.CountCallLogs(ctx, store.CallLogFilter{})
	if err != nil {
		p.logger.Error(ctx, "failed to count call logs", err)
		return ListCallsResult{}, err
	}

	calls, err := p.store.ListCallLogs(ctx, store.CallLogFilter{}, perPage, (page-1)*perPage)
	if err != nil {
		p.logger.Error(ctx, "failed to list call logs", err)
		return ListCallsResult{}, err
	}

	pages := (total + perPage - 1) / perPage
	return ListCallsResult{
		Calls: calls,
		Pagination: Pagination{
			Page:    page,
			PerPage: perPage,
			Total:   total,
			Pages:   pages,
			HasNext: page < pages,
			HasPrev: page > 1,
		},
	}, nil
}
