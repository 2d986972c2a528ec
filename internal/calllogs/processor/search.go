package processor

import (
	"context"
	"strings"
	"time"

	"answering-service/internal/store"
	"answering-service/internal/validation"
)

const DefaultSearchLimit = 50

// SearchRequest is the structured search input. Absent fields do not filter.
type SearchRequest struct {
	Phone     *string `json:"phone"`
	Intent    *string `json:"intent"`
	Keywords  *string `json:"keywords"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Limit     *int    `json:"limit" validate:"omitempty,min=1,max=100"`
	Offset    *int    `json:"offset" validate:"omitempty,gte=0"`
}

type SearchResult struct {
	Calls  []store.CallLog `json:"calls"`
	Total  int             `json:"total"`
	Offset int             `json:"offset"`
	Limit  int             `json:"limit"`
}

// dateLayouts are the accepted ISO-8601 forms. Layouts without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// Search validates req and returns the matching page together with the unpaginated total.
// Every invalid field is reported in one validation.Error.
func (p CallLogProcessor) Search(ctx context.Context, req SearchRequest) (SearchResult, error) {
	filter, limit, offset, err := p.buildSearch(req)
	if err != nil {
		p.logger.Info(ctx, "rejected search request: "+err.Error())
		return SearchResult{}, err
	}

	calls, err := p.store.ListCallLogs(ctx, filter, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to search call logs", err)
		return SearchResult{}, err
	}

	total, err := p.store.CountCallLogs(ctx, filter)
	if err != nil {
		p.logger.Error(ctx, "failed to count matching call logs", err)
		return SearchResult{}, err
	}

	return SearchResult{
		Calls:  calls,
		Total:  total,
		Offset: offset,
		Limit:  limit,
	}, nil
}

func (p CallLogProcessor) buildSearch(req SearchRequest) (store.CallLogFilter, int, int, error) {
	vErr := &validation.Error{}
	if err := p.validator.Struct(req, vErr); err != nil {
		return store.CallLogFilter{}, 0, 0, err
	}

	filter := store.CallLogFilter{
		Phone:    deref(req.Phone),
		Intent:   deref(req.Intent),
		Keywords: deref(req.Keywords),
	}
	if req.StartDate != nil && *req.StartDate != "" {
		if t, ok := parseDate(*req.StartDate); ok {
			filter.Start = &t
		} else {
			vErr.Add("start_date", "must be an ISO-8601 date")
		}
	}
	if req.EndDate != nil && *req.EndDate != "" {
		if t, ok := parseDate(*req.EndDate); ok {
			filter.End = &t
		} else {
			vErr.Add("end_date", "must be an ISO-8601 date")
		}
	}
	if err := vErr.OrNil(); err != nil {
		return store.CallLogFilter{}, 0, 0, err
	}

	limit := DefaultSearchLimit
	if req.Limit != nil {
		limit = *req.Limit
	}
	offset := 0
	if req.Offset != nil {
		offset = *req.Offset
	}
	return filter, limit, offset, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
