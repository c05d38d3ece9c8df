package applicationapimodels

import "strings"

// ListFilter is bound from the list page query string.
type ListFilter struct {
	Keyword        string `query:"keyword"`         // new search, resets paging
	CurrentKeyword string `query:"current_keyword"` // keyword carried between pages
	Status         int    `query:"status"`          // 0 = any
	Sort           string `query:"sort"`            // date_asc | date_desc
	Page           int    `query:"page"`
}

// Normalize resolves the effective keyword and page.
func (f ListFilter) Normalize() (keyword string, page int) {
	page = f.Page
	if strings.TrimSpace(f.Keyword) != "" {
		return f.Keyword, 1
	}
	return f.CurrentKeyword, page
}

type StatusOption struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// StatusChoice is the status select rendered for one list row.
type StatusChoice struct {
	Selected int            `json:"selected"`
	Options  []StatusOption `json:"options"`
}

type ListResponse struct {
	Items               []ApplicationView       `json:"items"`
	Page                int                     `json:"page"`
	TotalPages          int                     `json:"total_pages"`
	TotalCount          int                     `json:"total_count"`
	HasPrevious         bool                    `json:"has_previous"`
	HasNext             bool                    `json:"has_next"`
	Sort                string                  `json:"sort"`
	NextSort            string                  `json:"next_sort"`
	Keyword             string                  `json:"keyword,omitempty"`
	Status              int                     `json:"status,omitempty"`
	StatusFilterOptions []StatusOption          `json:"status_filter_options,omitempty"`
	StatusChoices       map[string]StatusChoice `json:"status_choices,omitempty"`
	Notice              string                  `json:"notice,omitempty"`
}
