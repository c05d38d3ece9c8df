package applicationfilter

import (
	"slices"
	"strings"

	applicationapimodels "job-tracker-backend/models/api/application"
	dbmodels "job-tracker-backend/models/db"
)

// Criteria narrows a user's applications. Zero values disable each filter.
type Criteria struct {
	Keyword  string
	StatusID int
}

// Apply keeps records matching the keyword (case-sensitive substring of job title,
// company or interview memo) and the status. Input order is kept.
func Apply(list []dbmodels.Application, criteria Criteria) []dbmodels.Application {
	result := make([]dbmodels.Application, 0, len(list))
	for _, rec := range list {
		if criteria.Keyword != "" && !matchKeyword(rec, criteria.Keyword) {
			continue
		}
		if criteria.StatusID != 0 && rec.StatusID != criteria.StatusID {
			continue
		}
		result = append(result, rec)
	}
	return result
}

func matchKeyword(rec dbmodels.Application, keyword string) bool {
	if strings.Contains(rec.JobTitle, keyword) || strings.Contains(rec.Company, keyword) {
		return true
	}
	memo, ok := rec.GetMemo()
	return ok && strings.Contains(memo, keyword)
}

// Sort returns a copy of list ordered by application date.
func Sort(list []dbmodels.Application, order SortOrder) []dbmodels.Application {
	result := slices.Clone(list)
	slices.SortStableFunc(result, func(a, b dbmodels.Application) int {
		cmp := a.ApplicationDate.Compare(b.ApplicationDate)
		if order == SortDateDesc {
			return -cmp
		}
		return cmp
	})
	return result
}

// StatusFilterOptions builds the status dropdown of the search form; 0 is "any".
func StatusFilterOptions(statuses []dbmodels.ApplicationStatus, selected int) []applicationapimodels.StatusOption {
	options := make([]applicationapimodels.StatusOption, 0, len(statuses))
	for _, status := range statuses {
		options = append(options, applicationapimodels.StatusOption{
			ID:       status.ID,
			Name:     status.Name,
			Selected: status.ID == selected,
		})
	}
	return options
}

// StatusChoices maps every application id to its status select.
func StatusChoices(statuses []dbmodels.ApplicationStatus, list []dbmodels.Application) map[string]applicationapimodels.StatusChoice {
	result := make(map[string]applicationapimodels.StatusChoice, len(list))
	for _, rec := range list {
		result[rec.ID] = applicationapimodels.StatusChoice{
			Selected: rec.StatusID,
			Options:  StatusFilterOptions(statuses, rec.StatusID),
		}
	}
	return result
}
