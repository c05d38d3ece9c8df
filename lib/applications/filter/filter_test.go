package applicationfilter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	dbmodels "job-tracker-backend/models/db"
)

func strPtr(s string) *string {
	return &s
}

func date(day int) time.Time {
	return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
}

func testList() []dbmodels.Application {
	return []dbmodels.Application{
		{ID: "a1", JobTitle: "Go Engineer", Company: "Acme", StatusID: 1, ApplicationDate: date(3),
			Interview: &dbmodels.Interview{Memo: strPtr("remote friendly")}},
		{ID: "a2", JobTitle: "Designer", Company: "Globex", StatusID: 2, ApplicationDate: date(1),
			Interview: &dbmodels.Interview{}},
		{ID: "a3", JobTitle: "Engineer", Company: "Initech", StatusID: 2, ApplicationDate: date(2)},
		{ID: "a4", JobTitle: "Manager", Company: "acme labs", StatusID: 3, ApplicationDate: date(5),
			Interview: &dbmodels.Interview{Memo: strPtr("Engineer panel")}},
	}
}

func ids(list []dbmodels.Application) []string {
	result := []string{}
	for _, rec := range list {
		result = append(result, rec.ID)
	}
	return result
}

func TestApply(t *testing.T) {
	t.Run(`empty criteria keeps everything`, func(t *testing.T) {
		require.Equal(t, []string{"a1", "a2", "a3", "a4"}, ids(Apply(testList(), Criteria{})))
	})

	t.Run(`keyword matches title company or memo`, func(t *testing.T) {
		require.Equal(t, []string{"a1", "a3", "a4"}, ids(Apply(testList(), Criteria{Keyword: "Engineer"})))
		require.Equal(t, []string{"a1"}, ids(Apply(testList(), Criteria{Keyword: "remote"})))
		require.Equal(t, []string{"a2"}, ids(Apply(testList(), Criteria{Keyword: "Globex"})))
	})

	t.Run(`keyword is case sensitive`, func(t *testing.T) {
		require.Equal(t, []string{"a1"}, ids(Apply(testList(), Criteria{Keyword: "Acme"})))
		require.Equal(t, []string{"a4"}, ids(Apply(testList(), Criteria{Keyword: "acme"})))
	})

	t.Run(`keyword filter is exactly the substring subset`, func(t *testing.T) {
		for _, keyword := range []string{"e", "in", "x", "Eng", "panel", "zzz"} {
			expected := []string{}
			for _, rec := range testList() {
				memo, _ := rec.GetMemo()
				if strings.Contains(rec.JobTitle, keyword) || strings.Contains(rec.Company, keyword) ||
					(memo != "" && strings.Contains(memo, keyword)) {
					expected = append(expected, rec.ID)
				}
			}
			require.Equal(t, expected, ids(Apply(testList(), Criteria{Keyword: keyword})), keyword)
		}
	})

	t.Run(`status filter`, func(t *testing.T) {
		for _, status := range []int{1, 2, 3, 4} {
			for _, rec := range Apply(testList(), Criteria{StatusID: status}) {
				require.Equal(t, status, rec.StatusID)
			}
		}
		require.Len(t, Apply(testList(), Criteria{StatusID: 2}), 2)
		require.Empty(t, Apply(testList(), Criteria{StatusID: 4}))
	})

	t.Run(`keyword and status compose`, func(t *testing.T) {
		require.Equal(t, []string{"a3"}, ids(Apply(testList(), Criteria{Keyword: "Engineer", StatusID: 2})))
	})
}

func TestSort(t *testing.T) {
	t.Run(`ascending and descending`, func(t *testing.T) {
		require.Equal(t, []string{"a2", "a3", "a1", "a4"}, ids(Sort(testList(), SortDateAsc)))
		require.Equal(t, []string{"a4", "a1", "a3", "a2"}, ids(Sort(testList(), SortDateDesc)))
	})

	t.Run(`both orders hold the same records`, func(t *testing.T) {
		asc := ids(Sort(testList(), SortDateAsc))
		desc := ids(Sort(testList(), SortDateDesc))
		require.ElementsMatch(t, asc, desc)
	})

	t.Run(`input is not modified`, func(t *testing.T) {
		list := testList()
		_ = Sort(list, SortDateAsc)
		require.Equal(t, []string{"a1", "a2", "a3", "a4"}, ids(list))
	})
}

func TestSortOrder(t *testing.T) {
	t.Run(`toggle twice returns original`, func(t *testing.T) {
		for _, order := range []SortOrder{SortDateAsc, SortDateDesc} {
			require.Equal(t, order, order.Toggle().Toggle())
			require.NotEqual(t, order, order.Toggle())
		}
	})

	t.Run(`unknown value falls back to descending`, func(t *testing.T) {
		require.Equal(t, SortDateDesc, ParseSortOrder(""))
		require.Equal(t, SortDateDesc, ParseSortOrder("Date"))
		require.Equal(t, SortDateAsc, ParseSortOrder("date_asc"))
	})
}

func TestStatusChoices(t *testing.T) {
	statuses := []dbmodels.ApplicationStatus{{ID: 1, Name: "Apply"}, {ID: 2, Name: "Interview"}, {ID: 3, Name: "Offer"}}

	choices := StatusChoices(statuses, testList())
	require.Len(t, choices, 4)
	require.Equal(t, 2, choices["a2"].Selected)
	require.Len(t, choices["a2"].Options, 3)
	for _, option := range choices["a2"].Options {
		require.Equal(t, option.ID == 2, option.Selected)
	}

	options := StatusFilterOptions(statuses, 0)
	for _, option := range options {
		require.False(t, option.Selected)
	}
}
