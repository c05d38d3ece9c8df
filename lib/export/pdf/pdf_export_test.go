package pdfexport

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	applicationapimodels "job-tracker-backend/models/api/application"
)

func TestGenerateHistoryReport(t *testing.T) {
	generatedAt := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run(`renders a pdf document`, func(t *testing.T) {
		list := make([]applicationapimodels.ApplicationView, 0, 60)
		for i := 0; i < 60; i++ {
			list = append(list, applicationapimodels.ApplicationView{
				JobTitle:        fmt.Sprintf("Very long job title number %d that does not fit into its column", i),
				Company:         "Acme",
				ApplicationDate: "2024-04-20",
				StatusName:      "Rejected",
			})
		}
		body, err := GenerateHistoryReport("john@example.com", list, generatedAt)
		require.Nil(t, err)
		require.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
	})

	t.Run(`empty history`, func(t *testing.T) {
		body, err := GenerateHistoryReport("Jöhn", nil, generatedAt)
		require.Nil(t, err)
		require.NotEmpty(t, body)
	})
}
