package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"job-tracker-backend/lib/utils/helpers"
	applicationapimodels "job-tracker-backend/models/api/application"
)

const sheetName = "Applications"

type Provider interface {
	ExportApplicationList(list []applicationapimodels.ApplicationView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var applicationHeaders = []string{"Job Title", "Company", "Application Date", "Status", "Interview Date", "Location", "Memo"}

func (i impl) ExportApplicationList(list []applicationapimodels.ApplicationView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, errors.Wrap(err, "failed to name xlsx sheet")
	}
	if err := writeHeader(f, sheetName, applicationHeaders); err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		if err := writeApplicationRows(f, sheetName, list); err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx rows")
		}
	}
	return f.WriteToBuffer()
}

func writeApplicationRows(f *excelize.File, sheet string, list []applicationapimodels.ApplicationView) error {
	if err := styleDataRows(f, sheet, len(applicationHeaders), 2, len(list)+1); err != nil {
		return err
	}
	for idx, item := range list {
		row := idx + 2
		values := []interface{}{item.JobTitle, item.Company, item.ApplicationDate, item.StatusName}
		if item.Interview != nil {
			if item.Interview.InterviewDate != nil {
				values = append(values, item.Interview.InterviewDate.Format(applicationapimodels.InterviewDateLayout))
			} else {
				values = append(values, "")
			}
			values = append(values, helpers.StringValue(item.Interview.Location), helpers.StringValue(item.Interview.Memo))
		}
		for col, value := range values {
			if err := setCell(f, sheet, col+1, row, value); err != nil {
				return err
			}
		}
	}
	return nil
}
