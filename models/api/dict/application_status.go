package dictapimodels

import dbmodels "job-tracker-backend/models/db"

type ApplicationStatusView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func ApplicationStatusConvert(rec dbmodels.ApplicationStatus) ApplicationStatusView {
	return ApplicationStatusView{
		ID:   rec.ID,
		Name: rec.Name,
	}
}
