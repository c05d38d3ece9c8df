package models

type ApplicationStatusID int

const (
	ApplicationStatusApply     ApplicationStatusID = 1
	ApplicationStatusInterview ApplicationStatusID = 2
	ApplicationStatusOffer     ApplicationStatusID = 3
	ApplicationStatusHired     ApplicationStatusID = 4
	ApplicationStatusRejected  ApplicationStatusID = 5
)

// ApplicationStatusNames is the reference set seeded into application_statuses.
var ApplicationStatusNames = map[ApplicationStatusID]string{
	ApplicationStatusApply:     "Apply",
	ApplicationStatusInterview: "Interview",
	ApplicationStatusOffer:     "Offer",
	ApplicationStatusHired:     "Hired",
	ApplicationStatusRejected:  "Rejected",
}

func (s ApplicationStatusID) IsKnown() bool {
	_, ok := ApplicationStatusNames[s]
	return ok
}

func (s ApplicationStatusID) String() string {
	return ApplicationStatusNames[s]
}

const (
	ApplicationPageSize = 10

	NoticeNoApplications = "Let's start adding your application!"
	NoticeNothingFound   = "Not found any application."
	NoticeNoHistory      = "You do not have any history yet."
)
