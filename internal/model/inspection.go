package model

type InspectionVerdict string

const (
	VerdictApproved InspectionVerdict = "Одобрено"
	VerdictRejected InspectionVerdict = "Отклонено"
)

// Inspection is the terminal verdict rendered against a supply. Recording it
// always precedes deletion of the supply it judges.
type Inspection struct {
	ID       int64
	SupplyID int64
	Status   InspectionVerdict
	Comment  string
}

type CreateInspectionParams struct {
	SupplyID int64
	Status   InspectionVerdict
	Comment  string
}
