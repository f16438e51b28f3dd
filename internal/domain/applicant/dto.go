package applicant

type CareerEntry struct {
	Name        string `json:"name"`
	PeriodStart string `json:"periodStart"`
	PeriodEnd   string `json:"periodEnd"`
	Role        string `json:"role"`
}

type CreateApplicantDTO struct {
	Email       string        `json:"email" binding:"required,email"`
	PhoneNumber string        `json:"phoneNumber" binding:"required"`
	Message     string        `json:"message"`
	Career      []CareerEntry `json:"career"`
}

type ModifyStatusDTO struct {
	UserID uint   `json:"userId" binding:"required"`
	Status Status `json:"status" binding:"required"`
}

// StatusPartition is the author-facing accepted/rejected split.
type StatusPartition struct {
	Accepted []Applicant `json:"accepted"`
	Rejected []Applicant `json:"rejected"`
}
