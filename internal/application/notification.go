package application

import (
	"fmt"
	"log"
	"sync"

	"github.com/devpals/devpals-go/internal/domain/applicant"
)

const outcomeSubject = "DevPals application result"

// Mailer is the external mail transport. Any returned error is treated as a
// per-recipient delivery failure.
type Mailer interface {
	Send(to, subject, body string) error
}

// OutcomeRecipient is one applicant to notify about a decided application.
type OutcomeRecipient struct {
	Email   string
	Outcome applicant.Status
}

// NotificationService delivers outcome mail. Recipients are independent:
// one failed send is logged and never aborts the batch, and the service
// never retries within a single invocation.
type NotificationService struct {
	mailer Mailer
}

func NewNotificationService(mailer Mailer) *NotificationService {
	return &NotificationService{mailer: mailer}
}

// SendOutcome attempts delivery to every recipient with an email on file.
// Recipients without one are skipped. Sends run concurrently; SendOutcome
// returns once every attempt has finished.
func (s *NotificationService) SendOutcome(projectID uint, projectTitle string, recipients []OutcomeRecipient) {
	var wg sync.WaitGroup
	for _, rcpt := range recipients {
		if rcpt.Email == "" {
			continue
		}
		wg.Add(1)
		go func(rc OutcomeRecipient) {
			defer wg.Done()
			body := outcomeBody(projectTitle, rc.Outcome)
			if err := s.mailer.Send(rc.Email, outcomeSubject, body); err != nil {
				log.Printf("notification to %s for project %d failed: %v", rc.Email, projectID, err)
			}
		}(rcpt)
	}
	wg.Wait()
}

func outcomeBody(projectTitle string, outcome applicant.Status) string {
	if outcome == applicant.StatusAccepted {
		return fmt.Sprintf("Congratulations! You have been accepted to the %s project.", projectTitle)
	}
	return fmt.Sprintf("We regret to inform you that you were not selected for the %s project.", projectTitle)
}
