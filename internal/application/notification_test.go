package application

import (
	"errors"
	"sync"
	"testing"

	"github.com/devpals/devpals-go/internal/domain/applicant"
	"github.com/stretchr/testify/assert"
)

type countingMailer struct {
	mu       sync.Mutex
	attempts []string
	failTo   map[string]bool
}

func (m *countingMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts = append(m.attempts, to)
	if m.failTo[to] {
		return errors.New("smtp: connection refused")
	}
	return nil
}

func TestSendOutcome(t *testing.T) {
	t.Run("one failed send does not abort the batch", func(t *testing.T) {
		mailer := &countingMailer{failTo: map[string]bool{"b@test.dev": true}}
		svc := NewNotificationService(mailer)

		svc.SendOutcome(1, "Chat App", []OutcomeRecipient{
			{Email: "a@test.dev", Outcome: applicant.StatusAccepted},
			{Email: "b@test.dev", Outcome: applicant.StatusRejected},
			{Email: "c@test.dev", Outcome: applicant.StatusRejected},
		})

		assert.Len(t, mailer.attempts, 3)
	})

	t.Run("recipients without an email are skipped", func(t *testing.T) {
		mailer := &countingMailer{}
		svc := NewNotificationService(mailer)

		svc.SendOutcome(1, "Chat App", []OutcomeRecipient{
			{Email: "", Outcome: applicant.StatusRejected},
			{Email: "a@test.dev", Outcome: applicant.StatusAccepted},
		})

		assert.Equal(t, []string{"a@test.dev"}, mailer.attempts)
	})

	t.Run("empty batch sends nothing", func(t *testing.T) {
		mailer := &countingMailer{}
		svc := NewNotificationService(mailer)

		svc.SendOutcome(1, "Chat App", nil)

		assert.Empty(t, mailer.attempts)
	})
}

func TestOutcomeBody(t *testing.T) {
	accepted := outcomeBody("Chat App", applicant.StatusAccepted)
	rejected := outcomeBody("Chat App", applicant.StatusRejected)

	assert.Contains(t, accepted, "accepted")
	assert.Contains(t, accepted, "Chat App")
	assert.Contains(t, rejected, "not selected")
	assert.NotEqual(t, accepted, rejected)
}
