package mailer

import "sync"

// SentEmail captures one delivery recorded by MockMailer.
type SentEmail struct {
	Recipient    string
	TemplateFile string
	Data         any
}

// MockMailer records deliveries instead of sending them. Booking confirmations are
// fire-and-forget, so the recorder must tolerate concurrent Sends.
type MockMailer struct {
	mu   sync.Mutex
	sent []SentEmail
}

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) Send(recipient, templateFile string, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = append(m.sent, SentEmail{
		Recipient:    recipient,
		TemplateFile: templateFile,
		Data:         data,
	})

	return nil
}

// GetSentEmails returns a snapshot of everything recorded so far.
func (m *MockMailer) GetSentEmails() []SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]SentEmail(nil), m.sent...)
}
