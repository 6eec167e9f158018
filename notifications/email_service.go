package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	config "github.com/rohitpatil04/turf_booking/configs"
)

type BrevoService struct {
	APIKey      string
	SenderEmail string
	SenderName  string
}

// Email is one queued outbound message.
type Email struct {
	ToName  string
	ToEmail string
	Subject string
	HTML    string
}

var EmailClient *BrevoService
var emailQueue chan Email

type brevoPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

// InitEmailService builds the Brevo client and starts the background
// dispatch worker. Without configuration the service stays disabled and
// SendEmail becomes a no-op.
func InitEmailService() {
	apiKey := config.Config("BREVO_API_KEY")
	senderEmail := config.Config("EMAIL_SENDER")
	senderName := config.Config("EMAIL_SENDER_NAME")

	if apiKey == "" || senderEmail == "" || senderName == "" {
		log.Println("⚠️ Email service not configured. Missing API Key, Sender Email, or Sender Name.")
		EmailClient = nil
		return
	}

	EmailClient = &BrevoService{
		APIKey:      apiKey,
		SenderEmail: senderEmail,
		SenderName:  senderName,
	}

	emailQueue = make(chan Email, 64)
	go dispatchWorker()

	log.Println("✅ Email service initialized successfully.")
}

// Ready reports whether the email service is configured and running.
func Ready() bool {
	return EmailClient != nil && emailQueue != nil
}

// dispatchWorker drains the queue. A failed send is logged and dropped;
// email is best-effort and must never block or fail a booking.
func dispatchWorker() {
	for msg := range emailQueue {
		if err := EmailClient.send(msg.ToEmail, msg.ToName, msg.Subject, msg.HTML); err != nil {
			log.Printf("🔥 Failed to send email to %s: %v", msg.ToEmail, err)
			continue
		}
		log.Printf("✅ Email sent successfully to %s", msg.ToEmail)
	}
}

// SendEmail enqueues a message for background delivery. It never blocks the
// caller: when the queue is full the message is dropped with a log line.
func SendEmail(toName, toEmail, subject, htmlContent string) {
	if !Ready() {
		log.Println("Email client not initialized, skipping email send.")
		return
	}

	select {
	case emailQueue <- Email{ToName: toName, ToEmail: toEmail, Subject: subject, HTML: htmlContent}:
	default:
		log.Printf("⚠️ Email queue full, dropping message to %s", toEmail)
	}
}

func (s *BrevoService) send(toEmail, toName, subject, htmlContent string) error {
	url := "https://api.brevo.com/v3/smtp/email"

	if toEmail == "" || !strings.Contains(toEmail, "@") {
		return fmt.Errorf("invalid recipient email: %s", toEmail)
	}

	recipientName := toName
	if recipientName == "" {
		recipientName = toEmail[:strings.Index(toEmail, "@")]
	}

	payload := brevoPayload{
		Sender:      map[string]string{"name": s.SenderName, "email": s.SenderEmail},
		To:          []map[string]string{{"email": toEmail, "name": recipientName}},
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %v", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", s.APIKey)
	req.Header.Set("content-type", "application/json")

	client := &http.Client{
		Timeout: 10 * time.Second,
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("failed to send email via Brevo: %s", string(bodyBytes))
	}

	return nil
}
