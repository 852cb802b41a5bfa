package portfolio

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gopkg.in/gomail.v2"
)

// Mailer relays a contact message to the site operator.
type Mailer interface {
	Send(msg ContactMessage) error
}

// SMTPMailer sends contact mail through an SMTP relay.
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

func (m *SMTPMailer) Send(msg ContactMessage) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", m.From)
	mail.SetHeader("To", m.To)
	mail.SetHeader("Reply-To", msg.Email)
	mail.SetHeader("Subject", "Portfolio contact from "+msg.Name)
	mail.SetBody("text/plain", msg.Message+"\n\n-- "+msg.Name+" <"+msg.Email+">")

	d := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)
	if err := d.DialAndSend(mail); err != nil {
		return &DownstreamError{Service: "smtp", Err: err}
	}
	return nil
}

// handleContact validates the submission, stores it in the message log, and
// relays it when a mailer is configured.
func (a *App) handleContact(c echo.Context) error {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.Bind(&req); err != nil {
		return jsonError(c, validationf("invalid request body"))
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return jsonError(c, validationf("name, email and message are required"))
	}
	if !strings.Contains(req.Email, "@") {
		return jsonError(c, validationf("invalid email address"))
	}

	msg := ContactMessage{Name: req.Name, Email: req.Email, Message: req.Message}
	if a.Messages != nil {
		if err := a.Messages.SaveMessage(&msg); err != nil {
			return jsonError(c, err)
		}
	}
	if a.Mailer != nil {
		if err := a.Mailer.Send(msg); err != nil {
			return jsonError(c, err)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
