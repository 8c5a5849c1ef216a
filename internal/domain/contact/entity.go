package contact

import (
	"errors"
	"strings"
)

var ErrUnknownMethod = errors.New("unknown contact method")

// Method is one of the four outreach channels.
type Method string

const (
	MethodWhatsApp Method = "whatsapp"
	MethodCall     Method = "call"
	MethodSMS      Method = "sms"
	MethodEmail    Method = "email"
)

func Methods() []Method {
	return []Method{MethodWhatsApp, MethodCall, MethodSMS, MethodEmail}
}

// ParseMethod accepts the short route names as well as the long channel names.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "whatsapp", "chat-message":
		return MethodWhatsApp, nil
	case "call", "phone-call":
		return MethodCall, nil
	case "sms", "text-message":
		return MethodSMS, nil
	case "email", "electronic-mail":
		return MethodEmail, nil
	default:
		return "", ErrUnknownMethod
	}
}

func (m Method) Label() string {
	switch m {
	case MethodWhatsApp:
		return "WhatsApp"
	case MethodCall:
		return "Call Me"
	case MethodSMS:
		return "Send SMS"
	case MethodEmail:
		return "Email"
	}
	return string(m)
}

func (m Method) Description() string {
	switch m {
	case MethodWhatsApp:
		return "Quick chat on WhatsApp"
	case MethodCall:
		return "Direct phone call"
	case MethodSMS:
		return "Text message"
	case MethodEmail:
		return "Send an email"
	}
	return ""
}

// Message is what a visitor types into the contact form.
type Message struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Message string `json:"message" form:"message" validate:"required"`
}

// Command is a request to open one contact channel. Payload is only read for
// MethodEmail.
type Command struct {
	Kind    Method
	Payload *Message
}
