package contact

import (
	"net/url"
	"strings"

	"portfolio-site/internal/domain/profile"
)

// uriComponentFixups undoes the differences between url.QueryEscape and the
// JavaScript encodeURIComponent: spaces are %20 and !'()* stay literal.
var uriComponentFixups = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func EncodeURIComponent(s string) string {
	return uriComponentFixups.Replace(url.QueryEscape(s))
}

func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BuildURI returns the destination for cmd. Empty endpoint fields are not
// checked and simply produce a degenerate URI.
func BuildURI(ep profile.ContactEndpoints, cmd Command) (string, error) {
	switch cmd.Kind {
	case MethodWhatsApp:
		return "https://wa.me/" + DigitsOnly(ep.WhatsappNumber) + "?text=" + EncodeURIComponent(ep.WhatsappMessage), nil
	case MethodCall:
		return "tel:" + ep.PhoneNumber, nil
	case MethodSMS:
		return "sms:" + ep.PhoneNumber, nil
	case MethodEmail:
		if cmd.Payload == nil {
			return "mailto:" + ep.Email, nil
		}
		return "mailto:" + ep.Email + "?subject=" + EncodeURIComponent(mailSubject(*cmd.Payload)) +
			"&body=" + EncodeURIComponent(mailBody(*cmd.Payload)), nil
	default:
		return "", ErrUnknownMethod
	}
}

func mailSubject(m Message) string {
	return "Message from " + m.Name
}

func mailBody(m Message) string {
	return "Name: " + m.Name + "\nEmail: " + m.Email + "\n\nMessage:\n" + m.Message
}
