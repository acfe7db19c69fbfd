package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// TwilioNotifier posts messages to the Twilio Messages API.
type TwilioNotifier struct {
	accountSID string
	authToken  string
	from       string
	baseURL    string
	logger     *slog.Logger
}

// NewTwilioNotifier builds a notifier for the given account. baseURL defaults
// to the public Twilio API.
func NewTwilioNotifier(accountSID, authToken, from, baseURL string, logger *slog.Logger) *TwilioNotifier {
	if baseURL == "" {
		baseURL = "https://api.twilio.com"
	}
	return &TwilioNotifier{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

type twilioMessage struct {
	SID     string `json:"sid"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Send submits one message. A non-2xx answer is returned as an error.
func (n *TwilioNotifier) Send(_ context.Context, message Message) error {
	to := message.Destination
	if !strings.HasPrefix(to, "+") {
		to = "+" + to
	}

	args := fiber.AcquireArgs()
	defer fiber.ReleaseArgs(args)
	args.Set("To", to)
	args.Set("From", n.from)
	args.Set("Body", message.Body)

	url := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", n.baseURL, n.accountSID)
	agent := fiber.Post(url).
		BasicAuth(n.accountSID, n.authToken).
		Set("I-Twilio-Idempotency-Token", uuid.NewString()).
		Form(args)

	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("twilio request: %w", errors.Join(errs...))
	}

	var decoded twilioMessage
	decodeErr := json.Unmarshal(body, &decoded)
	if status < fiber.StatusOK || status >= fiber.StatusMultipleChoices {
		if decodeErr != nil || decoded.Message == "" {
			return fmt.Errorf("twilio rejected message: status %d: %s", status, strings.TrimSpace(string(body)))
		}
		return fmt.Errorf("twilio rejected message: status %d code %d: %s", status, decoded.Code, decoded.Message)
	}

	if n.logger != nil {
		n.logger.Info("sms submitted", "kind", message.Kind, "destination", to, "sid", decoded.SID, "status", decoded.Status)
	}
	return nil
}
