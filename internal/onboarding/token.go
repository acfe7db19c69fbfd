package onboarding

import (
	"math/rand/v2"
	"strconv"
)

const (
	tokenMin = 1000
	// tokenSpan keeps the historical range: values land in [1000, 9998].
	tokenSpan = 9999 - 1000
)

// smsTemplate is prefixed to the token with no separator.
const smsTemplate = "Whatsclone código de validaçao"

// IntN returns a uniform int in [0, n).
type IntN func(n int) int

// NewToken draws a fresh four digit verification token.
func NewToken(intn IntN) string {
	if intn == nil {
		intn = rand.IntN
	}
	return strconv.Itoa(intn(tokenSpan) + tokenMin)
}

// SMSBody renders the verification message for token.
func SMSBody(token string) string {
	return smsTemplate + token
}
