package onboarding

import "errors"

// ErrScreenFinished is returned for events sent to a screen that was finished.
var ErrScreenFinished = errors.New("screen finished")

// ErrWrongScreen is returned for events sent to a screen that is not in the foreground.
var ErrWrongScreen = errors.New("screen not in foreground")

// Registration is what the login screen submits, already masked.
type Registration struct {
	DisplayName string
	CountryCode string
	AreaCode    string
	LocalNumber string
}

// State is a step of the registration workflow.
type State string

const (
	StateIdle           State = "idle"
	StateTokenGenerated State = "token_generated"
	StatePersisted      State = "persisted"
	StateDispatched     State = "dispatched"
	StateDispatchFailed State = "dispatch_failed"
)

// NoticeKind distinguishes transient toasts from modal dialogs.
type NoticeKind string

const (
	NoticeToast  NoticeKind = "toast"
	NoticeDialog NoticeKind = "dialog"
)

// Notice is user-visible feedback.
type Notice struct {
	Kind   NoticeKind `json:"kind"`
	Title  string     `json:"title,omitempty"`
	Text   string     `json:"text"`
	Button string     `json:"button,omitempty"`
}

// Notice texts.
const (
	TextDispatchFailed = "Problema ao enviar o SMS, tente novamente"
	TextTokenValid     = "Token validado"
	TextTokenInvalid   = "token não validado"
)

// Outcome is the result of one registration submission.
type Outcome struct {
	State  State   `json:"state"`
	Screen Screen  `json:"screen"`
	Phone  string  `json:"phone"`
	Notice *Notice `json:"notice,omitempty"`
}

// Verdict is the result of one verification submission.
type Verdict struct {
	Valid  bool   `json:"valid"`
	Notice Notice `json:"notice"`
}
