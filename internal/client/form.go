package client

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/paramountfood/paramount/internal/logging"
)

// Field names an inquiry draft field
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// requiredFields in display order
var requiredFields = []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}

// User-facing notification texts
const (
	MessageAccepted      = "Thank you! Your inquiry has been received. We will contact you soon."
	MessageSubmitFailed  = "Failed to send inquiry. Please try again or contact us directly."
	messageMissingFields = "Please fill in all required fields: "
)

// Draft is the editable content of the inquiry form
type Draft struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func (d *Draft) get(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldSubject:
		return d.Subject
	case FieldMessage:
		return d.Message
	}
	return ""
}

func (d *Draft) set(f Field, value string) bool {
	switch f {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldSubject:
		d.Subject = value
	case FieldMessage:
		d.Message = value
	default:
		return false
	}
	return true
}

// Outcome is the result of one Submit call
type Outcome int

const (
	OutcomeAccepted Outcome = iota
	OutcomeInvalid
	OutcomeTransportFailure
	OutcomeRejected
	OutcomeBusy
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeTransportFailure:
		return "transport_failure"
	case OutcomeRejected:
		return "rejected"
	case OutcomeBusy:
		return "busy"
	default:
		return "unknown"
	}
}

// Form owns the state of one inquiry form and allows at most one
// submission in flight at a time.
type Form struct {
	transport Transport
	notifier  Notifier
	logger    *logging.Logger

	mu       sync.Mutex
	draft    Draft
	inFlight bool
}

// NewForm creates a form controller
func NewForm(transport Transport, notifier Notifier) *Form {
	return &Form{
		transport: transport,
		notifier:  notifier,
		logger:    logging.GetGlobalLogger(),
	}
}

// UpdateField sets one field without validating it. Unknown fields are ignored.
func (f *Form) UpdateField(field Field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.draft.set(field, value) {
		f.logger.Debug("[inquiry-form] ignoring unknown field %q", field)
	}
}

// Snapshot returns a copy of the current draft
func (f *Form) Snapshot() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// InFlight reports whether a submission is in progress
func (f *Form) InFlight() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inFlight
}

// Submit validates the draft and sends it once. Every path except Busy
// emits exactly one notification; errors never escape the controller.
func (f *Form) Submit(ctx context.Context) Outcome {
	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		f.logger.Debug("[inquiry-form] submission already in flight, ignoring")
		return OutcomeBusy
	}

	if missing := missingFields(f.draft); len(missing) > 0 {
		f.mu.Unlock()
		verr := &ValidationError{Missing: missing}
		f.logger.Debug("[inquiry-form] %v", verr)
		f.notify(NotificationFailure, messageMissingFields+joinFields(missing))
		return OutcomeInvalid
	}

	f.inFlight = true
	draft := f.draft
	f.mu.Unlock()

	ack, err := f.transport.SubmitInquiry(ctx, draft)
	if err == nil && ack == nil {
		err = &TransportError{Err: errors.New("empty acknowledgment")}
	}

	f.mu.Lock()
	f.inFlight = false
	if err == nil {
		f.draft = Draft{}
	}
	f.mu.Unlock()

	if err != nil {
		return f.handleFailure(err)
	}

	f.logger.Info("[inquiry-form] inquiry %s accepted", ack.ID)
	f.notify(NotificationSuccess, MessageAccepted)
	return OutcomeAccepted
}

func (f *Form) handleFailure(err error) Outcome {
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		f.logger.Warn("[inquiry-form:rejected] %v", err)
		f.notify(NotificationFailure, MessageSubmitFailed)
		return OutcomeRejected
	}

	f.logger.Error("[inquiry-form:transport] %v", err)
	f.notify(NotificationFailure, MessageSubmitFailed)
	return OutcomeTransportFailure
}

func (f *Form) notify(kind NotificationKind, message string) {
	if f.notifier == nil {
		return
	}
	f.notifier.Notify(Notification{Kind: kind, Message: message})
}

func missingFields(d Draft) []Field {
	var missing []Field
	for _, field := range requiredFields {
		if strings.TrimSpace(d.get(field)) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

func joinFields(fields []Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
