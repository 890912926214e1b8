package submission

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Kind names the form an envelope came from.
type Kind string

const (
	KindQuote      Kind = "quote"
	KindContact    Kind = "contact"
	KindCareers    Kind = "careers"
	KindShowroom   Kind = "showroom"
	KindNewsletter Kind = "newsletter"
)

var referencePrefix = map[Kind]string{
	KindQuote:      "QT",
	KindContact:    "CT",
	KindCareers:    "CV",
	KindShowroom:   "SB",
	KindNewsletter: "NL",
}

// ErrUnavailable wraps any failure to record a submission. Callers surface
// it as a retryable error.
var ErrUnavailable = errors.New("submission service unavailable")

// Envelope is a form submission as handed to the back office.
type Envelope struct {
	Reference string          `json:"reference"`
	Kind      Kind            `json:"kind"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"createdAt"`
}

// NewEnvelope marshals payload and assigns a reference such as QT-1A2B3C4D.
func NewEnvelope(kind Kind, name, email string, payload any) (Envelope, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode %s payload: %w", kind, err)
	}
	return Envelope{
		Reference: NewReference(kind),
		Kind:      kind,
		Name:      name,
		Email:     email,
		Payload:   b,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func NewReference(kind Kind) string {
	prefix, ok := referencePrefix[kind]
	if !ok {
		prefix = "SUB"
	}
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + strings.ToUpper(id[:8])
}

// Sink accepts a structured submission and reports whether it was taken.
type Sink interface {
	Deliver(ctx context.Context, e Envelope) error
}

type Store interface {
	Save(ctx context.Context, e Envelope) error
	List(ctx context.Context, kind Kind) ([]Envelope, error)
}

type Notifier interface {
	Notify(ctx context.Context, e Envelope) error
}

// Recorder is the Sink used by every form: it persists the envelope and
// then notifies the sales inbox. Only a store failure fails the delivery.
type Recorder struct {
	store    Store
	notifier Notifier
	log      *zap.Logger
}

// NewRecorder builds a Recorder. notifier may be nil.
func NewRecorder(store Store, notifier Notifier, log *zap.Logger) *Recorder {
	return &Recorder{store: store, notifier: notifier, log: log}
}

func (r *Recorder) Deliver(ctx context.Context, e Envelope) error {
	if err := r.store.Save(ctx, e); err != nil {
		r.log.Error("store submission",
			zap.String("reference", e.Reference),
			zap.String("kind", string(e.Kind)),
			zap.Error(err))
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	r.log.Info("submission recorded",
		zap.String("reference", e.Reference),
		zap.String("kind", string(e.Kind)))

	if r.notifier != nil {
		if err := r.notifier.Notify(ctx, e); err != nil {
			r.log.Warn("notify submission", zap.String("reference", e.Reference), zap.Error(err))
		}
	}
	return nil
}

// List returns recorded submissions of kind, or all kinds when kind is empty.
func (r *Recorder) List(ctx context.Context, kind Kind) ([]Envelope, error) {
	return r.store.List(ctx, kind)
}
