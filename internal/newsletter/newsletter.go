package newsletter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/quartzcompany/worktops-backend/internal/submission"
	"github.com/quartzcompany/worktops-backend/internal/validate"
	"go.uber.org/zap"
)

// Records is the submission backend signups are written to and looked up in.
type Records interface {
	submission.Sink
	List(ctx context.Context, kind submission.Kind) ([]submission.Envelope, error)
}

type Signup struct {
	Email string `json:"email"`
}

type Service struct {
	mu      sync.Mutex
	records Records
	spam    *submission.SpamCounter
	log     *zap.Logger
}

func NewService(records Records, spam *submission.SpamCounter, log *zap.Logger) *Service {
	return &Service{records: records, spam: spam, log: log}
}

// Subscribe signs email up. An address that is already subscribed gets its
// original reference back with existing set.
func (s *Service) Subscribe(ctx context.Context, email, honeypot, ip string) (ref string, existing bool, errs validate.FieldErrors, err error) {
	if submission.IsSpam(honeypot) {
		s.spam.Hit("newsletter", ip)
		return submission.NewReference(submission.KindNewsletter), false, nil, nil
	}
	errs = validate.FieldErrors{}
	errs.Email("email", email)
	if !errs.Empty() {
		return "", false, errs, nil
	}
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.Lock()
	defer s.mu.Unlock()

	signups, err := s.records.List(ctx, submission.KindNewsletter)
	if err != nil {
		return "", false, nil, fmt.Errorf("%w: %v", submission.ErrUnavailable, err)
	}
	for _, e := range signups {
		if strings.EqualFold(e.Email, email) {
			return e.Reference, true, nil, nil
		}
	}

	env, err := submission.NewEnvelope(submission.KindNewsletter, "", email, Signup{Email: email})
	if err != nil {
		return "", false, nil, err
	}
	if err := s.records.Deliver(ctx, env); err != nil {
		return "", false, nil, err
	}
	s.log.Info("newsletter signup", zap.String("reference", env.Reference))
	return env.Reference, false, nil, nil
}
