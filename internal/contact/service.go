package contact

import (
	"context"

	"github.com/quartzcompany/worktops-backend/internal/submission"
	"github.com/quartzcompany/worktops-backend/internal/validate"
	"go.uber.org/zap"
)

type Service struct {
	sink submission.Sink
	spam *submission.SpamCounter
	log  *zap.Logger
}

func NewService(sink submission.Sink, spam *submission.SpamCounter, log *zap.Logger) *Service {
	return &Service{sink: sink, spam: spam, log: log}
}

// Send validates and delivers a message. A filled honeypot yields a
// reference without delivering anything.
func (s *Service) Send(ctx context.Context, m Message, honeypot, ip string) (string, validate.FieldErrors, error) {
	if submission.IsSpam(honeypot) {
		s.spam.Hit("contact", ip)
		return submission.NewReference(submission.KindContact), nil, nil
	}
	if errs := m.Validate(); !errs.Empty() {
		return "", errs, nil
	}

	m = m.trimmed()
	env, err := submission.NewEnvelope(submission.KindContact, m.Name, m.Email, m)
	if err != nil {
		return "", nil, err
	}
	if err := s.sink.Deliver(ctx, env); err != nil {
		return "", nil, err
	}
	return env.Reference, nil, nil
}
