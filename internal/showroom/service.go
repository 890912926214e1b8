package showroom

import (
	"context"
	"strings"
	"time"

	"github.com/quartzcompany/worktops-backend/internal/submission"
	"github.com/quartzcompany/worktops-backend/internal/validate"
	"go.uber.org/zap"
)

type Service struct {
	sink submission.Sink
	spam *submission.SpamCounter
	log  *zap.Logger
	now  func() time.Time
}

func NewService(sink submission.Sink, spam *submission.SpamCounter, log *zap.Logger) *Service {
	return &Service{sink: sink, spam: spam, log: log, now: time.Now}
}

func (s *Service) Book(ctx context.Context, b Booking, honeypot, ip string) (string, validate.FieldErrors, error) {
	if submission.IsSpam(honeypot) {
		s.spam.Hit("showroom", ip)
		return submission.NewReference(submission.KindShowroom), nil, nil
	}
	if errs := b.Validate(s.now()); !errs.Empty() {
		return "", errs, nil
	}

	b.Name = strings.TrimSpace(b.Name)
	b.Email = strings.TrimSpace(b.Email)
	b.Phone = strings.TrimSpace(b.Phone)
	env, err := submission.NewEnvelope(submission.KindShowroom, b.Name, b.Email, b)
	if err != nil {
		return "", nil, err
	}
	if err := s.sink.Deliver(ctx, env); err != nil {
		return "", nil, err
	}
	s.log.Info("showroom visit booked",
		zap.String("reference", env.Reference),
		zap.String("showroom", b.ShowroomID),
		zap.String("date", b.Date))
	return env.Reference, nil, nil
}
