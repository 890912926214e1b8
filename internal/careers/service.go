package careers

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/quartzcompany/worktops-backend/internal/attachment"
	"github.com/quartzcompany/worktops-backend/internal/submission"
	"github.com/quartzcompany/worktops-backend/internal/validate"
	"go.uber.org/zap"
)

type Service struct {
	sink    submission.Sink
	uploads attachment.Store
	spam    *submission.SpamCounter
	log     *zap.Logger
}

func NewService(sink submission.Sink, uploads attachment.Store, spam *submission.SpamCounter, log *zap.Logger) *Service {
	return &Service{sink: sink, uploads: uploads, spam: spam, log: log}
}

// submitted is what the back office receives for an application.
type submitted struct {
	Application
	Position string                `json:"position"`
	CV       attachment.Attachment `json:"cv"`
}

// Apply validates the application and its CV, stores the CV and delivers the
// application. cv may be nil when no file was sent.
func (s *Service) Apply(ctx context.Context, a Application, cv *multipart.FileHeader, honeypot, ip string) (string, validate.FieldErrors, error) {
	if submission.IsSpam(honeypot) {
		s.spam.Hit("careers", ip)
		return submission.NewReference(submission.KindCareers), nil, nil
	}

	errs := a.Validate()
	if cv == nil {
		errs.Add("cv", "Please attach your CV.")
	} else if err := attachment.Check(cv.Filename, cv.Size, attachment.CVExtensions); err != nil {
		errs.Add("cv", attachment.Message(err, attachment.CVExtensions))
	}
	if !errs.Empty() {
		return "", errs, nil
	}

	a = a.trimmed()
	stored, err := attachment.SaveForm(ctx, s.uploads, cv, "careers/"+a.PositionID, attachment.CVExtensions)
	if err != nil {
		if errors.Is(err, attachment.ErrFileTooLarge) || errors.Is(err, attachment.ErrUnsupportedFileType) {
			return "", validate.FieldErrors{"cv": attachment.Message(err, attachment.CVExtensions)}, nil
		}
		s.log.Error("store cv", zap.String("position", a.PositionID), zap.Error(err))
		return "", nil, err
	}

	vacancy, _ := FindVacancy(a.PositionID)
	env, err := submission.NewEnvelope(submission.KindCareers, a.Name, a.Email, submitted{
		Application: a,
		Position:    vacancy.Title,
		CV:          stored,
	})
	if err != nil {
		return "", nil, err
	}
	if err := s.sink.Deliver(ctx, env); err != nil {
		return "", nil, err
	}
	return env.Reference, nil, nil
}
