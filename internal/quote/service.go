package quote

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/quartzcompany/worktops-backend/internal/attachment"
	"github.com/quartzcompany/worktops-backend/internal/product"
	"github.com/quartzcompany/worktops-backend/internal/submission"
	"go.uber.org/zap"
)

// SinkSubmitter delivers quote payloads through a submission sink.
type SinkSubmitter struct {
	Sink submission.Sink
}

func (s SinkSubmitter) Submit(ctx context.Context, p Payload) (string, error) {
	env, err := submission.NewEnvelope(submission.KindQuote, p.Contact.Name, p.Contact.Email, p)
	if err != nil {
		return "", err
	}
	if err := s.Sink.Deliver(ctx, env); err != nil {
		return "", err
	}
	return env.Reference, nil
}

type Service struct {
	drafts    *Store
	products  *product.Service
	submitter Submitter
	uploads   attachment.Store
	spam      *submission.SpamCounter
	log       *zap.Logger
}

func NewService(drafts *Store, products *product.Service, submitter Submitter, uploads attachment.Store, spam *submission.SpamCounter, log *zap.Logger) *Service {
	return &Service{
		drafts:    drafts,
		products:  products,
		submitter: submitter,
		uploads:   uploads,
		spam:      spam,
		log:       log,
	}
}

// Start opens a draft. A product slug pre-selects that colour; an unknown
// slug is product.ErrNotFound.
func (s *Service) Start(slug string) (*Flow, error) {
	if slug == "" {
		return s.drafts.Create(), nil
	}
	p, err := s.products.Resolve(slug)
	if err != nil {
		return nil, err
	}
	return s.drafts.Create(p.ID), nil
}

func (s *Service) Get(id string) (*Flow, error) {
	return s.drafts.Get(id)
}

func (s *Service) UpdateWorktop(id string, w Worktop) (*Flow, error) {
	return s.drafts.Update(id, func(f *Flow) error {
		return f.Next(w, s.products)
	})
}

// Attach validates and stores a kitchen plan upload. Rejected files are
// recorded as a field error on the draft and returned with the error.
func (s *Service) Attach(ctx context.Context, id string, file *multipart.FileHeader) (*Flow, error) {
	f, err := s.drafts.Get(id)
	if err != nil {
		return nil, err
	}
	if f.Step != StepWorktop {
		return f, ErrInvalidStep
	}

	candidate := attachment.Attachment{Name: file.Filename, Size: file.Size}
	if err := attachment.Check(candidate.Name, candidate.Size, attachment.KitchenPlanExtensions); err != nil {
		return s.drafts.Update(id, func(f *Flow) error { return f.AttachFile(candidate) })
	}

	stored, err := attachment.SaveForm(ctx, s.uploads, file, "quotes/"+id, attachment.KitchenPlanExtensions)
	if err != nil {
		s.log.Error("store kitchen plan", zap.String("draft", id), zap.Error(err))
		return f, err
	}
	return s.drafts.Update(id, func(f *Flow) error { return f.AttachFile(stored) })
}

func (s *Service) Back(id string) (*Flow, error) {
	return s.drafts.Update(id, func(f *Flow) error { return f.Back() })
}

// SubmitContact completes the draft. Honeypot hits are counted against ip
// and look like any other confirmation to the caller.
func (s *Service) SubmitContact(ctx context.Context, id string, c Contact, honeypot, ip string) (*Flow, error) {
	f, err := s.drafts.Update(id, func(f *Flow) error {
		return f.Submit(ctx, c, honeypot, s.products, s.submitter)
	})
	if f != nil && f.Spam() {
		s.spam.Hit("quote", ip)
		return f, err
	}
	if errors.Is(err, ErrSubmitFailed) {
		s.log.Error("quote submission failed", zap.String("draft", id), zap.Error(err))
	} else if err == nil && f.Step == StepConfirmation {
		s.log.Info("quote submitted", zap.String("draft", id), zap.String("reference", f.Reference))
	}
	return f, err
}

func (s *Service) Discard(id string) bool {
	return s.drafts.Delete(id)
}

// Summary renders the confirmation PDF for a completed draft.
func (s *Service) Summary(id string) ([]byte, error) {
	f, err := s.drafts.Get(id)
	if err != nil {
		return nil, err
	}
	if f.Step != StepConfirmation {
		return nil, ErrInvalidStep
	}
	selected := make([]product.Product, 0, len(f.Draft.Worktop.ProductIDs))
	for _, pid := range f.Draft.Worktop.ProductIDs {
		if p, err := s.products.GetByID(pid); err == nil {
			selected = append(selected, p)
		}
	}
	return RenderSummary(f, selected)
}

// Request is a whole quote posted in one go.
type Request struct {
	Worktop  Worktop `json:"worktop"`
	Contact  Contact `json:"contact"`
	Honeypot string  `json:"website"`
}

// SubmitRequest drives a fresh draft through every step. The returned flow
// stops at the first step that did not pass.
func (s *Service) SubmitRequest(ctx context.Context, req Request, ip string) (*Flow, error) {
	draft := s.drafts.Create()
	f, err := s.drafts.Update(draft.ID, func(f *Flow) error {
		// the honeypot is checked before anything else is looked at
		if submission.IsSpam(req.Honeypot) {
			f.Draft.Worktop = req.Worktop
			f.Draft.Worktop.Attachment = nil
			f.Step = StepContact
			return nil
		}
		return f.Next(req.Worktop, s.products)
	})
	if err != nil || f.Step != StepContact {
		return f, err
	}
	return s.SubmitContact(ctx, draft.ID, req.Contact, req.Honeypot, ip)
}
