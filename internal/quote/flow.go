package quote

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/quartzcompany/worktops-backend/internal/attachment"
	"github.com/quartzcompany/worktops-backend/internal/product"
	"github.com/quartzcompany/worktops-backend/internal/submission"
	"github.com/quartzcompany/worktops-backend/internal/validate"
)

// Catalogue resolves product ids chosen in step one.
type Catalogue interface {
	GetByID(id int) (product.Product, error)
}

// Submitter hands a confirmed quote to the back office and returns its
// reference.
type Submitter interface {
	Submit(ctx context.Context, p Payload) (string, error)
}

const submitFailedMessage = "Sorry, we couldn't send your quote request. Please try again."

// NewFlow starts a flow at the worktop step. preselected products count as
// the colour selection.
func NewFlow(id string, preselected ...int) *Flow {
	return &Flow{
		ID:   id,
		Step: StepWorktop,
		Draft: Draft{
			Worktop: Worktop{ProductIDs: append([]int(nil), preselected...), Thickness: DefaultThickness},
			Contact: Contact{CallbackTime: DefaultCallbackTime},
		},
		UpdatedAt: time.Now(),
	}
}

// Next stores the worktop details and moves to the contact step when they
// are valid. Invalid input leaves the flow on the worktop step with field
// errors set. w.Attachment is ignored: a plan only arrives through
// AttachFile, which checks it.
func (f *Flow) Next(w Worktop, products Catalogue) error {
	if f.Step != StepWorktop {
		return ErrInvalidStep
	}
	w.Attachment = f.Draft.Worktop.Attachment
	if w.Thickness == "" {
		w.Thickness = DefaultThickness
	}
	f.Draft.Worktop = w
	f.SubmitError = ""
	f.touch()

	errs := ValidateWorktop(w, products)
	if !errs.Empty() {
		f.Errors = errs
		return nil
	}
	f.Errors = nil
	f.Step = StepContact
	return nil
}

// Back returns to the worktop step without validation.
func (f *Flow) Back() error {
	if f.Step != StepContact {
		return ErrInvalidStep
	}
	f.Step = StepWorktop
	f.Errors = nil
	f.SubmitError = ""
	f.touch()
	return nil
}

// AttachFile records a kitchen plan. A rejected file sets the file field
// error and leaves the previous attachment in place.
func (f *Flow) AttachFile(a attachment.Attachment) error {
	if f.Step != StepWorktop {
		return ErrInvalidStep
	}
	f.touch()
	if err := attachment.Check(a.Name, a.Size, attachment.KitchenPlanExtensions); err != nil {
		if f.Errors == nil {
			f.Errors = validate.FieldErrors{}
		}
		f.Errors["file"] = attachment.Message(err, attachment.KitchenPlanExtensions)
		return err
	}
	if f.Errors != nil {
		delete(f.Errors, "file")
	}
	f.Draft.Worktop.Attachment = &a
	return nil
}

// Submit stores the contact details and completes the flow.
//
// A non-empty honeypot confirms immediately without validating or
// submitting anything. Otherwise the contact details are validated and the
// payload handed to submitter; if that fails the flow stays on the contact
// step with SubmitError set and ErrSubmitFailed is returned.
func (f *Flow) Submit(ctx context.Context, c Contact, honeypot string, products Catalogue, submitter Submitter) error {
	if f.Step != StepContact {
		return ErrInvalidStep
	}
	if c.CallbackTime == "" {
		c.CallbackTime = DefaultCallbackTime
	}
	f.Draft.Contact = c
	f.touch()

	if submission.IsSpam(honeypot) {
		f.spam = true
		f.Errors = nil
		f.SubmitError = ""
		f.Step = StepConfirmation
		return nil
	}

	errs := ValidateContact(c)
	if !errs.Empty() {
		f.Errors = errs
		return nil
	}
	f.Errors = nil

	payload, err := BuildPayload(f.Draft, products)
	if errors.Is(err, product.ErrNotFound) {
		// a colour left the range after step one
		f.Errors = validate.FieldErrors{"product": "A colour you chose is no longer available. Please go back and choose another."}
		return nil
	}
	if err != nil {
		return err
	}
	ref, err := submitter.Submit(ctx, payload)
	if err != nil {
		f.SubmitError = submitFailedMessage
		return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}
	f.SubmitError = ""
	f.Reference = ref
	f.Step = StepConfirmation
	return nil
}

func (f *Flow) touch() { f.UpdatedAt = time.Now() }

// ValidateWorktop checks the step one gate.
func ValidateWorktop(w Worktop, products Catalogue) validate.FieldErrors {
	errs := validate.FieldErrors{}

	switch {
	case len(w.ProductIDs) == 0:
		errs.Add("product", "Please select at least one colour.")
	case len(w.ProductIDs) > MaxColours:
		errs.Add("product", fmt.Sprintf("You can compare up to %d colours.", MaxColours))
	default:
		seen := map[int]bool{}
		for _, id := range w.ProductIDs {
			if seen[id] {
				errs.Add("product", "Each colour can only be selected once.")
				break
			}
			seen[id] = true
			if _, err := products.GetByID(id); err != nil {
				errs.Add("product", "Please select a colour from our range.")
				break
			}
		}
	}

	if w.RunLength <= 0 {
		errs.Add("runLength", "Please enter the worktop run length.")
	}
	if w.Depth <= 0 {
		errs.Add("depth", "Please enter the worktop depth.")
	}
	errs.OneOf("thickness", w.Thickness, Thicknesses, "Please choose 20mm or 30mm.")
	if w.CutOuts.Hob < 0 || w.CutOuts.Sink < 0 || w.CutOuts.Tap < 0 {
		errs.Add("cutOuts", "Cut-out counts cannot be negative.")
	}
	return errs
}

// ValidateContact checks the step two gate.
func ValidateContact(c Contact) validate.FieldErrors {
	errs := validate.FieldErrors{}
	errs.Required("name", c.Name, "Please enter your name.")
	errs.Email("email", c.Email)
	errs.Required("phone", c.Phone, "Please enter your phone number.")
	errs.Postcode("postcode", c.Postcode)
	errs.OneOf("callbackTime", c.CallbackTime, CallbackTimes, "Please choose a callback time.")
	if c.InstallDate != "" {
		if _, err := time.Parse("2006-01-02", c.InstallDate); err != nil {
			errs.Add("installDate", "Please enter a valid date.")
		}
	}
	return errs
}

// Payload is the structured quote request sent to the back office.
type Payload struct {
	SelectedProducts []product.Summary `json:"selectedProducts"`
	SampleOptIn      bool              `json:"sampleOptIn"`
	KitchenPlan      KitchenPlan       `json:"kitchenPlan"`
	Comments         string            `json:"comments,omitempty"`
	Contact          ContactPayload    `json:"contact"`
}

type KitchenPlan struct {
	Mode       string                 `json:"mode"`
	Dimensions Dimensions             `json:"dimensions"`
	FileName   string                 `json:"fileName,omitempty"`
	File       *attachment.Attachment `json:"file,omitempty"`
}

type Dimensions struct {
	RunLength float64 `json:"runLength"`
	Depth     float64 `json:"depth"`
	Thickness string  `json:"thickness"`
	CutOuts   CutOuts `json:"cutOuts"`
}

type ContactPayload struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Postcode     string `json:"postcode"`
	WantCallback bool   `json:"wantCallback"`
	CallbackTime string `json:"callbackTime,omitempty"`
	InstallDate  string `json:"installDate,omitempty"`
}

// Kitchen plan modes.
const (
	PlanDimensions = "dimensions"
	PlanUpload     = "upload"
)

// BuildPayload assembles the submission from a completed draft.
func BuildPayload(d Draft, products Catalogue) (Payload, error) {
	selected := make([]product.Summary, 0, len(d.Worktop.ProductIDs))
	for _, id := range d.Worktop.ProductIDs {
		p, err := products.GetByID(id)
		if err != nil {
			return Payload{}, fmt.Errorf("product %d: %w", id, err)
		}
		selected = append(selected, p.Summary())
	}

	plan := KitchenPlan{
		Mode: PlanDimensions,
		Dimensions: Dimensions{
			RunLength: d.Worktop.RunLength,
			Depth:     d.Worktop.Depth,
			Thickness: d.Worktop.Thickness,
			CutOuts:   d.Worktop.CutOuts,
		},
	}
	if a := d.Worktop.Attachment; a != nil {
		plan.Mode = PlanUpload
		plan.FileName = a.Name
		plan.File = a
	}

	c := d.Contact
	contact := ContactPayload{
		Name:         strings.TrimSpace(c.Name),
		Email:        strings.TrimSpace(c.Email),
		Phone:        strings.TrimSpace(c.Phone),
		Postcode:     validate.NormalizePostcode(c.Postcode),
		WantCallback: c.WantCallback,
		InstallDate:  c.InstallDate,
	}
	if c.WantCallback {
		contact.CallbackTime = c.CallbackTime
	}

	return Payload{
		SelectedProducts: selected,
		SampleOptIn:      c.WantSamples,
		KitchenPlan:      plan,
		Comments:         strings.TrimSpace(d.Worktop.Comments),
		Contact:          contact,
	}, nil
}
