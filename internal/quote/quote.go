package quote

import (
	"errors"
	"time"

	"github.com/quartzcompany/worktops-backend/internal/attachment"
	"github.com/quartzcompany/worktops-backend/internal/validate"
)

// Step is the position of a quote request in the three-step flow.
type Step string

const (
	StepWorktop      Step = "worktop"
	StepContact      Step = "contact"
	StepConfirmation Step = "confirmation"
)

// MaxColours is how many products one quote may compare.
const MaxColours = 3

var Thicknesses = []string{"20mm", "30mm"}

const DefaultThickness = "20mm"

var CallbackTimes = []string{
	"Morning (9 am – 12 pm)",
	"Afternoon (12 pm – 3 pm)",
	"Late afternoon (3 pm – 6 pm)",
	"Evening (6 pm – 8 pm)",
	"No preference",
}

const DefaultCallbackTime = "No preference"

var (
	ErrInvalidStep   = errors.New("action not allowed at this step")
	ErrDraftNotFound = errors.New("quote draft not found")
	ErrSubmitFailed  = errors.New("quote submission failed")
)

type CutOuts struct {
	Hob  int `json:"hob"`
	Sink int `json:"sink"`
	Tap  int `json:"tap"`
}

// Worktop is the step one data: colours, dimensions in millimetres and
// an optional kitchen plan.
type Worktop struct {
	ProductIDs []int                  `json:"productIds"`
	RunLength  float64                `json:"runLength"`
	Depth      float64                `json:"depth"`
	Thickness  string                 `json:"thickness"`
	CutOuts    CutOuts                `json:"cutOuts"`
	Attachment *attachment.Attachment `json:"attachment,omitempty"`
	Comments   string                 `json:"comments"`
}

type Contact struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Postcode     string `json:"postcode"`
	WantSamples  bool   `json:"wantSamples"`
	WantCallback bool   `json:"wantCallback"`
	CallbackTime string `json:"callbackTime"`
	InstallDate  string `json:"installDate,omitempty"`
}

// Draft is everything entered so far. It lives outside the step so moving
// back and forth never loses data.
type Draft struct {
	Worktop Worktop `json:"worktop"`
	Contact Contact `json:"contact"`
}

// Flow is one quote request in progress.
type Flow struct {
	ID          string               `json:"id"`
	Step        Step                 `json:"step"`
	Draft       Draft                `json:"draft"`
	Errors      validate.FieldErrors `json:"errors,omitempty"`
	SubmitError string               `json:"submitError,omitempty"`
	Reference   string               `json:"reference,omitempty"`
	UpdatedAt   time.Time            `json:"updatedAt"`

	// spam is set when the honeypot short-circuited submission.
	spam bool
}

// Spam reports whether the flow was confirmed because of the honeypot.
func (f *Flow) Spam() bool { return f.spam }

func (f *Flow) clone() *Flow {
	c := *f
	c.Draft.Worktop.ProductIDs = append([]int(nil), f.Draft.Worktop.ProductIDs...)
	if f.Draft.Worktop.Attachment != nil {
		a := *f.Draft.Worktop.Attachment
		c.Draft.Worktop.Attachment = &a
	}
	if f.Errors != nil {
		c.Errors = validate.FieldErrors{}
		for k, v := range f.Errors {
			c.Errors[k] = v
		}
	}
	return &c
}
