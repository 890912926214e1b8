package contact

import (
	"strings"

	"github.com/quartzcompany/worktops-backend/internal/validate"
)

var Subjects = []string{
	"General Enquiry",
	"Quote Request",
	"Installation Query",
	"Warranty Claim",
	"Feedback",
	"Other",
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var FAQs = []FAQ{
	{
		Question: "How long does a typical installation take?",
		Answer:   "Most kitchen worktop installations are completed within a single day. Larger or more complex projects, such as full kitchen islands with waterfall edges, may take up to two days. We will confirm the exact timeline during your design consultation.",
	},
	{
		Question: "Do you offer free samples?",
		Answer:   "Yes! We offer up to five free samples delivered to your door within 48 hours. You can request samples from any product page on our website or by calling our team on 0800 123 4567.",
	},
	{
		Question: "What areas do you cover for installation?",
		Answer:   "We provide installation services across Northamptonshire and the surrounding counties. Our team is based in Northampton, ensuring prompt and reliable service for your project.",
	},
	{
		Question: "What warranty do you offer?",
		Answer:   "All The Quartz Company worktops come with a comprehensive 25-year warranty covering manufacturing defects. Our installation work carries a separate 10-year workmanship guarantee for complete peace of mind.",
	},
}

type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (m Message) Validate() validate.FieldErrors {
	errs := validate.FieldErrors{}
	errs.Required("name", m.Name, "Please enter your name.")
	errs.Email("email", m.Email)
	errs.Required("phone", m.Phone, "Please enter your phone number.")
	if errs.Required("subject", m.Subject, "Please select a subject.") {
		errs.OneOf("subject", m.Subject, Subjects, "Please select a subject.")
	}
	errs.Required("message", m.Message, "Please enter a message.")
	return errs
}

func (m Message) trimmed() Message {
	return Message{
		Name:    strings.TrimSpace(m.Name),
		Email:   strings.TrimSpace(m.Email),
		Phone:   strings.TrimSpace(m.Phone),
		Subject: m.Subject,
		Message: strings.TrimSpace(m.Message),
	}
}
