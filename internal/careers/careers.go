package careers

import (
	"strings"

	"github.com/quartzcompany/worktops-backend/internal/validate"
)

type Vacancy struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

var Vacancies = []Vacancy{
	{
		ID:          "cnc-operator",
		Title:       "CNC Operator",
		Location:    "Northampton",
		Salary:      "£28,000 – £35,000",
		Type:        "Full-time",
		Description: "Operate and maintain five-axis CNC machines to fabricate quartz worktops to precise specifications. You will read technical drawings, set up tooling and ensure every piece meets our exacting quality standards. Previous CNC experience in stone or similar materials is preferred but full training is provided.",
	},
	{
		ID:          "installation-tech",
		Title:       "Installation Technician",
		Location:    "Northampton & surrounding areas",
		Salary:      "£32,000 – £40,000 + van",
		Type:        "Full-time",
		Description: "Join our installation team delivering and fitting premium worktops in customers' homes across Northamptonshire and the surrounding counties. You will carry out on-site templating, precise fitting, joint work and final polishing. A full UK driving licence is required. Experience in kitchen fitting or stone installation is a strong advantage.",
	},
	{
		ID:          "kitchen-designer",
		Title:       "Kitchen Designer",
		Location:    "Northampton",
		Salary:      "£30,000 – £38,000 + commission",
		Type:        "Full-time",
		Description: "Work from our Northampton showroom to guide homeowners and trade clients through the surface selection process. You will conduct showroom consultations, create design proposals and manage projects from enquiry through to installation. Previous experience in kitchen or interior design is essential.",
	},
}

func FindVacancy(id string) (Vacancy, bool) {
	for _, v := range Vacancies {
		if v.ID == id {
			return v, true
		}
	}
	return Vacancy{}, false
}

type Application struct {
	Name        string `json:"name" form:"name"`
	Email       string `json:"email" form:"email"`
	Phone       string `json:"phone" form:"phone"`
	PositionID  string `json:"positionId" form:"positionId"`
	CoverLetter string `json:"coverLetter,omitempty" form:"coverLetter"`
}

// Validate checks the text fields. The CV is checked separately since it
// arrives as a file part.
func (a Application) Validate() validate.FieldErrors {
	errs := validate.FieldErrors{}
	errs.Required("name", a.Name, "Please enter your name.")
	errs.Email("email", a.Email)
	errs.Required("phone", a.Phone, "Please enter your phone number.")
	if errs.Required("positionId", a.PositionID, "Please select a position.") {
		if _, ok := FindVacancy(a.PositionID); !ok {
			errs.Add("positionId", "Please select a position.")
		}
	}
	return errs
}

func (a Application) trimmed() Application {
	return Application{
		Name:        strings.TrimSpace(a.Name),
		Email:       strings.TrimSpace(a.Email),
		Phone:       strings.TrimSpace(a.Phone),
		PositionID:  a.PositionID,
		CoverLetter: strings.TrimSpace(a.CoverLetter),
	}
}
