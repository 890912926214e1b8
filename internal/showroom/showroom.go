package showroom

import (
	"strings"
	"time"

	"github.com/quartzcompany/worktops-backend/internal/validate"
)

const DateLayout = "2006-01-02"

type Showroom struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Hours       string `json:"hours"`
}

var Showrooms = []Showroom{
	{
		ID:          "northampton",
		Name:        "Northampton Showroom",
		Tagline:     "Our showroom with over 200 surfaces on display",
		Description: "Our Northampton showroom is the home of The Quartz Company. It features full kitchen displays, our complete material library and a dedicated design consultation suite. This is the ideal place to explore the full range of quartz and full body printed quartz worktops before making your decision.",
		Address:     "Northampton, Northamptonshire",
		Phone:       "01234 567 890",
		Hours:       "Mon–Sat 9am–5pm, Sun by appointment",
	},
}

// TimeSlots are the bookable appointment start times.
var TimeSlots = []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}

type Accessory struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var Accessories = []Accessory{
	{Name: "Designer Taps", Description: "Boiling water, filtered and mixer taps from leading brands"},
	{Name: "Undermount Sinks", Description: "Stainless steel and composite options to match your worktop"},
	{Name: "Splashbacks", Description: "Matching stone, glass and composite splashback solutions"},
	{Name: "Edge Profiles", Description: "Over 15 edge profiles to see and feel, from pencil round to ogee"},
}

func FindShowroom(id string) (Showroom, bool) {
	for _, s := range Showrooms {
		if s.ID == id {
			return s, true
		}
	}
	return Showroom{}, false
}

type Booking struct {
	ShowroomID string `json:"showroomId"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// Validate checks a booking against today's date. Today itself is bookable.
func (b Booking) Validate(today time.Time) validate.FieldErrors {
	errs := validate.FieldErrors{}
	if errs.Required("showroomId", b.ShowroomID, "Please select a showroom.") {
		if _, ok := FindShowroom(b.ShowroomID); !ok {
			errs.Add("showroomId", "Please select a showroom.")
		}
	}
	if errs.Required("date", b.Date, "Please choose a preferred date.") {
		d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(b.Date), today.Location())
		switch {
		case err != nil:
			errs.Add("date", "Please choose a valid date.")
		case d.Before(startOfDay(today)):
			errs.Add("date", "Please choose a date in the future.")
		}
	}
	if errs.Required("time", b.Time, "Please choose a preferred time.") {
		errs.OneOf("time", b.Time, TimeSlots, "Please choose a preferred time.")
	}
	errs.Required("name", b.Name, "Please enter your name.")
	errs.Email("email", b.Email)
	errs.Required("phone", b.Phone, "Please enter your phone number.")
	return errs
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
