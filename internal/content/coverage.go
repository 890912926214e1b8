package content

import (
	"strings"
	"unicode"

	"github.com/quartzcompany/worktops-backend/internal/validate"
)

type Region struct {
	Area     string   `json:"area"`
	Cities   []string `json:"cities"`
	LeadTime string   `json:"leadTime"`
	// PostcodeAreas are the outward-code letter prefixes served by this region.
	PostcodeAreas []string `json:"postcodeAreas"`
}

var Regions = []Region{
	{
		Area:          "Northamptonshire",
		Cities:        []string{"Northampton", "Kettering", "Corby", "Wellingborough", "Rushden", "Daventry", "Towcester", "Brackley", "Oundle", "Rothwell"},
		LeadTime:      "5-7 working days",
		PostcodeAreas: []string{"NN"},
	},
	{
		Area:          "Surrounding Counties",
		Cities:        []string{"Milton Keynes", "Bedford", "Buckingham", "Banbury", "Rugby", "Market Harborough", "Stamford", "Peterborough", "Huntingdon", "Bicester"},
		LeadTime:      "7-10 working days",
		PostcodeAreas: []string{"MK", "OX", "CV", "LE", "PE"},
	},
}

// Nationwide is used for valid postcodes outside the named regions.
var Nationwide = Region{Area: "Rest of Great Britain", LeadTime: "10-20 working days"}

type Coverage struct {
	Postcode string `json:"postcode"`
	Covered  bool   `json:"covered"`
	Area     string `json:"area"`
	LeadTime string `json:"leadTime"`
}

// CheckPostcode validates a UK postcode and reports which installation
// region serves it.
func CheckPostcode(postcode string) (Coverage, validate.FieldErrors) {
	errs := validate.FieldErrors{}
	errs.Postcode("postcode", postcode)
	if !errs.Empty() {
		return Coverage{}, errs
	}

	pc := validate.NormalizePostcode(postcode)
	region := regionFor(postcodeArea(pc))
	return Coverage{Postcode: pc, Covered: true, Area: region.Area, LeadTime: region.LeadTime}, nil
}

func postcodeArea(pc string) string {
	end := strings.IndexFunc(pc, func(r rune) bool { return !unicode.IsLetter(r) })
	if end < 0 {
		return pc
	}
	return pc[:end]
}

func regionFor(area string) Region {
	for _, r := range Regions {
		for _, a := range r.PostcodeAreas {
			if a == area {
				return r
			}
		}
	}
	return Nationwide
}
