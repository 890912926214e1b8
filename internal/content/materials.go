package content

import (
	"strings"
)

type Benefit struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Material struct {
	Type         string    `json:"type"`
	Name         string    `json:"name"`
	HeroTitle    string    `json:"heroTitle"`
	HeroSubtitle string    `json:"heroSubtitle"`
	Introduction string    `json:"introduction"`
	Benefits     []Benefit `json:"benefits"`
	FAQs         []FAQ     `json:"faqs"`
}

var materials = map[string]Material{
	"quartz": {
		Type:         "quartz",
		Name:         "Quartz",
		HeroTitle:    "Quartz Worktops",
		HeroSubtitle: "Engineered for beauty, built for life",
		Introduction: "Quartz worktops combine the timeless beauty of natural stone with the superior performance of modern engineering. Composed of approximately 93% natural quartz bound with polymer resins, these surfaces deliver consistent colour and pattern across every slab whilst being virtually maintenance-free. Unlike natural stone, engineered quartz is non-porous, meaning it resists stains, bacteria and scratches without the need for sealing.",
		Benefits: []Benefit{
			{"Non-Porous Surface", "Engineered quartz has zero porosity, making it highly resistant to stains, bacteria and mould. No sealing required, ever."},
			{"Consistent Patterns", "Unlike natural stone, quartz delivers predictable veining and colour. What you see in our showroom is exactly what you get at home."},
			{"Scratch & Impact Resistant", "Rated 7 on the Mohs hardness scale, quartz worktops withstand the rigours of daily kitchen use without chipping or scratching."},
			{"Low Maintenance", "Simply wipe clean with warm soapy water. No annual sealing, no specialist cleaners, no fuss."},
		},
		FAQs: []FAQ{
			{"Is quartz heat resistant?", "Quartz worktops can withstand brief contact with moderately hot items, but we recommend always using trivets or heat pads for pans directly from the hob or oven. Prolonged exposure to temperatures above 150°C may cause thermal shock and discolouration."},
			{"Can I cut directly on quartz?", "While quartz is extremely scratch resistant, we recommend using a chopping board to protect both your worktop and your knives."},
			{"How does quartz compare to marble?", "Quartz offers the elegant look of marble without the maintenance concerns. Natural marble is porous and prone to etching from acidic substances, whereas quartz is non-porous and acid resistant."},
			{"What warranty do you offer on quartz worktops?", "All our quartz worktops come with a comprehensive manufacturer warranty of up to 25 years, covering manufacturing defects in colour, finish and structural integrity."},
		},
	},
	"printed-quartz": {
		Type:         "printed-quartz",
		Name:         "Full Body Printed Quartz",
		HeroTitle:    "Full Body Printed Quartz Worktops",
		HeroSubtitle: "Through-body beauty, pattern that runs deeper than the surface",
		Introduction: "Full body printed quartz is the next evolution in engineered stone technology. Unlike conventional quartz where the pattern exists only on the surface, full body printed quartz features a design that penetrates the entire thickness of the slab, so every mitre joint, waterfall edge and sink cut-out reveals the same veining and colour.",
		Benefits: []Benefit{
			{"Through-Body Pattern", "The design runs through the full depth of the slab, so edges, mitres and cut-outs display the same pattern as the surface."},
			{"Ultra-Realistic Veining", "Advanced digital printing technology reproduces the depth, movement and organic variation of natural marble."},
			{"Seamless Edge Continuity", "Waterfall edges, bookmatched islands and mitred returns look flawless because the pattern flows uninterrupted from surface to edge."},
			{"All the Benefits of Quartz", "Non-porous, scratch resistant, no sealing required."},
		},
		FAQs: []FAQ{
			{"What does \"full body\" mean in printed quartz?", "Full body means the printed pattern extends through the entire thickness of the slab, not just the top surface."},
			{"Is full body printed quartz more expensive than standard quartz?", "Yes, it sits at a premium over standard engineered quartz due to the printing technology involved, but is typically more affordable than comparable natural stone."},
			{"Can I have waterfall edges with printed quartz?", "Absolutely. Because the pattern runs through the slab, waterfall edges and mitred returns display continuous veining from the surface down to the floor."},
			{"How durable is full body printed quartz compared to standard quartz?", "It offers the same durability as standard engineered quartz: non-porous, scratch resistant, heat resistant up to 150°C and no sealing required."},
		},
	},
}

// MaterialByType looks up a material overview, ignoring case.
func MaterialByType(t string) (Material, error) {
	m, ok := materials[strings.ToLower(strings.TrimSpace(t))]
	if !ok {
		return Material{}, ErrNotFound
	}
	return m, nil
}
