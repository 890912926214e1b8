package product

import "fmt"

type FAQ struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

// FAQs builds the detail-page questions for a product name.
func FAQs(name string) []FAQ {
	return []FAQ{
		{
			Question: fmt.Sprintf("Is %s suitable for kitchens and bathrooms?", name),
			Answer: fmt.Sprintf("Absolutely. %s is engineered to perform beautifully in both kitchens and bathrooms. "+
				"Its non-porous surface is resistant to moisture, bacteria and common household chemicals, making it an ideal "+
				"choice for any room that combines style with heavy daily use.", name),
		},
		{
			Question: fmt.Sprintf("What is %s made from?", name),
			Answer: fmt.Sprintf("%s is composed of natural minerals bound with advanced polymer resins. This combination "+
				"produces a surface that retains the beauty and cool touch of natural stone while offering superior strength, "+
				"consistency and hygiene.", name),
		},
		{
			Question: "How do I care for this surface?",
			Answer: "Simply wipe down with warm, soapy water and a soft cloth. For tougher marks, a non-abrasive cream " +
				"cleaner works perfectly. Avoid bleach-based products and abrasive pads.",
		},
		{
			Question: "What edge profiles are available?",
			Answer: "We offer pencil round, bevelled, bullnose, ogee and mitre edges at no extra charge. Waterfall edges and " +
				"recessed drainer grooves are available at a small additional cost.",
		},
		{
			Question: "Can I see this surface before ordering?",
			Answer: "Of course. You can order up to three free samples delivered within 48 hours, or visit our Northampton " +
				"showroom where full slabs are on display.",
		},
	}
}
