package quote

import (
	"fmt"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"github.com/quartzcompany/worktops-backend/internal/product"
)

var (
	teal       = color.Color{Red: 0, Green: 98, Blue: 105}
	darkGray   = color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray = color.Color{Red: 121, Green: 119, Blue: 109}
)

// RenderSummary produces the customer's copy of a confirmed quote request.
func RenderSummary(f *Flow, selected []product.Product) ([]byte, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("QUOTE REQUEST", props.Text{
				Size:  22,
				Style: consts.Bold,
				Color: teal,
			})
		})
	})
	m.Row(8, func() {
		m.Col(6, func() {
			m.Text("The Quartz Company", props.Text{
				Size:  12,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			ref := f.Reference
			if ref == "" {
				ref = "Pending"
			}
			m.Text("Reference: "+ref, props.Text{
				Size:  10,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})
	m.Row(6, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Requested %s", f.UpdatedAt.Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})
	m.Row(8, func() {})

	heading(m, "YOUR COLOURS")
	for _, p := range selected {
		p := p
		m.Row(6, func() {
			m.Col(8, func() {
				m.Text(p.Name, props.Text{Size: 10, Color: darkGray})
			})
			m.Col(4, func() {
				m.Text(fmt.Sprintf("from £%.0f/m²", p.PricePerSqm), props.Text{
					Size:  9,
					Color: mediumGray,
					Align: consts.Right,
				})
			})
		})
	}
	m.Row(6, func() {})

	w := f.Draft.Worktop
	heading(m, "WORKTOP")
	line(m, "Run length", fmt.Sprintf("%.0f mm", w.RunLength))
	line(m, "Depth", fmt.Sprintf("%.0f mm", w.Depth))
	line(m, "Thickness", w.Thickness)
	line(m, "Cut-outs", fmt.Sprintf("Hob %d, Sink %d, Tap %d", w.CutOuts.Hob, w.CutOuts.Sink, w.CutOuts.Tap))
	if w.Attachment != nil {
		line(m, "Kitchen plan", w.Attachment.Name)
	}
	if w.Comments != "" {
		line(m, "Comments", w.Comments)
	}
	m.Row(6, func() {})

	c := f.Draft.Contact
	heading(m, "YOUR DETAILS")
	line(m, "Name", c.Name)
	line(m, "Email", c.Email)
	line(m, "Phone", c.Phone)
	line(m, "Postcode", c.Postcode)
	if c.WantSamples {
		line(m, "Samples", "Free samples requested")
	}
	if c.WantCallback {
		line(m, "Callback", c.CallbackTime)
	}
	if c.InstallDate != "" {
		line(m, "Installation", c.InstallDate)
	}

	m.Row(12, func() {})
	m.Row(6, func() {
		m.Col(12, func() {
			m.Text("A member of our team will be in touch within one working day.", props.Text{
				Size:  9,
				Style: consts.Italic,
				Color: mediumGray,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("render quote summary: %w", err)
	}
	return buf.Bytes(), nil
}

func heading(m pdf.Maroto, title string) {
	m.Row(7, func() {
		m.Col(12, func() {
			m.Text(title, props.Text{
				Size:  9,
				Style: consts.Bold,
				Color: teal,
			})
		})
	})
}

func line(m pdf.Maroto, label, value string) {
	m.Row(6, func() {
		m.Col(4, func() {
			m.Text(label, props.Text{Size: 9, Color: mediumGray})
		})
		m.Col(8, func() {
			m.Text(value, props.Text{Size: 10, Color: darkGray})
		})
	})
}
