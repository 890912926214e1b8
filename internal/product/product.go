package product

// Product is a worktop surface in the catalogue. Records are loaded once at
// startup and treated as read-only afterwards.
// JSON tags follow the camelCase convention used by the storefront.
type Product struct {
	ID            int            `json:"id"`
	Slug          string         `json:"slug"`
	Name          string         `json:"name"`
	Material      string         `json:"material"`
	Collection    string         `json:"collection"`
	Category      string         `json:"category"`
	Brand         string         `json:"brand"`
	PatternType   string         `json:"patternType"`
	ColorTone     string         `json:"colorTone"`
	Description   string         `json:"description"`
	Features      []string       `json:"features"`
	PricePerSqm   float64        `json:"pricePerSqm"`
	OriginalPrice *float64       `json:"originalPrice,omitempty"`
	OnSale        bool           `json:"onSale"`
	Discount      int            `json:"discount"`
	Popular       bool           `json:"popular"`
	New           bool           `json:"new"`
	Rating        float64        `json:"rating"`
	ReviewCount   int            `json:"reviewCount"`
	Images        []string       `json:"images"`
	Specs         Specifications `json:"specifications"`
}

type Specifications struct {
	Material    string   `json:"material"`
	Finish      string   `json:"finish"`
	Thicknesses []string `json:"thicknesses"`
	SlabSize    string   `json:"slabSize"`
	Weight      string   `json:"weight"`
	LeadTime    string   `json:"leadTime"`
}

// Summary is the short product reference carried in quote payloads.
type Summary struct {
	ID       int    `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Material string `json:"material"`
}

func (p Product) Summary() Summary {
	return Summary{ID: p.ID, Slug: p.Slug, Name: p.Name, Material: p.Material}
}

// PrimaryImage is the swatch; empty when the product has no images.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// HoverImage is the optional lifestyle image shown on hover.
func (p Product) HoverImage() string {
	if len(p.Images) < 2 {
		return ""
	}
	return p.Images[1]
}

// AllowedCategories are the material categories products may belong to.
var AllowedCategories = []string{
	"quartz",
	"printed-quartz",
}
