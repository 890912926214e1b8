package category

// Category is a catalogue tab. The synthetic "all" category matches every
// product.
type Category struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

const AllSlug = "all"

// Defaults are the categories shipped with the site, "all" first.
func Defaults() []Category {
	return []Category{
		{
			Slug:        AllSlug,
			Name:        "All Colours",
			Description: "Explore our full range of quartz and printed quartz worktops, from crisp whites to dramatic veined blacks.",
		},
		{
			Slug:        "quartz",
			Name:        "Quartz",
			Description: "Engineered quartz worktops combining natural stone beauty with outstanding durability.",
		},
		{
			Slug:        "printed-quartz",
			Name:        "Printed Quartz",
			Description: "High definition printed quartz that recreates rare natural stone patterns at a fraction of the cost.",
		},
	}
}
