package content

var HomeFAQs = []FAQ{
	{"What materials do you offer?", "We specialise in two types of premium worktop: engineered quartz and full body printed quartz. Both are non-porous, scratch resistant and incredibly durable."},
	{"How much do worktops cost?", "Prices vary depending on colour, thickness, edge profile and kitchen complexity. Most kitchens fall between £2,000 and £5,000 fully fitted. Request a free quote for an accurate price."},
	{"Do you offer free samples?", "Absolutely. We will post up to five free samples directly to your door so you can see the surface in your own kitchen lighting."},
	{"What areas do you cover for installation?", "We offer professional installation across England, Scotland and Wales. Enter your postcode and we will confirm coverage and estimated lead times for your area."},
	{"How long does installation take?", "A typical installation takes between 2 and 4 hours. From placing your order, the total lead time is usually 10-20 working days."},
	{"Do you offer finance?", "Yes. We offer 0% interest-free finance, allowing you to spread the cost over 6, 12 or 24 months with no additional charges."},
}
