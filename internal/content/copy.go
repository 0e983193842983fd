package content

// Section is one heading + paragraph pair of plain-text copy.
type Section struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

// Descriptions are the per-kind meta descriptions. {loc} is filled per page.
type Descriptions struct {
	Home     string `yaml:"home"`
	City     string `yaml:"city"`
	State    string `yaml:"state"`
	Cost     string `yaml:"cost"`
	CostCity string `yaml:"cost_city"`
	HowTo    string `yaml:"howto"`
	Contact  string `yaml:"contact"`
}

// ContactCopy is the copy of the contact page.
type ContactCopy struct {
	Heading    string   `yaml:"heading"`
	Subheading string   `yaml:"subheading"`
	WhyTitle   string   `yaml:"why_title"`
	WhyBullets []string `yaml:"why_bullets"`
	// Embed is raw HTML for the estimate form (third-party widget).
	Embed string `yaml:"embed"`
}

// Copy is every piece of text a site renders. Guide bodies are Markdown.
type Copy struct {
	H1Title    string `yaml:"h1_title"`
	H1Short    string `yaml:"h1_short"`
	CostTitle  string `yaml:"cost_title"`
	HowToTitle string `yaml:"howto_title"`
	CTAText    string `yaml:"cta_text"`

	About    string    `yaml:"about"`
	Sections []Section `yaml:"sections"`

	LocationCostHeading string `yaml:"location_cost_heading"`
	LocationCostBody    string `yaml:"location_cost_body"`

	CostBody  string `yaml:"cost_body"`
	HowToBody string `yaml:"howto_body"`

	Descriptions Descriptions `yaml:"descriptions"`
	Contact      ContactCopy  `yaml:"contact"`
}

// WithDefaults fills every empty field from DefaultCopy.
func (c Copy) WithDefaults() Copy {
	d := DefaultCopy()
	def := func(v *string, fallback string) {
		if *v == "" {
			*v = fallback
		}
	}
	def(&c.H1Title, d.H1Title)
	def(&c.H1Short, d.H1Short)
	def(&c.CostTitle, d.CostTitle)
	def(&c.HowToTitle, d.HowToTitle)
	def(&c.CTAText, d.CTAText)
	def(&c.About, d.About)
	if len(c.Sections) == 0 {
		c.Sections = d.Sections
	}
	def(&c.LocationCostHeading, d.LocationCostHeading)
	def(&c.LocationCostBody, d.LocationCostBody)
	def(&c.CostBody, d.CostBody)
	def(&c.HowToBody, d.HowToBody)
	def(&c.Descriptions.Home, d.Descriptions.Home)
	def(&c.Descriptions.City, d.Descriptions.City)
	def(&c.Descriptions.State, d.Descriptions.State)
	def(&c.Descriptions.Cost, d.Descriptions.Cost)
	def(&c.Descriptions.CostCity, d.Descriptions.CostCity)
	def(&c.Descriptions.HowTo, d.Descriptions.HowTo)
	def(&c.Descriptions.Contact, d.Descriptions.Contact)
	def(&c.Contact.Heading, d.Contact.Heading)
	def(&c.Contact.Subheading, d.Contact.Subheading)
	def(&c.Contact.WhyTitle, d.Contact.WhyTitle)
	if len(c.Contact.WhyBullets) == 0 {
		c.Contact.WhyBullets = d.Contact.WhyBullets
	}
	return c
}

// DefaultCopy is the built-in emergency maintenance copy.
func DefaultCopy() Copy {
	return Copy{
		H1Title:    "Emergency Maintenance/24 Hour Maintenance Services",
		H1Short:    "Emergency Maintenance Services",
		CostTitle:  "Emergency Maintenance Cost",
		HowToTitle: "How Emergency Maintenance Works",
		CTAText:    "Get Free Estimate",
		About: "We provide emergency maintenance services{loc} for urgent, unplanned property issues that pose safety risks or can cause serious damage. " +
			"Our team responds to critical problems like active water leaks, gas concerns, total service outages, and plumbing failures to stabilize conditions quickly. " +
			"Use our 24-hour emergency maintenance service to get fast response when immediate action is required.",
		Sections: []Section{
			{
				Heading: "What Is Considered Emergency Maintenance in an Apartment?",
				Body:    "Emergency maintenance refers to urgent, unplanned repairs that must be handled immediately to prevent safety hazards, health risks, or serious property damage. These situations typically involve gas leaks, major water leaks, electrical hazards, or loss of essential services that make a unit unsafe or unlivable.",
			},
			{
				Heading: "What Are Common Emergency Maintenance Examples?",
				Body:    "Common emergency maintenance situations include active flooding, sewage backups, gas odors, sparking electrical outlets, total power loss, and heating failures during freezing temperatures. If the issue threatens safety or can cause rapid damage, it is usually considered an emergency.",
			},
			{
				Heading: "Is No Hot Water a Maintenance Emergency?",
				Body:    "No hot water can be an emergency when it affects basic sanitation, is building-wide, or is caused by a serious system failure. In colder climates or when paired with leaks or electrical issues, loss of hot water may require immediate response.",
			},
			{
				Heading: "Is No AC Considered a Maintenance Emergency?",
				Body:    "No air conditioning can be considered a maintenance emergency when indoor temperatures create health or safety risks, especially during extreme heat. In mild weather the repair can usually wait for standard maintenance scheduling.",
			},
			{
				Heading: "What Should You Do If Emergency Maintenance Is Not Answering?",
				Body:    "Document the issue and contact property management through every designated emergency method. For immediate safety threats such as gas smells, flooding, or electrical danger, contact emergency services or the utility provider.",
			},
		},
		LocationCostHeading: "How Much Does Emergency Maintenance Cost{loc}?",
		LocationCostBody: "Emergency maintenance costs{loc} typically range between {cost_lo} and {cost_hi}, and depend on the type of issue and time of day. " +
			"Pricing can also vary based on after-hours labor rates, parts required, and whether the visit involves leak mitigation or other urgent repairs.",
		CostBody:  defaultCostBody,
		HowToBody: defaultHowToBody,
		Descriptions: Descriptions{
			Home:     "24-hour emergency maintenance for urgent property issues like leaks, no hot water, and broken toilets. Fast response and damage control.",
			City:     "Emergency maintenance services{loc} for leaks, no hot water, clogged toilets, and urgent repairs. 24-hour availability and fast response.",
			State:    "Emergency maintenance services{loc}. Browse cities we serve, view typical pricing ranges, and request urgent repair help.",
			Cost:     "Emergency maintenance cost guide: typical pricing ranges, after-hours factors, and what affects total cost for urgent repairs.",
			CostCity: "Emergency maintenance cost{loc}: typical local pricing ranges and factors like after-hours response, parts, and repair scope.",
			HowTo:    "How emergency maintenance works: what qualifies as an emergency, common examples, and what to expect during urgent repair response.",
			Contact:  "Request emergency maintenance service. Share your location and the issue details to get fast scheduling and urgent repair help.",
		},
		Contact: ContactCopy{
			Heading:    "Request a Free Estimate",
			Subheading: "All you have to do is fill out the form below.",
			WhyTitle:   "Why Our Service Works",
			WhyBullets: []string{
				"You receive a free estimate up front, with no obligation",
				"Each request is reviewed by an experienced professional",
				"Coverage is available in most U.S. locations",
				"Requests are handled promptly to keep projects moving",
			},
		},
	}
}

const defaultCostBody = `## Emergency Maintenance Cost Ranges

| Scenario | Typical Cost Range | What You Are Paying For |
|---|---|---|
| After-hours service call | $100–$250 | Dispatch, diagnosis, first hour on site |
| Active water leak stabilization | $150–$600 | Shut-off, temporary repair, water removal |
| No hot water | $150–$450 | Water heater diagnosis, element or valve repair |
| Sewage backup | $250–$800 | Line clearing, cleanup, sanitation |
| Electrical hazard | $200–$700 | Isolation, breaker or outlet repair |
| Burst pipe repair | $300–$1,200 | Pipe replacement, access and patching |

**Typical total:** $150–$450 for most emergency visits.
**Major water or structural damage:** $1,500+ is possible.

---

## What Increases Emergency Maintenance Cost

- **Time of day:** nights, weekends and holidays carry after-hours rates
- **Access:** crawl spaces, ceilings and tight chases slow the work
- **Parts:** specialty valves, controls and fixtures add to the bill
- **Damage spread:** water that reached walls or floors needs drying and repair

---

## What an Emergency Maintenance Quote Should Include

- The problem found and the immediate fix
- Labor rate and whether after-hours pricing applies
- Parts and materials
- Follow-up work needed for a permanent repair
`

const defaultHowToBody = `Emergency maintenance is a short sequence: stop the damage, make the space safe, then schedule the permanent repair.

## Step 1: Make the Area Safe

1. Leave the area if you smell gas and call the utility from outside
2. Shut off water at the fixture or main valve for active leaks
3. Switch off power at the breaker for sparking or wet outlets

---

## Step 2: Report the Problem

Describe what happened, when it started and what you have already shut off. Photos help the technician bring the right parts.

---

## Step 3: Stabilization Visit

The first visit stops the immediate problem. Expect temporary repairs such as capping a line or isolating a circuit.

---

## Step 4: Permanent Repair

Once the emergency is contained, the remaining work is quoted and scheduled like regular maintenance.

---

## When to Call Emergency Services Instead

- Gas odor or a suspected carbon monoxide leak
- Fire, smoke or burning smells from wiring
- Flooding near electrical panels
`
