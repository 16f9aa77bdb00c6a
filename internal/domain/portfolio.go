package domain

import "context"

// Portfolio is the whole single-page model, one field per section.
type Portfolio struct {
	Profile        Profile         `json:"profile"`
	About          About           `json:"about"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Skills         SkillsSection   `json:"skills"`
	Projects       []Project       `json:"projects"`
	Platforms      []Platform      `json:"platforms"`
	ContactDetails []ContactDetail `json:"contact_details"`
	Footer         Footer          `json:"footer"`
}

type Profile struct {
	Greeting string `json:"greeting"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Image    string `json:"image"` // data URI
}

type About struct {
	Heading    string   `json:"heading"`
	Paragraphs []string `json:"paragraphs"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Duration    string `json:"duration"`
	Percentage  string `json:"percentage,omitempty"`
}

type Experience struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Duration     string   `json:"duration"`
	Domain       string   `json:"domain"`
	Technologies []string `json:"technologies"`
	Highlights   []string `json:"highlights"`
}

// Skill is one axis of the proficiency radar, 0..100.
type Skill struct {
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
}

// SkillChart carries radar data only; drawing it is the page's job.
// ClosedTheta and ClosedR repeat the first point at the end so the
// polygon closes.
type SkillChart struct {
	Title       string   `json:"title"`
	AxisMin     int      `json:"axis_min"`
	AxisMax     int      `json:"axis_max"`
	Tick        int      `json:"tick"`
	Skills      []Skill  `json:"skills"`
	ClosedTheta []string `json:"closed_theta"`
	ClosedR     []int    `json:"closed_r"`
}

type SkillsSection struct {
	Chart     SkillChart `json:"chart"`
	Languages []string   `json:"languages"`
}

type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Link        string `json:"link"`
}

type Platform struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Link        string `json:"link"`
}

type ContactDetail struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Href  string `json:"href,omitempty"`
	Icon  string `json:"icon"`
}

type FooterLink struct {
	Title string `json:"title"`
	Href  string `json:"href"`
	Icon  string `json:"icon"`
}

type Footer struct {
	Copyright string       `json:"copyright"`
	Links     []FooterLink `json:"links"`
}

// PortfolioUsecase serves the static page content.
type PortfolioUsecase interface {
	GetPortfolio(ctx context.Context) (*Portfolio, error)
	GetSkills(ctx context.Context) (*SkillsSection, error)
}
