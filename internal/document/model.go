package document

// Newsletter is the typed view of the "newsletter" subtree. Every field is
// optional; a value that is missing, null, false, 0 or empty counts as absent.
type Newsletter struct {
	Intro        Intro           `json:"intro"`
	Stories      []Story         `json:"stories"`
	Sponsor      Sponsor         `json:"sponsor"`
	Snippets     []Snippet       `json:"snippets"`
	SpeedRead    []SpeedReadItem `json:"speed_read"`
	TourOperator []Event         `json:"tour_operator"`
}

type Intro struct {
	Message string `json:"message"`
}

// Story is a primary content block. Index 0 is the Snapshot, index 1 Snap Again.
type Story struct {
	Headline      string       `json:"headline"`
	LeadParagraph string       `json:"lead_paragraph"`
	Subsections   []Subsection `json:"subsections"`
}

type Subsection struct {
	Title string `json:"title"`
}

type Sponsor struct {
	Enabled bool           `json:"enabled"`
	Banner  SponsorBanner  `json:"banner"`
	Section SponsorSection `json:"section"`
}

type SponsorBanner struct {
	ImageURL string `json:"image_url"`
}

type SponsorSection struct {
	SponsorName string `json:"sponsor_name"`
	Headline    string `json:"headline"`
}

type Snippet struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	BorderColor string `json:"border_color"`
}

type SpeedReadItem struct {
	CompanyName string `json:"company_name"`
	Content     string `json:"content"`
}

// Event is a tour operator listing.
type Event struct {
	Location  string `json:"location"`
	Date      string `json:"date"`
	EventName string `json:"event_name"`
	EventURL  string `json:"event_url"`
}

// Stats summarizes a newsletter for progress output and validation summaries.
type Stats struct {
	Sponsor     bool `json:"sponsor" yaml:"sponsor"`
	Stories     int  `json:"stories" yaml:"stories"`
	Snippets    int  `json:"snippets" yaml:"snippets"`
	SpeedRead   int  `json:"speed_read" yaml:"speed_read"`
	Events      int  `json:"events" yaml:"events"`
	SecondStory bool `json:"second_story" yaml:"second_story"`
}

// Stats counts the sections of n.
func (n Newsletter) Stats() Stats {
	return Stats{
		Sponsor:     n.Sponsor.Enabled,
		Stories:     len(n.Stories),
		Snippets:    len(n.Snippets),
		SpeedRead:   len(n.SpeedRead),
		Events:      len(n.TourOperator),
		SecondStory: len(n.Stories) > 1,
	}
}
