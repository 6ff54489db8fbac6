package forecast

import (
	"encoding/json"
	"io"
	"time"

	"github.com/litescript/ls-horoscope/internal/biorhythm"
)

// Report is the composed daily forecast.
type Report struct {
	GeneratedAt time.Time `json:"generated_at"`
	Birth       time.Time `json:"birth"`
	SunSign     string    `json:"sun_sign"`

	Transits     []Transit    `json:"transits"`
	Aspects      []AspectLine `json:"aspects"`
	QuietDay     bool         `json:"quiet_day"`
	QuietDayText string       `json:"quiet_day_text,omitempty"`
	Unresolved   []string     `json:"unresolved,omitempty"`

	PositiveAspects int       `json:"positive_aspects"`
	NegativeAspects int       `json:"negative_aspects"`
	Sentiment       Sentiment `json:"sentiment"`
	SentimentText   string    `json:"sentiment_text"`
	FocusHouse      string    `json:"focus_house,omitempty"` // empty when the Sun is unresolved
	FocusText       string    `json:"focus_text,omitempty"`

	Biorhythm *BiorhythmSummary `json:"biorhythm,omitempty"`
}

// Transit is one body's whole-sign house placement.
type Transit struct {
	Body       string  `json:"body"`
	BodyTheme  string  `json:"body_theme"`
	Longitude  float64 `json:"longitude,omitempty"`
	Sign       string  `json:"sign,omitempty"`
	House      int     `json:"house,omitempty"`
	Ordinal    string  `json:"ordinal,omitempty"`
	HouseTheme string  `json:"house_theme,omitempty"`
	Resolved   bool    `json:"resolved"`
	Text       string  `json:"text"`
}

// AspectLine is one body's major aspect to the natal Sun.
type AspectLine struct {
	Body      string `json:"body"`
	BodyTheme string `json:"body_theme"`
	Aspect    string `json:"aspect"`
	Phrase    string `json:"phrase"`
	Text      string `json:"text"`
}

// BiorhythmSummary describes a reading for display.
type BiorhythmSummary struct {
	Reading biorhythm.Reading `json:"reading"`
	Cycles  []CycleNote       `json:"cycles"`
}

// CycleNote is one cycle's value, band and narrative.
type CycleNote struct {
	Cycle string  `json:"cycle"`
	Value float64 `json:"value"`
	Band  string  `json:"band"`
	Text  string  `json:"text"`
	Bar   string  `json:"bar"`
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
