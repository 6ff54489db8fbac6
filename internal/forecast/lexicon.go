package forecast

import "github.com/litescript/ls-horoscope/internal/biorhythm"

// Sentiment is the overall tone of the day's aspects.
type Sentiment string

const (
	SentimentPositive    Sentiment = "positive"
	SentimentChallenging Sentiment = "challenging"
	SentimentBalanced    Sentiment = "balanced"
)

// CyclePhrases holds the favorable, unfavorable and neutral phrasing for one
// biorhythm cycle.
type CyclePhrases struct {
	Favorable   string
	Unfavorable string
	Neutral     string
}

// Lexicon is the fixed narrative text a Composer draws from. It is a value
// type; a Composer keeps its own copy.
type Lexicon struct {
	QuietDay    string
	Unresolved  string
	Sentiments  map[Sentiment]string
	FocusPrefix string
	Cycles      [len(biorhythm.Cycles)]CyclePhrases
}

// DefaultLexicon returns the standard report phrasing.
func DefaultLexicon() Lexicon {
	return Lexicon{
		QuietDay:   "A quiet day. No major aspects are affecting your Sun sign today.",
		Unresolved: "position is unavailable today",
		Sentiments: map[Sentiment]string{
			SentimentPositive:    "Astrologically, today looks to be a positive day, with opportunities for growth and harmony.",
			SentimentChallenging: "Astrologically, you may face some challenges today, requiring patience and careful thought.",
			SentimentBalanced:    "Astrologically, today brings a mix of opportunities and challenges, requiring balance.",
		},
		FocusPrefix: "The main focus is on the area of",
		Cycles: [len(biorhythm.Cycles)]CyclePhrases{
			biorhythm.Physical: {
				Favorable:   "Physically, you should be feeling strong and energetic.",
				Unfavorable: "Physically, you may feel low on energy.",
				Neutral:     "Physically, it's a relatively normal day.",
			},
			biorhythm.Emotional: {
				Favorable:   "Emotionally, you're likely feeling positive and creative.",
				Unfavorable: "Emotionally, you may be feeling sensitive or withdrawn.",
				Neutral:     "Emotionally, things are on an even keel.",
			},
			biorhythm.Intellectual: {
				Favorable:   "Intellectually, your mind is sharp and clear.",
				Unfavorable: "Intellectually, it might be a good day for rest rather than complex tasks.",
				Neutral:     "Intellectually, your focus is stable.",
			},
		},
	}
}

// cyclePhrase returns the phrasing for a cycle in a band.
func (l Lexicon) cyclePhrase(c biorhythm.Cycle, b biorhythm.Band) string {
	if int(c) < 0 || int(c) >= len(l.Cycles) {
		return ""
	}
	p := l.Cycles[c]
	switch b {
	case biorhythm.BandFavorable:
		return p.Favorable
	case biorhythm.BandUnfavorable:
		return p.Unfavorable
	default:
		return p.Neutral
	}
}

// clone copies the map so callers cannot mutate a Composer's lexicon.
func (l Lexicon) clone() Lexicon {
	s := make(map[Sentiment]string, len(l.Sentiments))
	for k, v := range l.Sentiments {
		s[k] = v
	}
	l.Sentiments = s
	return l
}
