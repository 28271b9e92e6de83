package emotion

// Emotion is one of the five labels a scorer reports.
type Emotion string

const (
	Anger   Emotion = "anger"
	Disgust Emotion = "disgust"
	Fear    Emotion = "fear"
	Joy     Emotion = "joy"
	Sadness Emotion = "sadness"
)

// Labels returns the five labels in canonical order. Ties for the dominant
// emotion resolve to whichever label comes first here.
func Labels() []Emotion {
	return []Emotion{Anger, Disgust, Fear, Joy, Sadness}
}

// ParseEmotion maps a label reported by a backend onto one of the five
// tracked emotions.
func ParseEmotion(label string) (Emotion, bool) {
	for _, e := range Labels() {
		if string(e) == label {
			return e, true
		}
	}
	return "", false
}

type Scores struct {
	Anger   float64 `json:"anger"`
	Disgust float64 `json:"disgust"`
	Fear    float64 `json:"fear"`
	Joy     float64 `json:"joy"`
	Sadness float64 `json:"sadness"`
}

// Get returns the score stored for e.
func (s Scores) Get(e Emotion) float64 {
	switch e {
	case Anger:
		return s.Anger
	case Disgust:
		return s.Disgust
	case Fear:
		return s.Fear
	case Joy:
		return s.Joy
	case Sadness:
		return s.Sadness
	}
	return 0
}

// Set stores v for e. Unknown labels are ignored.
func (s *Scores) Set(e Emotion, v float64) {
	switch e {
	case Anger:
		s.Anger = v
	case Disgust:
		s.Disgust = v
	case Fear:
		s.Fear = v
	case Joy:
		s.Joy = v
	case Sadness:
		s.Sadness = v
	}
}

// Dominant returns the highest scoring label.
func (s Scores) Dominant() Emotion {
	best := Anger
	for _, e := range Labels()[1:] {
		if s.Get(e) > s.Get(best) {
			best = e
		}
	}
	return best
}

// Result is what a Scorer produces for one piece of text: either a scored
// result carrying all five values, or the invalid variant for text that could
// not be scored. The zero value is the invalid variant.
type Result struct {
	scores   Scores
	dominant Emotion
	valid    bool
}

// Scored builds a valid result and derives its dominant emotion.
func Scored(s Scores) Result {
	return Result{scores: s, dominant: s.Dominant(), valid: true}
}

// Invalid is the result for empty or otherwise unscorable text.
func Invalid() Result {
	return Result{}
}

func (r Result) Valid() bool {
	return r.valid
}

func (r Result) Scores() Scores {
	return r.scores
}

// Dominant is empty for an invalid result.
func (r Result) Dominant() Emotion {
	return r.dominant
}
