package emotion

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// InvalidTextMessage is the body returned for text that could not be scored.
const InvalidTextMessage = "Invalid text! Please try again!"

// FormatResponse renders a valid result as the plain-text response body.
func FormatResponse(r Result) string {
	s := r.Scores()
	return fmt.Sprintf(
		"For the given statement, the system response is "+
			"'anger': %s, 'disgust': %s, 'fear': %s, 'joy': %s and "+
			"'sadness': %s. The dominant emotion is %s.",
		FormatScore(s.Anger), FormatScore(s.Disgust), FormatScore(s.Fear),
		FormatScore(s.Joy), FormatScore(s.Sadness), r.Dominant())
}

// FormatScore prints v with the shortest digits that round-trip, in the
// layout scores have always been shown in: fixed notation with at least one
// fractional digit, switching to exponent form below 1e-4 and from 1e16.
func FormatScore(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return sci
	}

	fixed := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(fixed, ".") {
		fixed += ".0"
	}
	return fixed
}
