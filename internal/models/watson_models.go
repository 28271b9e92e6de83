package models

// WatsonEmotionRequest is the body of a Watson NLP EmotionPredict call.
type WatsonEmotionRequest struct {
	RawDocument WatsonRawDocument `json:"raw_document"`
}

type WatsonRawDocument struct {
	Text string `json:"text"`
}

type WatsonEmotionResponse struct {
	EmotionPredictions []WatsonEmotionPrediction `json:"emotionPredictions"`
	ProducerID         WatsonProducerID          `json:"producerId"`
}

type WatsonEmotionPrediction struct {
	Emotion         WatsonEmotionScores    `json:"emotion"`
	Target          string                 `json:"target"`
	EmotionMentions []WatsonEmotionMention `json:"emotionMentions"`
}

// WatsonEmotionScores uses pointers so a missing score can be told apart
// from a zero one.
type WatsonEmotionScores struct {
	Anger   *float64 `json:"anger"`
	Disgust *float64 `json:"disgust"`
	Fear    *float64 `json:"fear"`
	Joy     *float64 `json:"joy"`
	Sadness *float64 `json:"sadness"`
}

type WatsonEmotionMention struct {
	Span    WatsonSpan          `json:"span"`
	Emotion WatsonEmotionScores `json:"emotion"`
}

type WatsonSpan struct {
	Begin int    `json:"begin"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

type WatsonProducerID struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
