package models

// OpenAIEmotionResponse is the JSON object the chat model is asked to reply with.
type OpenAIEmotionResponse struct {
	Anger    float64 `json:"anger"`
	Disgust  float64 `json:"disgust"`
	Fear     float64 `json:"fear"`
	Joy      float64 `json:"joy"`
	Sadness  float64 `json:"sadness"`
	Scorable *bool   `json:"scorable,omitempty"`
}
