package models

type HuggingFaceClassificationRequest struct {
	Inputs     string                        `json:"inputs"`
	Parameters HuggingFaceClassificationOpts `json:"parameters,omitempty"`
}

type HuggingFaceClassificationOpts struct {
	TopK int `json:"top_k,omitempty"`
}

// HuggingFaceClassificationResponse is one list of labels per input.
type HuggingFaceClassificationResponse [][]HuggingFaceLabelScore

type HuggingFaceLabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type HuggingFaceError struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time,omitempty"`
}
