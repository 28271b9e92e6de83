package clients

const (
	USER_AGENT          = "emotion-detector-client/1.0 (+https://github.com/spacesedan/emotion-detector)"
	WATSON_MODEL_HEADER = "grpc-metadata-mm-model-id"
	WATSON_IAM_GRANT    = "urn:ibm:params:oauth:grant-type:apikey"
	HF_TOP_K            = 10
	MAX_PREVIEW_LENGTH  = 50
)
