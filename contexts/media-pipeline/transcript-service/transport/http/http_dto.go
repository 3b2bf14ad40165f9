package http

type GetTranscriptRequest struct {
	SourceReference string `json:"source_reference"`
	YoutubeURL      string `json:"youtube_url"`
}

type TranscriptEntry struct {
	Start float64 `json:"start"`
	Text  string  `json:"text"`
}

type GetTranscriptResponse struct {
	Status     string            `json:"status"`
	Transcript []TranscriptEntry `json:"transcript"`
}

type TranscriptFailResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}
