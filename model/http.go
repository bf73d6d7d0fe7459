package model

type ConvertResponse struct {
	Id              string   `json:"id"`
	Rules           string   `json:"rules"`
	TransposedNotes int      `json:"transposed_notes"`
	SkippedNotes    int      `json:"skipped_notes"`
	Duration        float64  `json:"duration"`
	StopTime        float64  `json:"stop_time"`
	Warnings        []string `json:"warnings"`
	Errors          []string `json:"errors"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
