package model

import "time"

const (
	// Topic is the fixed subject every pipeline run reports on.
	Topic = "искусственный интеллект"

	StatusPublished = "published"

	MaxRawDataLen  = 10000
	MaxAnalysisLen = 5000
)

type ReportRecord struct {
	Topic       string
	RawData     string
	Analysis    string
	FinalReport string
	CreatedAt   time.Time
	Status      string
}

// Truncate caps s at limit characters without splitting a UTF-8 sequence.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit])
}
