package dto

import "time"

// ObjectSummary describes a stored object in listings.
type ObjectSummary struct {
	Key          string    `json:"key"`
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

// ListResponse is a listing of one storage prefix.
type ListResponse struct {
	Items []ObjectSummary `json:"items"`
	Count int             `json:"count"`
}

// LibraryResponse aggregates the three dashboard columns.
type LibraryResponse struct {
	Audio       []ObjectSummary `json:"audio"`
	Transcripts []ObjectSummary `json:"transcripts"`
	Summaries   []ObjectSummary `json:"summaries"`
}

// ObjectContentResponse carries the text content of one object.
type ObjectContentResponse struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// PresignResponse carries a time-limited playback URL.
type PresignResponse struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}
