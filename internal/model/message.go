package model

// Message is a stored mail as seen by the API. The body is carried verbatim;
// this layer never parses MIME structure.
type Message struct {
	ID          string `json:"id"`
	UID         int64  `json:"uid"`
	ContentType string `json:"contentType"`
	MimeMessage string `json:"mimeMessage"`
}
