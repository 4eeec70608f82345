package dto

// File is an uploaded binary payload decoded from a multipart form.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}
