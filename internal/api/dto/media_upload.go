package dto

// MediaUploadDTO is returned after a successful object upload.
type MediaUploadDTO struct {
	MediaURL string `json:"media_url"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}
