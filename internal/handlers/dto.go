package handlers

type NameRequest struct {
	Name string `json:"name" example:"Drama"`
}

// NameUpdateRequest leaves the name untouched when it is omitted.
type NameUpdateRequest struct {
	Name *string `json:"name,omitempty" example:"Comedy"`
}

type VideoURLResponse struct {
	VideoURL string `json:"video_url" example:"http://localhost:9000/film/video/1700000000000_matrix.mp4"`
}

type ThumbnailURLResponse struct {
	ThumbnailURL string `json:"thumbnail_url" example:"http://localhost:9000/film/thumbnail/1700000000000_matrix.jpg"`
}
