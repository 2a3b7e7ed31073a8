package entity

// NormalizedTrack is a catalog track translated into the shape this service exposes.
type NormalizedTrack struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Artists     []Artist `json:"artists"`
	Album       Album    `json:"album"`
	Duration    float64  `json:"duration"` // Seconds, fractional part kept.
	DownloadURL *string  `json:"downloadUrl,omitempty"`
}

// Artist is a credited performer of a track.
type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Album summarizes the first album a track appears on. All fields are nil
// when the provider lists no album.
type Album struct {
	ID       *string `json:"id"`
	Title    *string `json:"title"`
	CoverURL *string `json:"coverUrl"`
}
