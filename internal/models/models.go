// internal/models/models.go
package models

// Member is a published club member profile.
type Member struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Domain    string `json:"domain"`
	ImageURL  string `json:"image_url"`
	BioMD     string `json:"bio_md,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Event is a club event, upcoming or past.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Venue       string `json:"venue"`
	Status      string `json:"status"` // "upcoming" or "past"
	ContentMD   string `json:"content_md,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// JoinApplication is a submitted membership application.
type JoinApplication struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Branch     string `json:"branch"`
	Year       string `json:"year"`
	Skills     string `json:"skills"`
	Motivation string `json:"motivation"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// GalleryImage is a published gallery entry.
type GalleryImage struct {
	ID        string `json:"id"`
	ImageURL  string `json:"image_url"`
	Caption   string `json:"caption"`
	DetailsMD string `json:"details_md,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}
