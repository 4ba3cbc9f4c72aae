package backend_dto

type Testimonial struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Text      string `json:"text"`
	ImageURL  string `json:"imageUrl,omitempty"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type TestimonialListResponse struct {
	Success      bool          `json:"success"`
	Testimonials []Testimonial `json:"testimonials"`
}

type TestimonialResponse struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message,omitempty"`
	Testimonial *Testimonial `json:"testimonial"`
}

// TestimonialUpload is the multipart payload for create and update.
type TestimonialUpload struct {
	Name     string
	Text     string
	IsActive *bool
	Image    *FilePart
}
