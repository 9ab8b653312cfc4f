package models

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Testimonial ulasan pelanggan dengan rating 1-5.
type Testimonial struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Company   *string   `json:"company,omitempty" db:"company"`
	Content   string    `json:"content" db:"content"`
	Rating    int       `json:"rating" db:"rating"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type TestimonialCreateRequest struct {
	Name    string  `json:"name"`
	Company *string `json:"company"`
	Content string  `json:"content"`
	Rating  int     `json:"rating"`
}

func (r TestimonialCreateRequest) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = validation.NewError("cms.testimonial.name_required", "name is required")
	}
	if strings.TrimSpace(r.Content) == "" {
		errs["content"] = validation.NewError("cms.testimonial.content_required", "content is required")
	}
	if r.Rating < 1 || r.Rating > 5 {
		errs["rating"] = validation.NewError("cms.testimonial.rating_range", "rating must be between 1 and 5")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
