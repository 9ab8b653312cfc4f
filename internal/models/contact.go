package models

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ContactSubmission kiriman form kontak publik. Write-only dari sisi
// publik; listing hanya lewat endpoint admin.
type ContactSubmission struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	WhatsApp  string    `json:"whatsapp" db:"whatsapp"`
	Needs     string    `json:"needs" db:"needs"`
	Email     *string   `json:"email,omitempty" db:"email"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type ContactSubmissionCreateRequest struct {
	Name     string  `json:"name"`
	WhatsApp string  `json:"whatsapp"`
	Needs    string  `json:"needs"`
	Email    *string `json:"email"`
}

// Validate hanya menjaga field wajib. Format email tidak dicek,
// mengikuti perilaku form aslinya.
func (r ContactSubmissionCreateRequest) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = validation.NewError("cms.contact.name_required", "name is required")
	}
	if strings.TrimSpace(r.WhatsApp) == "" {
		errs["whatsapp"] = validation.NewError("cms.contact.whatsapp_required", "whatsapp is required")
	}
	if strings.TrimSpace(r.Needs) == "" {
		errs["needs"] = validation.NewError("cms.contact.needs_required", "needs is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
