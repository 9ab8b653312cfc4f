package models

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ProjectTypes pilihan tipe proyek di form admin. Service layer tidak
// membatasi kolomnya ke daftar ini; pembatasan hanya di tooling.
var ProjectTypes = []string{
	"Residensial",
	"Retail",
	"Perkantoran",
	"Industri",
	"Pendidikan",
	"Perumahan",
}

// PortfolioProject proyek instalasi yang sudah selesai. Listing diurut
// completion_date DESC (NULL paling belakang), lalu created_at DESC.
type PortfolioProject struct {
	ID             int        `json:"id" db:"id"`
	Title          string     `json:"title" db:"title"`
	Description    *string    `json:"description,omitempty" db:"description"`
	ImageURL       *string    `json:"imageUrl,omitempty" db:"image_url"`
	ProjectType    string     `json:"projectType" db:"project_type"`
	ClientName     *string    `json:"clientName,omitempty" db:"client_name"`
	CompletionDate *time.Time `json:"completionDate,omitempty" db:"completion_date"`
	CameraCount    *int       `json:"cameraCount,omitempty" db:"camera_count"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
}

type PortfolioProjectCreateRequest struct {
	Title          string     `json:"title"`
	Description    *string    `json:"description"`
	ImageURL       *string    `json:"imageUrl"`
	ProjectType    string     `json:"projectType"`
	ClientName     *string    `json:"clientName"`
	CompletionDate *time.Time `json:"completionDate"`
	CameraCount    *int       `json:"cameraCount"`
}

func (r PortfolioProjectCreateRequest) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(r.Title) == "" {
		errs["title"] = validation.NewError("cms.portfolio.title_required", "title is required")
	}
	if strings.TrimSpace(r.ProjectType) == "" {
		errs["projectType"] = validation.NewError("cms.portfolio.project_type_required", "projectType is required")
	}
	if r.CameraCount != nil && *r.CameraCount < 0 {
		errs["cameraCount"] = validation.NewError("cms.portfolio.camera_count_negative", "cameraCount must be zero or positive")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
