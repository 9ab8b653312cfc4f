package models

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FAQ entri tanya-jawab. orderIndex diisi caller; nilai kecil tampil
// duluan, seri dipecah dengan created_at ascending.
type FAQ struct {
	ID         int       `json:"id" db:"id"`
	Question   string    `json:"question" db:"question"`
	Answer     string    `json:"answer" db:"answer"`
	OrderIndex int       `json:"orderIndex" db:"order_index"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type FAQCreateRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	OrderIndex int    `json:"orderIndex"`
}

func (r FAQCreateRequest) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(r.Question) == "" {
		errs["question"] = validation.NewError("cms.faq.question_required", "question is required")
	}
	if strings.TrimSpace(r.Answer) == "" {
		errs["answer"] = validation.NewError("cms.faq.answer_required", "answer is required")
	}
	if r.OrderIndex < 0 {
		errs["orderIndex"] = validation.NewError("cms.faq.order_index_negative", "orderIndex must be zero or positive")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
