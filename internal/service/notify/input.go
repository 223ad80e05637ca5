package notify

import (
	"strings"

	"github.com/heartmarshall/hearthhub/internal/domain"
)

// PushInput holds the parameters for a user-facing notification.
type PushInput struct {
	Title      string
	Message    string
	Type       domain.NotificationType
	UserID     *string
	PropertyID *string
	ActionType *domain.ActionType
}

// Validate checks all fields and collects all errors.
func (i PushInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if len(i.Message) > 2000 {
		errs = append(errs, domain.FieldError{Field: "message", Message: "max 2000 characters"})
	}
	if i.Type != "" && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid value"})
	}
	if i.ActionType != nil && !i.ActionType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action_type", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
