package listing

import (
	"fmt"

	"github.com/heartmarshall/hearthhub/internal/domain"
	"github.com/heartmarshall/hearthhub/internal/state/property"
)

const (
	unknownTitle = "Unknown Property"

	defaultContactName  = "Property Owner"
	defaultContactEmail = "contact@example.com"
	defaultContactPhone = "Phone not provided"
)

func createdPayload(title, propertyID, userID string) domain.NotificationPayload {
	return domain.NotificationPayload{
		Title:      "Property Created Successfully",
		Message:    fmt.Sprintf("Your property \"%s\" has been created and is now live on the platform.", title),
		Type:       domain.NotificationTypeSuccess,
		UserID:     &userID,
		PropertyID: &propertyID,
		ActionType: action(domain.ActionPropertyCreated),
	}
}

func updatedPayload(title, propertyID, userID string) domain.NotificationPayload {
	return domain.NotificationPayload{
		Title:      "Property Updated",
		Message:    fmt.Sprintf("Your property \"%s\" has been updated successfully.", title),
		Type:       domain.NotificationTypeInfo,
		UserID:     &userID,
		PropertyID: &propertyID,
		ActionType: action(domain.ActionPropertyUpdated),
	}
}

// deletedPayload carries no property id since the listing is gone.
func deletedPayload(title, userID string) domain.NotificationPayload {
	return domain.NotificationPayload{
		Title:      "Property Deleted",
		Message:    fmt.Sprintf("Your property \"%s\" has been deleted successfully.", title),
		Type:       domain.NotificationTypeWarning,
		UserID:     &userID,
		ActionType: action(domain.ActionPropertyDeleted),
	}
}

func action(a domain.ActionType) *domain.ActionType { return &a }

// contactFields snapshots the profile, filling gaps with placeholders.
func contactFields(p *domain.UserProfile) (name, email, phone string) {
	name, email, phone = defaultContactName, defaultContactEmail, defaultContactPhone
	if p == nil {
		return name, email, phone
	}
	if p.FullName != "" {
		name = p.FullName
	}
	if p.Email != "" {
		email = p.Email
	}
	if p.Phone != "" {
		phone = p.Phone
	}
	return name, email, phone
}

// titleOf resolves the title before a mutation so the notification can
// name a listing that is about to disappear.
func titleOf(c *property.Collection, id string) string {
	p, err := c.Get(id)
	if err != nil {
		return unknownTitle
	}
	return p.Title
}
