package domain

// PropertyType is the kind of dwelling a listing describes.
type PropertyType string

const (
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeCondo     PropertyType = "condo"
	PropertyTypeVilla     PropertyType = "villa"
)

func (t PropertyType) String() string { return string(t) }

func (t PropertyType) IsValid() bool {
	switch t {
	case PropertyTypeHouse, PropertyTypeApartment, PropertyTypeCondo, PropertyTypeVilla:
		return true
	}
	return false
}

// PropertyStatus is the moderation state of a listing.
// Newly created listings are always approved; pending and rejected are
// only reachable through an explicit patch.
type PropertyStatus string

const (
	PropertyStatusApproved PropertyStatus = "approved"
	PropertyStatusPending  PropertyStatus = "pending"
	PropertyStatusRejected PropertyStatus = "rejected"
)

func (s PropertyStatus) String() string { return string(s) }

func (s PropertyStatus) IsValid() bool {
	switch s {
	case PropertyStatusApproved, PropertyStatusPending, PropertyStatusRejected:
		return true
	}
	return false
}

// NotificationType controls how a notification is presented.
type NotificationType string

const (
	NotificationTypeSuccess NotificationType = "success"
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeError   NotificationType = "error"
)

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeSuccess, NotificationTypeInfo, NotificationTypeWarning, NotificationTypeError:
		return true
	}
	return false
}

// ActionType tags the event that produced a notification.
type ActionType string

const (
	ActionPropertyCreated ActionType = "property_created"
	ActionPropertyUpdated ActionType = "property_updated"
	ActionPropertyDeleted ActionType = "property_deleted"
	ActionSystem          ActionType = "system"
	ActionUserAction      ActionType = "user_action"
)

func (a ActionType) String() string { return string(a) }

func (a ActionType) IsValid() bool {
	switch a {
	case ActionPropertyCreated, ActionPropertyUpdated, ActionPropertyDeleted, ActionSystem, ActionUserAction:
		return true
	}
	return false
}

// ResultKind classifies the advisory outcome of the last property mutation.
// The zero value means no outcome is pending.
type ResultKind string

const (
	ResultNone    ResultKind = ""
	ResultSuccess ResultKind = "success"
	ResultError   ResultKind = "error"
)
