// Package form turns raw listing form input into typed domain values.
package form

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/hearthhub/internal/domain"
)

// Raw is the add or edit listing form exactly as submitted.
type Raw struct {
	Title        string   `form:"title" validate:"required,max=200"`
	Description  string   `form:"description" validate:"required,max=5000"`
	Price        string   `form:"price" validate:"required,whole"`
	Bedrooms     string   `form:"bedrooms" validate:"required,whole"`
	Bathrooms    string   `form:"bathrooms" validate:"required,whole"`
	Area         string   `form:"area" validate:"required,whole"`
	PropertyType string   `form:"property_type" validate:"required,property_type"`
	Location     string   `form:"location" validate:"required,max=200"`
	Amenities    []string `form:"amenities" validate:"max=50"`
	Images       []string `form:"images"`
}

// RawCriteria is the search filter form. Every field is optional.
type RawCriteria struct {
	Location     string
	MinPrice     string
	MaxPrice     string
	PropertyType string
	Bedrooms     string
	Bathrooms    string
}

// Parser validates and converts form input.
type Parser struct {
	v *validator.Validate
}

// NewParser creates a Parser with the listing rules registered.
func NewParser() *Parser {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	_ = v.RegisterValidation("whole", validateWhole)
	_ = v.RegisterValidation("property_type", validatePropertyType)
	return &Parser{v: v}
}

// Parse checks every field and converts raw into form data. All problems
// are reported together as a *domain.ValidationError.
func (p *Parser) Parse(raw Raw) (domain.PropertyFormData, error) {
	raw = normalize(raw)

	if err := p.v.Struct(raw); err != nil {
		return domain.PropertyFormData{}, toValidationError(err)
	}

	price, _ := parseInt(raw.Price)
	bedrooms, _ := parseInt(raw.Bedrooms)
	bathrooms, _ := parseInt(raw.Bathrooms)
	area, _ := parseInt(raw.Area)

	return domain.PropertyFormData{
		Title:        raw.Title,
		Description:  raw.Description,
		Price:        float64(price),
		Bedrooms:     bedrooms,
		Bathrooms:    bathrooms,
		Area:         area,
		PropertyType: domain.PropertyType(raw.PropertyType),
		Location:     raw.Location,
		Amenities:    raw.Amenities,
		Images:       raw.Images,
	}, nil
}

// ParsePatch validates an edit form and returns a patch that overwrites the
// editable fields. Images are left alone when the form did not carry them.
func (p *Parser) ParsePatch(raw Raw) (domain.PropertyPatch, error) {
	images := raw.Images
	data, err := p.Parse(raw)
	if err != nil {
		return domain.PropertyPatch{}, err
	}

	patch := domain.PropertyPatch{
		Title:        &data.Title,
		Description:  &data.Description,
		Price:        &data.Price,
		Bedrooms:     &data.Bedrooms,
		Bathrooms:    &data.Bathrooms,
		Area:         &data.Area,
		PropertyType: &data.PropertyType,
		Location:     &data.Location,
		Amenities:    data.Amenities,
	}
	if images != nil {
		patch.Images = data.Images
	}
	return patch, nil
}

// ParseCriteria converts the filter form. Blank or unreadable fields are
// treated as not set.
func ParseCriteria(raw RawCriteria) domain.PropertyCriteria {
	c := domain.PropertyCriteria{
		Location: strings.TrimSpace(raw.Location),
	}
	if t := domain.PropertyType(strings.ToLower(strings.TrimSpace(raw.PropertyType))); t.IsValid() {
		c.PropertyType = t
	}
	if n, ok := parseInt(raw.MinPrice); ok {
		v := float64(n)
		c.MinPrice = &v
	}
	if n, ok := parseInt(raw.MaxPrice); ok {
		v := float64(n)
		c.MaxPrice = &v
	}
	if n, ok := parseInt(raw.Bedrooms); ok {
		c.Bedrooms = &n
	}
	if n, ok := parseInt(raw.Bathrooms); ok {
		c.Bathrooms = &n
	}
	return c
}

func normalize(raw Raw) Raw {
	raw.Title = strings.TrimSpace(raw.Title)
	raw.Description = strings.TrimSpace(raw.Description)
	raw.Location = strings.TrimSpace(raw.Location)
	raw.PropertyType = strings.ToLower(strings.TrimSpace(raw.PropertyType))
	raw.Amenities = compact(raw.Amenities)
	raw.Images = compact(raw.Images)
	return raw
}

// compact trims every entry and drops the empty ones.
func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func validateWhole(fl validator.FieldLevel) bool {
	n, ok := parseInt(fl.Field().String())
	return ok && n >= 0
}

func validatePropertyType(fl validator.FieldLevel) bool {
	return domain.PropertyType(fl.Field().String()).IsValid()
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate form: %w", err)
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return domain.NewValidationErrors(fields)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("max %s items", fe.Param())
		}
		return fmt.Sprintf("max %s characters", fe.Param())
	case "whole":
		return "must be a non-negative whole number"
	case "property_type":
		return "must be one of house, apartment, condo, villa"
	default:
		return fe.Error()
	}
}
