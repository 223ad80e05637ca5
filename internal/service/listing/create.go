package listing

import (
	"context"
	"log/slog"
	"slices"

	"github.com/heartmarshall/hearthhub/internal/domain"
	"github.com/heartmarshall/hearthhub/internal/store"
)

// CreateAndNotify creates a listing with the creator's contact snapshot and
// a generated map image, then announces it to the owner.
func (s *Service) CreateAndNotify(ctx context.Context, input CreateInput) (CreateResult, error) {
	owner := s.ownerOrDefault(input.OwnerID)
	mapImage := s.maps.Generate(input.Data.Location).URL
	name, email, phone := contactFields(input.Profile)

	data := input.Data
	data.Images = append(slices.Clone(data.Images), mapImage)

	var res CreateResult
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		res.Property = tx.Properties.Create(domain.NewProperty{
			PropertyFormData: data,
			OwnerID:          owner,
			Featured:         input.Featured,
			MapImage:         &mapImage,
			ContactName:      &name,
			ContactEmail:     &email,
			ContactPhone:     &phone,
		})
		res.Notification = tx.Notifications.Add(createdPayload(res.Property.Title, res.Property.ID, owner))
		return nil
	})
	if err != nil {
		return CreateResult{}, err
	}

	s.log.InfoContext(ctx, "property created",
		slog.String("property_id", res.Property.ID),
		slog.String("owner_id", owner),
		slog.String("notification_id", res.Notification.ID),
	)

	return res, nil
}
