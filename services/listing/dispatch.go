package listing

import (
	"context"

	"realtorbot/models"
	"realtorbot/services/engine"
	"realtorbot/utils"
)

// Engine action names the dispatcher routes.
const (
	ActionSearchProperties = "search_properties"
	ActionCreateListing    = "create_listing"
)

// DispatchResult is what routed actions contribute to a message reply.
type DispatchResult struct {
	Properties []models.PropertyView `json:"properties,omitempty"`
	Created    *models.PropertyView  `json:"created,omitempty"`
	Error      string                `json:"error,omitempty"`
}

// Dispatch routes the engine's action directives to their handlers,
// gated by the caller's role: buyers search, sellers create. Unknown
// actions and role mismatches are logged and skipped rather than failed,
// so one stray directive never poisons a reply. Handler errors are
// folded into the result instead of aborting the exchange.
func (s *DefaultService) Dispatch(ctx context.Context, actions []engine.Action, user models.AuthUser, fields map[string]string) DispatchResult {
	logger := utils.GetLogger().Sugar()
	var result DispatchResult

	for _, action := range actions {
		switch action.Name {
		case ActionSearchProperties:
			if user.Role != models.RoleBuyer {
				logger.Infof("Dispatch: skipping %s for role %s", action.Name, user.Role)
				continue
			}
			views, err := s.WebhookSearch(ctx, paramsFrom(action.Parameters))
			if err != nil {
				result.Error = "property search is unavailable right now"
				continue
			}
			result.Properties = views

		case ActionCreateListing:
			if user.Role != models.RoleSeller {
				logger.Infof("Dispatch: skipping %s for role %s", action.Name, user.Role)
				continue
			}
			draft := draftFrom(action.Parameters, fields)
			view, err := s.CreateFromDraft(ctx, draft, user.ID)
			if err != nil {
				result.Error = err.Error()
				continue
			}
			result.Created = view

		default:
			logger.Infof("Dispatch: unknown action %q skipped", action.Name)
		}
	}
	return result
}

// paramsFrom maps action parameters onto the flat search parameter bag.
func paramsFrom(params map[string]string) models.SearchParams {
	return models.SearchParams{
		Budget:      params["budget"],
		Location:    params["location"],
		Bedrooms:    params["bedrooms"],
		Bathrooms:   params["bathrooms"],
		Features:    params["features"],
		SearchQuery: params["searchQuery"],
	}
}

// draftFrom assembles a creation draft, preferring the action's own
// parameters and falling back to the conversation's extracted fields.
func draftFrom(params map[string]string, fields map[string]string) models.ListingDraft {
	merged := make(map[string]string, len(fields)+len(params))
	for k, v := range fields {
		merged[k] = v
	}
	for k, v := range params {
		if v != "" {
			merged[k] = v
		}
	}
	return models.ListingDraft{
		PropertyType:  merged["propertyType"],
		Street:        merged["street"],
		City:          merged["city"],
		State:         merged["state"],
		Zip:           merged["zip"],
		Price:         merged["price"],
		Bedrooms:      merged["bedrooms"],
		Bathrooms:     merged["bathrooms"],
		SquareFootage: merged["squareFootage"],
		Description:   merged["description"],
	}
}
