package handlers

import (
	tourRepo "realtorbot/database/repository/tour"
	"realtorbot/services/convo"
	"realtorbot/services/engine"
	"realtorbot/services/listing"
)

// HandlerBundle wires the endpoint handlers to their dependencies in one
// place; routes pull from here.
type HandlerBundle struct {
	Assistant *AssistantHandler
	Property  *PropertyHandler
	Tours     *TourHandler
}

// NewHandlerBundle builds the bundle from the shared service layer.
func NewHandlerBundle(eng engine.Engine, states convo.StateStore, listings listing.Service, tours tourRepo.Repository) *HandlerBundle {
	return &HandlerBundle{
		Assistant: &AssistantHandler{Engine: eng, States: states, Listings: listings},
		Property:  &PropertyHandler{Listings: listings},
		Tours:     &TourHandler{Repo: tours},
	}
}
