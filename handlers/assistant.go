package handlers

import (
	"errors"
	"net/http"

	"realtorbot/config"
	"realtorbot/models"
	"realtorbot/services/convo"
	"realtorbot/services/engine"
	"realtorbot/services/listing"
	"realtorbot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler owns the conversational surface: engine session
// lifecycle, the per-message pipeline and the webhook entry points.
type AssistantHandler struct {
	Engine   engine.Engine
	States   convo.StateStore
	Listings listing.Service
}

// currentUser resolves the caller identity the auth middleware stored.
func currentUser(c *gin.Context) models.AuthUser {
	return models.AuthUser{
		ID:   c.GetString("userID"),
		Role: c.GetString("userRole"),
	}
}

// CreateSessionHandler handles POST /api/assistant/session.
func (h *AssistantHandler) CreateSessionHandler(c *gin.Context) {
	logger := utils.GetLogger()
	ctx := c.Request.Context()

	sessionID, err := h.Engine.CreateSession(ctx)
	if err != nil {
		logger.Error("Failed to create engine session", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create session: " + err.Error()})
		return
	}
	if err := h.States.Set(ctx, sessionID, convo.NewConversation()); err != nil {
		logger.Error("Failed to initialize conversation state", zap.String("sessionId", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize conversation state"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID})
}

// DeleteSessionHandler handles DELETE /api/assistant/session/:sessionId.
// Teardown is intentionally unauthenticated so an expired client can
// still release its engine session.
func (h *AssistantHandler) DeleteSessionHandler(c *gin.Context) {
	logger := utils.GetLogger()
	ctx := c.Request.Context()
	sessionID := c.Param("sessionId")

	if err := h.Engine.DeleteSession(ctx, sessionID); err != nil {
		logger.Warn("Failed to delete engine session", zap.String("sessionId", sessionID), zap.Error(err))
	}
	if err := h.States.Clear(ctx, sessionID); err != nil {
		logger.Warn("Failed to clear conversation state", zap.String("sessionId", sessionID), zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
}

type messageRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"sessionId" binding:"required"`
}

// MessageHandler handles POST /api/assistant/message: one full pipeline
// pass. The user turn feeds the field extractor, the engine reply feeds
// the step tracker and summary matcher, and any action directives are
// dispatched before the combined reply goes back to the client.
func (h *AssistantHandler) MessageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	ctx := c.Request.Context()

	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	user := currentUser(c)

	conv, err := h.States.Get(ctx, req.SessionID)
	if err != nil {
		logger.Error("Failed to load conversation state", zap.String("sessionId", req.SessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load conversation state"})
		return
	}

	conv.ObserveUserTurn(req.Message)

	// Confirmation replies are settled locally, before any engine round
	// trip. A seller's "yes" over a complete field set creates the
	// listing even when no explicit confirmation prompt was issued.
	if yes, isConfirmation := convo.ParseConfirmation(req.Message); isConfirmation {
		if !yes && conv.State.AwaitingConfirmation {
			convo.CancelDraft(conv.State)
			h.saveState(c, req.SessionID, conv)
			c.JSON(http.StatusOK, gin.H{
				"response":  "No problem, the listing was discarded. Let me know if you want to start over.",
				"sessionId": req.SessionID,
			})
			return
		}
		if yes && user.Role == models.RoleSeller {
			if draft, pending := convo.PendingDraft(conv.State); pending {
				h.createFromConfirmation(c, req.SessionID, conv, draft, user)
				return
			}
		}
	}

	reply, err := h.Engine.SendMessage(ctx, req.Message, req.SessionID)
	if err != nil {
		logger.Error("Dialogue engine exchange failed", zap.String("sessionId", req.SessionID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Dialogue engine unavailable: " + err.Error()})
		return
	}
	conv.ObserveBotTurn(reply.Text)

	resp := gin.H{
		"response":  reply.Text,
		"sessionId": req.SessionID,
	}

	if draft, ok := convo.ParseListingSummary(reply.Text); ok {
		// The engine's own summary supersedes whatever the extractor
		// collected turn by turn.
		conv.State.Fields = draft.Fields()
		conv.State.IsListingFlow = true
		conv.State.AwaitingConfirmation = true
		resp["awaitingConfirmation"] = true
		resp["draft"] = draft
	} else if criteria, ok := convo.ParseSearchCriteria(reply.Text); ok {
		// The criteria summary redirects immediately, without an
		// "open results" confirmation. Known asymmetry with the
		// listing path, kept as-is.
		conv.State.LastCriteria = &criteria
		resp["redirectUrl"] = convo.BuildSearchRedirect(config.AppConfig.ListingBrowserRoute, criteria)
	} else if conv.State.IsListingFlow && !conv.State.AwaitingConfirmation {
		if draft, pending := convo.PendingDraft(conv.State); pending {
			conv.State.AwaitingConfirmation = true
			resp["awaitingConfirmation"] = true
			resp["draft"] = draft
		}
	}

	if len(reply.Actions) > 0 {
		result := h.Listings.Dispatch(ctx, reply.Actions, user, conv.State.Fields)
		if len(result.Properties) > 0 {
			resp["properties"] = result.Properties
		}
		if result.Created != nil {
			resp["listing"] = result.Created
			conv.State.ResetFlow()
		}
		if result.Error != "" {
			resp["actionError"] = result.Error
		}
	}
	if len(reply.Variables) > 0 {
		resp["context"] = reply.Variables
	}

	h.saveState(c, req.SessionID, conv)
	c.JSON(http.StatusOK, resp)
}

// createFromConfirmation runs the creation handler for an accepted
// draft. Validation failures come back as a conversational message, not
// an HTTP error; the session keeps going either way.
func (h *AssistantHandler) createFromConfirmation(c *gin.Context, sessionID string, conv *convo.Conversation, draft models.ListingDraft, user models.AuthUser) {
	ctx := c.Request.Context()

	view, err := h.Listings.CreateFromDraft(ctx, draft, user.ID)
	if err != nil {
		var missing *listing.MissingFieldsError
		var badPrice *listing.InvalidPriceError
		if errors.As(err, &missing) || errors.As(err, &badPrice) {
			h.saveState(c, sessionID, conv)
			c.JSON(http.StatusOK, gin.H{
				"response":  "I couldn't create the listing: " + err.Error() + ". Please provide the missing details.",
				"sessionId": sessionID,
			})
			return
		}
		utils.GetLogger().Error("Listing creation failed", zap.String("sessionId", sessionID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create listing: " + err.Error()})
		return
	}

	conv.State.ResetFlow()
	h.saveState(c, sessionID, conv)
	c.JSON(http.StatusOK, gin.H{
		"response":  "Your listing " + view.Title + " is live at " + view.Price + ".",
		"sessionId": sessionID,
		"listing":   view,
	})
}

func (h *AssistantHandler) saveState(c *gin.Context, sessionID string, conv *convo.Conversation) {
	if err := h.States.Set(c.Request.Context(), sessionID, conv); err != nil {
		utils.GetLogger().Warn("Failed to persist conversation state", zap.String("sessionId", sessionID), zap.Error(err))
	}
}

// CreateListingHandler handles POST /api/assistant/create-listing: the
// direct, non-conversational entry into the creation handler. Same
// validation order, HTTP errors instead of conversational recovery.
func (h *AssistantHandler) CreateListingHandler(c *gin.Context) {
	var draft models.ListingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	user := currentUser(c)

	view, err := h.Listings.CreateFromDraft(c.Request.Context(), draft, user.ID)
	if err != nil {
		var missing *listing.MissingFieldsError
		var badPrice *listing.InvalidPriceError
		switch {
		case errors.As(err, &missing), errors.As(err, &badPrice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			utils.GetLogger().Error("Listing creation failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create listing: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"listing": view})
}

type webhookSearchRequest struct {
	Query       string              `json:"query"`
	Filters     models.SearchParams `json:"filters"`
	UserContext map[string]string   `json:"userContext"`
}

// WebhookSearchHandler handles POST /api/assistant/webhook/search, the
// buyer-facing webhook path with the larger result cap. Zero hits is a
// valid empty state, not an error.
func (h *AssistantHandler) WebhookSearchHandler(c *gin.Context) {
	var req webhookSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	params := req.Filters
	if req.Query != "" {
		params.SearchQuery = req.Query
	}

	views, err := h.Listings.WebhookSearch(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"properties": views, "count": len(views)})
}

// RecommendationsHandler handles POST /api/conversational/recommendations
// with the general recommendation cap.
func (h *AssistantHandler) RecommendationsHandler(c *gin.Context) {
	var params models.SearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	views, err := h.Listings.Recommend(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"properties": views, "count": len(views)})
}
