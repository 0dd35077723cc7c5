package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"realtorbot/config"
	listingRepo "realtorbot/database/repository/listing"
	"realtorbot/models"
	"realtorbot/services/convo"
	"realtorbot/services/engine"
	"realtorbot/services/listing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedEngine replays a fixed sequence of bot replies.
type scriptedEngine struct {
	replies []string
	next    int
}

func (e *scriptedEngine) CreateSession(ctx context.Context) (string, error) {
	return "sess-1", nil
}

func (e *scriptedEngine) SendMessage(ctx context.Context, text, sessionID string) (*engine.Reply, error) {
	reply := &engine.Reply{Text: "Anything else?", SessionID: sessionID}
	if e.next < len(e.replies) {
		reply.Text = e.replies[e.next]
		e.next++
	}
	return reply, nil
}

func (e *scriptedEngine) DeleteSession(ctx context.Context, sessionID string) error {
	return nil
}

// memStates is an in-memory StateStore.
type memStates struct {
	m map[string]*convo.Conversation
}

func newMemStates() *memStates {
	return &memStates{m: make(map[string]*convo.Conversation)}
}

func (s *memStates) Get(ctx context.Context, sessionID string) (*convo.Conversation, error) {
	if conv, ok := s.m[sessionID]; ok {
		return conv, nil
	}
	return convo.NewConversation(), nil
}

func (s *memStates) Set(ctx context.Context, sessionID string, conv *convo.Conversation) error {
	s.m[sessionID] = conv
	return nil
}

func (s *memStates) Clear(ctx context.Context, sessionID string) error {
	delete(s.m, sessionID)
	return nil
}

// memRepo is the minimal in-memory document store for handler tests.
type memRepo struct {
	indexed []models.Listing
	hits    []models.ScoredListing
}

func (f *memRepo) Index(ctx context.Context, l models.Listing) error {
	f.indexed = append(f.indexed, l)
	return nil
}

func (f *memRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	for i := range f.indexed {
		if f.indexed[i].ID == id {
			return &f.indexed[i], nil
		}
	}
	return nil, listingRepo.ErrNotFound
}

func (f *memRepo) Update(ctx context.Context, id string, patch map[string]interface{}) error {
	return nil
}

func (f *memRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *memRepo) List(ctx context.Context, page, size int, filters models.SearchFilters) ([]models.Listing, error) {
	return f.indexed, nil
}

func (f *memRepo) Search(ctx context.Context, query string, filters models.SearchFilters) ([]models.ScoredListing, error) {
	return f.hits, nil
}

type testEnv struct {
	router *gin.Engine
	repo   *memRepo
	states *memStates
}

func newTestEnv(t *testing.T, eng engine.Engine, role string) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &memRepo{}
	states := newMemStates()
	h := &AssistantHandler{
		Engine:   eng,
		States:   states,
		Listings: &listing.DefaultService{Repo: repo},
	}

	identity := func(c *gin.Context) {
		c.Set("userID", role+"-1")
		c.Set("userRole", role)
	}

	r := gin.New()
	r.POST("/message", identity, h.MessageHandler)
	r.POST("/webhook/search", identity, h.WebhookSearchHandler)
	return &testEnv{router: r, repo: repo, states: states}
}

func (env *testEnv) send(t *testing.T, message string) map[string]interface{} {
	t.Helper()
	body, err := json.Marshal(map[string]string{"message": message, "sessionId": "sess-1"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/message", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSellerListingFlowEndToEnd(t *testing.T) {
	eng := &scriptedEngine{replies: []string{
		"Happy to help! What type of property are you selling?",
		"Got it. What is the street address?",
		"Which city is the property in?",
		"And which state?",
		"What is the zip code?",
		"What is the asking price?",
		"Great. Shall I go ahead and create the listing?",
	}}
	env := newTestEnv(t, eng, models.RoleSeller)

	for _, msg := range []string{"I want to sell my house", "House", "123 Main St", "Irving", "TX", "75038"} {
		env.send(t, msg)
	}

	resp := env.send(t, "450000")
	assert.Equal(t, true, resp["awaitingConfirmation"])
	assert.Empty(t, env.repo.indexed, "nothing persisted before the explicit accept")

	resp = env.send(t, "yes")
	require.Len(t, env.repo.indexed, 1)

	created := env.repo.indexed[0]
	assert.Equal(t, "House at 123 Main St", created.Title)
	assert.Equal(t, "123 Main St, Irving, TX, 75038", created.Address)
	assert.Equal(t, 450000, created.Price)
	assert.Equal(t, models.ListingStatusActive, created.Status)
	assert.Equal(t, "seller-1", created.SellerID)
	assert.NotNil(t, resp["listing"])
}

func TestSellerCancelDiscardsDraft(t *testing.T) {
	eng := &scriptedEngine{replies: []string{
		"What type of property are you selling?",
		"What is the street address?",
		"Which city is the property in?",
		"And which state?",
		"What is the zip code?",
		"What is the asking price?",
		"Great. Shall I go ahead and create the listing?",
	}}
	env := newTestEnv(t, eng, models.RoleSeller)

	for _, msg := range []string{"I want to sell my house", "House", "123 Main St", "Irving", "TX", "75038", "450000"} {
		env.send(t, msg)
	}

	env.send(t, "no")
	assert.Empty(t, env.repo.indexed)

	conv, err := env.states.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Empty(t, conv.State.Fields)
	assert.False(t, conv.State.AwaitingConfirmation)
}

func TestBuyerCriteriaSummaryRedirectsImmediately(t *testing.T) {
	prev := config.AppConfig.ListingBrowserRoute
	config.AppConfig.ListingBrowserRoute = "/listings"
	defer func() { config.AppConfig.ListingBrowserRoute = prev }()

	eng := &scriptedEngine{replies: []string{
		"Searching for properties with budget: 500000; location: Irving; bedrooms: 4",
	}}
	env := newTestEnv(t, eng, models.RoleBuyer)

	resp := env.send(t, "I want to buy a home in Irving under 500k with 4 bedrooms")
	redirect, ok := resp["redirectUrl"].(string)
	require.True(t, ok, "criteria summary must produce a redirect without confirmation")
	assert.Contains(t, redirect, "/listings?")
	assert.Contains(t, redirect, "location=Irving")
	assert.Contains(t, redirect, "price_max=500000")
	assert.Contains(t, redirect, "bedrooms_min=4")
}

func TestWebhookSearchReturnsCappedHits(t *testing.T) {
	env := newTestEnv(t, &scriptedEngine{}, models.RoleBuyer)
	for i := 0; i < 10; i++ {
		env.repo.hits = append(env.repo.hits, models.ScoredListing{
			Listing: models.Listing{ID: string(rune('a' + i)), Price: 100000},
			Score:   float64(i),
		})
	}

	body, _ := json.Marshal(map[string]interface{}{
		"query":   "Dallas",
		"filters": map[string]string{"budget": "$500,000"},
	})
	req := httptest.NewRequest(http.MethodPost, "/webhook/search", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Properties []models.PropertyView `json:"properties"`
		Count      int                   `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 8, resp.Count)
	assert.Equal(t, float64(9), resp.Properties[0].Score, "highest score first")
}
