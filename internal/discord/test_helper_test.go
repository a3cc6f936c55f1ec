package discord

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/Yiqing888/deadlydelivery.app/internal/advisor"
	"github.com/Yiqing888/deadlydelivery.app/internal/calculator"
	"github.com/Yiqing888/deadlydelivery.app/internal/catalog"
	"github.com/Yiqing888/deadlydelivery.app/internal/roadmap"
	"github.com/Yiqing888/deadlydelivery.app/internal/server"
)

// MockRoundTripper implements http.RoundTripper for intercepting Discord requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext wires a fake advisor API and a Discord session whose HTTP
// traffic is captured instead of sent.
type TestContext struct {
	Server       *httptest.Server
	Mux          *http.ServeMux
	APIClient    *APIClient
	Session      *discordgo.Session
	DiscordMocks *MockRoundTripper

	mu        sync.Mutex
	responses []discordgo.InteractionResponse
	edits     []discordgo.WebhookEdit
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	mux := http.NewServeMux()
	backend := httptest.NewServer(mux)
	t.Cleanup(backend.Close)

	client := NewAPIClient(backend.URL, "test-api-key")
	client.RetryDelay = time.Millisecond

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	ctx := &TestContext{
		Server:    backend,
		Mux:       mux,
		APIClient: client,
		Session:   session,
	}

	ctx.DiscordMocks = &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			raw, _ := io.ReadAll(req.Body)
			ctx.mu.Lock()
			switch req.Method {
			case http.MethodPost:
				var resp discordgo.InteractionResponse
				if json.Unmarshal(raw, &resp) == nil {
					ctx.responses = append(ctx.responses, resp)
				}
			case http.MethodPatch:
				var edit discordgo.WebhookEdit
				if json.Unmarshal(raw, &edit) == nil {
					ctx.edits = append(ctx.edits, edit)
				}
			}
			ctx.mu.Unlock()
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
				Request:    req,
			}, nil
		},
	}
	session.Client = &http.Client{Transport: ctx.DiscordMocks}

	return ctx
}

// LastEmbed returns the first embed of the most recent response edit
func (c *TestContext) LastEmbed() *discordgo.MessageEmbed {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.edits) - 1; i >= 0; i-- {
		if e := c.edits[i].Embeds; e != nil && len(*e) > 0 {
			return (*e)[0]
		}
	}
	return nil
}

// LastContent returns the text of the most recent response edit
func (c *TestContext) LastContent() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.edits) - 1; i >= 0; i-- {
		if c.edits[i].Content != nil {
			return *c.edits[i].Content
		}
	}
	return ""
}

// Responses returns the initial interaction responses sent so far
func (c *TestContext) Responses() []discordgo.InteractionResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]discordgo.InteractionResponse(nil), c.responses...)
}

// WriteJSON writes data as a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// commandInteraction builds a slash command interaction with options
func commandInteraction(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-1",
			AppID: "app-1",
			Token: "interaction-token",
			Type:  discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: opts,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "test-user", Username: "Tester"},
			},
		},
	}
}

func intOpt(name string, v int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(v),
	}
}

func numberOpt(name string, v float64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name: name, Type: discordgo.ApplicationCommandOptionNumber, Value: v,
	}
}

func stringOpt(name, v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name: name, Type: discordgo.ApplicationCommandOptionString, Value: v,
	}
}

func boolOpt(name string, v bool) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name: name, Type: discordgo.ApplicationCommandOptionBoolean, Value: v,
	}
}

// MountAdvisor serves the real advisor API from the test backend
func (c *TestContext) MountAdvisor(t *testing.T) {
	t.Helper()

	cat, err := catalog.Load("../../configs/catalog")
	require.NoError(t, err)

	svc := advisor.NewService(
		calculator.NewEstimator(calculator.DefaultRiskConfig()),
		roadmap.NewGenerator(roadmap.DefaultTemplate()),
		cat,
		advisor.DefaultOptions(),
	)
	srv := server.NewServer(server.Options{APIKey: "test-api-key"}, svc)
	c.Mux.Handle("/", srv.Handler())
}
