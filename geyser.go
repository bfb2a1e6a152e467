package geyser

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"

	"github.com/swallowmc/geyser/config"
	"github.com/swallowmc/geyser/registry"
	"github.com/swallowmc/geyser/schemas"
	"github.com/swallowmc/geyser/translator"
)

// Geyser owns the translation subsystems: the item registry built once at
// startup and the per-session command translator. The registry tables are
// immutable after New returns and may be shared across any number of
// sessions.
type Geyser struct {
	cfg        *config.Config
	logger     schemas.Logger
	registry   *registry.Registry
	translator *translator.Translator
}

// emptyValueSource backs translation before any live registries are
// attached.
type emptyValueSource struct{}

func (emptyValueSource) BlockIdentifiers() []string       { return nil }
func (emptyValueSource) EnchantmentIdentifiers() []string { return nil }
func (emptyValueSource) EntityIdentifiers() []string      { return nil }

// New loads the assets, builds the item registry, and prepares the command
// translator. Asset or integrity failures are returned as errors; callers
// treat them as fatal and abort startup.
func New(cfg *config.Config, assets registry.Assets, values translator.ValueSource, descriptions schemas.DescriptionSource, logger schemas.Logger) (*Geyser, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = NewDefaultLogger(schemas.LogLevel(cfg.LogLevel))
	}
	if values == nil {
		values = emptyValueSource{}
	}

	reg, err := registry.New(assets, registry.Options{AddNonBedrockItems: cfg.AddNonBedrockItems}, logger)
	if err != nil {
		return nil, fmt.Errorf("geyser: build item registry: %w", err)
	}

	return &Geyser{
		cfg:        cfg,
		logger:     logger,
		registry:   reg,
		translator: translator.New(reg, values, descriptions, cfg.CommandSuggestions, logger),
	}, nil
}

// Registry returns the item registry.
func (g *Geyser) Registry() *registry.Registry {
	return g.registry
}

// NewSession creates a session with a fresh identity around the given sink.
func (g *Geyser) NewSession(sink schemas.CommandSink) *schemas.Session {
	return schemas.NewSession(sink)
}

// HandleDeclareCommands translates an incoming declare-commands node graph
// and sends the resulting Bedrock command list on the session's sink.
func (g *Geyser) HandleDeclareCommands(sess *schemas.Session, nodes []schemas.CommandNode, rootIndex int32) error {
	return g.translator.TranslateAvailableCommands(sess, nodes, rootIndex)
}

type statusResponse struct {
	Items         int `json:"items"`
	CreativeItems int `json:"creative_items"`
	PaletteSize   int `json:"palette_size"`
}

// StatusHandler returns the fasthttp handler of the ping/status surface.
func (g *Geyser) StatusHandler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		switch string(ctx.Path()) {
		case "/ping":
			ctx.SetStatusCode(fasthttp.StatusOK)
			ctx.SetBodyString("pong")
		case "/status":
			body, err := sonic.Marshal(statusResponse{
				Items:         g.registry.Size(),
				CreativeItems: len(g.registry.CreativeItems()),
				PaletteSize:   len(g.registry.StartGameItems()),
			})
			if err != nil {
				ctx.SetStatusCode(fasthttp.StatusInternalServerError)
				return
			}
			ctx.SetContentType("application/json")
			ctx.SetBody(body)
		default:
			ctx.SetStatusCode(fasthttp.StatusNotFound)
		}
	}
}

// ServeStatus blocks serving the status surface on the configured address.
// It returns immediately when no address is configured.
func (g *Geyser) ServeStatus() error {
	if g.cfg.StatusAddress == "" {
		return nil
	}
	g.logger.Info(fmt.Sprintf("status surface listening on %s", g.cfg.StatusAddress))
	return fasthttp.ListenAndServe(g.cfg.StatusAddress, g.StatusHandler())
}
