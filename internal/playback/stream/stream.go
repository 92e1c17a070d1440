// Package stream serves frame sequences over a websocket, one JSON message
// per frame.
package stream

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/frames"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/noise"
	"github.com/KirkDiggler/rpg-mapgen/internal/orchestrators/mapgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/repositories/runs"
)

const (
	// DefaultDelay is the pause between frames when not stepping
	DefaultDelay = 250 * time.Millisecond

	// NextMessage advances a stepping stream by one frame
	NextMessage = "next"

	writeWait = 5 * time.Second
)

// FrameMessage is the JSON sent for each frame
type FrameMessage struct {
	RunID  string   `json:"run_id,omitempty"`
	Index  int      `json:"index"`
	Total  int      `json:"total"`
	Label  string   `json:"label"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Glyphs string   `json:"glyphs"`
	Colors []string `json:"colors"`
}

// NewFrameMessage flattens one frame into its wire form
func NewFrameMessage(runID string, f frames.Frame, index, total int) FrameMessage {
	glyphs := make([]rune, grid.Size)
	colors := make([]string, grid.Size)
	for i := 0; i < grid.Size; i++ {
		t := f.Grid.Tile(i)
		glyphs[i] = t.Glyph
		colors[i] = t.Color.Hex()
	}
	return FrameMessage{
		RunID:  runID,
		Index:  index,
		Total:  total,
		Label:  f.Label,
		Width:  grid.Width,
		Height: grid.Height,
		Glyphs: string(glyphs),
		Colors: colors,
	}
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// Config holds the dependencies for the stream handler
type Config struct {
	Service mapgen.Service
	// Delay between frames; zero means DefaultDelay
	Delay time.Duration
	// Step waits for a "next" message before each frame after the first
	Step bool
	// Noise is the basis used when a request does not pick one
	Noise noise.Basis
	// CheckOrigin overrides the upgrader's origin check
	CheckOrigin func(r *http.Request) bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Service == nil {
		vb.RequiredField("Service")
	}
	if c.Delay < 0 {
		vb.Field("Delay", "cannot be negative")
	}
	return vb.Build()
}

// Handler upgrades requests and plays frames to the client
type Handler struct {
	svc      mapgen.Service
	delay    time.Duration
	step     bool
	noise    noise.Basis
	upgrader websocket.Upgrader
}

// NewHandler creates a new stream handler
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	delay := cfg.Delay
	if delay == 0 {
		delay = DefaultDelay
	}

	return &Handler{
		svc:   cfg.Service,
		delay: delay,
		step:  cfg.Step,
		noise: cfg.Noise,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     cfg.CheckOrigin,
		},
	}, nil
}

// Register mounts the handler routes on mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /runs/{generator}", h.HandleGenerate)
	mux.HandleFunc("GET /stored/{runID}", h.HandleStored)
	mux.HandleFunc("GET /generators", h.HandleGenerators)
}

// HandleGenerate builds the named generator and streams its frames.
// An optional seed query parameter fixes the seed, noise picks the basis,
// and store=true keeps the run so it can be replayed from /stored/{runID}.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	input := &mapgen.GenerateInput{Generator: r.PathValue("generator"), Noise: h.noise}
	query := r.URL.Query()
	if raw := query.Get("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, errors.InvalidArgumentf("invalid seed %q", raw))
			return
		}
		input.Seed = seed
		input.HasSeed = true
	}
	if raw := query.Get("noise"); raw != "" {
		basis, err := noise.ParseBasis(raw)
		if err != nil {
			writeError(w, err)
			return
		}
		input.Noise = basis
	}
	if raw := query.Get("store"); raw != "" {
		store, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, errors.InvalidArgumentf("invalid store flag %q", raw))
			return
		}
		input.Store = store
	}

	out, err := h.svc.Generate(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	h.play(w, r, out.Run)
}

// HandleStored streams a previously stored run
func (h *Handler) HandleStored(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.GetRun(r.Context(), &mapgen.GetRunInput{RunID: r.PathValue("runID")})
	if err != nil {
		writeError(w, err)
		return
	}

	h.play(w, r, out.Run)
}

// HandleGenerators lists the registered generators as plain JSON
func (h *Handler) HandleGenerators(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ListGenerators(r.Context(), &mapgen.ListGeneratorsInput{})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out.Generators); err != nil {
		slog.ErrorContext(r.Context(), "Failed to encode generators", "error", err)
	}
}

func (h *Handler) play(w http.ResponseWriter, r *http.Request, run *runs.Run) {
	seq := run.Frames
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.WarnContext(r.Context(), "Failed to upgrade connection", "error", err)
		return
	}
	defer func() { _ = conn.Close() }()

	next, closed := readPump(conn)

	for i, f := range seq {
		if i > 0 {
			if !h.wait(next, closed) {
				slog.Debug("Client left before the stream finished",
					"sent", i,
					"total", len(seq),
				)
				return
			}
		}

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(NewFrameMessage(run.ID, f, i, len(seq))); err != nil {
			slog.Warn("Failed to write frame", "index", i, "error", err)
			return
		}
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))

	slog.Debug("Stream finished", "run_id", run.ID, "frames", len(seq))
}

func (h *Handler) wait(next <-chan struct{}, closed <-chan struct{}) bool {
	if h.step {
		select {
		case <-next:
			return true
		case <-closed:
			return false
		}
	}

	timer := time.NewTimer(h.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-closed:
		return false
	}
}

// readPump consumes client messages. It signals next for every "next"
// message and closes closed when the connection stops reading.
func readPump(conn *websocket.Conn) (<-chan struct{}, <-chan struct{}) {
	next := make(chan struct{}, 16)
	closed := make(chan struct{})

	go func() {
		defer close(closed)
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					slog.Debug("Stream read ended", "error", err)
				}
				return
			}
			if string(message) != NextMessage {
				continue
			}
			select {
			case next <- struct{}{}:
			default:
			}
		}
	}()

	return next, closed
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code.HTTPStatus())
	_ = json.NewEncoder(w).Encode(errorResponse{Code: code, Message: errors.GetMessage(err)})
}
