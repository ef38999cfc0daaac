package server

import (
	"bytes"
	_ "embed"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/zalepa/nbastandings/figure"
	"github.com/zalepa/nbastandings/filter"
	"github.com/zalepa/nbastandings/standings"
)

//go:embed web.html
var page []byte

// Chips are the two fixed conference toggles.
var Chips = []string{"Western", "Eastern"}

// Dashboard serves the page and the JSON API over one loaded table.
type Dashboard struct {
	Table   *standings.Table
	Catalog *figure.Catalog
	Graph   *filter.Graph
}

type layoutResponse struct {
	Chips     []string     `json:"chips"`
	Divisions []string     `json:"divisions"`
	Teams     []string     `json:"teams"`
	Selection selection    `json:"selection"`
	Figure    *figure.Spec `json:"figure"`
}

type selection struct {
	Conferences []string `json:"conferences"`
	Divisions   []string `json:"divisions"`
	Teams       []string `json:"teams"`
}

type callbackRequest struct {
	Input filter.Prop     `json:"input"`
	Value json.RawMessage `json:"value"`
}

type callbackResponse struct {
	Updates []filter.Update `json:"updates"`
}

// Register mounts the dashboard routes on app.
func (d *Dashboard) Register(app *fiber.App) {
	app.Get("/", d.Index)
	app.Get("/home", func(c *fiber.Ctx) error {
		return c.Redirect("/", fiber.StatusFound)
	})

	api := app.Group("/api")
	api.Get("/health", d.Health)
	api.Get("/layout", d.Layout)
	api.Post("/callbacks", d.Callback)
	api.Get("/frame.png", d.FramePNG)
}

// Index serves the embedded dashboard page.
func (d *Dashboard) Index(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.Send(page)
}

// Health reports liveness and the number of loaded records.
func (d *Dashboard) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"records": d.Table.Len(),
	})
}

// Layout returns the initial page state: every option and the unfiltered
// figure with the last week active.
func (d *Dashboard) Layout(c *fiber.Ctx) error {
	return c.JSON(layoutResponse{
		Chips:     Chips,
		Divisions: d.Table.Divisions(),
		Teams:     d.Table.Teams(),
		Selection: selection{
			Conferences: []string{},
			Divisions:   []string{},
			Teams:       []string{},
		},
		Figure: d.Catalog.Full(),
	})
}

// Callback fires one control change through the filter graph and returns
// every property the cascade updated.
func (d *Dashboard) Callback(c *fiber.Ctx) error {
	var req callbackRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return ErrInvalidRequest.WithMessage("malformed callback body: %v", err)
	}
	if !d.Graph.Listens(req.Input) {
		return ErrInvalidRequest.WithMessage("no callback listens on %q", req.Input)
	}

	value, err := decodeValue(req.Input, req.Value)
	if err != nil {
		return ErrInvalidRequest.WithMessage("bad value for %s: %v", req.Input, err)
	}

	updates, err := d.Graph.Fire(req.Input, value)
	if err != nil {
		return errors.Wrapf(err, "firing %s", req.Input)
	}

	log.Debug().
		Str("evt.name", "callback.fire").
		Str("input", string(req.Input)).
		Int("updates", len(updates)).
		Msg("callback handled")

	if updates == nil {
		updates = []filter.Update{}
	}
	return c.JSON(callbackResponse{Updates: updates})
}

// decodeValue turns the raw JSON value into what the bindings expect. A
// missing or null value stays nil so the bindings treat it as absent.
func decodeValue(prop filter.Prop, raw json.RawMessage) (any, error) {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}

	switch prop {
	case filter.ResetClicks:
		var n int
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		return n, nil
	default:
		list := []string{}
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, err
		}
		return list, nil
	}
}

// FramePNG renders one week of the figure for the selected teams. Without a
// week query the last week is drawn.
func (d *Dashboard) FramePNG(c *fiber.Ctx) error {
	var teams []string
	for _, t := range c.Context().QueryArgs().PeekMulti("team") {
		teams = append(teams, string(t))
	}

	spec := d.Catalog.ForTeams(teams)
	frame := spec.ActiveFrame()
	if week := c.Query("week"); week != "" {
		frame = spec.FrameIndex(week)
	}
	if frame < 0 {
		return ErrNotFound.WithMessage("no frame for week %q", c.Query("week"))
	}

	var buf bytes.Buffer
	if err := spec.WritePNG(&buf, frame); err != nil {
		return errors.Wrap(err, "rendering frame")
	}
	c.Type("png")
	return c.Send(buf.Bytes())
}
