// Package render drives the external animation renderer. The composition
// templates themselves live in the renderer project; this driver only hands
// them their input props and expects a video file back.
package render

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"daily-goals-pipeline/config"
	"daily-goals-pipeline/dataset"
	"daily-goals-pipeline/timeline"
	"daily-goals-pipeline/types"
)

// Renderer shells out to the configured renderer command.
type Renderer struct {
	cfg *config.Config
}

// New creates a new Renderer.
func New(cfg *config.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// compositions maps slots to renderer composition ids.
var compositions = map[types.Slot]string{
	types.SlotMorning: "MorningVideo",
	types.SlotNight:   "NightVideo",
	types.SlotSummary: "SummaryVideo",
}

// Run renders the slot's video for the given civil date and returns the
// output path. Rendering a summary with zero participants is skipped and
// returns an empty path with no error.
func (r *Renderer) Run(ctx context.Context, slot types.Slot, date string) (string, error) {
	outPath := filepath.Join(r.cfg.Paths.Output, fmt.Sprintf("%s_%s.mp4", slot, date))

	props := map[string]interface{}{"date": date}

	if slot == types.SlotSummary {
		ds, err := dataset.Load(dataset.Path(r.cfg.Paths.Output, date))
		if err != nil {
			return "", fmt.Errorf("load comment dataset (run fetch first): %w", err)
		}
		if len(ds.Comments) == 0 {
			log.Println("[render] No comments today — skipping summary video")
			return "", nil
		}
		props["comments"] = ds.Comments

		// The renderer cannot change its own length mid-render, so the
		// requested duration rides along in the props document.
		frames := timeline.SummaryDuration(len(ds.Comments), r.cfg.Render.FPS)
		props["durationInFrames"] = frames
		log.Printf("[render] %d user(s), %d frames (%ds at %dfps)",
			len(ds.Comments), frames, frames/r.cfg.Render.FPS, r.cfg.Render.FPS)
	}

	propsPath := filepath.Join(r.cfg.Paths.Output, fmt.Sprintf("props_%s_%s.json", slot, date))
	data, err := json.Marshal(props)
	if err != nil {
		return "", fmt.Errorf("marshal render props: %w", err)
	}
	if err := os.WriteFile(propsPath, data, 0644); err != nil {
		return "", fmt.Errorf("write render props: %w", err)
	}

	args := append(strings.Fields(r.cfg.Render.Command),
		r.cfg.Render.Entry,
		compositions[slot],
		outPath,
		"--props="+propsPath,
	)

	log.Printf("[render] Rendering %s video: %s", slot, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("render %s video: %w", slot, err)
	}

	log.Printf("[render] ✅ %s video ready: %s", slot, outPath)
	return outPath, nil
}
