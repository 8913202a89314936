// Command dailygoals runs the daily content loop for the goals channel:
// fetch and merge viewer comments, render the day's videos and publish them.
// An external scheduler invokes the subcommands in sequence once per day.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"daily-goals-pipeline/config"
	"daily-goals-pipeline/dataset"
	"daily-goals-pipeline/dateutil"
	"daily-goals-pipeline/fetch"
	"daily-goals-pipeline/ledger"
	"daily-goals-pipeline/merge"
	"daily-goals-pipeline/platform"
	"daily-goals-pipeline/render"
	"daily-goals-pipeline/types"
	"daily-goals-pipeline/upload"
)

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dailygoals",
		Short: "Daily goals channel automation",
		Long:  "Fetches viewer comments from the morning and night videos, merges them per user, and renders and uploads the daily videos.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// .env is local dev convenience; the scheduler injects real env.
			_ = godotenv.Load()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to config file")

	rootCmd.AddCommand(newFetchCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newUploadCmd())
	rootCmd.AddCommand(newStatusCmd())

	return rootCmd
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := os.MkdirAll(cfg.Paths.Output, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return cfg, nil
}

// resolveVideoID picks the video id for a slot: explicit flag first, then
// environment, then the latest upload recorded in the status ledger.
func resolveVideoID(flagValue, envVar string, led *ledger.Ledger, slot types.Slot) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	if ref := led.Videos[slot]; ref != nil {
		return ref.VideoID
	}
	return ""
}

func newFetchCmd() *cobra.Command {
	var morningID, nightID string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch and merge today's comments into the day's dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			led, err := ledger.Load(cfg.Paths.Ledger)
			if err != nil {
				return err
			}

			mid := resolveVideoID(morningID, "MORNING_VIDEO_ID", led, types.SlotMorning)
			nid := resolveVideoID(nightID, "NIGHT_VIDEO_ID", led, types.SlotNight)
			if mid == "" || nid == "" {
				return fmt.Errorf("morning and night video ids required (flags, MORNING_VIDEO_ID/NIGHT_VIDEO_ID, or a prior upload run)")
			}

			creds, err := config.LoadCredentials()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Fetch.TimeoutSec)*time.Second)
			defer cancel()

			client, err := platform.NewClient(ctx, creds)
			if err != nil {
				return err
			}

			fetcher := fetch.New(client)
			morning, err := fetcher.Fetch(ctx, mid, cfg.Fetch.MaxResults)
			if err != nil {
				return err
			}
			night, err := fetcher.Fetch(ctx, nid, cfg.Fetch.MaxResults)
			if err != nil {
				return err
			}

			log.Println("[fetch] Merging comments...")
			merged := merge.Merge(morning, night)

			date := dateutil.Today()
			ds := dataset.Build(date, mid, nid, merged)
			outPath := dataset.Path(cfg.Paths.Output, date)
			if err := dataset.Save(outPath, ds); err != nil {
				return err
			}

			log.Printf("[fetch] ✅ Saved %s", outPath)
			log.Printf("[fetch] %d user(s): %d both, %d morning only, %d night only",
				ds.Stats.TotalUsers, ds.Stats.BothCommented, ds.Stats.MorningOnly, ds.Stats.NightOnly)
			return nil
		},
	}

	cmd.Flags().StringVar(&morningID, "morning-id", "", "Morning video id (overrides env and ledger)")
	cmd.Flags().StringVar(&nightID, "night-id", "", "Night video id (overrides env and ledger)")

	return cmd
}

func newRenderCmd() *cobra.Command {
	var slotArg string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a video via the external renderer",
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := types.ParseSlot(slotArg)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			_, err = render.New(cfg).Run(context.Background(), slot, dateutil.Today())
			return err
		},
	}

	cmd.Flags().StringVar(&slotArg, "type", "", "Video type: morning, night or summary")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newUploadCmd() *cobra.Command {
	var slotArg string

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a rendered video and record it in the status ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := types.ParseSlot(slotArg)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			date := dateutil.Today()
			videoPath := filepath.Join(cfg.Paths.Output, fmt.Sprintf("%s_%s.mp4", slot, date))
			if _, err := os.Stat(videoPath); err != nil {
				return fmt.Errorf("video file not found: %s (run render first)", videoPath)
			}

			led, err := ledger.Load(cfg.Paths.Ledger)
			if err != nil {
				return err
			}

			creds, err := config.LoadCredentials()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Upload.TimeoutSec)*time.Second)
			defer cancel()

			client, err := platform.NewClient(ctx, creds)
			if err != nil {
				return err
			}

			result, err := upload.New(cfg, client).Run(ctx, slot, videoPath, date)
			if err != nil {
				return err
			}

			led.RecordUpload(slot, result.VideoID, date, dateutil.NowISO(), result.Title)
			if err := ledger.Save(cfg.Paths.Ledger, led); err != nil {
				return err
			}

			log.Printf("[upload] Recorded %s upload in %s", slot, cfg.Paths.Ledger)
			return nil
		},
	}

	cmd.Flags().StringVar(&slotArg, "type", "", "Video type: morning, night or summary")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the latest uploads per slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			led, err := ledger.Load(cfg.Paths.Ledger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if led.LastUpdated == "" {
				fmt.Fprintln(out, "No uploads recorded yet")
				return nil
			}

			fmt.Fprintf(out, "Last updated: %s\n", led.LastUpdated)
			for _, slot := range []types.Slot{types.SlotMorning, types.SlotNight, types.SlotSummary} {
				ref := led.Videos[slot]
				if ref == nil {
					fmt.Fprintf(out, "  %-8s —\n", slot)
					continue
				}
				fmt.Fprintf(out, "  %-8s %s (%s)\n", slot, ref.VideoID, ref.Date)
			}
			fmt.Fprintf(out, "History: %d upload(s)\n", len(led.History))
			return nil
		},
	}
}
