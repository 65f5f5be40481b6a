package main

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/screenreel/screenreel/internal/badge"
	"github.com/screenreel/screenreel/internal/camera"
	"github.com/screenreel/screenreel/internal/config"
	"github.com/screenreel/screenreel/internal/monitor"
	"github.com/screenreel/screenreel/internal/render"
	"github.com/screenreel/screenreel/internal/source"
	"github.com/screenreel/screenreel/internal/system"
	"github.com/screenreel/screenreel/internal/telemetry"
)

var (
	modeFlag string
	planOut  string

	filterFPS   int
	filterDebug bool

	backgroundPath string
	pageIndex      int
	renderDPI      int
	sbOutDir       string
	sbStepMs       int64
	sbWorkers      int

	plotOutDir    string
	plotRecording string

	badgeOut       string
	badgeSize      int
	badgeMargin    int
	badgeStampPath string
	badgeStart     float64
	badgeEnd       float64
)

func init() {
	synthesizeCmd.Flags().StringVar(&modeFlag, "mode", "", "camera mode: none, basic, follow, smart (default: config)")
	synthesizeCmd.Flags().StringVar(&planOut, "out", "plan.yaml", "plan output path (.yaml or .json)")

	filterCmd.Flags().IntVar(&filterFPS, "fps", 0, "output frame rate (default: config)")
	filterCmd.Flags().BoolVar(&filterDebug, "debug", false, "overlay timestamps and frame numbers")

	storyboardCmd.Flags().StringVar(&backgroundPath, "background", "", "background pdf or image (required)")
	storyboardCmd.Flags().IntVar(&pageIndex, "page", 0, "background page index")
	storyboardCmd.Flags().IntVar(&renderDPI, "dpi", 144, "render dpi for pdf backgrounds")
	storyboardCmd.Flags().StringVar(&sbOutDir, "out-dir", "", "output directory (default: config)")
	storyboardCmd.Flags().Int64Var(&sbStepMs, "step-ms", 0, "sampling interval in ms (default: config)")
	storyboardCmd.Flags().IntVar(&sbWorkers, "workers", 0, "render workers (default: host-sized)")
	_ = storyboardCmd.MarkFlagRequired("background")

	plotCmd.Flags().StringVar(&plotOutDir, "out-dir", "plots", "chart output directory")
	plotCmd.Flags().StringVar(&plotRecording, "recording", "", "recording to overlay the raw cursor from")

	badgeCmd.Flags().StringVar(&badgeOut, "out", "badge.png", "badge output path")
	badgeCmd.Flags().IntVar(&badgeSize, "size", 0, "badge size in px (default: config)")
	badgeCmd.Flags().IntVar(&badgeMargin, "margin", -1, "corner margin in px (default: config)")
	badgeCmd.Flags().StringVar(&badgeStampPath, "stamp", "", "stamp the badge onto this image file")
	badgeCmd.Flags().Float64Var(&badgeStart, "start", -1, "overlay window start in seconds")
	badgeCmd.Flags().Float64Var(&badgeEnd, "end", -1, "overlay window end in seconds")
}

var synthesizeCmd = &cobra.Command{
	Use:   "synthesize [recording.json]",
	Short: "Build a camera plan from a telemetry recording",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())

		var path string
		if len(args) == 1 {
			path = args[0]
		} else {
			latest, err := telemetry.FindLatest(".")
			if err != nil {
				return err
			}
			path = latest
		}

		rec, err := telemetry.Load(path)
		if err != nil {
			return err
		}

		mode := cfg.Mode
		if modeFlag != "" {
			m, err := camera.ParseMode(modeFlag)
			if err != nil {
				return err
			}
			mode = m
		}

		engine, err := camera.NewEngine(cfg.Camera)
		if err != nil {
			return err
		}
		session := engine.Synthesize(rec, mode)

		if err := camera.WritePlan(camera.NewPlan(session, rec.ID), planOut); err != nil {
			return err
		}

		log.Info().
			Str("recording", path).
			Stringer("mode", mode).
			Int("keyframes", len(session.Keyframes)).
			Str("plan", planOut).
			Msg("camera plan written")
		return nil
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [recording.json]",
	Short: "Summarize a telemetry recording",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())

		rec, err := telemetry.Load(args[0])
		if err != nil {
			return err
		}

		stats := telemetry.Summarize(rec)
		points := camera.DetectFocusPoints(rec.Positions, rec.Clicks, cfg.Camera)
		byReason := make(map[camera.FocusReason]int)
		for _, p := range points {
			byReason[p.Reason]++
		}

		fmt.Printf("recording     %s\n", rec.ID)
		fmt.Printf("viewport      %dx%d\n", rec.Viewport.Width, rec.Viewport.Height)
		fmt.Printf("duration      %.1fs\n", float64(stats.DurationMs)/1000)
		fmt.Printf("samples       %d\n", stats.Samples)
		fmt.Printf("clicks        %d\n", stats.Clicks)
		fmt.Printf("path length   %.0f px\n", stats.PathLength)
		fmt.Printf("mean speed    %.0f px/s\n", stats.MeanSpeed)
		fmt.Printf("median speed  %.0f px/s\n", stats.MedianSpeed)
		fmt.Printf("p95 speed     %.0f px/s\n", stats.P95Speed)
		fmt.Printf("max speed     %.0f px/s\n", stats.MaxSpeed)
		fmt.Printf("focus points  %d (%d click, %d hover, %d slow)\n",
			len(points),
			byReason[camera.ReasonClick],
			byReason[camera.ReasonHover],
			byReason[camera.ReasonSlowMovement])
		return nil
	},
}

var filterCmd = &cobra.Command{
	Use:   "filter [plan.yaml]",
	Short: "Print the ffmpeg filtergraph for a camera plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())

		plan, err := camera.ReadPlan(args[0])
		if err != nil {
			return err
		}

		opts := render.FilterOptions{
			Width:  cfg.Render.Width,
			Height: cfg.Render.Height,
			FPS:    cfg.Render.FPS,
			Debug:  cfg.Render.Debug || filterDebug,
		}
		if filterFPS > 0 {
			opts.FPS = filterFPS
		}

		fmt.Println(render.ZoomPanFilter(plan.Keyframes, opts))
		return nil
	},
}

var storyboardCmd = &cobra.Command{
	Use:   "storyboard [plan.yaml]",
	Short: "Render storyboard stills for a camera plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())

		plan, err := camera.ReadPlan(args[0])
		if err != nil {
			return err
		}

		bg, err := source.Open(backgroundPath)
		if err != nil {
			return err
		}
		defer bg.Close()

		if pageIndex < 0 || pageIndex >= bg.PageCount() {
			return fmt.Errorf("page %d out of range: %s has %d pages",
				pageIndex, backgroundPath, bg.PageCount())
		}

		img, err := bg.Render(pageIndex, renderDPI)
		if err != nil {
			return err
		}

		system.InitResourceLimits()

		opts := render.StoryboardOptions{
			Width:   cfg.Render.Width,
			Height:  cfg.Render.Height,
			StepMs:  cfg.Render.StepMs,
			OutDir:  cfg.Render.OutDir,
			Workers: cfg.Render.Workers,
		}
		if sbStepMs > 0 {
			opts.StepMs = sbStepMs
		}
		if sbOutDir != "" {
			opts.OutDir = sbOutDir
		}
		if sbWorkers > 0 {
			opts.Workers = sbWorkers
		}

		// Fit the default canvas to the background's aspect ratio.
		if opts.Width == 1920 && opts.Height == 1080 {
			if srcW, srcH, err := bg.Dimensions(pageIndex); err == nil && srcH > 0 {
				opts.Width = int(float64(opts.Height) * (srcW / srcH))
				if opts.Width%2 != 0 {
					opts.Width++
				}
			}
		}

		paths, err := render.RenderStoryboard(cmd.Context(), img, plan.Session(), opts)
		if err != nil {
			return err
		}

		log.Info().Int("frames", len(paths)).Str("dir", opts.OutDir).Msg("storyboard complete")
		return nil
	},
}

var plotCmd = &cobra.Command{
	Use:   "plot [plan.yaml]",
	Short: "Chart the zoom and pan curves of a camera plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := camera.ReadPlan(args[0])
		if err != nil {
			return err
		}

		var cursor []telemetry.CursorSample
		if plotRecording != "" {
			rec, err := telemetry.Load(plotRecording)
			if err != nil {
				return err
			}
			cursor = rec.Positions
		}

		paths, err := monitor.NewCurvePlotter(plotOutDir).PlotPlan(plan, cursor)
		if err != nil {
			return err
		}

		log.Info().Strs("charts", paths).Msg("plan charted")
		return nil
	},
}

var badgeCmd = &cobra.Command{
	Use:   "badge [url]",
	Short: "Render the QR badge for a recording link",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())

		url := cfg.Badge.URL
		if len(args) == 1 {
			url = args[0]
		}
		if url == "" {
			return errors.New("no badge url: pass one or set badge.url in the config")
		}

		b := badge.New(url)
		if cfg.Badge.Size > 0 {
			b.Size = cfg.Badge.Size
		}
		if cfg.Badge.Margin >= 0 {
			b.Margin = cfg.Badge.Margin
		}
		if badgeSize > 0 {
			b.Size = badgeSize
		}
		if badgeMargin >= 0 {
			b.Margin = badgeMargin
		}

		if badgeStampPath != "" {
			if err := stampFile(b, badgeStampPath); err != nil {
				return err
			}
			log.Info().Str("url", url).Str("image", badgeStampPath).Msg("badge stamped")
			return nil
		}

		if err := b.WritePNG(badgeOut); err != nil {
			return err
		}
		if badgeStart >= 0 && badgeEnd > badgeStart {
			fmt.Println(b.OverlayFilter(badgeStart, badgeEnd))
		}

		log.Info().Str("url", url).Str("out", badgeOut).Msg("badge written")
		return nil
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the host for rendering readiness",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())

		if version, err := system.FFmpegVersion(); err != nil {
			fmt.Println("ffmpeg        missing:", err)
		} else {
			fmt.Println("ffmpeg       ", version)
		}
		fmt.Println("encoder      ", system.DetectEncoder())
		fmt.Printf("zoompan       %v\n", system.HasFilter("zoompan"))
		fmt.Printf("drawtext      %v\n", system.HasFilter("drawtext"))
		fmt.Printf("workers       %d\n", system.RenderWorkers(cfg.Render.Width, cfg.Render.Height))
		return nil
	},
}

// stampFile draws the badge onto an existing image file in place.
func stampFile(b badge.Badge, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	src, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return err
	}

	frame := image.NewRGBA(src.Bounds())
	draw.Draw(frame, frame.Bounds(), src, src.Bounds().Min, draw.Src)
	if err := b.Stamp(frame); err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, frame); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
