package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/ventsim/internal/anim"
	"github.com/san-kum/ventsim/internal/config"
	"github.com/san-kum/ventsim/internal/engine"
	"github.com/san-kum/ventsim/internal/export"
	"github.com/san-kum/ventsim/internal/mech"
	"github.com/san-kum/ventsim/internal/render"
	"github.com/san-kum/ventsim/internal/tui"
)

var (
	flapHeight   float64
	motorSpacing float64
	extension    float64
	speedHz      float64
	scanStep     float64
	configFile   string
	preset       string
	asJSON       bool
	asBraille    bool
	outFile      string
	svgScale     float64
	scanParam    string
	frameRate    int
	duration     float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ventsim",
		Short: "interactive kinematic simulator for motorized vent flaps",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive()
		},
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [variant]",
		Short: "compute one system state",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSnapshot,
	}
	addKnobFlags(snapshotCmd)
	snapshotCmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	scanCmd := &cobra.Command{
		Use:   "scan [variant]",
		Short: "plot max opening angle across a parameter range",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScan,
	}
	addKnobFlags(scanCmd)
	scanCmd.Flags().StringVar(&scanParam, "param", "motor_spacing", "parameter to sweep (motor_spacing or flap_height)")

	compareCmd := &cobra.Command{
		Use:   "compare [variant...]",
		Short: "compare max opening angle across variants",
		RunE:  runCompare,
	}
	addKnobFlags(compareCmd)

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [variant]",
		Short: "write the current snapshot as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExportSVG,
	}
	addKnobFlags(exportSVGCmd)
	exportSVGCmd.Flags().StringVar(&outFile, "out", "vent.svg", "output file")
	exportSVGCmd.Flags().Float64Var(&svgScale, "scale", 2, "SVG scale factor")
	exportSVGCmd.Flags().BoolVar(&asBraille, "braille", false, "export the terminal braille view instead of the schematic")

	liveCmd := &cobra.Command{
		Use:   "live [variant]",
		Short: "animated terminal view driven by the bounce driver",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addKnobFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	liveCmd.Flags().Float64Var(&duration, "time", 0, "stop after this many seconds (0 = run until interrupted)")

	presetsCmd := &cobra.Command{
		Use:   "presets [variant]",
		Short: "list presets for a variant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for variant: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(snapshotCmd, scanCmd, compareCmd, exportSVGCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addKnobFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&flapHeight, "flap-height", config.DefaultFlapHeight, "flap panel height (mm)")
	cmd.Flags().Float64Var(&motorSpacing, "motor-spacing", config.DefaultMotorSpacing, "flap-to-motor gap (mm)")
	cmd.Flags().Float64Var(&extension, "extension", config.DefaultExtension, "actuator extension (0-100)")
	cmd.Flags().Float64Var(&speedHz, "speed", config.DefaultSpeedHz, "animation speed (Hz)")
	cmd.Flags().Float64Var(&scanStep, "scan-step", config.DefaultScanStep, "collision scan resolution (deg)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig merges preset, config file and flags into one clamped config.
// CLI flags win over the file, the file wins over the preset.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	variant := config.DefaultVariant
	if len(args) > 0 {
		variant = args[0]
	}

	cfg := config.DefaultConfig()
	cfg.Variant = variant

	if preset != "" {
		p := config.GetPreset(variant, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(variant))
		}
		cfg = p
	}

	if configFile != "" {
		fc, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fc
		if len(args) > 0 {
			cfg.Variant = variant
		}
	}

	if cmd.Flags().Changed("flap-height") {
		cfg.FlapHeight = flapHeight
	}
	if cmd.Flags().Changed("motor-spacing") {
		cfg.MotorSpacing = motorSpacing
	}
	if cmd.Flags().Changed("extension") {
		cfg.Extension = extension
	}
	if cmd.Flags().Changed("speed") {
		cfg.SpeedHz = speedHz
	}
	if cmd.Flags().Changed("scan-step") {
		cfg.ScanStepDeg = scanStep
	}
	cfg.Clamp()
	return cfg, nil
}

func newEngine(cfg *config.Config) (*engine.Engine, error) {
	variant, err := mech.New(cfg.Variant)
	if err != nil {
		return nil, err
	}
	return engine.New(variant, cfg.Params()), nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}
	snap := eng.Snapshot()

	if asJSON {
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "variant\t%s\n", snap.Variant)
	fmt.Fprintf(w, "extension\t%.1f%%\n", snap.Extension)
	fmt.Fprintf(w, "opening angle\t%.2f°\n", -snap.CurrentAngleDeg)
	fmt.Fprintf(w, "max opening\t%.2f°\n", -snap.MaxAngleDeg)
	fmt.Fprintf(w, "pivot\t(%.1f, %.1f)\n", snap.Static.Pivot.X, snap.Static.Pivot.Y)
	fmt.Fprintf(w, "motor anchor\t(%.1f, %.1f)\n", snap.Static.MotorAnchor.X, snap.Static.MotorAnchor.Y)
	fmt.Fprintf(w, "nut\t(%.1f, %.1f)\n", snap.Dynamic.Nut.X, snap.Dynamic.Nut.Y)
	fmt.Fprintf(w, "travel\t%.2f mm\n", snap.Dynamic.Travel)
	if snap.Static.BracketLen > 0 {
		fmt.Fprintf(w, "bracket length\t%.2f mm\n", snap.Static.BracketLen)
	}
	fmt.Fprintf(w, "canvas\t%.0f x %.0f\n", snap.Layout.Width, snap.Layout.Height)
	return w.Flush()
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	lim, ok := config.Limits[scanParam]
	if !ok || (scanParam != "motor_spacing" && scanParam != "flap_height") {
		return fmt.Errorf("unsupported scan parameter: %s", scanParam)
	}

	const samples = 40
	values := make([]float64, 0, samples)
	for i := 0; i < samples; i++ {
		v := lim.Min + (lim.Max-lim.Min)*float64(i)/float64(samples-1)
		c := *cfg
		switch scanParam {
		case "motor_spacing":
			c.MotorSpacing = v
		case "flap_height":
			c.FlapHeight = v
		}
		eng, err := newEngine(&c)
		if err != nil {
			return err
		}
		values = append(values, -eng.MaxAngle())
	}

	fmt.Printf("max opening angle (deg) vs %s [%.0f..%.0f], variant %s\n\n",
		scanParam, lim.Min, lim.Max, cfg.Variant)
	fmt.Println(asciigraph.Plot(values, asciigraph.Height(12), asciigraph.Width(60)))
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = mech.Names()
	}
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VARIANT\tMAX OPEN\tTRAVEL@100%\tBRACKET")
	for _, name := range names {
		c := *cfg
		c.Variant = name
		eng, err := newEngine(&c)
		if err != nil {
			return err
		}
		eng.SetExtension(100)
		snap := eng.Snapshot()
		bracket := "-"
		if snap.Static.BracketLen > 0 {
			bracket = fmt.Sprintf("%.1fmm", snap.Static.BracketLen)
		}
		fmt.Fprintf(w, "%s\t%.2f°\t%.1fmm\t%s\n", name, -snap.MaxAngleDeg, snap.Dynamic.Travel, bracket)
	}
	return w.Flush()
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}
	var svg string
	if asBraille {
		canvas := render.NewCanvas(72, 22)
		render.DrawState(canvas, eng.Snapshot())
		svg = export.CanvasToSVG(canvas, svgScale)
	} else {
		svg = export.StateToSVG(eng.Snapshot(), svgScale)
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	renderer := tui.NewLiveRenderer(frameRate)
	renderer.Start()
	defer renderer.Stop()

	driver := anim.NewDriver()
	driver.Percent = cfg.Extension

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	start := time.Now()
	last := start
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if duration > 0 && now.Sub(start).Seconds() >= duration {
				return nil
			}
			delta := float64(now.Sub(last).Milliseconds())
			last = now
			eng.SetExtension(driver.Tick(delta, cfg.SpeedHz))
			renderer.Frame(eng.Snapshot())
		}
	}
}
