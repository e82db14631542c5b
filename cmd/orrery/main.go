package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/gui"
	"github.com/san-kum/orrery/internal/logging"
	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/tui"
)

var (
	configFile string
	preset     string
	logLevel   string
	focusName  string
	seconds    float64
	frameRate  int
	plotBody   string
)

// loadConfig resolves the effective scene config: preset, then config
// file, then flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("focus") {
		cfg.Focus = focusName
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "orrery",
		Short: "interactive 3D solar-system visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg, logging.New(logging.ParseLevel(logLevel)))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "scene config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named scene preset")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&focusName, "focus", "", "body focused at startup")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "open the 3D view",
		RunE:  rootCmd.RunE,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal top-down view",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	bodiesCmd := &cobra.Command{
		Use:   "bodies",
		Short: "list the body parameter table",
		RunE:  listBodies,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scene presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [path]",
		Short: "write the effective scene config as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportConfig,
	}

	stepCmd := &cobra.Command{
		Use:   "step",
		Short: "advance the scene headless and print body positions",
		RunE:  runStep,
	}
	stepCmd.Flags().Float64Var(&seconds, "seconds", 10.0, "simulated duration")
	stepCmd.Flags().IntVar(&frameRate, "fps", 60, "frames per simulated second")
	stepCmd.Flags().StringVar(&plotBody, "plot", "", "plot this body's orbital angle")

	rootCmd.AddCommand(viewCmd, tuiCmd, bodiesCmd, presetsCmd, exportCmd, stepCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func listBodies(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRADIUS\tDIST\tRATE\tSPIN\tMOONS")
	for _, p := range cfg.Planets() {
		fmt.Fprintf(w, "%s\t%.2f\t%.1f\t%.3f\t%.2f\t%d\n",
			p.Name, p.Radius, p.Distance, p.Rate, p.Spin, len(p.Moons))
	}
	return w.Flush()
}

func exportConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		return config.Save(args[0], cfg)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// runStep exercises the pure scene core without a window: fixed-rate
// frames for the requested duration, then a position table and an
// optional orbital-angle plot.
func runStep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if seconds <= 0 || frameRate <= 0 {
		return fmt.Errorf("seconds and fps must be positive")
	}

	s := scene.Build(cfg.Planets())
	if cfg.Focus != "" {
		if err := s.FocusByName(cfg.Focus); err != nil {
			return err
		}
	}

	var plotHandle = scene.None
	if plotBody != "" {
		for i, h := range s.PlanetHandles() {
			if s.Planets[i].Name == plotBody {
				plotHandle = h
			}
		}
		if plotHandle == scene.None {
			return fmt.Errorf("unknown body: %s", plotBody)
		}
	}

	dt := 1.0 / float64(frameRate)
	frames := int(seconds * float64(frameRate))
	angles := make([]float64, 0, frames)

	for i := 0; i < frames; i++ {
		s.Step(dt)
		if plotHandle != scene.None {
			orbit := s.Graph.Node(s.Graph.Node(plotHandle).Parent)
			angles = append(angles, orbit.Rotation*180/math.Pi)
		}
	}

	fmt.Printf("stepped %.1fs at %d fps (timescale %.3f)\n\n", seconds, frameRate, s.TimeScale())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tX\tY\tZ")
	for i, h := range s.PlanetHandles() {
		pos := s.Graph.WorldPosition(h)
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\n", s.Planets[i].Name, pos.X, pos.Y, pos.Z)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(angles) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(angles,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s orbital angle (deg)", plotBody)),
		))
	}
	return nil
}
