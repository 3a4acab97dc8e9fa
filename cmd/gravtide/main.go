package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/gravtide/internal/catalog"
	"github.com/san-kum/gravtide/internal/config"
	"github.com/san-kum/gravtide/internal/scenario"
	"github.com/san-kum/gravtide/internal/storage"
	"github.com/san-kum/gravtide/internal/tui"
	"github.com/san-kum/gravtide/internal/viz"
)

var (
	dataDir    string
	bhName     string
	massSolar  float64
	distKm     float64
	factor     float64
	heightM    float64
	configFile string
	preset     string
	// Sweep range
	sweepFrom   float64
	sweepTo     float64
	sweepPoints int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravtide",
		Short: "black hole tidal & orbit calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive form when no command given
			return tui.RunInteractive()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gravtide", "data directory")

	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "compute one tidal & orbit report",
		RunE:  runCalc,
	}
	calcCmd.Flags().StringVar(&bhName, "bh", "", "catalog black hole name")
	calcCmd.Flags().Float64Var(&massSolar, "mass", 10.0, "custom mass in solar masses")
	calcCmd.Flags().Float64Var(&distKm, "km", 0, "distance from center in kilometers")
	calcCmd.Flags().Float64Var(&factor, "factor", 2.0, "distance as a multiple of r_s")
	calcCmd.Flags().Float64Var(&heightM, "height", scenario.DefaultHeightM, "body height in meters")
	calcCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	calcCmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "list reference black holes",
		RunE:  listCatalog,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep the radius range and plot gravity and tides",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&bhName, "bh", "", "catalog black hole name")
	sweepCmd.Flags().Float64Var(&massSolar, "mass", 10.0, "custom mass in solar masses")
	sweepCmd.Flags().Float64Var(&heightM, "height", scenario.DefaultHeightM, "body height in meters")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0.5, "start factor (× r_s)")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 1000.0, "end factor (× r_s)")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 120, "number of sample radii")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved sweep runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved sweep run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a sweep run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a sweep run to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(calcCmd, catalogCmd, sweepCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildScenario resolves preset, config file and flags into one query:
// presets first, config file over presets, explicit flags over both.
func buildScenario(cmd *cobra.Command) (scenario.Scenario, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return scenario.Scenario{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return scenario.Scenario{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	sc := cfg.Scenario()

	if cmd.Flags().Changed("bh") {
		sc.BlackHole = bhName
	}
	if cmd.Flags().Changed("mass") {
		sc.BlackHole = ""
		sc.MassSolar = massSolar
	}
	if cmd.Flags().Changed("km") {
		sc.Mode = scenario.DistanceKilometers
		sc.Distance = distKm
	}
	if cmd.Flags().Changed("factor") {
		sc.Mode = scenario.DistanceFactor
		sc.Distance = factor
	}
	if cmd.Flags().Changed("height") {
		sc.HeightM = heightM
	}

	return sc, nil
}

func runCalc(cmd *cobra.Command, args []string) error {
	sc, err := buildScenario(cmd)
	if err != nil {
		return err
	}

	rep, err := sc.Evaluate()
	if err != nil {
		return err
	}

	fmt.Println(viz.RenderReport(rep))
	return nil
}

func listCatalog(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMASS (M_sun)")
	for _, bh := range catalog.All() {
		fmt.Fprintf(w, "%s\t%.4g\n", bh.Name, bh.SolarMasses)
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	sc, err := buildScenario(cmd)
	if err != nil {
		return err
	}

	sw := scenario.Sweep{
		Scenario:   sc,
		FromFactor: sweepFrom,
		ToFactor:   sweepTo,
		Points:     sweepPoints,
	}

	points, err := sw.Run()
	if err != nil {
		return err
	}

	// One full report at the sweep start for context.
	sc.Mode = scenario.DistanceFactor
	sc.Distance = sweepFrom
	rep, err := sc.Evaluate()
	if err != nil {
		return err
	}

	fmt.Println(viz.GravityPlot(points, 80, 12))
	fmt.Println()
	fmt.Println(viz.TidalRatioPlot(points, 80, 12))
	fmt.Println()
	fmt.Println("severity transitions:")
	fmt.Print(viz.TransitionTable(points))

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		BlackHole:       sc.BlackHole,
		MassSolar:       rep.MassSolar,
		SchwarzschildKm: rep.SchwarzschildKm,
		HeightM:         rep.HeightM,
		FromFactor:      sweepFrom,
		ToFactor:        sweepTo,
	}, points)
	if err != nil {
		return err
	}

	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTARGET\tMASS\tTIME\tRANGE\tPOINTS")

	for _, run := range runs {
		target := run.BlackHole
		if target == "" {
			target = "custom"
		}
		fmt.Fprintf(w, "%s\t%s\t%.4g\t%s\t%.3g–%.3g r_s\t%d\n",
			run.ID,
			target,
			run.MassSolar,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.FromFactor,
			run.ToFactor,
			run.Points,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	points, err := st.LoadPoints(runID)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	target := meta.BlackHole
	if target == "" {
		target = fmt.Sprintf("custom %.4g M_sun", meta.MassSolar)
	}
	fmt.Printf("target: %s\n\n", target)

	fmt.Println(viz.GravityPlot(points, 80, 12))
	fmt.Println()
	fmt.Println(viz.TidalRatioPlot(points, 80, 12))
	fmt.Println()
	fmt.Println("severity transitions:")
	fmt.Print(viz.TransitionTable(points))

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	points, err := st.LoadPoints(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(*meta, points)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	points, err := st.LoadPoints(runID)
	if err != nil {
		return err
	}

	return storage.ExportCSVStdout(points)
}
