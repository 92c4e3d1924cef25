package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guicruzsp/Interest-Rate-Models/curve"
	"github.com/guicruzsp/Interest-Rate-Models/ratemodel"
	"github.com/guicruzsp/Interest-Rate-Models/simulate"
)

type simulateInput struct {
	Model        ratemodel.Spec `json:"model"`
	HorizonYears float64        `json:"horizon_years"`
	Steps        int            `json:"steps"`
	Paths        int            `json:"paths"`
	InitialRate  float64        `json:"initial_rate"`
	Seed         uint64         `json:"seed"`
}

type simulateOutput struct {
	Variant         string      `json:"variant"`
	Dt              float64     `json:"dt"`
	MaturitiesYears []float64   `json:"maturities_years"`
	SpotRates       []float64   `json:"spot_rates"`
	PriceStdErrs    []float64   `json:"price_std_errs"`
	SamplePaths     [][]float64 `json:"sample_paths,omitempty"`
	Error           string      `json:"error,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (reads stdin if omitted)")
	samplePaths := flag.Int("sample-paths", 0, "Include the first n trajectories in the output")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: simulate -input <path> [-sample-paths n]")
		fmt.Fprintln(os.Stderr, "Simulate a short-rate ensemble and emit the implied spot curve.")
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: simulate -input <path>")
			os.Exit(2)
		}
	}

	raw, err := readInput(path)
	if err != nil {
		exitError(fmt.Sprintf("read input: %v", err))
	}

	var in simulateInput
	if err := json.Unmarshal(raw, &in); err != nil {
		exitError(fmt.Sprintf("parse JSON: %v", err))
	}

	out, err := process(in, *samplePaths)
	if err != nil {
		exitError(err.Error())
	}

	b, _ := json.Marshal(out)
	fmt.Println(string(b))
}

func process(in simulateInput, samplePaths int) (*simulateOutput, error) {
	grid := simulate.TimeGrid{Horizon: in.HorizonYears, Steps: in.Steps}
	sim, err := simulate.NewSimulator(grid, in.Paths, in.InitialRate, in.Seed)
	if err != nil {
		return nil, err
	}

	var ens *simulate.PathEnsemble
	if in.Model.IsTwoFactor() {
		m, err := in.Model.BuildTwoFactor()
		if err != nil {
			return nil, err
		}
		ens, err = sim.RunTwoFactor(m)
		if err != nil {
			return nil, err
		}
	} else {
		m, err := in.Model.Build(grid.Steps)
		if err != nil {
			return nil, err
		}
		ens, err = sim.Run(m)
		if err != nil {
			return nil, err
		}
	}

	spot, err := curve.FromEnsemble(ens)
	if err != nil {
		return nil, err
	}

	dt := grid.Dt()
	maturities := make([]float64, grid.Steps)
	for i := range maturities {
		maturities[i] = float64(i+1) * dt
	}

	out := &simulateOutput{
		Variant:         in.Model.Variant,
		Dt:              dt,
		MaturitiesYears: maturities,
		SpotRates:       spot.Rates,
		PriceStdErrs:    spot.PriceStdErrs,
	}
	if samplePaths > 0 {
		if samplePaths > ens.Paths() {
			samplePaths = ens.Paths()
		}
		out.SamplePaths = make([][]float64, samplePaths)
		for j := 0; j < samplePaths; j++ {
			col := make([]float64, ens.Steps())
			for i := range col {
				col[i] = ens.At(i, j)
			}
			out.SamplePaths[j] = col
		}
	}
	return out, nil
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func exitError(msg string) {
	b, _ := json.Marshal(simulateOutput{Error: msg})
	fmt.Println(string(b))
	os.Exit(1)
}
