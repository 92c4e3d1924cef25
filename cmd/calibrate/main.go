package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guicruzsp/Interest-Rate-Models/calibrate"
	"github.com/guicruzsp/Interest-Rate-Models/curve"
	"github.com/guicruzsp/Interest-Rate-Models/marketdata"
	"github.com/guicruzsp/Interest-Rate-Models/ratemodel"
	"github.com/guicruzsp/Interest-Rate-Models/simulate"
)

type calibrateInput struct {
	// Family selects the parameter binding: "vasicek", "cir" (scalar mode,
	// vector {alpha, beta, sigma}) or "hull-white" (vector mode,
	// {beta, sigma, alpha[0..steps-1]}).
	Family       string    `json:"family"`
	HorizonYears float64   `json:"horizon_years"`
	Steps        int       `json:"steps"`
	Paths        int       `json:"paths"`
	InitialRate  float64   `json:"initial_rate"`
	Seed         uint64    `json:"seed"`
	InitialGuess []float64 `json:"initial_guess"`

	MaxIterations int     `json:"max_iterations,omitempty"`
	Tolerance     float64 `json:"tolerance,omitempty"`
	Restarts      int     `json:"restarts,omitempty"`

	// Observed may be given inline; the -observed and -dsn flags override it.
	Observed []curve.ObservedPoint `json:"observed,omitempty"`
}

type calibrateOutput struct {
	Family           string    `json:"family"`
	Params           []float64 `json:"params"`
	Objective        float64   `json:"objective"`
	InitialObjective float64   `json:"initial_objective"`
	History          []float64 `json:"history"`
	Evaluations      int       `json:"evaluations"`
	Converged        bool      `json:"converged"`
	Warning          string    `json:"warning,omitempty"`
	Error            string    `json:"error,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (reads stdin if omitted)")
	observedPath := flag.String("observed", "", "Observed curve JSON path (overrides inline observed)")
	dsn := flag.String("dsn", "", "PostgreSQL DSN for observed yields (overrides file and inline)")
	curveDate := flag.String("curve-date", "", "Curve date (YYYY-MM-DD) for the -dsn loader")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: calibrate -input <path> [-observed <path> | -dsn <dsn> -curve-date <date>]")
		fmt.Fprintln(os.Stderr, "Fit short-rate model parameters to an observed yield curve.")
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: calibrate -input <path>")
			os.Exit(2)
		}
	}

	raw, err := readInput(path)
	if err != nil {
		exitError(fmt.Sprintf("read input: %v", err))
	}

	var in calibrateInput
	if err := json.Unmarshal(raw, &in); err != nil {
		exitError(fmt.Sprintf("parse JSON: %v", err))
	}

	observed, err := loadObserved(in, *observedPath, *dsn, *curveDate)
	if err != nil {
		exitError(err.Error())
	}

	out, err := process(in, observed)
	if err != nil {
		exitError(err.Error())
	}

	b, _ := json.Marshal(out)
	fmt.Println(string(b))
}

func loadObserved(in calibrateInput, path, dsn, curveDate string) (curve.ObservedCurve, error) {
	switch {
	case dsn != "":
		if curveDate == "" {
			return nil, fmt.Errorf("-curve-date is required with -dsn")
		}
		db, err := marketdata.Open(dsn)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return marketdata.LoadObservedCurveDB(db, curveDate)
	case path != "":
		return marketdata.LoadObservedCurve(path)
	case len(in.Observed) > 0:
		return curve.ObservedCurve(in.Observed), nil
	default:
		return nil, fmt.Errorf("no observed curve: provide -observed, -dsn or inline observed points")
	}
}

func process(in calibrateInput, observed curve.ObservedCurve) (*calibrateOutput, error) {
	var build func([]float64) (ratemodel.Model, error)
	switch in.Family {
	case "vasicek":
		build = calibrate.VasicekFamily()
	case "cir":
		build = calibrate.CIRFamily()
	case "hull-white":
		build = calibrate.HullWhiteFamily(in.Steps)
	default:
		return nil, fmt.Errorf("unknown family %q", in.Family)
	}

	res, err := calibrate.Calibrate(calibrate.Problem{
		Observed:    observed,
		Grid:        simulate.TimeGrid{Horizon: in.HorizonYears, Steps: in.Steps},
		Paths:       in.Paths,
		InitialRate: in.InitialRate,
		Seed:        in.Seed,
		Build:       build,
		Settings: calibrate.Settings{
			MaxIterations: in.MaxIterations,
			Tolerance:     in.Tolerance,
			Restarts:      in.Restarts,
		},
	}, in.InitialGuess)
	if err != nil {
		return nil, err
	}

	out := &calibrateOutput{
		Family:           in.Family,
		Params:           res.Params,
		Objective:        res.Objective,
		InitialObjective: res.InitialObjective,
		History:          res.History,
		Evaluations:      res.Evaluations,
		Converged:        res.Converged,
	}
	if !res.Converged {
		out.Warning = "search exhausted its iteration budget; result is the best vector found"
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
	b, _ := json.Marshal(calibrateOutput{Error: msg})
	fmt.Println(string(b))
	os.Exit(1)
}
