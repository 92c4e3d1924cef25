// Package marketdata loads observed yield curves from external sources.
// These are the only blocking I/O calls in the system; everything downstream
// of them is pure computation.
package marketdata

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/guicruzsp/Interest-Rate-Models/curve"
)

// curveDocument is the JSON layout accepted by the CLI tools:
//
//	{"points": [{"steps": 12, "yield": 0.0285}, ...]}
//
// Yields are decimal rates, maturities are grid steps.
type curveDocument struct {
	Points []curve.ObservedPoint `json:"points"`
}

// ParseObservedCurve decodes an observed curve document from r.
func ParseObservedCurve(r io.Reader) (curve.ObservedCurve, error) {
	var doc curveDocument
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("ParseObservedCurve: %w", err)
	}
	if len(doc.Points) == 0 {
		return nil, fmt.Errorf("ParseObservedCurve: document has no points")
	}
	return curve.ObservedCurve(doc.Points), nil
}

// LoadObservedCurve reads an observed curve document from path.
func LoadObservedCurve(path string) (curve.ObservedCurve, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadObservedCurve: %w", err)
	}
	defer f.Close()
	return ParseObservedCurve(f)
}
