package marketdata

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // postgres driver

	"github.com/guicruzsp/Interest-Rate-Models/curve"
)

// Open connects to the market-data PostgreSQL instance.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("Open: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("Open: ping: %w", err)
	}
	return db, nil
}

// LoadObservedCurveDB reads the observed curve quoted on curveDate from the
// observed_yields table (curve_date date, tenor_steps int, yield double
// precision). Yields are stored as decimal rates; rows come back ordered by
// tenor so the result is already valid ObservedCurve ordering.
func LoadObservedCurveDB(db *sql.DB, curveDate string) (curve.ObservedCurve, error) {
	rows, err := db.Query(
		`SELECT tenor_steps, yield FROM observed_yields WHERE curve_date = $1 ORDER BY tenor_steps`,
		curveDate,
	)
	if err != nil {
		return nil, fmt.Errorf("LoadObservedCurveDB: %w", err)
	}
	defer rows.Close()

	var out curve.ObservedCurve
	for rows.Next() {
		var pt curve.ObservedPoint
		if err := rows.Scan(&pt.Step, &pt.Yield); err != nil {
			return nil, fmt.Errorf("LoadObservedCurveDB: scan: %w", err)
		}
		out = append(out, pt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("LoadObservedCurveDB: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("LoadObservedCurveDB: no quotes for curve date %s", curveDate)
	}
	return out, nil
}
