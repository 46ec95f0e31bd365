package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/kilianp07/chargesim/core/model"
)

// WriteSeriesJSON writes the augmented series to w in JSON format.
func WriteSeriesJSON(w io.Writer, steps []model.StepResult) error {
	enc := json.NewEncoder(w)
	return enc.Encode(steps)
}

// WriteSeriesCSV writes the augmented series to w with one row per minute.
func WriteSeriesCSV(w io.Writer, steps []model.StepResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "grid_load_kw", "solar_prod_kw", "charging_power_kw", "soc_percent"}); err != nil {
		return err
	}
	for _, s := range steps {
		rec := []string{
			s.Time.Format(time.RFC3339),
			formatFloat(s.GridLoadKW),
			formatFloat(s.SolarProdKW),
			formatFloat(s.ChargingPowerKW),
			formatFloat(s.SoCPercent),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteProfileJSON writes the raw generated profile to w in JSON format.
func WriteProfileJSON(w io.Writer, series model.Series) error {
	enc := json.NewEncoder(w)
	return enc.Encode(series)
}

// WriteProfileCSV writes the raw generated profile to w with one row per minute.
func WriteProfileCSV(w io.Writer, series model.Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "grid_load_kw", "solar_prod_kw"}); err != nil {
		return err
	}
	for _, s := range series {
		rec := []string{
			s.Time.Format(time.RFC3339),
			formatFloat(s.GridLoadKW),
			formatFloat(s.SolarProdKW),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
