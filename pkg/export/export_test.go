package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/kilianp07/chargesim/core/model"
)

var at = time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)

func sampleSteps() []model.StepResult {
	return []model.StepResult{
		{Time: at, GridLoadKW: 5.5, SolarProdKW: 0, ChargingPowerKW: 22, SoCPercent: 20.5},
		{Time: at.Add(time.Minute), GridLoadKW: 6, SolarProdKW: 1.25, ChargingPowerKW: 5, SoCPercent: 21},
	}
}

func TestWriteSeriesCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSeriesCSV(&buf, sampleSteps()); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	want := "time,grid_load_kw,solar_prod_kw,charging_power_kw,soc_percent\n" +
		"2025-05-12T00:00:00Z,5.5,0,22,20.5\n" +
		"2025-05-12T00:01:00Z,6,1.25,5,21\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected csv:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteSeriesJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSeriesJSON(&buf, sampleSteps()); err != nil {
		t.Fatalf("write json: %v", err)
	}
	var got []model.StepResult
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].ChargingPowerKW != 22 || got[1].SoCPercent != 21 {
		t.Fatalf("unexpected roundtrip %+v", got)
	}
}

func TestWriteProfileCSV(t *testing.T) {
	series := model.Series{
		{Time: at, GridLoadKW: 5, SolarProdKW: 0},
	}
	var buf bytes.Buffer
	if err := WriteProfileCSV(&buf, series); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if lines[0] != "time,grid_load_kw,solar_prod_kw" {
		t.Fatalf("unexpected header %s", lines[0])
	}
	if lines[1] != "2025-05-12T00:00:00Z,5,0" {
		t.Fatalf("unexpected row %s", lines[1])
	}
}

func TestWriteProfileJSON(t *testing.T) {
	series := model.Series{{Time: at, GridLoadKW: 5, SolarProdKW: 2}}
	var buf bytes.Buffer
	if err := WriteProfileJSON(&buf, series); err != nil {
		t.Fatalf("write json: %v", err)
	}
	var got model.Series
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].SolarProdKW != 2 {
		t.Fatalf("unexpected roundtrip %+v", got)
	}
}
