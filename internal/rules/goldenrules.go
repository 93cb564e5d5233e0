package rules

import (
	"github.com/westbet/westbetpro/internal/pkg/enums"
	"github.com/westbet/westbetpro/internal/pkg/models"
)

// GoldenRules returns the built-in expert rule table. Extracted from
// years of hand-graded odds sheets; ids are the sheet row ids and are
// not contiguous. The slice order is the evaluation order.
//
// Baseline rates start at confidence_base/100 and are refined by the
// learning service against graded history.
func GoldenRules() []models.Rule {
	rules := []models.Rule{
		{
			ID:          30,
			Name:        "4-5 gol 2.33",
			PrimaryOdds: map[string]float64{"4-5": 2.33},
			Predictions: []string{"İY 0.5 ÜST", "İY 1.5 ÜST", "İY EV 0.5 ÜST"},
			ConfidenceBase: 90,
			Importance:     enums.ImportanceImportant,
		},
		{
			ID:          16,
			Name:        "4-5 gol 2.38",
			PrimaryOdds: map[string]float64{"4-5": 2.38},
			Predictions: []string{"İY 0.5 ÜST", "MS 2.5 ÜST", "MS 3.5 ÜST", "İY 1.5 ÜST", "İY EV 0.5 ÜST", "KG VAR"},
			ConfidenceBase: 91,
			Importance:     enums.ImportanceImportant,
		},
		{
			ID:          2,
			Name:        "4-5 gol 2.40",
			PrimaryOdds: map[string]float64{"4-5": 2.40},
			Predictions: []string{"MS 1.5 ÜST", "MS 2.5 ÜST", "EV MS 0.5 ÜST"},
			ConfidenceBase: 89,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:          50,
			Name:        "4-5 gol 2.43",
			PrimaryOdds: map[string]float64{"4-5": 2.43},
			Predictions: []string{"İY 0.5 ÜST", "İY 1.5 ÜST", "İY EV 0.5 ÜST", "MS 1.5 ÜST", "MS 2.5 ÜST", "MS 3.5 ÜST"},
			ConfidenceBase: 88,
			Importance:     enums.ImportanceImportant,
		},
		{
			ID:          40,
			Name:        "4-5 gol 2.48",
			PrimaryOdds: map[string]float64{"4-5": 2.48},
			Predictions: []string{"İY 0.5 ÜST", "MS 1.5 ÜST", "MS DEP 0.5 ÜST", "MS EV 0.5 ÜST", "KG VAR"},
			ConfidenceBase: 88,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:            48,
			Name:          "4-5 gol 2.51 + 2.5 üst 1.23",
			PrimaryOdds:   map[string]float64{"4-5": 2.51},
			SecondaryOdds: map[string]float64{"2,5 Ü": 1.23},
			Predictions:   []string{"İY 0.5 ÜST", "İY EV 0.5 ÜST", "MS 2.5 ÜST", "MS 3.5 ÜST", "MS DEP 1.5 ÜST", "KG VAR"},
			ConfidenceBase: 90,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:          44,
			Name:        "4-5 gol 2.52",
			PrimaryOdds: map[string]float64{"4-5": 2.52},
			Predictions: []string{"İY 0.5 ÜST", "İY EV 0.5 ÜST", "İY 1.5 ÜST", "MS 1.5 ÜST"},
			ConfidenceBase: 87,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:          47,
			Name:        "4-5 gol 2.54",
			PrimaryOdds: map[string]float64{"4-5": 2.54},
			Predictions: []string{"İY 0.5 ÜST", "İY 1.5 ÜST", "İY EV 0.5 ÜST", "MS EV 1.5 ÜST", "MS 2.5 ÜST", "MS 3.5 ÜST", "KG VAR"},
			ConfidenceBase: 89,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:          10,
			Name:        "4-5 gol 2.57",
			PrimaryOdds: map[string]float64{"4-5": 2.57},
			Predictions: []string{"MS 2.5 ÜST", "MS 3.5 ÜST", "MS DEP 1.5 ÜST", "İY 0.5 ÜST", "İY DEP 0.5 ÜST"},
			ConfidenceBase: 90,
			Importance:     enums.ImportanceImportant,
		},
		{
			ID:          23,
			Name:        "4-5 gol 2.59",
			PrimaryOdds: map[string]float64{"4-5": 2.59},
			Predictions: []string{"MS 2.5 ÜST", "MS 3.5 ÜST", "MS EV 1.5 ÜST", "İY 0.5 ÜST", "İY 1.5 ÜST"},
			ConfidenceBase: 89,
			Importance:     enums.ImportanceSpecial,
		},
		{
			ID:          6,
			Name:        "4-5 gol 2.60",
			PrimaryOdds: map[string]float64{"4-5": 2.60},
			Predictions: []string{"İY 0.5 ÜST", "MS EV 0.5 ÜST", "MS 1.5 ÜST"},
			ConfidenceBase: 88,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:            61,
			Name:          "4-5 gol 2.60 + 2.5 alt 2.83",
			PrimaryOdds:   map[string]float64{"4-5": 2.60},
			SecondaryOdds: map[string]float64{"2,5 A": 2.83},
			Predictions:   []string{"İY 0.5 ÜST", "İY 1.5 ÜST", "İY EV 0.5 ÜST", "MS 1.5 ÜST", "MS 2.5 ÜST", "MS 3.5 ÜST"},
			ConfidenceBase: 90,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:          22,
			Name:        "4-5 gol 2.61",
			PrimaryOdds: map[string]float64{"4-5": 2.61},
			Predictions: []string{"MS 2.5 ÜST", "MS 1.5 ÜST", "MS EV 1.5 ÜST", "MS EV 0.5 ÜST"},
			ConfidenceBase: 88,
			Importance:     enums.ImportanceSpecial,
		},
		{
			ID:          36,
			Name:        "4-5 gol 2.62",
			PrimaryOdds: map[string]float64{"4-5": 2.62},
			Predictions: []string{"İY 0.5 ÜST", "İY 1.5 ÜST", "İY EV 0.5 ÜST", "MS EV 1.5 ÜST", "MS 2.5 ÜST"},
			ConfidenceBase: 89,
			Importance:     enums.ImportanceImportant,
		},
		{
			ID:          32,
			Name:        "4-5 gol 2.63",
			PrimaryOdds: map[string]float64{"4-5": 2.63},
			Predictions: []string{"MS 1.5 ÜST", "MS 2.5 ÜST", "MS EV 1.5 ÜST", "KG VAR"},
			ConfidenceBase: 89,
			Importance:     enums.ImportanceImportant,
		},
		{
			ID:          25,
			Name:        "4-5 gol 2.64",
			PrimaryOdds: map[string]float64{"4-5": 2.64},
			Predictions: []string{"MS 1.5 ÜST", "İY 0.5 ÜST"},
			ConfidenceBase: 87,
			Importance:     enums.ImportanceImportant,
		},
		{
			ID:            251,
			Name:          "4-5 gol 2.64 + 3.5 alt 1.57",
			PrimaryOdds:   map[string]float64{"4-5": 2.64},
			SecondaryOdds: map[string]float64{"3,5 A": 1.57},
			Predictions:   []string{"İY 0.5 ÜST", "İY 1.5 ÜST", "İY EV 0.5 ÜST", "MS 2.5 ÜST", "MS 3.5 ÜST", "MS EV 1.5 ÜST"},
			ConfidenceBase: 90,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:            252,
			Name:          "4-5 gol 2.64 + 3.5 üst 1.89",
			PrimaryOdds:   map[string]float64{"4-5": 2.64},
			SecondaryOdds: map[string]float64{"3,5 Ü": 1.89},
			Predictions:   []string{"MS 2.5 ÜST", "MS 1.5 ÜST", "İY 0.5 ÜST", "İY 1.5 ÜST"},
			ConfidenceBase: 89,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:          28,
			Name:        "4-5 gol 2.66",
			PrimaryOdds: map[string]float64{"4-5": 2.66},
			Predictions: []string{"İY 0.5 ÜST", "İY EV 0.5 ÜST", "MS 1.5 ÜST", "MS 2.5 ÜST", "MS EV 1.5 ÜST", "KG VAR", "MS DEP 0.5 ÜST"},
			ConfidenceBase: 90,
			Importance:     enums.ImportanceImportant,
		},
		{
			ID:          27,
			Name:        "4-5 gol 2.67",
			PrimaryOdds: map[string]float64{"4-5": 2.67},
			Predictions: []string{"İY 0.5 ÜST", "İY EV 0.5 ÜST", "MS 1.5 ÜST", "MS 2.5 ÜST", "MS EV 1.5 ÜST", "MS DEP 0.5 ÜST", "KG VAR"},
			ConfidenceBase: 90,
			Importance:     enums.ImportanceImportant,
		},
		{
			ID:          42,
			Name:        "4-5 gol 2.68",
			PrimaryOdds: map[string]float64{"4-5": 2.68},
			Predictions: []string{"İY 0.5 ÜST", "İY 1.5 ÜST", "İY KG VAR", "MS KG VAR", "MS 1.5 ÜST"},
			ConfidenceBase: 88,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:            24,
			Name:          "4-5 gol 2.70 + 2.5 üst 1.34",
			PrimaryOdds:   map[string]float64{"4-5": 2.70},
			SecondaryOdds: map[string]float64{"2,5 Ü": 1.34},
			Predictions:   []string{"MS 1.5 ÜST", "MS 2.5 ÜST", "KG VAR", "MS DEP 0.5 ÜST"},
			ConfidenceBase: 89,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:            241,
			Name:          "4-5 gol 2.70 + 2.5 üst 1.35",
			PrimaryOdds:   map[string]float64{"4-5": 2.70},
			SecondaryOdds: map[string]float64{"2,5 Ü": 1.35},
			Predictions:   []string{"İY 0.5 ÜST", "İY DEP 0.5 ÜST", "MS 1.5 ÜST", "KG VAR"},
			ConfidenceBase: 89,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:          29,
			Name:        "4-5 gol 2.71",
			PrimaryOdds: map[string]float64{"4-5": 2.71},
			Predictions: []string{"İY 0.5 ÜST", "İY 1.5 ÜST", "İY EV 0.5 ÜST", "MS 1.5 ÜST", "MS 2.5 ÜST", "MS DEP 0.5 ÜST", "KG VAR", "MS 3.5 ÜST"},
			ConfidenceBase: 91,
			Importance:     enums.ImportanceImportant,
		},
		{
			ID:          11,
			Name:        "4-5 gol 2.74",
			PrimaryOdds: map[string]float64{"4-5": 2.74},
			Predictions: []string{"İY 0.5 ÜST", "İY 1.5 ÜST", "İY EV 0.5 ÜST", "MS DEP 0.5 ÜST", "MS 2.5 ÜST", "KG VAR"},
			ConfidenceBase: 89,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:          3,
			Name:        "4-5 gol 2.79",
			PrimaryOdds: map[string]float64{"4-5": 2.79},
			Predictions: []string{"İY 0.5 ÜST"},
			ConfidenceBase: 86,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:            4,
			Name:          "4-5 gol 2.80 + 3.5 alt 1.53",
			PrimaryOdds:   map[string]float64{"4-5": 2.80},
			SecondaryOdds: map[string]float64{"3,5 A": 1.53},
			Predictions:   []string{"İY 0.5 ÜST", "İY EV 0.5 ÜST", "MS 1.5 ÜST", "MS 2.5 ÜST", "MS 3.5 ÜST"},
			ConfidenceBase: 90,
			Importance:     enums.ImportanceImportant,
		},
		{
			ID:            401,
			Name:          "4-5 gol 2.80 + 3.5 alt 1.45",
			PrimaryOdds:   map[string]float64{"4-5": 2.80},
			SecondaryOdds: map[string]float64{"3,5 A": 1.45},
			Predictions:   []string{"İY 0.5 ÜST", "MS 1.5 ÜST", "MS 2.5 ÜST", "MS DEP 1.5 ÜST"},
			ConfidenceBase: 89,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:            402,
			Name:          "4-5 gol 2.80 + 2.5 üst 1.38",
			PrimaryOdds:   map[string]float64{"4-5": 2.80},
			SecondaryOdds: map[string]float64{"2,5 Ü": 1.38},
			Predictions:   []string{"İY 0.5 ÜST", "MS 1.5 ÜST", "MS 2.5 ÜST", "MS 3.5 ÜST", "MS EV 1.5 ÜST", "KG VAR"},
			ConfidenceBase: 90,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:            1,
			Name:          "4-5 gol 2.85 + 3.5 alt 1.43",
			PrimaryOdds:   map[string]float64{"4-5": 2.85},
			SecondaryOdds: map[string]float64{"3,5 A": 1.43},
			Predictions:   []string{"MS 1.5 ÜST", "MS 2.5 ÜST", "KG VAR"},
			ConfidenceBase: 88,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:          8,
			Name:        "4-5 gol 2.86",
			PrimaryOdds: map[string]float64{"4-5": 2.86},
			Predictions: []string{"İY 0.5 ÜST"},
			ConfidenceBase: 86,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:            81,
			Name:          "4-5 gol 2.86 + 3.5 alt 1.43",
			PrimaryOdds:   map[string]float64{"4-5": 2.86},
			SecondaryOdds: map[string]float64{"3,5 A": 1.43},
			Predictions:   []string{"MS 2.5 ÜST", "MS 3.5 ÜST", "MS EV 1.5 ÜST", "İY 0.5 ÜST"},
			ConfidenceBase: 89,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:          19,
			Name:        "4-5 gol 2.91",
			PrimaryOdds: map[string]float64{"4-5": 2.91},
			Predictions: []string{"MS 1.5 ÜST"},
			ConfidenceBase: 87,
			Importance:     enums.ImportanceImportant,
		},
		{
			ID:            191,
			Name:          "4-5 gol 2.91 + 2.5 üst 1.43",
			PrimaryOdds:   map[string]float64{"4-5": 2.91},
			SecondaryOdds: map[string]float64{"2,5 Ü": 1.43},
			Predictions:   []string{"MS 2.5 ÜST", "MS DEP 1.5 ÜST", "İY 0.5 ÜST", "İY DEP 0.5 ÜST"},
			ConfidenceBase: 89,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:            192,
			Name:          "4-5 gol 2.91 + 2.5 üst 1.44",
			PrimaryOdds:   map[string]float64{"4-5": 2.91},
			SecondaryOdds: map[string]float64{"2,5 Ü": 1.44},
			Predictions:   []string{"MS 1.5 ÜST"},
			ConfidenceBase: 87,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:            193,
			Name:          "4-5 gol 2.91 + 2.5 üst 1.45",
			PrimaryOdds:   map[string]float64{"4-5": 2.91},
			SecondaryOdds: map[string]float64{"2,5 Ü": 1.45},
			Predictions:   []string{"MS 2.5 ÜST", "MS 3.5 ÜST", "KG VAR", "MS DEP 1.5 ÜST", "İY DEP 0.5 ÜST", "İY 1.5 ÜST"},
			ConfidenceBase: 90,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:          18,
			Name:        "4-5 gol 2.92",
			PrimaryOdds: map[string]float64{"4-5": 2.92},
			Predictions: []string{"MS 1.5 ÜST"},
			ConfidenceBase: 87,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:          26,
			Name:        "4-5 gol 2.96",
			PrimaryOdds: map[string]float64{"4-5": 2.96},
			Predictions: []string{"MS 0.5 ÜST"},
			ConfidenceBase: 85,
			Importance:     enums.ImportanceImportant,
		},
		{
			ID:            261,
			Name:          "4-5 gol 2.96 + 2-3 gol 1.93",
			PrimaryOdds:   map[string]float64{"4-5": 2.96},
			SecondaryOdds: map[string]float64{"2-3": 1.93},
			Predictions:   []string{"İY 0.5 ÜST", "MS 1.5 ÜST", "MS 2.5 ÜST", "MS 3.5 ÜST", "MS DEP 0.5 ÜST", "MS DEP 1.5 ÜST", "İY DEP 0.5 ÜST"},
			ConfidenceBase: 90,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:            262,
			Name:          "4-5 gol 2.96 + 3.5 alt 1.39",
			PrimaryOdds:   map[string]float64{"4-5": 2.96},
			SecondaryOdds: map[string]float64{"3,5 A": 1.39},
			Predictions:   []string{"İY 0.5 ÜST", "MS 1.5 ÜST", "MS 2.5 ÜST", "MS 3.5 ÜST"},
			ConfidenceBase: 89,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:            13,
			Name:          "4-5 gol 2.97 + 3.5 üst 2.28",
			PrimaryOdds:   map[string]float64{"4-5": 2.97},
			SecondaryOdds: map[string]float64{"3,5 Ü": 2.28},
			Predictions:   []string{"MS 1.5 ÜST", "MS DEP 0.5 ÜST"},
			ConfidenceBase: 87,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:            131,
			Name:          "4-5 gol 2.97 + 3.5 üst 2.28 + 2.5 alt 2.21",
			PrimaryOdds:   map[string]float64{"4-5": 2.97},
			SecondaryOdds: map[string]float64{"3,5 Ü": 2.28, "2,5 A": 2.21},
			Predictions:   []string{"MS 2.5 ÜST", "MS 3.5 ÜST", "MS DEP 0.5 ÜST", "MS DEP 1.5 ÜST"},
			ConfidenceBase: 89,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:            1301,
			Name:          "4-5 gol 2.97 + 3.5 üst 2.27",
			PrimaryOdds:   map[string]float64{"4-5": 2.97},
			SecondaryOdds: map[string]float64{"3,5 Ü": 2.27},
			Predictions:   []string{"MS 1.5 ÜST", "MS DEP 0.5 ÜST"},
			ConfidenceBase: 87,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:            1302,
			Name:          "4-5 gol 2.97 + 2.5 üst 1.46",
			PrimaryOdds:   map[string]float64{"4-5": 2.97},
			SecondaryOdds: map[string]float64{"2,5 Ü": 1.46},
			Predictions:   []string{"MS 1.5 ÜST", "MS DEP 0.5 ÜST"},
			ConfidenceBase: 87,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:            45,
			Name:          "4-5 gol 2.98 + 3.5 alt 1.43",
			PrimaryOdds:   map[string]float64{"4-5": 2.98},
			SecondaryOdds: map[string]float64{"3,5 A": 1.43},
			Predictions:   []string{"İY 0.5 ÜST", "İY 1.5 ÜST", "İY EV 0.5 ÜST", "MS 2.5 ÜST", "MS 3.5 ÜST", "KG VAR"},
			ConfidenceBase: 90,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:            14,
			Name:          "4-5 gol 3.01 + 2.5 üst 1.48",
			PrimaryOdds:   map[string]float64{"4-5": 3.01},
			SecondaryOdds: map[string]float64{"2,5 Ü": 1.48},
			Predictions:   []string{"MS 2.5 ÜST", "MS 3.5 ÜST", "İY 0.5 ÜST", "İY 1.5 ÜST", "KG VAR", "MS DEP 0.5 ÜST", "MS DEP 1.5 ÜST"},
			ConfidenceBase: 91,
			Importance:     enums.ImportanceImportant,
		},
		{
			ID:          38,
			Name:        "4-5 gol 3.04",
			PrimaryOdds: map[string]float64{"4-5": 3.04},
			Predictions: []string{"İY 0.5 ÜST", "İY DEP 0.5 ÜST", "MS 1.5 ÜST", "MS EV 0.5 ÜST", "MS DEP 0.5 ÜST", "KG VAR"},
			ConfidenceBase: 89,
			Importance:     enums.ImportanceImportant,
		},
		{
			ID:          43,
			Name:        "4-5 gol 3.07",
			PrimaryOdds: map[string]float64{"4-5": 3.07},
			Predictions: []string{"İY 0.5 ÜST", "MS 1.5 ÜST", "MS 2.5 ÜST", "MS 3.5 ÜST", "MS DEP 1.5 ÜST", "KG VAR"},
			ConfidenceBase: 89,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:          9,
			Name:        "4-5 gol 3.15 (KG VAR 1.50 HARİÇ)",
			PrimaryOdds: map[string]float64{"4-5": 3.15},
			ExcludeOdds: map[string]float64{"VAR": 1.50},
			Predictions: []string{"İY 0.5 ÜST", "MS 2.5 ÜST", "MS 3.5 ÜST"},
			ConfidenceBase: 88,
			Importance:     enums.ImportanceImportant,
		},
		{
			ID:            7,
			Name:          "4-5 gol 3.19 + 2.5 alt 2.01",
			PrimaryOdds:   map[string]float64{"4-5": 3.19},
			SecondaryOdds: map[string]float64{"2,5 A": 2.01},
			Predictions:   []string{"MS 0.5 ÜST", "MS EV 0.5 ÜST"},
			ConfidenceBase: 86,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:          41,
			Name:        "4-5 gol 3.55",
			PrimaryOdds: map[string]float64{"4-5": 3.55},
			Predictions: []string{"İY 0.5 ÜST"},
			ConfidenceBase: 85,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:            12,
			Name:          "4-5 gol 3.65 + 3.5 alt 1.21",
			PrimaryOdds:   map[string]float64{"4-5": 3.65},
			SecondaryOdds: map[string]float64{"3,5 A": 1.21},
			Predictions:   []string{"MS 1.5 ÜST", "MS 2.5 ÜST", "MS DEP 1.5 ÜST"},
			ConfidenceBase: 87,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:            49,
			Name:          "4-5 gol 3.70 + 2-3 gol 1.82",
			PrimaryOdds:   map[string]float64{"4-5": 3.70},
			SecondaryOdds: map[string]float64{"2-3": 1.82},
			Predictions:   []string{"İY 0.5 ÜST", "MS 1.5 ÜST", "MS 2.5 ÜST", "MS 3.5 ÜST", "KG VAR", "MS DEP 0.5 ÜST"},
			ConfidenceBase: 88,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:            20,
			Name:          "4-5 gol 3.97 + 2.5 alt 1.66",
			PrimaryOdds:   map[string]float64{"4-5": 3.97},
			SecondaryOdds: map[string]float64{"2,5 A": 1.66},
			Predictions:   []string{"MS 1.5 ÜST", "MS 2.5 ÜST", "KG VAR", "MS DEP 0.5 ÜST", "İY 0.5 ÜST", "İY 1.5 ÜST", "İY KG VAR", "İY SKOR 1-1"},
			ConfidenceBase: 90,
			Importance:     enums.ImportanceImportant,
		},
		{
			ID:          5,
			Name:        "4-5 gol 4.01",
			PrimaryOdds: map[string]float64{"4-5": 4.01},
			Predictions: []string{"İY 0.5 ÜST"},
			ConfidenceBase: 85,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:            51,
			Name:          "4-5 gol 4.01 + 2-3 gol 1.83",
			PrimaryOdds:   map[string]float64{"4-5": 4.01},
			SecondaryOdds: map[string]float64{"2-3": 1.83},
			Predictions:   []string{"İY 0.5 ÜST", "MS 1.5 ÜST", "MS 2.5 ÜST", "MS 3.5 ÜST", "KG VAR", "MS DEP 1.5 ÜST", "İY DEP 0.5 ÜST"},
			ConfidenceBase: 88,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:            35,
			Name:          "4-5 gol 4.15 + 2.5 üst 1.91",
			PrimaryOdds:   map[string]float64{"4-5": 4.15},
			SecondaryOdds: map[string]float64{"2,5 Ü": 1.91},
			Predictions:   []string{"MS DEP 0.5 ÜST", "MS 1.5 ÜST"},
			ConfidenceBase: 86,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:          34,
			Name:        "4-5 gol 4.19",
			PrimaryOdds: map[string]float64{"4-5": 4.19},
			Predictions: []string{"İY 0.5 ÜST", "MS 1.5 ÜST"},
			ConfidenceBase: 85,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:          46,
			Name:        "4-5 gol 4.22",
			PrimaryOdds: map[string]float64{"4-5": 4.22},
			Predictions: []string{"KG VAR"},
			ConfidenceBase: 84,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:          21,
			Name:        "4-5 gol 4.47",
			PrimaryOdds: map[string]float64{"4-5": 4.47},
			Predictions: []string{"MS 1.5 ÜST", "MS DEP 0.5 ÜST"},
			ConfidenceBase: 85,
			Importance:     enums.ImportanceNormal,
		},
		{
			ID:          31,
			Name:        "4-5 gol 4.48",
			PrimaryOdds: map[string]float64{"4-5": 4.48},
			Predictions: []string{"İY 0.5 ÜST", "İY DEP 0.5 ÜST", "MS 1.5 ÜST", "KG VAR"},
			ConfidenceBase: 86,
			Importance:     enums.ImportanceImportant,
		},
		{
			ID:            33,
			Name:          "4-5 gol 4.76 + 3.5 alt 1.10",
			PrimaryOdds:   map[string]float64{"4-5": 4.76},
			SecondaryOdds: map[string]float64{"3,5 A": 1.10},
			Predictions:   []string{"İY 0.5 ÜST", "İY EV 0.5 ÜST"},
			ConfidenceBase: 85,
			Importance:     enums.ImportanceNormal,
		},
	}

	for i := range rules {
		rules[i].BaselineRate = float64(rules[i].ConfidenceBase) / 100
	}
	return rules
}
