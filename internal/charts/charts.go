// Package charts renders server-side chart pages from the aggregate
// documents using go-echarts, so the analysis can be eyeballed without
// the full dashboard frontend.
package charts

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/dsci550/haunted-places-backend-go/internal/models"
)

// heatmapMaxVars caps the correlation heatmap: the full matrix with
// one dummy per state and apparition type does not fit a readable
// page. The JSON document stays complete; only the chart truncates.
const heatmapMaxVars = 12

// YearBar charts sightings per year.
func YearBar(doc models.TimeDocument) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Sightings by Year"}),
		charts.WithTitleOpts(opts.Title{Title: "Haunted Place Sightings by Year"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	years := make([]string, 0, len(doc.YearCounts))
	data := make([]opts.BarData, 0, len(doc.YearCounts))
	for _, yc := range doc.YearCounts {
		years = append(years, fmt.Sprintf("%d", yc.Year))
		data = append(data, opts.BarData{Value: yc.Count})
	}

	bar.SetXAxis(years).AddSeries("sightings", data)
	return bar
}

// TimeOfDayPie charts the time-of-day distribution.
func TimeOfDayPie(doc models.TimeDocument) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Sightings by Time of Day"}),
		charts.WithTitleOpts(opts.Title{Title: "Sightings by Time of Day"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	data := make([]opts.PieData, 0, len(doc.TimeOfDayCounts))
	for _, tc := range doc.TimeOfDayCounts {
		data = append(data, opts.PieData{Name: tc.TimeOfDay, Value: tc.Count})
	}

	pie.AddSeries("time of day", data)
	return pie
}

// StateBar charts the most haunted states.
func StateBar(doc models.LocationDocument) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Sightings by State"}),
		charts.WithTitleOpts(opts.Title{Title: "Most Haunted States"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	limit := len(doc.StateCounts)
	if limit > 15 {
		limit = 15
	}

	states := make([]string, 0, limit)
	data := make([]opts.BarData, 0, limit)
	for _, sc := range doc.StateCounts[:limit] {
		states = append(states, sc.State)
		data = append(data, opts.BarData{Value: sc.Count})
	}

	bar.SetXAxis(states).AddSeries("sightings", data)
	return bar
}

// CorrelationHeatmap charts the upper triangle of the correlation
// matrix for the first variables.
func CorrelationHeatmap(doc models.CorrelationDocument) *charts.HeatMap {
	hm := charts.NewHeatMap()

	// Variable order of first appearance on the x axis mirrors the
	// pipeline's variable order.
	var names []string
	index := make(map[string]int)
	for _, cell := range doc.CorrelationMatrix {
		if _, ok := index[cell.X]; !ok && len(names) < heatmapMaxVars {
			index[cell.X] = len(names)
			names = append(names, cell.X)
		}
	}

	data := make([]opts.HeatMapData, 0, len(doc.CorrelationMatrix))
	for _, cell := range doc.CorrelationMatrix {
		xi, okX := index[cell.X]
		yi, okY := index[cell.Y]
		if !okX || !okY {
			continue
		}
		data = append(data, opts.HeatMapData{Value: [3]interface{}{xi, yi, cell.Value}})
	}

	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Correlation Matrix"}),
		charts.WithTitleOpts(opts.Title{Title: "Variable Correlations"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: names, SplitArea: &opts.SplitArea{Show: opts.Bool(true)}}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: names, SplitArea: &opts.SplitArea{Show: opts.Bool(true)}}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        -1,
			Max:        1,
			InRange:    &opts.VisualMapInRange{Color: []string{"#313695", "#ffffff", "#a50026"}},
		}),
	)

	hm.AddSeries("correlation", data)
	return hm
}
