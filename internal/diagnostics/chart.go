// Package diagnostics renders the verbose outputs of a threshold computation
// (intensity histogram and inter-class variance curve) as a self-contained
// HTML report, for inspecting why a particular cut-point won.
package diagnostics

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"otsu-thresholder/otsu"
)

// RenderReport writes an HTML page with two charts: the frequency of each
// unique intensity and the variance achieved by splitting at it. The result
// must come from a verbose computation on an image with at least two unique
// intensities.
func RenderReport(w io.Writer, result *otsu.Result) error {
	if result == nil {
		return fmt.Errorf("result is nil")
	}
	if len(result.Intensities) == 0 {
		return fmt.Errorf("result carries no diagnostics: run in verbose mode on an image with more than one intensity")
	}

	labels := make([]string, len(result.Intensities))
	for i, v := range result.Intensities {
		labels[i] = fmt.Sprintf("%d", v)
	}

	page := components.NewPage()
	page.AddCharts(
		frequencyChart(labels, result),
		varianceChart(labels, result),
	)

	return page.Render(w)
}

func frequencyChart(labels []string, result *otsu.Result) *charts.Bar {
	data := make([]opts.BarData, len(result.Frequencies))
	for i, c := range result.Frequencies {
		data[i] = opts.BarData{Value: c}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Otsu Threshold Report"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Intensity Histogram",
			Subtitle: fmt.Sprintf("unique intensities=%d threshold=%d", len(result.Intensities), result.Threshold),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "intensity"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "count"}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("frequency", data)

	return bar
}

func varianceChart(labels []string, result *otsu.Result) *charts.Line {
	data := make([]opts.LineData, len(result.VarianceCurve))
	for i, v := range result.VarianceCurve {
		data[i] = opts.LineData{Value: v}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Inter-Class Variance",
			Subtitle: fmt.Sprintf("maximum at intensity %d", result.Threshold),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "candidate threshold"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "variance"}),
	)
	line.SetXAxis(labels)
	line.AddSeries("var_between", data)

	return line
}
