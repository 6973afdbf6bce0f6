package games

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderSuccessChart writes an HTML bar chart of the per-batch success
// rates of a report to the given path.
func RenderSuccessChart(report *Report, path string) error {

	mean, stdDev := report.BatchSummary()

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s adversary success rate", report.Attack),
			Subtitle: fmt.Sprintf("%d trials, overall %.4f, batch mean %.4f, batch sd %.4f",
				report.Trials, report.Rate(), mean, stdDev),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "batch"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "success rate"}),
	)

	labels := make([]string, len(report.BatchRates))
	items := make([]opts.BarData, len(report.BatchRates))
	for i, rate := range report.BatchRates {
		labels[i] = fmt.Sprintf("%d", i+1)
		items[i] = opts.BarData{Value: rate}
	}

	bar.SetXAxis(labels).AddSeries("success rate", items)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("games: render chart: %w", err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return fmt.Errorf("games: render chart: %w", err)
	}
	return nil
}
