package ui

import (
	"fmt"

	"climatelens/app"

	"github.com/gomarkdown/markdown"
)

// Insights are the short markdown conclusion panels the presentation layer
// shows under each chart, pre-rendered to HTML.
type Insights struct {
	TrendHTML    string `json:"trend_html,omitempty"`
	AnomalyHTML  string `json:"anomaly_html,omitempty"`
	ExtremesHTML string `json:"extremes_html,omitempty"`
}

func buildInsights(snap *app.Snapshot) Insights {
	var ins Insights
	if snap.Summary.Count == 0 {
		return ins
	}

	trend := fmt.Sprintf(
		"**Conclusion:** the overall temperature trend in %s (%s) appears to be **%s** over time.",
		snap.City, snap.Continent, snap.Trend)
	ins.TrendHTML = renderMarkdown(trend)

	anomaly := fmt.Sprintf(
		"%d climate anomalies detected. Anomalies are months deviating from the trailing 12-month mean by more than the 2-sigma threshold (%.2f).",
		snap.Anomalies.AnomalyCount, snap.Anomalies.Threshold)
	ins.AnomalyHTML = renderMarkdown(anomaly)

	extremes := fmt.Sprintf(
		"**Extreme events in %s:** heatwave threshold %.2f, cold wave threshold %.2f. %d heatwave days and %d cold wave days.",
		snap.City, snap.Extremes.HeatThreshold, snap.Extremes.ColdThreshold,
		snap.Extremes.HeatwaveDays, snap.Extremes.ColdwaveDays)
	ins.ExtremesHTML = renderMarkdown(extremes)

	return ins
}

func renderMarkdown(md string) string {
	return string(markdown.ToHTML([]byte(md), nil, nil))
}
