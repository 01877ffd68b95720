// Package viz renders finished runs in the terminal.
//
//   - [PlotTrail], [PlotMany]: time series via asciigraph
//   - [PhaseASCII]: dot plot of a phase portrait with axes
//   - [PhaseBraille]: connected portrait on a Braille [Canvas]
//   - [PhaseSVG], [CanvasSVG]: the same portraits as SVG documents
//   - [SparklineChart]: one-line summary of a series
//   - [Table], [MetricTable]: aligned text output
//
// Styles for headers and metric tables are lipgloss styles shared by the CLI.
package viz
