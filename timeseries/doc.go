// Package timeseries provides the observation container shared by the
// modeling packages.
//
// A Series is an immutable sequence of observations with summary statistics
// and the transformations used in model preparation: differencing, lagging,
// slicing, log transform, moving averages and normalization. Elementwise
// Plus and Minus support the model contract that prediction errors equal the
// observed series minus the fitted series.
//
//	series := timeseries.New(values)
//	diffed := series.Diff()
//	errs, err := series.Minus(fitted)
//
// CSV ingestion lives here as a boundary convenience. The returned Series
// is plain numeric data; the modeling layers never parse text.
//
//	series, err := timeseries.LoadCSV("data.csv", timeseries.DefaultCSVOptions())
package timeseries
