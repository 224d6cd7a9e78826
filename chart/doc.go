// Package chart draws annotated bar charts of benchmark timings into raster
// images.
//
// A BarChart is configured with struct literals; zero values select the
// defaults (dark theme, 10x6 inches at 150 DPI). Layout computes the
// geometry, Render paints it through a RendererProvider such as PNG, and
// Save writes the image atomically:
//
//	bc := chart.BarChart{
//		Title: "IPC",
//		Data: chart.Dataset{
//			Labels: []string{"SHM", "MSG", "FIFO"},
//			Values: []float64{0.000326, 0.000363, 0.000201},
//		},
//		Annotation: chart.Annotation{
//			Format: chart.FixedFormatter(6, "с"),
//			Offset: 0.00005,
//		},
//	}
//	err := bc.Save("ipc_8KB.png")
//
// How many decimals an annotation shows and how far above the bar it sits
// is always the caller's choice; the package never derives it from the
// magnitude of the values.
package chart
