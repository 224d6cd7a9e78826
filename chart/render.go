package chart

// RenderFile draws ds as a bar chart in the dark theme on the default
// canvas and writes it to md.OutputPath. It fails with ErrInvalidDataset
// before touching the filesystem, or with ErrIOFailure when the image
// cannot be written, leaving no partial file behind.
func RenderFile(ds Dataset, st BarStyle, ann Annotation, md Metadata) error {
	bc := BarChart{
		Title:      md.Title,
		XAxis:      XAxis{Name: md.XAxisLabel},
		YAxis:      YAxis{Name: md.YAxisLabel},
		Data:       ds,
		Style:      st,
		Annotation: ann,
	}
	return bc.Save(md.OutputPath)
}
