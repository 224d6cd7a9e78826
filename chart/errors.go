package chart

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidDataset marks charts whose data or configuration cannot be
	// drawn: mismatched labels and values, an empty dataset, non-finite
	// values, or a canvas too small to hold the plot.
	ErrInvalidDataset = errors.New("invalid dataset")

	// ErrIOFailure marks failures to persist a rendered chart.
	ErrIOFailure = errors.New("i/o failure")
)

func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidDataset, format, args...)
}

// ioFailure keeps the OS cause visible to errors.Is while marking err as
// an ErrIOFailure.
func ioFailure(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.Mark(errors.Wrapf(err, format, args...), ErrIOFailure)
}
