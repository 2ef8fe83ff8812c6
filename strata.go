// Package strata extracts positioned text, vector paths, and images from
// PDF page content streams and projects them into generic layer objects.
//
// Basic usage, given a page's decoded content-stream bytes and its height
// in PDF points:
//
//	texts, paths, err := strata.ExtractPage(content, pageHeight)
//	if err != nil {
//	    // the stream could not be tokenized at all
//	}
//
// Or straight to layer objects:
//
//	layers, err := strata.PageLayers(content, pageHeight, pageIndex)
//
// For image placement, state inspection, or processing pre-tokenized
// operator streams, use the extract package directly.
package strata

import (
	"github.com/stratapdf/strata/extract"
	"github.com/stratapdf/strata/model"
)

// ExtractPage interprets one page's raw content-stream bytes and returns
// the positioned text runs and vector paths in emission order. The error
// reports only whole-stream tokenization failure; per-operator problems
// degrade silently.
func ExtractPage(content []byte, pageHeight float64) ([]extract.ExtractedText, []extract.ExtractedPath, error) {
	ip := extract.NewInterpreter(pageHeight)
	if err := ip.ProcessBytes(content); err != nil {
		return nil, nil, err
	}
	return ip.Texts(), ip.Paths(), nil
}

// PageLayers interprets one page and projects the result into layer
// objects, z-ordered by paint order.
func PageLayers(content []byte, pageHeight float64, pageIndex int) ([]model.LayerObject, error) {
	ip := extract.NewInterpreter(pageHeight)
	if err := ip.ProcessBytes(content); err != nil {
		return nil, err
	}
	return ip.LayerObjects(pageIndex), nil
}
