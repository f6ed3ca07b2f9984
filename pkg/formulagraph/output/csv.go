// Package output renders analysis results as CSV and JSON.
package output

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/ukaji3/formulagraph-go/pkg/formulagraph/models"
)

// Frame types written to the frames CSV.
const (
	FrameTypeHorizontal = "horizontal_frames"
	FrameTypeVertical   = "vertical_frames"
)

// LayersCSV renders one row per node per layer under the header
// layer,sheet,addr.
func LayersCSV(layers [][]models.NodeKey) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write([]string{"layer", "sheet", "addr"}); err != nil {
		return "", err
	}
	for i, layer := range layers {
		idx := strconv.Itoa(i)
		for _, k := range layer {
			if err := w.Write([]string{idx, k.Sheet, k.Addr}); err != nil {
				return "", err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// FramesCSV renders one row per span under the header
// layer,frame_type,span. Within a layer horizontal spans come first.
func FramesCSV(frames []models.Frame) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write([]string{"layer", "frame_type", "span"}); err != nil {
		return "", err
	}
	for _, f := range frames {
		idx := strconv.Itoa(f.Layer)
		for _, span := range f.Horizontal {
			if err := w.Write([]string{idx, FrameTypeHorizontal, span}); err != nil {
				return "", err
			}
		}
		for _, span := range f.Vertical {
			if err := w.Write([]string{idx, FrameTypeVertical, span}); err != nil {
				return "", err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}
