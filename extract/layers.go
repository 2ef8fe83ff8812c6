package extract

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stratapdf/strata/model"
)

// ToLayerObjects projects extracted texts and paths into generic layer
// objects for document assembly. Elements are ordered by their emission
// sequence numbers, so z-order reflects true paint order, including
// text-over-path and path-over-text interleavings. IDs derive from the
// page index and a per-call counter; nothing is process-global.
func ToLayerObjects(texts []ExtractedText, paths []ExtractedPath, pageIndex int) []model.LayerObject {
	return projectLayers(texts, paths, nil, pageIndex)
}

// LayerObjects projects everything this interpreter extracted, placed
// images included.
func (ip *Interpreter) LayerObjects(pageIndex int) []model.LayerObject {
	return projectLayers(ip.texts, ip.paths, ip.images, pageIndex)
}

func projectLayers(texts []ExtractedText, paths []ExtractedPath, images []ExtractedImage, pageIndex int) []model.LayerObject {
	type entry struct {
		seq   int
		layer model.LayerObject
	}

	entries := make([]entry, 0, len(texts)+len(paths)+len(images))
	for i, p := range paths {
		entries = append(entries, entry{p.Seq, vectorLayer(p, pageIndex, i)})
	}
	for i, t := range texts {
		entries = append(entries, entry{t.Seq, textLayer(t, pageIndex, i)})
	}
	for i, img := range images {
		entries = append(entries, entry{img.Seq, imageLayer(img, pageIndex, i)})
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	layers := make([]model.LayerObject, len(entries))
	for z, e := range entries {
		e.layer.ZIndex = z
		layers[z] = e.layer
	}
	return layers
}

func vectorLayer(p ExtractedPath, pageIndex, n int) model.LayerObject {
	transform := p.Transform
	layer := model.LayerObject{
		ID:          fmt.Sprintf("vector-%d-%d", pageIndex, n),
		Type:        model.LayerTypeVector,
		Bounds:      p.Bounds,
		Visible:     true,
		Opacity:     1.0,
		StrokeWidth: p.LineWidth,
		PathData:    &model.PathData{Commands: p.Commands, FillRule: p.FillRule},
		Transform:   &transform,
		SourceType:  model.SourceExtracted,
		Role:        model.RoleContent,
	}
	if p.StrokeColor != nil {
		layer.StrokeColor = p.StrokeColor.Hex()
	}
	if p.FillColor != nil {
		layer.FillColor = p.FillColor.Hex()
		layer.Color = p.FillColor.Hex()
	}
	return layer
}

func textLayer(t ExtractedText, pageIndex, n int) model.LayerObject {
	transform := t.Transform
	layer := model.LayerObject{
		ID:         fmt.Sprintf("text-%d-%d", pageIndex, n),
		Type:       model.LayerTypeText,
		Bounds:     model.NewBBox(t.X, t.Y, t.Width, t.Height),
		Visible:    true,
		Opacity:    1.0,
		Content:    t.Text,
		FontFamily: NormalizeFontName(t.FontName),
		FontSize:   t.FontSize,
		FontWeight: fontWeight(t.FontName),
		Color:      t.Color.Hex(),
		TextAlign:  model.AlignLeft,
		Transform:  &transform,
		SourceType: model.SourceExtracted,
		Role:       model.RoleContent,
	}
	if strings.Contains(strings.ToLower(t.FontName), "italic") {
		layer.FontStyle = "italic"
	}
	return layer
}

func imageLayer(img ExtractedImage, pageIndex, n int) model.LayerObject {
	transform := img.Transform
	return model.LayerObject{
		ID:         fmt.Sprintf("image-%d-%d", pageIndex, n),
		Type:       model.LayerTypeImage,
		Bounds:     img.Bounds,
		Visible:    true,
		Opacity:    1.0,
		ImageData:  img.Data,
		Transform:  &transform,
		SourceType: model.SourceExtracted,
		Role:       model.RoleContent,
	}
}

// NormalizeFontName maps a PDF font name to a usable font family:
// well-known families resolve to their standard names, subset prefixes
// ("ABCDEF+Georgia") are trimmed, and anything else passes through.
func NormalizeFontName(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "arial") || strings.Contains(lower, "helvetica"):
		return "Arial"
	case strings.Contains(lower, "times"):
		return "Times New Roman"
	case strings.Contains(lower, "courier"):
		return "Courier New"
	case strings.Contains(lower, "georgia"):
		return "Georgia"
	}
	if pos := strings.Index(name, "+"); pos >= 0 {
		return name[pos+1:]
	}
	return name
}

func fontWeight(name string) int {
	if strings.Contains(strings.ToLower(name), "bold") {
		return 700
	}
	return 400
}
