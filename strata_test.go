package strata_test

import (
	"testing"

	"github.com/stratapdf/strata"
	"github.com/stratapdf/strata/model"
)

const samplePage = `
q
0.9 0.9 0.9 rg
0 742 612 50 re
f
Q
BT
/F1 24 Tf
72 720 Td
(Quarterly Report) Tj
ET
q
1 0 0 RG
2 w
72 700 m
540 700 l
S
Q
`

// TestExtractPage tests the whole pipeline from raw bytes
func TestExtractPage(t *testing.T) {
	texts, paths, err := strata.ExtractPage([]byte(samplePage), 792)
	if err != nil {
		t.Fatalf("ExtractPage: %v", err)
	}

	if len(texts) != 1 {
		t.Fatalf("got %d texts, want 1", len(texts))
	}
	if texts[0].Text != "Quarterly Report" {
		t.Errorf("text = %q", texts[0].Text)
	}
	if texts[0].FontSize != 24 {
		t.Errorf("font size = %f, want 24", texts[0].FontSize)
	}

	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(paths))
	}
	if paths[0].FillColor == nil {
		t.Error("banner rectangle should be filled")
	}
	if paths[1].StrokeColor == nil || paths[1].StrokeColor.Hex() != "#ff0000" {
		t.Error("rule should be stroked red")
	}
}

// TestPageLayers tests layer projection ordered by paint order
func TestPageLayers(t *testing.T) {
	layers, err := strata.PageLayers([]byte(samplePage), 792, 2)
	if err != nil {
		t.Fatalf("PageLayers: %v", err)
	}

	if len(layers) != 3 {
		t.Fatalf("got %d layers, want 3", len(layers))
	}

	// Banner painted first, then the heading, then the rule.
	wantTypes := []model.LayerType{model.LayerTypeVector, model.LayerTypeText, model.LayerTypeVector}
	for i, layer := range layers {
		if layer.Type != wantTypes[i] {
			t.Errorf("layer[%d].Type = %q, want %q", i, layer.Type, wantTypes[i])
		}
		if layer.ZIndex != i {
			t.Errorf("layer[%d].ZIndex = %d, want %d", i, layer.ZIndex, i)
		}
	}

	if layers[1].ID != "text-2-0" {
		t.Errorf("heading ID = %q, want text-2-0", layers[1].ID)
	}
}

// TestExtractPageError tests tokenization failure propagation
func TestExtractPageError(t *testing.T) {
	if _, _, err := strata.ExtractPage([]byte("(never closed"), 792); err == nil {
		t.Error("expected error for unterminated string")
	}
	if _, err := strata.PageLayers([]byte("(never closed"), 792, 0); err == nil {
		t.Error("expected error for unterminated string")
	}
}
