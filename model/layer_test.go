package model

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

// TestPathCommandJSON tests the tagged per-type JSON representation
func TestPathCommandJSON(t *testing.T) {
	tests := []struct {
		name string
		cmd  PathCommand
		want string
	}{
		{"moveTo", MoveTo(1, 2), `{"type":"moveTo","x":1,"y":2}`},
		{"lineTo", LineTo(3.5, 4), `{"type":"lineTo","x":3.5,"y":4}`},
		{"curveTo", CurveTo(1, 2, 3, 4, 5, 6), `{"type":"curveTo","x1":1,"y1":2,"x2":3,"y2":4,"x":5,"y":6}`},
		{"closePath", ClosePath(), `{"type":"closePath"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.cmd)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("got %s, want %s", data, tt.want)
			}

			var back PathCommand
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if back != tt.cmd {
				t.Errorf("round trip got %+v, want %+v", back, tt.cmd)
			}
		})
	}
}

// TestHex tests hex color formatting
func TestHex(t *testing.T) {
	tests := []struct {
		color RGBA
		want  string
	}{
		{Black, "#000000"},
		{RGB(1, 0, 0), "#ff0000"},
		{RGB(0, 1, 0), "#00ff00"},
		{RGB(0, 0, 1), "#0000ff"},
		{RGB(1, 1, 1), "#ffffff"},
		{RGB(2, -1, 0.5), "#ff007f"}, // out-of-range components clamp
	}

	for _, tt := range tests {
		if got := tt.color.Hex(); got != tt.want {
			t.Errorf("%+v.Hex() = %s, want %s", tt.color, got, tt.want)
		}
	}
}

// TestCMYK tests the CMYK to RGB conversion
func TestCMYK(t *testing.T) {
	if got := CMYK(0, 0, 0, 1).Hex(); got != "#000000" {
		t.Errorf("CMYK black = %s, want #000000", got)
	}
	if got := CMYK(0, 0, 0, 0).Hex(); got != "#ffffff" {
		t.Errorf("CMYK white = %s, want #ffffff", got)
	}
	if got := CMYK(1, 0, 0, 0).Hex(); got != "#00ffff" {
		t.Errorf("pure cyan = %s, want #00ffff", got)
	}

	// Half black: every channel is (1-0)·(1-0.5) = 0.5.
	c := CMYK(0, 0, 0, 0.5)
	if c.R != 0.5 || c.G != 0.5 || c.B != 0.5 || c.A != 1 {
		t.Errorf("CMYK(0,0,0,0.5) = %+v", c)
	}
}

// TestGray tests the grayscale constructor
func TestGray(t *testing.T) {
	c := Gray(0.25)
	if c.R != 0.25 || c.G != 0.25 || c.B != 0.25 || c.A != 1 {
		t.Errorf("Gray(0.25) = %+v", c)
	}
}

// TestLayerObjectJSON tests the downstream JSON field contract
func TestLayerObjectJSON(t *testing.T) {
	layer := LayerObject{
		ID:         "text-0-0",
		Type:       LayerTypeText,
		Bounds:     NewBBox(10, 20, 100, 14),
		Visible:    true,
		ZIndex:     3,
		Opacity:    1.0,
		Content:    "Hello",
		FontFamily: "Arial",
		FontSize:   12,
		FontWeight: 400,
		Color:      "#000000",
		TextAlign:  AlignLeft,
		SourceType: SourceExtracted,
		Role:       RoleContent,
	}

	data, err := json.Marshal(layer)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(data)

	for _, key := range []string{
		`"id":"text-0-0"`,
		`"type":"text"`,
		`"zIndex":3`,
		`"fontFamily":"Arial"`,
		`"fontWeight":400`,
		`"textAlign":"left"`,
		`"sourceType":"extracted"`,
		`"role":"content"`,
	} {
		if !strings.Contains(s, key) {
			t.Errorf("marshaled layer missing %s in %s", key, s)
		}
	}

	// Fields other layer kinds or manual editing own stay absent from an
	// extracted text layer.
	for _, key := range []string{
		"strokeColor", "pathData", "imageData", "imageUrl", "imagePath",
		"shapeType", "textDecoration", "textTransform", "lineHeight",
		"letterSpacing", "backgroundColor",
	} {
		if strings.Contains(s, key) {
			t.Errorf("text layer unexpectedly carries %q", key)
		}
	}
}

// TestLayerObjectEditingFieldsJSON tests the manually-authored fields that
// extraction never populates but the JSON contract includes
func TestLayerObjectEditingFieldsJSON(t *testing.T) {
	layer := LayerObject{
		ID:              "text-0-1",
		Type:            LayerTypeText,
		Content:         "Hello",
		TextDecoration:  "underline",
		TextTransform:   "uppercase",
		LineHeight:      1.4,
		LetterSpacing:   0.5,
		BackgroundColor: "#ffff00",
		ImageURL:        "https://example.com/a.png",
		ImagePath:       "assets/a.png",
		ShapeType:       "ellipse",
		SourceType:      SourceManual,
		Role:            RoleAnnotation,
	}

	data, err := json.Marshal(layer)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(data)

	for _, key := range []string{
		`"textDecoration":"underline"`,
		`"textTransform":"uppercase"`,
		`"lineHeight":1.4`,
		`"letterSpacing":0.5`,
		`"backgroundColor":"#ffff00"`,
		`"imageUrl":"https://example.com/a.png"`,
		`"imagePath":"assets/a.png"`,
		`"shapeType":"ellipse"`,
	} {
		if !strings.Contains(s, key) {
			t.Errorf("marshaled layer missing %s in %s", key, s)
		}
	}

	var back LayerObject
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(back, layer) {
		t.Errorf("round trip got %+v, want %+v", back, layer)
	}
}

// TestPathDataFillRuleOmitted tests fillRule omission for stroke-only paths
func TestPathDataFillRuleOmitted(t *testing.T) {
	data, err := json.Marshal(PathData{Commands: []PathCommand{MoveTo(0, 0)}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if strings.Contains(string(data), "fillRule") {
		t.Errorf("empty fill rule serialized: %s", data)
	}

	data, err = json.Marshal(PathData{Commands: []PathCommand{MoveTo(0, 0)}, FillRule: FillEvenOdd})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"fillRule":"evenodd"`) {
		t.Errorf("fill rule not serialized: %s", data)
	}
}
