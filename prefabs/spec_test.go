package prefabs

import (
	"image/color"
	"testing"
)

func TestLoadSceneSpec(t *testing.T) {
	spec, err := LoadSceneSpec()
	if err != nil {
		t.Fatalf("load scene: %v", err)
	}

	if len(spec.Hands) != 2 {
		t.Fatalf("expected 2 hands, got %d", len(spec.Hands))
	}
	if spec.Hands[0].Side != "left" || spec.Hands[1].Side != "right" {
		t.Fatalf("hands out of order: %q, %q", spec.Hands[0].Side, spec.Hands[1].Side)
	}
	if len(spec.Bounds) == 0 {
		t.Fatal("scene has no bounds")
	}
	if spec.Rig.MoveSpeed <= 0 || spec.Rig.TeleportRange <= 0 {
		t.Fatalf("rig tuning missing: speed=%f range=%f", spec.Rig.MoveSpeed, spec.Rig.TeleportRange)
	}

	grabbable := 0
	for _, p := range spec.Props {
		if p.Name == "" {
			t.Fatal("prop with empty name")
		}
		if p.Grabbable {
			grabbable++
			if p.Behavior != nil {
				t.Fatalf("prop %s is both grabbable and scripted", p.Name)
			}
			if p.Mass <= 0 {
				t.Fatalf("grabbable prop %s has no mass", p.Name)
			}
		}
	}
	if grabbable == 0 {
		t.Fatal("scene has no grabbable props")
	}
}

func TestParseColor(t *testing.T) {
	fallback := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	tests := []struct {
		name string
		in   string
		want color.RGBA
	}{
		{"rgb", "#4c8bf5", color.RGBA{R: 0x4c, G: 0x8b, B: 0xf5, A: 0xff}},
		{"rgba", "#4c8bf580", color.RGBA{R: 0x4c, G: 0x8b, B: 0xf5, A: 0x80}},
		{"no_hash", "c98a3d", color.RGBA{R: 0xc9, G: 0x8a, B: 0x3d, A: 0xff}},
		{"padded", "  #7bc96f ", color.RGBA{R: 0x7b, G: 0xc9, B: 0x6f, A: 0xff}},
		{"empty", "", fallback},
		{"short", "#fff", fallback},
		{"garbage", "#zzzzzz", fallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseColor(tt.in, fallback); got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
