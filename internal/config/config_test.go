package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	c := Default()
	if c.Sphere.Size != 2 {
		t.Fatalf("Sphere.Size=%v; want 2", c.Sphere.Size)
	}
	if c.Triangles.Number != 30 {
		t.Fatalf("Triangles.Number=%d; want 30", c.Triangles.Number)
	}
	if !c.Lights.Ambient.Enable || !c.Lights.Directional.Enable || !c.Lights.Point.Enable {
		t.Fatal("all lights should be enabled by default")
	}
	if c.Camera.Fov != 45 || c.Camera.Z != 50 {
		t.Fatalf("camera=%+v; want fov 45 at z 50", c.Camera)
	}
}

func TestLoadMissingReturnsDefault(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load(missing) err=%v", err)
	}
	if c != Default() {
		t.Fatal("Load(missing) should return Default()")
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	content := "sphere:\n  size: 3.5\nplane:\n  background_color: \"#102030\"\nlights:\n  point:\n    decay: 2\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Sphere.Size != 3.5 {
		t.Fatalf("Sphere.Size=%v; want 3.5", c.Sphere.Size)
	}
	if c.Sphere.Color != Default().Sphere.Color {
		t.Fatalf("Sphere.Color=%v; want default", c.Sphere.Color)
	}
	if c.Plane.BackgroundColor != 0x102030 {
		t.Fatalf("BackgroundColor=%v; want #102030", c.Plane.BackgroundColor)
	}
	if c.Lights.Point.Decay != 2 || c.Lights.Point.Intensity != 1 {
		t.Fatalf("Point=%+v; want decay 2 and default intensity", c.Lights.Point)
	}
}

func TestLoadInvalidReturnsDefaultAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte("sphere: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if c != Default() {
		t.Fatal("invalid file should yield Default()")
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "scene.yaml")
	c := Default()
	c.Triangles.Color = 0xff8800
	c.Triangles.Wireframe = true
	c.Grid.Rows.Count = 7
	if err := Save(path, c); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "'#ff8800'") && !strings.Contains(string(data), `"#ff8800"`) {
		t.Fatalf("saved YAML should carry colors as #rrggbb strings:\n%s", data)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != c {
		t.Fatalf("Load(Save(c)) = %+v; want %+v", got, c)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := Default()
	d := Clone(c)
	d.Sphere.Size = 9
	d.Lights.Point.Color = 0x123456
	if c.Sphere.Size != 2 || c.Lights.Point.Color != 0x0fffff {
		t.Fatal("editing the clone changed the original")
	}
	if Clone(c) != c {
		t.Fatal("clone should equal original")
	}
}

func TestParseColor(t *testing.T) {
	tcs := []struct {
		in   string
		want Color
		ok   bool
	}{
		{in: "#ffffff", want: 0xffffff, ok: true},
		{in: "#0fffff", want: 0x0fffff, ok: true},
		{in: "#abc", want: 0xaabbcc, ok: true},
		{in: "0x102030", want: 0x102030, ok: true},
		{in: "255", want: 0x0000ff, ok: true},
		{in: "#12", ok: false},
		{in: "#gggggg", ok: false},
		{in: "teal", ok: false},
	}
	for _, tc := range tcs {
		got, err := ParseColor(tc.in)
		if (err == nil) != tc.ok {
			t.Fatalf("ParseColor(%q) err=%v; want ok=%v", tc.in, err, tc.ok)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("ParseColor(%q)=%v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestColorRGB(t *testing.T) {
	r, g, b := Color(0xff0080).RGB()
	if r != 1 || g != 0 || b != float32(0x80)/255 {
		t.Fatalf("RGB()=%v,%v,%v", r, g, b)
	}
	if FromChannels(Color(0x123456).Channels()) != 0x123456 {
		t.Fatal("Channels/FromChannels should round-trip")
	}
}
