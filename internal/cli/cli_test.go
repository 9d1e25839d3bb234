package cli

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/studio"
	"github.com/gogpu/studio/imageio"
	"github.com/gogpu/studio/layer"
)

// run executes the CLI and restores the studio logger afterwards.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	orig := studio.Logger()
	t.Cleanup(func() { studio.SetLogger(orig) })

	var out, errOut bytes.Buffer
	err = Execute(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func pixel(t *testing.T, img image.Image, x, y int) color.NRGBA {
	t.Helper()
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestDemo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.png")
	stdout, stderr, err := run(t, "demo", "-o", path)
	if err != nil {
		t.Fatalf("demo: %v\n%s", err, stderr)
	}
	if !strings.Contains(stdout, "Composited 3 layers") || !strings.Contains(stdout, path) {
		t.Errorf("stdout = %q, want summary with output path", stdout)
	}

	img, err := imageio.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if img.Bounds().Dx() != 800 || img.Bounds().Dy() != 600 {
		t.Fatalf("bounds = %v, want 800x600", img.Bounds())
	}
	if got := pixel(t, img, 150, 150); got != studio.Blue.NRGBA() {
		t.Errorf("pixel (150, 150) = %v, want blue", got)
	}
	if got := pixel(t, img, 10, 10); got != studio.Red.NRGBA() {
		t.Errorf("pixel (10, 10) = %v, want red", got)
	}
}

func TestDemoDocument(t *testing.T) {
	doc, err := demoDocument(800, 600)
	if err != nil {
		t.Fatal(err)
	}
	if doc.LayerCount() != 3 {
		t.Fatalf("LayerCount() = %d, want 3", doc.LayerCount())
	}
	kinds := []layer.Kind{layer.KindRaster, layer.KindVector, layer.KindScene3D}
	for i, l := range doc.Layers() {
		if l.Kind() != kinds[i] {
			t.Errorf("layer %d kind = %v, want %v", i, l.Kind(), kinds[i])
		}
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()

	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			src.SetNRGBA(x, y, color.NRGBA{R: 0, G: 255, B: 0, A: 255})
		}
	}
	in := filepath.Join(dir, "in.png")
	if err := imageio.Save(in, src); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out.bmp")
	_, stderr, err := run(t, "render", in,
		"--width", "8", "--height", "8",
		"--background", "#ffffff",
		"--rect", "2,2,2,2,#0000ff",
		"-o", out)
	if err != nil {
		t.Fatalf("render: %v\n%s", err, stderr)
	}

	img, err := imageio.Load(out)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Fatalf("bounds = %v, want 8x8", img.Bounds())
	}

	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, studio.Green.NRGBA()},
		{3, 3, studio.Blue.NRGBA()},
		{5, 5, studio.White.NRGBA()},
	}
	for _, tt := range tests {
		if got := pixel(t, img, tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRenderFit(t *testing.T) {
	dir := t.TempDir()
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := range 2 {
		for x := range 2 {
			src.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	in := filepath.Join(dir, "small.png")
	if err := imageio.Save(in, src); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "fit.png")
	if _, stderr, err := run(t, "render", in, "--fit", "--width", "6", "--height", "6", "-o", out); err != nil {
		t.Fatalf("render: %v\n%s", err, stderr)
	}
	img, err := imageio.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	// Resampling may be off by one at the edges.
	if got := pixel(t, img, 5, 5); got.R < 250 || got.G > 5 || got.B > 5 || got.A < 250 {
		t.Errorf("pixel (5, 5) = %v, want red (image scaled to canvas)", got)
	}
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"nothing", []string{"render"}, "nothing to render"},
		{"bad rect", []string{"render", "--rect", "1,2,3", "-o", filepath.Join(dir, "x.png")}, "--rect"},
		{"bad color", []string{"render", "--rect", "1,2,3,4,blue", "-o", filepath.Join(dir, "x.png")}, "invalid hex"},
		{"bad background", []string{"render", "--rect", "1,2,3,4,#00f", "--background", "nope"}, "--background"},
		{"missing image", []string{"render", filepath.Join(dir, "missing.png")}, "open file"},
		{"missing config", []string{"demo", "--config", filepath.Join(dir, "missing.toml")}, "config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestConfigAndVerbose(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "studio.toml")
	cfg := "[canvas]\nwidth = 320\nheight = 200\nbackground = \"#000000\"\n\n[export]\nformat = \"tiff\"\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}

	base := filepath.Join(dir, "poster")
	stdout, stderr, err := run(t, "demo", "--config", cfgPath, "-v", "-o", base)
	if err != nil {
		t.Fatalf("demo: %v\n%s", err, stderr)
	}
	if !strings.Contains(stdout, "Background") || !strings.Contains(stdout, "scene3d") {
		t.Errorf("verbose stdout missing layer listing:\n%s", stdout)
	}

	// No extension: the configured export format is used.
	img, err := imageio.Load(base + ".tif")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if img.Bounds().Dx() != 320 || img.Bounds().Dy() != 200 {
		t.Errorf("bounds = %v, want 320x200", img.Bounds())
	}
	if got := pixel(t, img, 310, 190); got != studio.Red.NRGBA() {
		t.Errorf("pixel (310, 190) = %v, want red", got)
	}

	// Verbose logging reaches stderr, including studio's debug records.
	if !strings.Contains(stderr, "exported") {
		t.Errorf("stderr missing export log:\n%s", stderr)
	}
	if !strings.Contains(stderr, "composite pass") {
		t.Errorf("stderr missing debug log from render:\n%s", stderr)
	}
}

func TestParseRect(t *testing.T) {
	got, err := parseRect(" 1.5, 2 ,30,40, #ff000080")
	if err != nil {
		t.Fatalf("parseRect() error = %v", err)
	}
	want := layer.Rectangle{X: 1.5, Y: 2, Width: 30, Height: 40, FillColor: studio.RGBA8(255, 0, 0, 128)}
	if got != want {
		t.Errorf("parseRect() = %+v, want %+v", got, want)
	}

	for _, s := range []string{"", "1,2,3,4", "a,2,3,4,#fff", "1,2,3,4,#ffff0"} {
		if _, err := parseRect(s); err == nil {
			t.Errorf("parseRect(%q) succeeded", s)
		}
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "studio ") {
		t.Errorf("version output = %q", stdout)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(newLogger(&buf, slog.LevelInfo))

	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug record written at info level: %q", buf.String())
	}
	l.Info("shown", "key", "value")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("info record missing: %q", buf.String())
	}
}
