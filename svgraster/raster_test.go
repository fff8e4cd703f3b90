package svgraster

import (
	"image"
	"strings"
	"testing"
)

func TestRenderFill(t *testing.T) {
	const doc = `<svg viewBox="0 0 10 10"><rect width="10" height="10" fill="#ff0000"/></svg>`
	img, err := RenderToImage(strings.NewReader(doc), 20, 20)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 20, 20) {
		t.Fatalf("unexpected image bounds %v", img.Bounds())
	}
	px := img.RGBAAt(10, 10)
	if px.R < 200 || px.A < 200 || px.G > 50 {
		t.Fatalf("expected a red pixel, got %v", px)
	}
}

func TestRenderStroke(t *testing.T) {
	const doc = `<svg viewBox="0 0 10 10">
		<line x1="0" y1="5" x2="10" y2="5" stroke="black" stroke-width="2"/>
	</svg>`
	img, err := RenderToImage(strings.NewReader(doc), 20, 20)
	if err != nil {
		t.Fatal(err)
	}
	if px := img.RGBAAt(10, 10); px.A < 200 {
		t.Fatalf("expected the stroke to cover the center, got %v", px)
	}
	if px := img.RGBAAt(10, 2); px.A != 0 {
		t.Fatalf("expected a transparent pixel away from the stroke, got %v", px)
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := RenderToImage(strings.NewReader("<html></html>"), 10, 10); err == nil {
		t.Fatal("a non svg document should fail")
	}
}
