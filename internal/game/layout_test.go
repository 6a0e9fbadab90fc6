package game

import (
	"image"
	"testing"
)

func TestLayoutWideImage(t *testing.T) {
	l := newLayout(300, 200, 70)
	if w, h := l.size(); w != 300 || h != 200+barHeight {
		t.Fatalf("size = %dx%d", w, h)
	}
	if l.image() != image.Rect(0, 0, 300, 200) {
		t.Errorf("image = %v", l.image())
	}
	if l.exit() != image.Rect(300-exitWidth, 200, 300, 200+barHeight) {
		t.Errorf("exit = %v", l.exit())
	}
	if !l.inExit(295, 205) || l.inExit(10, 205) {
		t.Errorf("exit hit-test wrong")
	}
	if !l.inImage(10, 10) || l.inImage(10, 205) {
		t.Errorf("image hit-test wrong")
	}
}

func TestLayoutNarrowImageIsCentred(t *testing.T) {
	l := newLayout(40, 30, 70)
	w, _ := l.size()
	if w != minBarWidth {
		t.Fatalf("width = %d, want %d", w, minBarWidth)
	}
	img := l.image()
	if img.Dx() != 40 || img.Min.X != (minBarWidth-40)/2 {
		t.Errorf("image = %v", img)
	}
	if l.inImage(0, 10) {
		t.Errorf("margin counted as image")
	}

	wide := newLayout(40, 30, 400)
	if w, _ := wide.size(); w != 400+exitWidth+4 {
		t.Errorf("label-driven width = %d", w)
	}
}

func TestDraggerKeepsGrabOffset(t *testing.T) {
	var d dragger
	if _, _, move := d.follow(true, 5, 5, 100, 100); move {
		t.Fatalf("moved without a grab")
	}

	d.begin(10, 20)
	// cursor moved 30 right, 5 down relative to the window
	nx, ny, move := d.follow(true, 40, 25, 100, 100)
	if !move || nx != 130 || ny != 105 {
		t.Fatalf("follow = %d,%d,%v", nx, ny, move)
	}
	// window caught up, cursor back on the grab point
	if _, _, move := d.follow(true, 10, 20, 130, 105); move {
		t.Errorf("moved while cursor on grab point")
	}

	if _, _, move := d.follow(false, 50, 50, 130, 105); move || d.active {
		t.Errorf("drag survived release")
	}
}

func TestNotches(t *testing.T) {
	tests := []struct {
		dy   float64
		want int
	}{
		{0, 0},
		{1, 1},
		{-1, -1},
		{0.2, 1},
		{-0.3, -1},
		{2, 2},
		{-3.4, -3},
	}
	for _, tt := range tests {
		if got := notches(tt.dy); got != tt.want {
			t.Errorf("notches(%v) = %d, want %d", tt.dy, got, tt.want)
		}
	}
}
