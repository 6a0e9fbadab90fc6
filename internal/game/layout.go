package game

import "image"

const (
	barHeight   = 16
	exitWidth   = 16
	minBarWidth = 112 // room for "Smacks: 9999999" plus the exit button
)

// layout places the character image above the counter bar. The image is
// centred when the bar is wider.
type layout struct {
	imageW, imageH int
	barW           int
}

func newLayout(imageW, imageH, labelW int) layout {
	barW := labelW + exitWidth + 4
	if barW < minBarWidth {
		barW = minBarWidth
	}
	return layout{imageW: imageW, imageH: imageH, barW: barW}
}

func (l layout) size() (int, int) {
	w := l.imageW
	if l.barW > w {
		w = l.barW
	}
	return w, l.imageH + barHeight
}

func (l layout) image() image.Rectangle {
	w, _ := l.size()
	x := (w - l.imageW) / 2
	return image.Rect(x, 0, x+l.imageW, l.imageH)
}

func (l layout) bar() image.Rectangle {
	w, h := l.size()
	return image.Rect(0, l.imageH, w, h)
}

func (l layout) exit() image.Rectangle {
	w, h := l.size()
	return image.Rect(w-exitWidth, l.imageH, w, h)
}

func (l layout) inImage(x, y int) bool {
	return image.Pt(x, y).In(l.image())
}

func (l layout) inExit(x, y int) bool {
	return image.Pt(x, y).In(l.exit())
}

// dragger keeps the grab offset while the left button is held. Positions
// are window-relative cursor coordinates and the window's screen origin.
type dragger struct {
	active     bool
	offX, offY int
}

// begin 记录按下瞬间鼠标相对窗口的偏移
func (d *dragger) begin(mx, my int) {
	d.active = true
	d.offX, d.offY = mx, my
}

// follow returns where the window must move so the grab point stays under
// the cursor.
// 鼠标在屏幕上的绝对位置 = wx + mx
// 希望保持 (wx_new + offX) = (wx + mx)，所以 wx_new = wx + mx - offX
func (d *dragger) follow(held bool, mx, my, wx, wy int) (int, int, bool) {
	if !held {
		d.active = false
		return wx, wy, false
	}
	if !d.active {
		return wx, wy, false
	}
	nx, ny := wx+mx-d.offX, wy+my-d.offY
	return nx, ny, nx != wx || ny != wy
}

// notches turns a wheel delta into whole steps, at least one per event.
func notches(dy float64) int {
	switch {
	case dy > 0:
		n := int(dy + 0.5)
		if n < 1 {
			n = 1
		}
		return n
	case dy < 0:
		n := int(-dy + 0.5)
		if n < 1 {
			n = 1
		}
		return -n
	}
	return 0
}
