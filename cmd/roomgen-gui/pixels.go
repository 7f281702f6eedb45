package main

import (
	"image/color"

	"github.com/lixenwraith/roomgen/maze"
)

var (
	colorGap    = color.RGBA{0x10, 0x10, 0x14, 0xff}
	colorClosed = color.RGBA{0x5a, 0x3e, 0x2b, 0xff}
	colorOpen   = color.RGBA{0x9c, 0xb8, 0x6a, 0xff}
	colorDoor   = color.RGBA{0xe8, 0xc5, 0x47, 0xff}
)

// roomLayout places rooms on a pixel canvas with gap pixels between them.
type roomLayout struct {
	roomsX, roomsY int
	roomW, roomH   int
	gap            int
}

func (l roomLayout) size() (w, h int) {
	w = l.roomsX*l.roomW + (l.roomsX-1)*l.gap
	h = l.roomsY*l.roomH + (l.roomsY-1)*l.gap
	return w, h
}

// fill writes RGBA pixels for rooms into buf, which must hold 4*w*h bytes.
func (l roomLayout) fill(buf []byte, rooms [][]*maze.Grid) {
	w, _ := l.size()
	for i := 0; i < len(buf); i += 4 {
		putRGBA(buf[i:], colorGap)
	}
	for ry, row := range rooms {
		for rx, room := range row {
			ox := rx * (l.roomW + l.gap)
			oy := ry * (l.roomH + l.gap)
			for y := 0; y < room.H; y++ {
				for x := 0; x < room.W; x++ {
					putRGBA(buf[4*((oy+y)*w+ox+x):], tileColor(room, x, y))
				}
			}
		}
	}
}

func tileColor(room *maze.Grid, x, y int) color.RGBA {
	if !room.Open(x, y) {
		return colorClosed
	}
	if x == 0 || y == 0 || x == room.W-1 || y == room.H-1 {
		return colorDoor
	}
	return colorOpen
}

func putRGBA(dst []byte, c color.RGBA) {
	dst[0] = c.R
	dst[1] = c.G
	dst[2] = c.B
	dst[3] = c.A
}
