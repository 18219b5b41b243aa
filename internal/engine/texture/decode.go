// Package texture decodes images and manages GL textures shared between models.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
)

// Decode decodes PNG, JPEG, BMP or TGA data. path is only used to detect TGA,
// which has no magic number.
func Decode(data []byte, path string) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		return DecodeTGA(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// ToRGBA converts img to RGBA. With flipY the rows are reversed so that the
// first row is the bottom of the image, as OpenGL expects.
func ToRGBA(img image.Image, flipY bool) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	if flipY {
		stride := rgba.Stride
		row := make([]byte, stride)
		for top, bottom := 0, b.Dy()-1; top < bottom; top, bottom = top+1, bottom-1 {
			t := rgba.Pix[top*stride : (top+1)*stride]
			bt := rgba.Pix[bottom*stride : (bottom+1)*stride]
			copy(row, t)
			copy(t, bt)
			copy(bt, row)
		}
	}
	return rgba
}

// Solid returns a 1x1 image of the given color.
func Solid(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, c)
	return img
}

// DecodeTGA decodes uncompressed (type 2) and RLE (type 10) true-color TGA data.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("tga: header truncated")
	}

	idLength := int(data[0])
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if data[1] != 0 {
		return nil, fmt.Errorf("tga: color-mapped images not supported")
	}
	if imageType != tgaUncompressed && imageType != tgaRLE {
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("tga: unsupported bit depth %d", bpp)
	}
	offset := 18 + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("tga: id field truncated")
	}

	r := tgaReader{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		src:         data[offset:],
		bpp:         bpp / 8,
		width:       width,
		height:      height,
		topToBottom: topToBottom,
	}
	if imageType == tgaUncompressed {
		if len(r.src) < width*height*r.bpp {
			return nil, fmt.Errorf("tga: pixel data truncated")
		}
		for r.n < width*height {
			r.put(r.next())
		}
		return r.img, nil
	}

	for r.n < width*height && r.pos < len(r.src) {
		packet := r.src[r.pos]
		r.pos++
		count := int(packet&0x7f) + 1
		if packet&0x80 != 0 {
			if r.pos+r.bpp > len(r.src) {
				break
			}
			c := r.next()
			for i := 0; i < count && r.n < width*height; i++ {
				r.put(c)
			}
			continue
		}
		for i := 0; i < count && r.n < width*height && r.pos+r.bpp <= len(r.src); i++ {
			r.put(r.next())
		}
	}
	return r.img, nil
}

const (
	tgaUncompressed = 2
	tgaRLE          = 10
)

type tgaReader struct {
	img         *image.RGBA
	src         []byte
	pos         int
	n           int
	bpp         int
	width       int
	height      int
	topToBottom bool
}

// next reads one BGR(A) pixel.
func (r *tgaReader) next() color.RGBA {
	p := r.src[r.pos : r.pos+r.bpp]
	r.pos += r.bpp
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if r.bpp == 4 {
		c.A = p[3]
	}
	return c
}

func (r *tgaReader) put(c color.RGBA) {
	x, y := r.n%r.width, r.n/r.width
	if !r.topToBottom {
		y = r.height - 1 - y
	}
	r.img.SetRGBA(x, y, c)
	r.n++
}
