package prism

import (
	"fmt"
	"image"
	"io"

	_ "image/jpeg"
	_ "image/png"

	"github.com/cogentcore/webgpu/wgpu"
	"golang.org/x/image/draw"
)

// Image is a decoded RGBA8 pixel buffer ready for GPU upload. Pixels
// are tightly packed rows of 4 bytes per pixel, top row first.
type Image struct {
	Pixels []byte
	Width  int
	Height int
}

// DecodeRGBA decodes a PNG or JPEG stream and normalizes it to RGBA8.
func DecodeRGBA(r io.Reader) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("prism: decode image: %w", err)
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return &Image{
		Pixels: dst.Pix,
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

// Checkerboard generates a gray-and-white checkerboard image, used by
// the demo when no texture asset is supplied. Cell size is one eighth
// of the smaller dimension, with a floor of one pixel.
func Checkerboard(width, height int) *Image {
	cell := min(width, height) / 8
	if cell < 1 {
		cell = 1
	}
	pix := make([]byte, 4*width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var v byte = 0x40
			if (x/cell+y/cell)%2 == 0 {
				v = 0xF0
			}
			i := 4 * (y*width + x)
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, 0xFF
		}
	}
	return &Image{Pixels: pix, Width: width, Height: height}
}

// Texture owns a sampled 2D texture and the sampler the fragment
// shader reads it through.
type Texture struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView
	sampler *wgpu.Sampler
}

// NewTexture uploads img as an sRGB RGBA8 texture and creates its
// sampler: clamp-to-edge addressing, linear magnification, nearest
// minification.
func NewTexture(device *wgpu.Device, queue *wgpu.Queue, img *Image) (*Texture, error) {
	if img.Width <= 0 || img.Height <= 0 {
		return nil, fmt.Errorf("prism: texture dimensions %dx%d invalid", img.Width, img.Height)
	}
	if want := 4 * img.Width * img.Height; len(img.Pixels) != want {
		return nil, fmt.Errorf("prism: texture pixel buffer is %d bytes, want %d", len(img.Pixels), want)
	}

	size := wgpu.Extent3D{
		Width:              uint32(img.Width),
		Height:             uint32(img.Height),
		DepthOrArrayLayers: 1,
	}
	tex, err := device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "prism diffuse texture",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8UnormSrgb,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}

	err = queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  tex,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		img.Pixels,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(4 * img.Width),
			RowsPerImage: uint32(img.Height),
		},
		&size,
	)
	if err != nil {
		tex.Release()
		return nil, err
	}

	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, err
	}

	sampler, err := device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "prism diffuse sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeNearest,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
	if err != nil {
		view.Release()
		tex.Release()
		return nil, err
	}

	Logger().Debug("texture uploaded",
		"width", img.Width,
		"height", img.Height,
		"format", "rgba8unorm-srgb")

	return &Texture{texture: tex, view: view, sampler: sampler}, nil
}

// Release frees the texture, its view, and its sampler.
func (t *Texture) Release() {
	if t.sampler != nil {
		t.sampler.Release()
		t.sampler = nil
	}
	if t.view != nil {
		t.view.Release()
		t.view = nil
	}
	if t.texture != nil {
		t.texture.Release()
		t.texture = nil
	}
}
