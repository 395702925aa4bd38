// Package seamcarve shrinks pictures without squashing what matters in them.
//
// 🚀 What is seamcarve?
//
//	A small content-aware resizing toolkit. Instead of scaling every pixel
//	uniformly it repeatedly removes the connected path of least "energy",
//	so flat sky and empty walls go first and edges survive.
//
// ✨ Layout:
//
//	picture/          RGB pixel grid, image.Image adapters
//	matrix/           dense float64 matrix with transpose and per-row deletion
//	energy/           dual-gradient energy function, border constant
//	seam/             Carver: seam finding, removal, incremental energy repair
//	internal/imageio  png, jpeg, gif, bmp, tiff, webp and pdf input; file output
//	internal/driver   single and batch jobs, energy maps, YAML run reports
//	internal/config   YAML run configuration with validation
//	internal/logger   zerolog adapter
//	cmd/seamcarve     command-line front end
//
// Quick example:
//
//	img, _, err := image.Decode(f)
//	pic, err := picture.FromImage(img)
//	c, err := seam.New(pic)
//	err = c.Resize(c.Width()-120, c.Height())
//	err = png.Encode(out, c.Picture().ToImage())
//
// Or from a shell:
//
//	go install github.com/katalvlaran/seamcarve/cmd/seamcarve@latest
//	seamcarve --width 640 beach.png
package seamcarve
