package svgraster

// ResolveDimensions computes the output pixel size from the requested
// width/height (0 = unset) and the intrinsic size of the document:
//
//   - both set: used as-is. The intrinsic aspect ratio is ignored, so
//     content may appear stretched; callers that want proportional
//     output should set only one dimension.
//   - width set: height = width * ih/iw
//   - height set: width = height * iw/ih
//   - neither: the intrinsic size
//
// Products truncate toward zero. A zero result is not rejected here;
// Rasterize refuses to allocate a degenerate surface.
func ResolveDimensions(width, height int, iw, ih float64) (int, int) {
	switch {
	case width > 0 && height > 0:
		return width, height
	case width > 0:
		return width, int(float64(width) * ih / iw)
	case height > 0:
		return int(float64(height) * iw / ih), height
	default:
		return int(iw), int(ih)
	}
}
