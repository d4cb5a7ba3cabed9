package dash

// Boot logo, a 48×28 packed 4-bit grayscale bitmap. Four pixels per word,
// most significant nibble first.
const (
	LogoWidth  = 48
	LogoHeight = 28
)

var Logo = []uint16{
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x9999, 0x9999, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0099, 0x9999, 0x9999, 0x9999, 0x9999, 0x9900, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0009, 0x9999, 0x9999, 0x9999, 0x9999, 0x9999, 0x9999, 0x9000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0999, 0x9999, 0x0001, 0x2233, 0x3322, 0x1000, 0x9999, 0x9990, 0x0000, 0x0000,
	0x0000, 0x0009, 0x9999, 0x9000, 0x0112, 0x3345, 0x5433, 0x2110, 0x0009, 0x9999, 0x9000, 0x0000,
	0x0000, 0x0099, 0x9990, 0x0001, 0x1223, 0x4456, 0x6544, 0x3221, 0x1000, 0x0999, 0x9900, 0x0000,
	0x0000, 0x9999, 0x9000, 0x0012, 0x2344, 0x5567, 0x7655, 0x4432, 0x2100, 0x0009, 0x9999, 0x0000,
	0x0009, 0x9999, 0x0000, 0x1123, 0x3455, 0x6678, 0x8766, 0x5543, 0x3211, 0x0000, 0x9999, 0x9000,
	0x0099, 0x9990, 0x0011, 0x2334, 0x4566, 0x7889, 0x9887, 0x6654, 0x4332, 0x1100, 0x0999, 0x9900,
	0x0099, 0x9900, 0x0122, 0x3445, 0x5677, 0x899a, 0xa998, 0x7765, 0x5443, 0x2210, 0x0099, 0x9900,
	0x0999, 0x9001, 0x2233, 0x4556, 0x7788, 0x9aab, 0xbaa9, 0x8877, 0x6554, 0x3322, 0x1009, 0x9990,
	0x0999, 0x9112, 0x3345, 0x5667, 0x889a, 0xabbc, 0xcbba, 0xa988, 0x7665, 0x5433, 0x2119, 0x9990,
	0x0999, 0x1223, 0x4456, 0x6778, 0x99ab, 0xbccd, 0xdccb, 0xba99, 0x8776, 0x6544, 0x3221, 0x9990,
	0x9999, 0x2344, 0x5567, 0x7899, 0xaabc, 0xcdee, 0xeedc, 0xcbaa, 0x9987, 0x7655, 0x4432, 0x9999,
	0x9999, 0x2344, 0x5567, 0x7899, 0xaabc, 0xcdee, 0xeedc, 0xcbaa, 0x9987, 0x7655, 0x4432, 0x9999,
	0x0999, 0x1223, 0x4456, 0x6778, 0x99ab, 0xbccd, 0xdccb, 0xba99, 0x8776, 0x6544, 0x3221, 0x9990,
	0x0999, 0x9112, 0x3345, 0x5667, 0x889a, 0xabbc, 0xcbba, 0xa988, 0x7665, 0x5433, 0x2119, 0x9990,
	0x0999, 0x9001, 0x2233, 0x4556, 0x7788, 0x9aab, 0xbaa9, 0x8877, 0x6554, 0x3322, 0x1009, 0x9990,
	0x0099, 0x9900, 0x0122, 0x3445, 0x5677, 0x899a, 0xa998, 0x7765, 0x5443, 0x2210, 0x0099, 0x9900,
	0x0099, 0x9990, 0x0011, 0x2334, 0x4566, 0x7889, 0x9887, 0x6654, 0x4332, 0x1100, 0x0999, 0x9900,
	0x0009, 0x9999, 0x0000, 0x1123, 0x3455, 0x6678, 0x8766, 0x5543, 0x3211, 0x0000, 0x9999, 0x9000,
	0x0000, 0x9999, 0x9000, 0x0012, 0x2344, 0x5567, 0x7655, 0x4432, 0x2100, 0x0009, 0x9999, 0x0000,
	0x0000, 0x0099, 0x9990, 0x0001, 0x1223, 0x4456, 0x6544, 0x3221, 0x1000, 0x0999, 0x9900, 0x0000,
	0x0000, 0x0009, 0x9999, 0x9000, 0x0112, 0x3345, 0x5433, 0x2110, 0x0009, 0x9999, 0x9000, 0x0000,
	0x0000, 0x0000, 0x0999, 0x9999, 0x0001, 0x2233, 0x3322, 0x1000, 0x9999, 0x9990, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0009, 0x9999, 0x9999, 0x9999, 0x9999, 0x9999, 0x9999, 0x9000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0099, 0x9999, 0x9999, 0x9999, 0x9999, 0x9900, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x9999, 0x9999, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
}
