// SPDX-License-Identifier: EPL-2.0

package mp3

// Layer III Huffman code tables, ISO/IEC 11172-3 Annex B table B.7.
// Each table lists code words and their bit lengths in row-major (x, y)
// order; tables 32 and 33 are the count1 quadruple tables indexed by vwxy.

var hcod1 = [...]uint32{
	0x1, 0x1, 0x1, 0x0,
}

var hlen1 = [...]uint8{
	1, 3, 2, 3,
}

var hcod2 = [...]uint32{
	0x1, 0x2, 0x1, 0x3, 0x1, 0x1, 0x3, 0x2,
	0x0,
}

var hlen2 = [...]uint8{
	1, 3, 6, 3, 3, 5, 5, 5, 6,
}

var hcod3 = [...]uint32{
	0x3, 0x2, 0x1, 0x1, 0x1, 0x1, 0x3, 0x2,
	0x0,
}

var hlen3 = [...]uint8{
	2, 2, 6, 3, 2, 5, 5, 5, 6,
}

var hcod5 = [...]uint32{
	0x1, 0x2, 0x6, 0x5, 0x3, 0x1, 0x4, 0x4,
	0x7, 0x5, 0x7, 0x1, 0x6, 0x1, 0x1, 0x0,
}

var hlen5 = [...]uint8{
	1, 3, 6, 7, 3, 3, 6, 7, 6, 6, 7, 8, 7, 6, 7, 8,
}

var hcod6 = [...]uint32{
	0x7, 0x3, 0x5, 0x1, 0x6, 0x2, 0x3, 0x2,
	0x5, 0x4, 0x4, 0x1, 0x3, 0x3, 0x2, 0x0,
}

var hlen6 = [...]uint8{
	3, 3, 5, 7, 3, 2, 4, 5, 4, 4, 5, 6, 6, 5, 6, 7,
}

var hcod7 = [...]uint32{
	0x1, 0x2, 0xa, 0x13, 0x10, 0xa, 0x3, 0x3,
	0x7, 0xa, 0x5, 0x3, 0xb, 0x4, 0xd, 0x11,
	0x8, 0x4, 0xc, 0xb, 0x12, 0xf, 0xb, 0x2,
	0x7, 0x6, 0x9, 0xe, 0x3, 0x1, 0x6, 0x4,
	0x5, 0x3, 0x2, 0x0,
}

var hlen7 = [...]uint8{
	1, 3, 6, 8, 8, 9, 3, 4, 6, 7, 7, 8, 6, 5, 7, 8,
	8, 9, 7, 7, 8, 9, 9, 9, 7, 7, 8, 9, 9, 10, 8, 8,
	9, 10, 10, 10,
}

var hcod8 = [...]uint32{
	0x3, 0x4, 0x6, 0x12, 0xc, 0x5, 0x5, 0x1,
	0x2, 0x10, 0x9, 0x3, 0x7, 0x3, 0x5, 0xe,
	0x7, 0x3, 0x13, 0x11, 0xf, 0xd, 0xa, 0x4,
	0xd, 0x5, 0x8, 0xb, 0x5, 0x1, 0xc, 0x4,
	0x4, 0x1, 0x1, 0x0,
}

var hlen8 = [...]uint8{
	2, 3, 6, 8, 8, 9, 3, 2, 4, 8, 8, 8, 6, 4, 6, 8,
	8, 9, 8, 8, 8, 9, 9, 10, 8, 7, 8, 9, 10, 10, 9, 8,
	9, 9, 11, 11,
}

var hcod9 = [...]uint32{
	0x7, 0x5, 0x9, 0xe, 0xf, 0x7, 0x6, 0x4,
	0x5, 0x5, 0x6, 0x7, 0x7, 0x6, 0x8, 0x8,
	0x8, 0x5, 0xf, 0x6, 0x9, 0xa, 0x5, 0x1,
	0xb, 0x7, 0x9, 0x6, 0x4, 0x1, 0xe, 0x4,
	0x6, 0x2, 0x6, 0x0,
}

var hlen9 = [...]uint8{
	3, 3, 5, 6, 8, 9, 3, 3, 4, 5, 6, 8, 4, 4, 5, 6,
	7, 8, 6, 5, 6, 7, 7, 8, 7, 6, 7, 7, 8, 9, 8, 7,
	8, 8, 9, 9,
}

var hcod10 = [...]uint32{
	0x1, 0x2, 0xa, 0x17, 0x23, 0x1e, 0xc, 0x11,
	0x3, 0x3, 0x8, 0xc, 0x12, 0x15, 0xc, 0x7,
	0xb, 0x9, 0xf, 0x15, 0x20, 0x28, 0x13, 0x6,
	0xe, 0xd, 0x16, 0x22, 0x2e, 0x17, 0x12, 0x7,
	0x14, 0x13, 0x21, 0x2f, 0x1b, 0x16, 0x9, 0x3,
	0x1f, 0x16, 0x29, 0x1a, 0x15, 0x14, 0x5, 0x3,
	0xe, 0xd, 0xa, 0xb, 0x10, 0x6, 0x5, 0x1,
	0x9, 0x8, 0x7, 0x8, 0x4, 0x4, 0x2, 0x0,
}

var hlen10 = [...]uint8{
	1, 3, 6, 8, 9, 9, 9, 10, 3, 4, 6, 7, 8, 9, 8, 8,
	6, 6, 7, 8, 9, 10, 9, 9, 7, 7, 8, 9, 10, 10, 9, 10,
	8, 8, 9, 10, 10, 10, 10, 10, 9, 9, 10, 10, 11, 11, 10, 11,
	8, 8, 9, 10, 10, 10, 11, 11, 9, 8, 9, 10, 10, 11, 11, 11,
}

var hcod11 = [...]uint32{
	0x3, 0x4, 0xa, 0x18, 0x22, 0x21, 0x15, 0xf,
	0x5, 0x3, 0x4, 0xa, 0x20, 0x11, 0xb, 0xa,
	0xb, 0x7, 0xd, 0x12, 0x1e, 0x1f, 0x14, 0x5,
	0x19, 0xb, 0x13, 0x3b, 0x1b, 0x12, 0xc, 0x5,
	0x23, 0x21, 0x1f, 0x3a, 0x1e, 0x10, 0x7, 0x5,
	0x1c, 0x1a, 0x20, 0x13, 0x11, 0xf, 0x8, 0xe,
	0xe, 0xc, 0x9, 0xd, 0xe, 0x9, 0x4, 0x1,
	0xb, 0x4, 0x6, 0x6, 0x6, 0x3, 0x2, 0x0,
}

var hlen11 = [...]uint8{
	2, 3, 5, 7, 8, 9, 8, 9, 3, 3, 4, 6, 8, 8, 7, 8,
	5, 5, 6, 7, 8, 9, 8, 8, 7, 6, 7, 9, 8, 10, 8, 9,
	8, 8, 8, 9, 9, 10, 9, 10, 8, 8, 9, 10, 10, 11, 10, 11,
	8, 7, 7, 8, 9, 10, 10, 10, 8, 7, 8, 9, 10, 10, 10, 10,
}

var hcod12 = [...]uint32{
	0x9, 0x6, 0x10, 0x21, 0x29, 0x27, 0x26, 0x1a,
	0x7, 0x5, 0x6, 0x9, 0x17, 0x10, 0x1a, 0xb,
	0x11, 0x7, 0xb, 0xe, 0x15, 0x1e, 0xa, 0x7,
	0x11, 0xa, 0xf, 0xc, 0x12, 0x1c, 0xe, 0x5,
	0x20, 0xd, 0x16, 0x13, 0x12, 0x10, 0x9, 0x5,
	0x28, 0x11, 0x1f, 0x1d, 0x11, 0xd, 0x4, 0x2,
	0x1b, 0xc, 0xb, 0xf, 0xa, 0x7, 0x4, 0x1,
	0x1b, 0xc, 0x8, 0xc, 0x6, 0x3, 0x1, 0x0,
}

var hlen12 = [...]uint8{
	4, 3, 5, 7, 8, 9, 9, 9, 3, 3, 4, 5, 7, 7, 8, 8,
	5, 4, 5, 6, 7, 8, 7, 8, 6, 5, 6, 6, 7, 8, 8, 8,
	7, 6, 7, 7, 8, 8, 8, 9, 8, 7, 8, 8, 8, 9, 8, 9,
	8, 7, 7, 8, 8, 9, 9, 10, 9, 8, 8, 9, 9, 9, 9, 10,
}

var hcod13 = [...]uint32{
	0x1, 0x5, 0xe, 0x15, 0x22, 0x33, 0x2e, 0x47,
	0x2a, 0x34, 0x44, 0x34, 0x43, 0x2c, 0x2b, 0x13,
	0x3, 0x4, 0xc, 0x13, 0x1f, 0x1a, 0x2c, 0x21,
	0x1f, 0x18, 0x20, 0x18, 0x1f, 0x23, 0x16, 0xe,
	0xf, 0xd, 0x17, 0x24, 0x3b, 0x31, 0x4d, 0x41,
	0x1d, 0x28, 0x1e, 0x28, 0x1b, 0x21, 0x2a, 0x10,
	0x16, 0x14, 0x25, 0x3d, 0x38, 0x4f, 0x49, 0x40,
	0x2b, 0x4c, 0x38, 0x25, 0x1a, 0x1f, 0x19, 0xe,
	0x23, 0x10, 0x3c, 0x39, 0x61, 0x4b, 0x72, 0x5b,
	0x36, 0x49, 0x37, 0x29, 0x30, 0x35, 0x17, 0x18,
	0x3a, 0x1b, 0x32, 0x60, 0x4c, 0x46, 0x5d, 0x54,
	0x4d, 0x3a, 0x4f, 0x1d, 0x4a, 0x31, 0x29, 0x11,
	0x2f, 0x2d, 0x4e, 0x4a, 0x73, 0x5e, 0x5a, 0x4f,
	0x45, 0x53, 0x47, 0x32, 0x3b, 0x26, 0x24, 0xf,
	0x48, 0x22, 0x38, 0x5f, 0x5c, 0x55, 0x5b, 0x5a,
	0x56, 0x49, 0x4d, 0x41, 0x33, 0x2c, 0x2b, 0x2a,
	0x2b, 0x14, 0x1e, 0x2c, 0x37, 0x4e, 0x48, 0x57,
	0x4e, 0x3d, 0x2e, 0x36, 0x25, 0x1e, 0x14, 0x10,
	0x35, 0x19, 0x29, 0x25, 0x2c, 0x3b, 0x36, 0x51,
	0x42, 0x4c, 0x39, 0x36, 0x25, 0x12, 0x27, 0xb,
	0x23, 0x21, 0x1f, 0x39, 0x2a, 0x52, 0x48, 0x50,
	0x2f, 0x3a, 0x37, 0x15, 0x16, 0x1a, 0x26, 0x16,
	0x35, 0x19, 0x17, 0x26, 0x46, 0x3c, 0x33, 0x24,
	0x37, 0x1a, 0x22, 0x17, 0x1b, 0xe, 0x9, 0x7,
	0x22, 0x20, 0x1c, 0x27, 0x31, 0x4b, 0x1e, 0x34,
	0x30, 0x28, 0x34, 0x1c, 0x12, 0x11, 0x9, 0x5,
	0x2d, 0x15, 0x22, 0x40, 0x38, 0x32, 0x31, 0x2d,
	0x1f, 0x13, 0xc, 0xf, 0xa, 0x7, 0x6, 0x3,
	0x30, 0x17, 0x14, 0x27, 0x24, 0x23, 0x35, 0x15,
	0x10, 0x17, 0xd, 0xa, 0x6, 0x1, 0x4, 0x2,
	0x10, 0xf, 0x11, 0x1b, 0x19, 0x14, 0x1d, 0xb,
	0x11, 0xc, 0x10, 0x8, 0x1, 0x1, 0x0, 0x1,
}

var hlen13 = [...]uint8{
	1, 4, 6, 7, 8, 9, 9, 10, 9, 10, 11, 11, 12, 12, 13, 13,
	3, 4, 6, 7, 8, 8, 9, 9, 9, 9, 10, 10, 11, 12, 12, 12,
	6, 6, 7, 8, 9, 9, 10, 10, 9, 10, 10, 11, 11, 12, 13, 13,
	7, 7, 8, 9, 9, 10, 10, 10, 10, 11, 11, 11, 11, 12, 13, 13,
	8, 7, 9, 9, 10, 10, 11, 11, 10, 11, 11, 12, 12, 13, 13, 14,
	9, 8, 9, 10, 10, 10, 11, 11, 11, 11, 12, 11, 13, 13, 14, 14,
	9, 9, 10, 10, 11, 11, 11, 11, 11, 12, 12, 12, 13, 13, 14, 14,
	10, 9, 10, 11, 11, 11, 12, 12, 12, 12, 13, 13, 13, 14, 16, 16,
	9, 8, 9, 10, 10, 11, 11, 12, 12, 12, 12, 13, 13, 14, 15, 15,
	10, 9, 10, 10, 11, 11, 11, 13, 12, 13, 13, 14, 14, 14, 16, 15,
	10, 10, 10, 11, 11, 12, 12, 13, 12, 13, 14, 13, 14, 15, 16, 17,
	11, 10, 10, 11, 12, 12, 12, 12, 13, 13, 13, 14, 15, 15, 15, 16,
	11, 11, 11, 12, 12, 13, 12, 13, 14, 14, 15, 15, 15, 16, 16, 16,
	12, 11, 12, 13, 13, 13, 14, 14, 14, 14, 14, 15, 16, 15, 16, 16,
	13, 12, 12, 13, 13, 13, 15, 14, 14, 17, 15, 15, 15, 17, 16, 16,
	12, 12, 13, 14, 14, 14, 15, 14, 15, 15, 16, 16, 19, 18, 19, 16,
}

var hcod15 = [...]uint32{
	0x7, 0xc, 0x12, 0x35, 0x2f, 0x4c, 0x7c, 0x6c,
	0x59, 0x7b, 0x6c, 0x77, 0x6b, 0x51, 0x7a, 0x3f,
	0xd, 0x5, 0x10, 0x1b, 0x2e, 0x24, 0x3d, 0x33,
	0x2a, 0x46, 0x34, 0x53, 0x41, 0x29, 0x3b, 0x24,
	0x13, 0x11, 0xf, 0x18, 0x29, 0x22, 0x3b, 0x30,
	0x28, 0x40, 0x32, 0x4e, 0x3e, 0x50, 0x38, 0x21,
	0x1d, 0x1c, 0x19, 0x2b, 0x27, 0x3f, 0x37, 0x5d,
	0x4c, 0x3b, 0x5d, 0x48, 0x36, 0x4b, 0x32, 0x1d,
	0x34, 0x16, 0x2a, 0x28, 0x43, 0x39, 0x5f, 0x4f,
	0x48, 0x39, 0x59, 0x45, 0x31, 0x42, 0x2e, 0x1b,
	0x4d, 0x25, 0x23, 0x42, 0x3a, 0x34, 0x5b, 0x4a,
	0x3e, 0x30, 0x4f, 0x3f, 0x5a, 0x3e, 0x28, 0x26,
	0x7d, 0x20, 0x3c, 0x38, 0x32, 0x5c, 0x4e, 0x41,
	0x37, 0x57, 0x47, 0x33, 0x49, 0x33, 0x46, 0x1e,
	0x6d, 0x35, 0x31, 0x5e, 0x58, 0x4b, 0x42, 0x7a,
	0x5b, 0x49, 0x38, 0x2a, 0x40, 0x2c, 0x15, 0x19,
	0x5a, 0x2b, 0x29, 0x4d, 0x49, 0x3f, 0x38, 0x5c,
	0x4d, 0x42, 0x2f, 0x43, 0x30, 0x35, 0x24, 0x14,
	0x47, 0x22, 0x43, 0x3c, 0x3a, 0x31, 0x58, 0x4c,
	0x43, 0x6a, 0x47, 0x36, 0x26, 0x27, 0x17, 0xf,
	0x6d, 0x35, 0x33, 0x2f, 0x5a, 0x52, 0x3a, 0x39,
	0x30, 0x48, 0x39, 0x29, 0x17, 0x1b, 0x3e, 0x9,
	0x56, 0x2a, 0x28, 0x25, 0x46, 0x40, 0x34, 0x2b,
	0x46, 0x37, 0x2a, 0x19, 0x1d, 0x12, 0xb, 0xb,
	0x76, 0x44, 0x1e, 0x37, 0x32, 0x2e, 0x4a, 0x41,
	0x31, 0x27, 0x18, 0x10, 0x16, 0xd, 0xe, 0x7,
	0x5b, 0x2c, 0x27, 0x26, 0x22, 0x3f, 0x34, 0x2d,
	0x1f, 0x34, 0x1c, 0x13, 0xe, 0x8, 0x9, 0x3,
	0x7b, 0x3c, 0x3a, 0x35, 0x2f, 0x2b, 0x20, 0x16,
	0x25, 0x18, 0x11, 0xc, 0xf, 0xa, 0x2, 0x1,
	0x47, 0x25, 0x22, 0x1e, 0x1c, 0x14, 0x11, 0x1a,
	0x15, 0x10, 0xa, 0x6, 0x8, 0x6, 0x2, 0x0,
}

var hlen15 = [...]uint8{
	3, 4, 5, 7, 7, 8, 9, 9, 9, 10, 10, 11, 11, 11, 12, 13,
	4, 3, 5, 6, 7, 7, 8, 8, 8, 9, 9, 10, 10, 10, 11, 11,
	5, 5, 5, 6, 7, 7, 8, 8, 8, 9, 9, 10, 10, 11, 11, 11,
	6, 6, 6, 7, 7, 8, 8, 9, 9, 9, 10, 10, 10, 11, 11, 11,
	7, 6, 7, 7, 8, 8, 9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
	8, 7, 7, 8, 8, 8, 9, 9, 9, 9, 10, 10, 11, 11, 11, 12,
	9, 7, 8, 8, 8, 9, 9, 9, 9, 10, 10, 10, 11, 11, 12, 12,
	9, 8, 8, 9, 9, 9, 9, 10, 10, 10, 10, 10, 11, 11, 11, 12,
	9, 8, 8, 9, 9, 9, 9, 10, 10, 10, 10, 11, 11, 12, 12, 12,
	9, 8, 9, 9, 9, 9, 10, 10, 10, 11, 11, 11, 11, 12, 12, 12,
	10, 9, 9, 9, 10, 10, 10, 10, 10, 11, 11, 11, 11, 12, 13, 12,
	10, 9, 9, 9, 10, 10, 10, 10, 11, 11, 11, 11, 12, 12, 12, 13,
	11, 10, 9, 10, 10, 10, 11, 11, 11, 11, 11, 11, 12, 12, 13, 13,
	11, 10, 10, 10, 10, 11, 11, 11, 11, 12, 12, 12, 12, 12, 13, 13,
	12, 11, 11, 11, 11, 11, 11, 11, 12, 12, 12, 12, 13, 13, 12, 13,
	12, 11, 11, 11, 11, 11, 11, 12, 12, 12, 12, 12, 13, 13, 13, 13,
}

var hcod16 = [...]uint32{
	0x1, 0x5, 0xe, 0x2c, 0x4a, 0x3f, 0x6e, 0x5d,
	0xac, 0x95, 0x8a, 0xf2, 0xe1, 0xc3, 0x178, 0x11,
	0x3, 0x4, 0xc, 0x14, 0x23, 0x3e, 0x35, 0x2f,
	0x53, 0x4b, 0x44, 0x77, 0xc9, 0x6b, 0xcf, 0x9,
	0xf, 0xd, 0x17, 0x26, 0x43, 0x3a, 0x67, 0x5a,
	0xa1, 0x48, 0x7f, 0x75, 0x6e, 0xd1, 0xce, 0x10,
	0x2d, 0x15, 0x27, 0x45, 0x40, 0x72, 0x63, 0x57,
	0x9e, 0x8c, 0xfc, 0xd4, 0xc7, 0x183, 0x16d, 0x1a,
	0x4b, 0x24, 0x44, 0x41, 0x73, 0x65, 0xb3, 0xa4,
	0x9b, 0x108, 0xf6, 0xe2, 0x18b, 0x17e, 0x16a, 0x9,
	0x42, 0x1e, 0x3b, 0x38, 0x66, 0xb9, 0xad, 0x109,
	0x8e, 0xfd, 0xe8, 0x190, 0x184, 0x17a, 0x1bd, 0x10,
	0x6f, 0x36, 0x34, 0x64, 0xb8, 0xb2, 0xa0, 0x85,
	0x101, 0xf4, 0xe4, 0xd9, 0x181, 0x16e, 0x2cb, 0xa,
	0x62, 0x30, 0x5b, 0x58, 0xa5, 0x9d, 0x94, 0x105,
	0xf8, 0x197, 0x18d, 0x174, 0x17c, 0x379, 0x374, 0x8,
	0x55, 0x54, 0x51, 0x9f, 0x9c, 0x8f, 0x104, 0xf9,
	0x1ab, 0x191, 0x188, 0x17f, 0x2d7, 0x2c9, 0x2c4, 0x7,
	0x9a, 0x4c, 0x49, 0x8d, 0x83, 0x100, 0xf5, 0x1aa,
	0x196, 0x18a, 0x180, 0x2df, 0x167, 0x2c6, 0x160, 0xb,
	0x8b, 0x81, 0x43, 0x7d, 0xf7, 0xe9, 0xe5, 0xdb,
	0x189, 0x2e7, 0x2e1, 0x2d0, 0x375, 0x372, 0x1b7, 0x4,
	0xf3, 0x78, 0x76, 0x73, 0xe3, 0xdf, 0x18c, 0x2ea,
	0x2e6, 0x2e0, 0x2d1, 0x2c8, 0x2c2, 0xdf, 0x1b4, 0x6,
	0xca, 0xe0, 0xde, 0xda, 0xd8, 0x185, 0x182, 0x17d,
	0x16c, 0x378, 0x1bb, 0x2c3, 0x1b8, 0x1b5, 0x6c0, 0x4,
	0x2eb, 0xd3, 0xd2, 0xd0, 0x172, 0x17b, 0x2de, 0x2d3,
	0x2ca, 0x6c7, 0x373, 0x36d, 0x36c, 0xd83, 0x361, 0x2,
	0x179, 0x171, 0x66, 0xbb, 0x2d6, 0x2d2, 0x166, 0x2c7,
	0x2c5, 0x362, 0x6c6, 0x367, 0xd82, 0x366, 0x1b2, 0x0,
	0xc, 0xa, 0x7, 0xb, 0xa, 0x11, 0xb, 0x9,
	0xd, 0xc, 0xa, 0x7, 0x5, 0x3, 0x1, 0x3,
}

var hlen16 = [...]uint8{
	1, 4, 6, 8, 9, 9, 10, 10, 11, 11, 11, 12, 12, 12, 13, 9,
	3, 4, 6, 7, 8, 9, 9, 9, 10, 10, 10, 11, 12, 11, 12, 8,
	6, 6, 7, 8, 9, 9, 10, 10, 11, 10, 11, 11, 11, 12, 12, 9,
	8, 7, 8, 9, 9, 10, 10, 10, 11, 11, 12, 12, 12, 13, 13, 10,
	9, 8, 9, 9, 10, 10, 11, 11, 11, 12, 12, 12, 13, 13, 13, 9,
	9, 8, 9, 9, 10, 11, 11, 12, 11, 12, 12, 13, 13, 13, 14, 10,
	10, 9, 9, 10, 11, 11, 11, 11, 12, 12, 12, 12, 13, 13, 14, 10,
	10, 9, 10, 10, 11, 11, 11, 12, 12, 13, 13, 13, 13, 15, 15, 10,
	10, 10, 10, 11, 11, 11, 12, 12, 13, 13, 13, 13, 14, 14, 14, 10,
	11, 10, 10, 11, 11, 12, 12, 13, 13, 13, 13, 14, 13, 14, 13, 11,
	11, 11, 10, 11, 12, 12, 12, 12, 13, 14, 14, 14, 15, 15, 14, 10,
	12, 11, 11, 11, 12, 12, 13, 14, 14, 14, 14, 14, 14, 13, 14, 11,
	12, 12, 12, 12, 12, 13, 13, 13, 13, 15, 14, 14, 14, 14, 16, 11,
	14, 12, 12, 12, 13, 13, 14, 14, 14, 16, 15, 15, 15, 17, 15, 11,
	13, 13, 11, 12, 14, 14, 13, 14, 14, 15, 16, 15, 17, 15, 14, 11,
	9, 8, 8, 9, 9, 10, 10, 10, 11, 11, 11, 11, 11, 11, 11, 8,
}

var hcod24 = [...]uint32{
	0xf, 0xd, 0x2e, 0x50, 0x92, 0x106, 0xf8, 0x1b2,
	0x1aa, 0x29d, 0x28d, 0x289, 0x26d, 0x205, 0x408, 0x58,
	0xe, 0xc, 0x15, 0x26, 0x47, 0x82, 0x7a, 0xd8,
	0xd1, 0xc6, 0x147, 0x159, 0x13f, 0x129, 0x117, 0x2a,
	0x2f, 0x16, 0x29, 0x4a, 0x44, 0x80, 0x78, 0xdd,
	0xcf, 0xc2, 0xb6, 0x154, 0x13b, 0x127, 0x21d, 0x12,
	0x51, 0x27, 0x4b, 0x46, 0x86, 0x7d, 0x74, 0xdc,
	0xcc, 0xbe, 0xb2, 0x145, 0x137, 0x125, 0x10f, 0x10,
	0x93, 0x48, 0x45, 0x87, 0x7f, 0x76, 0x70, 0xd2,
	0xc8, 0xbc, 0x160, 0x143, 0x132, 0x11d, 0x21c, 0xe,
	0x107, 0x42, 0x81, 0x7e, 0x77, 0x72, 0xd6, 0xca,
	0xc0, 0xb4, 0x155, 0x13d, 0x12d, 0x119, 0x106, 0xc,
	0xf9, 0x7b, 0x79, 0x75, 0x71, 0xd7, 0xce, 0xc3,
	0xb9, 0x15b, 0x14a, 0x134, 0x123, 0x110, 0x208, 0xa,
	0x1b3, 0x73, 0x6f, 0x6d, 0xd3, 0xcb, 0xc4, 0xbb,
	0x161, 0x14c, 0x139, 0x12a, 0x11b, 0x213, 0x17d, 0x11,
	0x1ab, 0xd4, 0xd0, 0xcd, 0xc9, 0xc1, 0xba, 0xb1,
	0xa9, 0x140, 0x12f, 0x11e, 0x10c, 0x202, 0x179, 0x10,
	0x14f, 0xc7, 0xc5, 0xbf, 0xbd, 0xb5, 0xae, 0x14d,
	0x141, 0x131, 0x121, 0x113, 0x209, 0x17b, 0x173, 0xb,
	0x29c, 0xb8, 0xb7, 0xb3, 0xaf, 0x158, 0x14b, 0x13a,
	0x130, 0x122, 0x115, 0x212, 0x17f, 0x175, 0x16e, 0xa,
	0x28c, 0x15a, 0xab, 0xa8, 0xa4, 0x13e, 0x135, 0x12b,
	0x11f, 0x114, 0x107, 0x201, 0x177, 0x170, 0x16a, 0x6,
	0x288, 0x142, 0x13c, 0x138, 0x133, 0x12e, 0x124, 0x11c,
	0x10d, 0x105, 0x200, 0x178, 0x172, 0x16c, 0x167, 0x4,
	0x26c, 0x12c, 0x128, 0x126, 0x120, 0x11a, 0x111, 0x10a,
	0x203, 0x17c, 0x176, 0x171, 0x16d, 0x169, 0x165, 0x2,
	0x409, 0x118, 0x116, 0x112, 0x10b, 0x108, 0x103, 0x17e,
	0x17a, 0x174, 0x16f, 0x16b, 0x168, 0x166, 0x164, 0x0,
	0x2b, 0x14, 0x13, 0x11, 0xf, 0xd, 0xb, 0x9,
	0x7, 0x6, 0x4, 0x7, 0x5, 0x3, 0x1, 0x3,
}

var hlen24 = [...]uint8{
	4, 4, 6, 7, 8, 9, 9, 10, 10, 11, 11, 11, 11, 11, 12, 9,
	4, 4, 5, 6, 7, 8, 8, 9, 9, 9, 10, 10, 10, 10, 10, 8,
	6, 5, 6, 7, 7, 8, 8, 9, 9, 9, 9, 10, 10, 10, 11, 7,
	7, 6, 7, 7, 8, 8, 8, 9, 9, 9, 9, 10, 10, 10, 10, 7,
	8, 7, 7, 8, 8, 8, 8, 9, 9, 9, 10, 10, 10, 10, 11, 7,
	9, 7, 8, 8, 8, 8, 9, 9, 9, 9, 10, 10, 10, 10, 10, 7,
	9, 8, 8, 8, 8, 9, 9, 9, 9, 10, 10, 10, 10, 10, 11, 7,
	10, 8, 8, 8, 9, 9, 9, 9, 10, 10, 10, 10, 10, 11, 11, 8,
	10, 9, 9, 9, 9, 9, 9, 9, 9, 10, 10, 10, 10, 11, 11, 8,
	10, 9, 9, 9, 9, 9, 9, 10, 10, 10, 10, 10, 11, 11, 11, 8,
	11, 9, 9, 9, 9, 10, 10, 10, 10, 10, 10, 11, 11, 11, 11, 8,
	11, 10, 9, 9, 9, 10, 10, 10, 10, 10, 10, 11, 11, 11, 11, 8,
	11, 10, 10, 10, 10, 10, 10, 10, 10, 10, 11, 11, 11, 11, 11, 8,
	11, 10, 10, 10, 10, 10, 10, 10, 11, 11, 11, 11, 11, 11, 11, 8,
	12, 10, 10, 10, 10, 10, 10, 11, 11, 11, 11, 11, 11, 11, 11, 8,
	8, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 8, 8, 8, 8, 4,
}

var hcod32 = [...]uint32{
	0x1, 0x5, 0x4, 0x5, 0x6, 0x5, 0x4, 0x4,
	0x7, 0x3, 0x6, 0x0, 0x7, 0x2, 0x3, 0x1,
}

var hlen32 = [...]uint8{
	1, 4, 4, 5, 4, 6, 5, 6, 4, 5, 5, 6, 5, 6, 6, 6,
}

var hcod33 = [...]uint32{
	0xf, 0xe, 0xd, 0xc, 0xb, 0xa, 0x9, 0x8,
	0x7, 0x6, 0x5, 0x4, 0x3, 0x2, 0x1, 0x0,
}

var hlen33 = [...]uint8{
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
}

// huffmanSpecs is indexed by table_select. Tables 0, 4 and 14 carry no codes.
var huffmanSpecs = [34]huffmanSpec{
	0: {},
	1: {dim: 2, linbits: 0, codes: hcod1[:], lens: hlen1[:]},
	2: {dim: 3, linbits: 0, codes: hcod2[:], lens: hlen2[:]},
	3: {dim: 3, linbits: 0, codes: hcod3[:], lens: hlen3[:]},
	4: {},
	5: {dim: 4, linbits: 0, codes: hcod5[:], lens: hlen5[:]},
	6: {dim: 4, linbits: 0, codes: hcod6[:], lens: hlen6[:]},
	7: {dim: 6, linbits: 0, codes: hcod7[:], lens: hlen7[:]},
	8: {dim: 6, linbits: 0, codes: hcod8[:], lens: hlen8[:]},
	9: {dim: 6, linbits: 0, codes: hcod9[:], lens: hlen9[:]},
	10: {dim: 8, linbits: 0, codes: hcod10[:], lens: hlen10[:]},
	11: {dim: 8, linbits: 0, codes: hcod11[:], lens: hlen11[:]},
	12: {dim: 8, linbits: 0, codes: hcod12[:], lens: hlen12[:]},
	13: {dim: 16, linbits: 0, codes: hcod13[:], lens: hlen13[:]},
	14: {},
	15: {dim: 16, linbits: 0, codes: hcod15[:], lens: hlen15[:]},
	16: {dim: 16, linbits: 1, codes: hcod16[:], lens: hlen16[:]},
	17: {dim: 16, linbits: 2, codes: hcod16[:], lens: hlen16[:]},
	18: {dim: 16, linbits: 3, codes: hcod16[:], lens: hlen16[:]},
	19: {dim: 16, linbits: 4, codes: hcod16[:], lens: hlen16[:]},
	20: {dim: 16, linbits: 6, codes: hcod16[:], lens: hlen16[:]},
	21: {dim: 16, linbits: 8, codes: hcod16[:], lens: hlen16[:]},
	22: {dim: 16, linbits: 10, codes: hcod16[:], lens: hlen16[:]},
	23: {dim: 16, linbits: 13, codes: hcod16[:], lens: hlen16[:]},
	24: {dim: 16, linbits: 4, codes: hcod24[:], lens: hlen24[:]},
	25: {dim: 16, linbits: 5, codes: hcod24[:], lens: hlen24[:]},
	26: {dim: 16, linbits: 6, codes: hcod24[:], lens: hlen24[:]},
	27: {dim: 16, linbits: 7, codes: hcod24[:], lens: hlen24[:]},
	28: {dim: 16, linbits: 8, codes: hcod24[:], lens: hlen24[:]},
	29: {dim: 16, linbits: 9, codes: hcod24[:], lens: hlen24[:]},
	30: {dim: 16, linbits: 11, codes: hcod24[:], lens: hlen24[:]},
	31: {dim: 16, linbits: 13, codes: hcod24[:], lens: hlen24[:]},
	32: {dim: 16, linbits: 0, codes: hcod32[:], lens: hlen32[:]},
	33: {dim: 16, linbits: 0, codes: hcod33[:], lens: hlen33[:]},
}
