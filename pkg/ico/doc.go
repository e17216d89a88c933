// Package ico assembles and parses Windows icon (.ico) containers whose
// images are embedded PNG payloads.
//
// # Layout
//
//	offset  size  field
//	0       2     reserved, always 0
//	2       2     type, 1 = icon
//	4       2     image count n
//	6       16*n  directory entries, in image order:
//	                width (0 = 256), height (0 = 256), color count 0,
//	                reserved 0, planes 1, bit depth 32,
//	                payload length, absolute payload offset
//	6+16*n  ...   payloads, concatenated in directory order
//
// All multi-byte integers are little-endian. Payload offsets are cumulative:
// each equals 6 + 16*n plus the lengths of all earlier payloads.
//
// [Encode] writes that layout through a small [Writer] cursor so the offset
// bookkeeping is explicit and separately testable; [Decode] reads it back
// and verifies that the payloads exactly tile the file after the directory.
package ico
