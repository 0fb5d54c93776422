// Package telemetry parses the sensor messages a physical mouse (or a
// simulator) sends to the navigator.
//
// A message is one line:
//
//	<W>x<H> <row> <col> <ORIENTATION> <wall>
//
// for example "16x16 15 0 NORTH right". Fields may be separated by spaces,
// tabs or commas. ORIENTATION is a compass name (NORTH, EAST, SOUTH, WEST)
// and wall is one of up, right, down, left or none, relative to the
// orientation: up is the side the mouse faces, down the side behind it.
//
// Parse rejects malformed messages by returning false. Reader splits a byte
// stream on CRLF or LF, skips and counts malformed messages and logs them at
// debug level; it never fails on content, only on I/O.
package telemetry
