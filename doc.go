// Package ezh writes fixed-width scalars into a stream, raw memory or a pre-sized buffer.
//
// Values are laid out back to back in argument order with no padding.
// The default Encoder uses the host byte order, so the output is
// the in-memory representation of each value on the build platform.
// Set Encoder.Order to get a fixed layout.
//
// Nothing here decodes, frames or grows buffers.
package ezh
