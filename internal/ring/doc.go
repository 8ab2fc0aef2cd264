// Package ring turns a score into the animated circular progress ring.
//
// The displayed value eases toward the true total one frame at a time
// ([Tick], [Animator]) and each frame is described as line segments
// ([Geometry.Frame]) that a renderer can raster or export.
//
// # Angle convention
//
// Geometry is expressed in screen coordinates where y grows downward. The
// arc starts at 12 o'clock, angle 3π/2, and sweeps toward larger angles,
// which is clockwise on screen.
package ring
