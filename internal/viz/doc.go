// Package viz provides the terminal drawing primitives for the assessment UI.
//
//   - [Canvas]: braille-based dot canvas used to raster the score ring
//   - [Theme]: light and dark colour schemes, including the band colours
//   - [Styles]: lipgloss styles derived from a theme
//   - [Slider] and [Selector]: the two score widget renderings
package viz
