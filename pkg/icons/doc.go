// Package icons generates the quax application icon set from a single SVG.
//
// # Outputs
//
// For a source <dir>/<base>.svg a [Generator] writes, in order:
//
//   - <dir>/<base>.png: 2000x2000 on the brand background
//   - <readme-dir>/<base>.png: the same image clipped to a rounded rectangle
//     (corner radius 25% of the side); outside the corners is transparent
//   - <dir>/<base>-foreground-432x432.png: adaptive foreground, transparent
//   - <dir>/<base>-monochrome-432x432.png: white silhouette of the foreground
//   - <dir>/<base>-background.png: 432x432 flat brand color, not rendered
//
// Sizes and the background color come from [Config].
//
// # Pixel operations
//
// [RoundedMask], [ApplyMask], [Monochrome] and [Background] are exported so
// the individual steps can be checked in isolation. All of them return new
// buffers and never modify their inputs.
package icons
