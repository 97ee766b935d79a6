// Package figure manages scoped grid-figure sessions.
//
// A Session allocates a figure in a Registry, lays out a rows×cols grid of
// subplots (optionally sharing x/y axes with earlier subplots), hands the
// figure to caller code, and on exit saves and/or shows it before releasing
// it. Release happens on every exit path; caller errors and panics pass
// through unchanged.
//
//	err := figure.With(ctx, figure.Options{
//		Filename: "out.png",
//		Rows:     2, Cols: 2,
//		Share:    figure.ShareAll(),
//	}, func(fig *figure.Figure, axes figure.AxesSet) error {
//		axes[0].Add(line)
//		return nil
//	})
//
// Rendering is delegated to gonum.org/v1/plot: every subplot is a
// *plot.Plot, and saving picks a vg canvas from the file extension.
package figure
