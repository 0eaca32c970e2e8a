// Package termstyle provides output stream manipulators for terminals:
// ANSI color and style features, cursor control, character-grid canvases
// for plotting, progress indicators, and a redirector that captures
// standard output into a terminal-faithful file.
//
// # Quick Start
//
// Style text with feature lookups:
//
//	red := termstyle.MustFeat(termstyle.Colors, "red")
//	fmt.Println(red + "error:" + termstyle.Reset + " disk full")
//
// # Features
//
// Colors, styles, and resets are plain maps from feature names to escape
// sequences. [Feat] resolves a name and reports unknown ones:
//
//	seq, err := termstyle.Feat(termstyle.Colors, "bright cyan")
//
// Indexed and 24-bit colors are built with [Color256], [TrueColor], and
// friends; [Blend] interpolates two hex colors into a true-color escape.
//
// # Output Capture
//
// [OutputRedirector] swaps the process output target for an in-memory
// buffer and merges the capture into a file on every flush:
//
//	red := termstyle.NewOutputRedirector(termstyle.WithFilename("run.log"))
//	red.Start()
//	fmt.Println("this line lands in run.log")
//	red.Stop()
//
// Each flush trims the file's last line before appending, so the trailing
// framing a previous flush left behind never accumulates. The captured
// bytes pass through a [Formatter] first: [Passthrough] keeps the styling
// escapes, [PlainText] decodes them and persists what a terminal viewer
// would have shown (carriage-return progress bars collapse to their final
// state).
//
// The swapped target is explicit: [Stdout] captures the process-wide
// os.Stdout through a pipe, while a [WriterTarget] captures any writer slot
// without touching process state, which is also the natural fake for
// tests.
//
// # Canvases and Plotting
//
// [Canvas] is a character grid drawn cell by cell and rendered as styled
// text; [Plot2DCanvas] adds an offset and a scale to plot functions of one
// real variable:
//
//	plot := termstyle.NewPlot2DCanvas(60, 20)
//	plot.SetScale(0.2, 0.2)
//	plot.Draw(math.Sin, '*', termstyle.MustFeat(termstyle.Colors, "cyan"))
//	plot.Display(os.Stdout)
//
// A canvas can also be rendered to an image with [Canvas.Screenshot],
// resolving each cell's SGR feats against the 256-color [DefaultPalette].
//
// # Progress Indicators
//
// [ProgressBar] and [Spinner] redraw the current line in place:
//
//	bar := termstyle.NewProgressBar(0, 100,
//	    termstyle.WithProgressFeat(termstyle.MustFeat(termstyle.Colors, "green")))
//	for i := 0; i <= 100; i++ {
//	    bar.Update(float64(i))
//	}
//	bar.Finish()
//
// # Thread Safety
//
// OutputRedirector, ProgressBar, and Spinner methods are safe for
// concurrent use. Canvas and Plot2DCanvas are not; confine a canvas to one
// goroutine or add your own synchronization.
package termstyle
