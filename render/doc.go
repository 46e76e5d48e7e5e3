// Package render draws the miniproject figures with gonum/plot:
// measured profiles as scatter+line plots, decay curves against the
// exact solution, and solved potential fields as heatmaps.
//
// Every function writes an image file; the format follows the path
// extension (.png, .pdf, .svg — whatever gonum/plot supports).
//
// Heatmaps use a diverging blue–red palette centered at zero, so
// positive and negative potential render symmetrically regardless of
// the field's actual extremes.
package render
