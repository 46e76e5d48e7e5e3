// Package points handles the (x, y) sample sets the miniprojects start
// from: loading them from CSV files, swapping the measured axes and
// sorting them into interpolation order.
//
// The measurement workflow behind it: a physical profile is measured as
// (height, radius) pairs, stored one pair per line ("x,y"), then the axes
// are swapped and the list sorted by x before interpolation.
//
// ⚙️ Usage:
//
//	pts, err := points.LoadFile("profile.csv")
//	if err != nil { ... }
//	pts = pts.Swapped().SortedByX()
//
// Transformations return new lists; the receiver is never mutated.
package points
