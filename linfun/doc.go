// Package linfun implements linear functions in two-point form,
// y = a + slope·(x − pivot), the building block for the tangents and
// secants that make up flexgen's hat and squeeze envelopes.
//
// The indirect representation anchors the line at a pivot on the x axis
// instead of storing the y-intercept. Evaluation near the pivot then
// subtracts nearby quantities before multiplying by the slope, which avoids
// the catastrophic cancellation the classical slope/intercept form suffers
// when |pivot| is large. The classical intercept is still derivable via
// Intercept.
package linfun
