// Package presentation sits between raw user input and the evaluators.
//
// ParseCalculation and ParseFormat read form fields the way a browser
// number input does (longest numeric prefix, blanks ignored) and report
// input problems with end-user messages. RenderCalculation, RenderFormat and
// RenderError produce escaped HTML result cards.
package presentation
