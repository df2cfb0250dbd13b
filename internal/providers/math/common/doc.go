// Package common holds the parameter handling shared by the math provider's
// tools.
//
// A tool call names its numeric domain with the optional "type" parameter:
//   - float64 (default): JSON numbers, results as numbers
//   - int64: integral JSON numbers or decimal strings, results as numbers
//   - rational: numbers or strings such as "1/3" or "0.25", results as
//     strings in lowest terms
//
// Inputs decoded with json.Number keep integers and decimals exact until
// they reach the selected domain.
package common
