// Package tilted implements a calculator for arithmetic expressions with
// trigonometric functions.
//
// Expressions are written the way you would on paper. "7 + 6 * 2" is 19,
// "2^3^2" is 2^(3^2), and "5(7 + 2)" and "5sin(0)" multiply implicitly. Runs of
// signs collapse, so "--+5" is 5.
//
// Numbers are exact 128-bit integers until something forces a float: a float
// literal, division by a float, a negative exponent, or a trigonometric
// function. For arbitrary-precision floats instead, evaluate a parsed
// expression with a Context.
package tilted
