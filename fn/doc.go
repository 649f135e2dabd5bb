// Package fn provides variadic functional helpers modelled on Wolfram's Fold
// and Nest, plus a small timing harness.
package fn
