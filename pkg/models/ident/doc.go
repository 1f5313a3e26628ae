// Package ident estimates discrete-time linear models from measured
// input/output records. The batch path stacks the lagged regression matrix
// of an ARX or ARMAX structure and solves it in one QR-backed least-squares
// pass; the recursive path maintains a parameter vector and covariance and
// folds samples in one at a time with an exponential forgetting factor.
// Either way the polynomial estimate is realized as a transfer function and
// a canonical state-space model, with the noise sub-model and observer gain
// folded in when present.
package ident
