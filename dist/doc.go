// Package dist maps primitive uniform draws to samples from named
// statistical distributions.
//
// A Sampler consumes draws from any Source producing uniforms in the open
// interval (0,1) and applies closed-form or rejection-based transforms:
//
//   - Normal: Marsaglia polar method (pairs of uniforms, cached spare)
//   - Exponential: inverse CDF
//   - Triangular, Weibull, Laplace: inverse CDF
//   - Gamma: Marsaglia-Tsang for shape >= 1, boost transform for shape < 1
//   - InverseGamma, Beta, ChiSquare, Dirichlet: derived from Gamma
//
// Parameters are validated before any draw is consumed, so a rejected call
// has no observable effect on the uniform sequence.
package dist
