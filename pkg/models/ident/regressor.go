package ident

// fillRegressor writes the lagged regression vector for the 1-based time
// index i into phi:
//
//	phi[j-1]       = -y(i-j)   j = 1..na
//	phi[na+j-1]    =  u(i-j)   j = 1..nb
//	phi[na+nb+j-1] =  e(i-j)   j = 1..nc
//
// Lags that precede the start of the record are exactly zero. This defines
// the initial transient of both estimation paths and is part of the
// contract, not an approximation.
func fillRegressor(phi, u, y, e []float64, na, nb, nc, i int) {
	for j := 1; j <= na; j++ {
		if i-j >= 1 {
			phi[j-1] = -y[i-j-1]
		} else {
			phi[j-1] = 0
		}
	}
	for j := 1; j <= nb; j++ {
		if i-j >= 1 {
			phi[na+j-1] = u[i-j-1]
		} else {
			phi[na+j-1] = 0
		}
	}
	for j := 1; j <= nc; j++ {
		if i-j >= 1 {
			phi[na+nb+j-1] = e[i-j-1]
		} else {
			phi[na+nb+j-1] = 0
		}
	}
}
