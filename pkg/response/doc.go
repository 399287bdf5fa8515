// Package response defines the response shape shared by simulated and real
// transports.
//
// Callers see the same Response interface whether a request was answered by
// the simulated backend or by the network. Simulated responses keep their
// payload as a Go value and encode it only when read.
package response
