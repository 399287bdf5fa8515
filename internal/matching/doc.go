// Package matching provides the request predicates used by the simulated
// backend's route table.
//
// Two kinds of predicate exist, in decreasing specificity:
//
//   - Suffix: the path ends with a literal such as "/users/authenticate"
//   - ID: the path ends with "<collection>/<digits>", e.g. "/inventory/12"
//
// Both also require an exact, case-sensitive method match. Predicates look
// only at the URL path; the query string never takes part in matching.
package matching
