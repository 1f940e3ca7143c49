// Package links curates the external reference links collected per episode:
// cross-episode boilerplate is removed by frequency, known promotional
// domains by an exclusion list, and ad-hoc domains by substring search.
package links
