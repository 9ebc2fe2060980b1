// Package cli implements the salesman command: flag parsing, verbosity,
// reading the graph file, running the search and reporting the tour.
//
// Every failure leaves Run as an *ExitError whose Code is the process exit
// status; cmd/salesman only has to print the message and exit.
package cli
