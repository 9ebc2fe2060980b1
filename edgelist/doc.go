// Package edgelist reads and writes the plain-text edge-list format of the
// tour solver.
//
// Every data line holds one undirected edge:
//
//	<id>;<weight>;<id>
//
// where <id> is a single character (one UTF-8 rune, neither ';' nor
// whitespace) and <weight> is a signed decimal integer that fits in int64.
// A trailing "\r" is ignored. Any other line is a comment and is skipped, so
// blank lines, "# notes" and malformed triples never stop the reader; end of
// input does.
//
// Read feeds every edge to a Sink (a *core.Graph satisfies it) in file
// order, which makes the first id of the first data line the entry node of
// the tour. Encode writes a snapshot back in the same format.
package edgelist
