/*
Package newick provides facilities for reading and writing trees in the
Newick format. The format used is roughly equivalent to the conventions
established here:
http://evolution.genetics.washington.edu/phylip/newick_doc.html. Quoted
labels are supported, but comments in square brackets are not.

An informal description of the Newick format can be found here:
http://evolution.genetics.washington.edu/phylip/newicktree.html.

The parser and formatter are not tied to any particular tree type. Parse
builds trees through a Builder, and Format walks any type that satisfies
Node. The Tree type in this package is one such type:

	tree, err := newick.ParseTree("(A:0.1,B:0.2,(C:0.3,D:0.4):0.5);")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(newick.Format(tree))

Formatting is the inverse of parsing for names, lengths and child order,
but not for whitespace or quoting. Format never quotes a label, so a label
containing a space or a delimiter does not survive a round trip. Writer
offers opt-in quoting.

Reader and Writer read and write streams of ';'-terminated trees. Every
tree is held in memory in full; there is no support for streaming a single
tree.
*/
package newick
