// Package playfair implements the classical Playfair digraph cipher.
// A KeySquare is built from a key and one excluded letter, text is split into
// digraphs and each digraph is substituted according to the shape its two
// letters form in the square.
package playfair
