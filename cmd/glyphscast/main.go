// Command glyphscast loads a Glyphs source (or its JSON/YAML rendition),
// casts every schema-declared field to its typed value and prints the result.
package main

func main() {
	Execute()
}
