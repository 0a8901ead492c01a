// Command exprql renders and runs SQL statements built with the exprql
// expression algebra.
package main

func main() {
	Execute()
}
