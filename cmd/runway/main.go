// Command runway projects cash runway and compares a proposed strategy
// against the current path.
package main

func main() {
	Execute()
}
