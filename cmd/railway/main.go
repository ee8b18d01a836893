// Command railway answers travel questions about a one-way rail network.
package main

func main() {
	Execute()
}
