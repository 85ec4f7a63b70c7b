// Command ls-marstime converts between Earth time and the Mars calendar and
// shows a live Mars clock in the terminal.
package main

func main() {
	Execute()
}
