// Command upsline reads the state of a UPS from the modem control lines of
// a serial device.
package main

import "github.com/allbin/go-upsline/cmd"

func main() {
	cmd.Execute()
}
