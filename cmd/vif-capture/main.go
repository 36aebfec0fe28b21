// Command vif-capture reads raw VIF frames from a monitoring unit's
// serial port and appends them to a capture file for later conversion.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.bug.st/serial"
)

func main() {
	var portName string
	var baud int
	var output string

	flag.StringVar(&portName, "port", "", "serial port the unit is attached to")
	flag.IntVar(&baud, "baud", 115200, "baud rate")
	flag.StringVar(&output, "o", "", "capture file (default vif-capture-<id>.vif)")
	flag.Parse()

	if portName == "" {
		log.Fatal("port is required")
	}
	if output == "" {
		output = fmt.Sprintf("vif-capture-%s.vif", uuid.NewString()[:8])
	}

	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(portName, mode)
	if err != nil {
		log.Fatalf("open %s: %v", portName, err)
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("open capture file: %v", err)
	}
	defer f.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// closing the port unblocks the pending Read when a signal arrives
	go func() {
		<-ctx.Done()
		port.Close()
	}()

	log.Printf("capturing %s at %d baud to %s", portName, baud, output)

	n, err := io.Copy(f, port)
	if err != nil && ctx.Err() == nil {
		log.Fatalf("capture: %v", err)
	}
	log.Printf("captured %d bytes", n)
}
