// cvbridge-mon streams the firmware's diagnostic output from its USB CDC
// serial port. It is a bench tool for watching frame-error, queue-drop and
// unmapped-key counters while exercising the keyboard and joysticks; it
// sends nothing to the device.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"cvbridge/host/serial"
)

var (
	device    = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud      = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	statsOnly = flag.Bool("stats-only", false, "Show only [STATS] lines")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	cfg.ReadTimeout = 0 // block; the firmware decides when to talk

	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cvbridge-mon: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	fmt.Printf("Monitoring %s (ctrl-c to stop)\n", *device)

	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if *statsOnly && !strings.HasPrefix(line, "[STATS]") {
			continue
		}
		fmt.Printf("%s %s\n", time.Now().Format("15:04:05.000"), line)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "cvbridge-mon: read: %v\n", err)
		os.Exit(1)
	}
}
