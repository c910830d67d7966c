package cli

import (
	"fmt"

	"github.com/mkoskin/gaugectl/internal/serial"
	"github.com/mkoskin/gaugectl/internal/ui"
)

// portsCommand prints the serial devices visible on this system.
func portsCommand() error {
	ui.ConfigureColors()

	ports, err := serial.ListPorts()
	if err != nil {
		return err
	}

	if len(ports) == 0 {
		fmt.Println(ui.MutedStyle.Render("No serial ports found."))
		return nil
	}

	fmt.Println(ui.HeaderStyle.Render("Serial ports:"))
	for _, p := range ports {
		fmt.Printf("  %s %s\n", ui.InfoStyle.Render(ui.SymbolBullet), p)
	}
	return nil
}
