/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"io"
	"strings"

	upsline "github.com/allbin/go-upsline"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List serial ports a UPS cable may be attached to",
		Long: `List the serial character devices on this system.

This command scans /dev for devices a UPS to USB cable can show up as:
- USB serial adapters (ttyUSB*)
- USB CDC/ACM devices (ttyACM*)
- Standard serial ports (ttyS*)
- ARM/Raspberry Pi ports (ttyAMA*)
- And other platform-specific serial devices

Virtual terminals and pseudo-terminals are excluded from the listing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			ports, err := upsline.ListPorts()
			if err != nil {
				return fmt.Errorf("listing ports: %w", err)
			}

			filterType, _ := cmd.Flags().GetString("filter")
			tableFormat, _ := cmd.Flags().GetBool("table")

			filtered := filterPorts(ports, filterType)
			if len(filtered) == 0 {
				if filterType != "" && filterType != "all" {
					fmt.Fprintf(out, "No serial ports found matching filter: %s\n", filterType)
				} else {
					fmt.Fprintln(out, "No serial ports found")
				}
				return nil
			}

			if tableFormat {
				renderTable(out, filtered)
			} else {
				renderSimple(out, filtered)
			}
			return nil
		},
	}

	listCmd.Flags().StringP("filter", "f", "", "Filter by port type: usb, standard, arm, all")
	listCmd.Flags().BoolP("table", "t", false, "Display output in a styled table format")
	return listCmd
}

// filterPorts filters the port list based on the specified filter type
func filterPorts(ports []upsline.PortInfo, filterType string) []upsline.PortInfo {
	if filterType == "" || filterType == "all" {
		return ports
	}

	var filtered []upsline.PortInfo
	for _, port := range ports {
		name := strings.ToLower(port.Name)
		switch strings.ToLower(filterType) {
		case "usb":
			if strings.HasPrefix(name, "ttyusb") || strings.HasPrefix(name, "ttyacm") {
				filtered = append(filtered, port)
			}
		case "standard":
			// ttySAC is a Samsung SoC port, not a standard one
			if strings.HasPrefix(name, "ttys") && !strings.HasPrefix(name, "ttysac") {
				filtered = append(filtered, port)
			}
		case "arm":
			if strings.HasPrefix(name, "ttyama") {
				filtered = append(filtered, port)
			}
		}
	}
	return filtered
}

// renderTable renders the port list in a styled static table format
func renderTable(w io.Writer, ports []upsline.PortInfo) {
	fmt.Fprintf(w, "Found %d serial port(s):\n\n", len(ports))

	portWidth := 15
	descWidth := 30

	r := lipgloss.NewRenderer(w)
	headerStyle := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("240")).
		PaddingBottom(1)

	cellStyle := r.NewStyle().
		PaddingRight(2)

	header := fmt.Sprintf("%-*s %-*s", portWidth, "Port", descWidth, "Description")
	fmt.Fprintln(w, headerStyle.Render(header))

	for _, port := range ports {
		row := fmt.Sprintf("%-*s %-*s", portWidth, port.Name, descWidth, port.Description)
		fmt.Fprintln(w, cellStyle.Render(row))
	}
}

// renderSimple renders the port list in simple text format
func renderSimple(w io.Writer, ports []upsline.PortInfo) {
	for _, port := range ports {
		fmt.Fprintln(w, port.Path)
	}
}
