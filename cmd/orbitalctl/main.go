// Command orbitalctl is an administrative CLI for a running orbitald:
// it lists open windows, sends data to a window's clipboard, and can
// force a window to tile, all over the scheme socket's admin
// connection grammar (§ orbitalctl, ambient CLI tooling).
package main

import (
	"fmt"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var socketPath string

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
var rowStyle = lipgloss.NewStyle().PaddingLeft(2)

func main() {
	root := &cobra.Command{
		Use:   "orbitalctl",
		Short: "administer a running orbital display server",
	}
	root.PersistentFlags().StringVar(&socketPath, "socket", "/run/orbital.sock", "path to orbitald's scheme socket")

	root.AddCommand(listWindowsCmd())
	root.AddCommand(sendClipboardCmd())
	root.AddCommand(tileCmd())
	root.AddCommand(statusCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func listWindowsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "windows",
		Short: "list open windows",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := Dial(socketPath)
			if err != nil {
				return err
			}
			defer client.Close()

			windows, err := client.ListWindows()
			if err != nil {
				return err
			}
			fmt.Println(titleStyle.Render("ID   TITLE"))
			for _, w := range windows {
				fmt.Println(rowStyle.Render(fmt.Sprintf("%-4d %s", w.ID, w.Title)))
			}
			return nil
		},
	}
}

func sendClipboardCmd() *cobra.Command {
	var windowID int
	cmd := &cobra.Command{
		Use:   "clip [text]",
		Short: "write text to a window's clipboard view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := Dial(socketPath)
			if err != nil {
				return err
			}
			defer client.Close()
			return client.WriteClipboard(windowID, args[0])
		},
	}
	cmd.Flags().IntVar(&windowID, "window", 0, "target window id")
	return cmd
}

func tileCmd() *cobra.Command {
	var windowID int
	cmd := &cobra.Command{
		Use:   "tile",
		Short: "tile a window to the full display, or restore it if already tiled",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := Dial(socketPath)
			if err != nil {
				return err
			}
			defer client.Close()
			return client.Tile(windowID)
		},
	}
	cmd.Flags().IntVar(&windowID, "window", 0, "target window id")
	return cmd
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "show server status sized to the current terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, h, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil {
				w, h = 80, 24
			}
			client, err := Dial(socketPath)
			if err != nil {
				return err
			}
			defer client.Close()
			windows, err := client.ListWindows()
			if err != nil {
				return err
			}
			box := lipgloss.NewStyle().
				Width(min(w-2, 60)).
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1)
			fmt.Println(box.Render(fmt.Sprintf("orbital: %d window(s) open (terminal %dx%d)", len(windows), w, h)))
			return nil
		},
	}
}
