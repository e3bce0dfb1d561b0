package main

import (
	"fmt"
	"io"

	"github.com/divine-encounter/event-registration/checkout"
	"github.com/divine-encounter/event-registration/success"
)

var _ checkout.Page = &terminalPage{}

type terminalPage struct {
	out    io.Writer
	origin string

	loading bool
}

func newTerminalPage(out io.Writer, origin string) *terminalPage {
	return &terminalPage{out: out, origin: origin}
}

func (p *terminalPage) SetLoading(loading bool) {
	if loading && !p.loading {
		fmt.Fprintln(p.out, "Processing...")
	}
	p.loading = loading
}

func (p *terminalPage) ShowError(message string) {
	fmt.Fprintf(p.out, "Error: %s\n", message)
}

func (p *terminalPage) Navigate(path string) {
	if path != checkout.SuccessPath {
		fmt.Fprintf(p.out, "Navigating to %s\n", path)
		return
	}

	links := success.ShareLinks(p.origin)

	fmt.Fprintln(p.out, "\nRegistration successful! See you at Divine Encounter 2026.")
	fmt.Fprintln(p.out, "A confirmation email is on its way.")
	fmt.Fprintln(p.out, "\nShare the event:")
	fmt.Fprintf(p.out, "  Facebook: %s\n", links.Facebook)
	fmt.Fprintf(p.out, "  Twitter:  %s\n", links.Twitter)
	fmt.Fprintf(p.out, "  WhatsApp: %s\n", links.WhatsApp)
	fmt.Fprintln(p.out, "\nAdd it to your calendar with: register calendar")
}
