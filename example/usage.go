package main

import (
	"fmt"
	"os"

	"github.com/ashokshau/ticketqr"
	"github.com/ashokshau/ticketqr/booking"
)

func main() {
	// The booking to print a ticket for
	id := "b:demo-1"
	filename := "ticket.svg"

	payload := booking.Payload(id)
	fmt.Printf("Generating ticket symbol for: %s\n", payload)

	qr, err := booking.Encode(id)
	if err != nil {
		fmt.Printf("Error creating symbol: %v\n", err)
		return
	}

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		return
	}
	defer file.Close()

	// 220 pixels square, the size the ticket view uses
	if err := qr.WriteSVG(file, 220); err != nil {
		fmt.Printf("Error writing SVG: %v\n", err)
		return
	}
	fmt.Printf("Saved %dx%d symbol (%d dark modules) to %s\n", qr.Size, qr.Size, qr.DarkCount(), filename)

	fmt.Print(qr)

	// What the door scanner would do with the decoded text
	if got, ok := booking.ParseScan(payload); ok && got == id {
		fmt.Println("SUCCESS: scanned payload maps back to the booking")
	} else {
		fmt.Println("FAILURE: payload not recognised")
	}

	// Anything longer than the symbol holds is refused, not truncated.
	if _, err := ticketqr.NewQRCode(payload + "-overflow"); err != nil {
		fmt.Printf("Rejected long payload: %v\n", err)
	}
}
