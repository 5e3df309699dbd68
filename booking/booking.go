// Package booking builds and recognises the payloads printed on booking
// tickets.
package booking

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/ashokshau/ticketqr"
)

// Prefix marks a symbol payload as a booking reference.
const Prefix = "openhouse:booking:"

// QueryParam is the URL query parameter that carries a booking id when a
// ticket is scanned as a link.
const QueryParam = "booking"

// MaxIDLen is the longest booking id whose payload still fits one symbol.
const MaxIDLen = ticketqr.MaxPayloadLen - len(Prefix)

const ticketRoute = "#/ticket/"

var (
	// ErrEmptyID is returned for a blank booking id.
	ErrEmptyID = errors.New("booking: empty id")

	// ErrIDTooLong is returned when the id would push the payload past
	// ticketqr.MaxPayloadLen.
	ErrIDTooLong = errors.New("booking: id too long")

	// ErrUnencodable is returned when the id has characters outside
	// ISO-8859-1. It wraps ticketqr.ErrUnencodable.
	ErrUnencodable = fmt.Errorf("booking: id has characters outside ISO-8859-1: %w", ticketqr.ErrUnencodable)
)

// Validate reports whether id can be carried by a ticket symbol.
func Validate(id string) error {
	if id == "" {
		return ErrEmptyID
	}
	raw, err := charmap.ISO8859_1.NewEncoder().String(id)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnencodable, id)
	}
	if len(raw) > MaxIDLen {
		return fmt.Errorf("%w: %d bytes, max %d", ErrIDTooLong, len(raw), MaxIDLen)
	}
	return nil
}

// Payload returns the symbol text for a booking id.
func Payload(id string) string {
	return Prefix + id
}

// Encode validates id and encodes its payload into a ticket symbol.
func Encode(id string) (*ticketqr.QRCode, error) {
	if err := Validate(id); err != nil {
		return nil, err
	}
	return ticketqr.NewQRCode(Payload(id))
}

// ParseScan extracts the booking id from scanned text. It accepts the
// prefixed payload form and URLs carrying the id in the booking query
// parameter.
func ParseScan(raw string) (id string, ok bool) {
	raw = strings.TrimSpace(raw)
	if rest, found := strings.CutPrefix(raw, Prefix); found {
		return rest, rest != ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return "", false
	}
	if id := u.Query().Get(QueryParam); id != "" {
		return id, true
	}
	// Hash-routed links carry their route and query inside the fragment.
	frag := u.EscapedFragment()
	if route, q, found := strings.Cut(frag, "?"); found {
		if vals, err := url.ParseQuery(q); err == nil && vals.Get(QueryParam) != "" {
			return vals.Get(QueryParam), true
		}
		frag = route
	}
	return ParseTicketPath("#" + frag)
}

// TicketPath returns the hash route of the ticket view for id.
func TicketPath(id string) string {
	return ticketRoute + url.PathEscape(id)
}

// ParseTicketPath extracts the booking id from a ticket hash route. An id
// that fails to unescape is returned as written.
func ParseTicketPath(hash string) (id string, ok bool) {
	rest, found := strings.CutPrefix(hash, ticketRoute)
	if !found || rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	if unescaped, err := url.PathUnescape(rest); err == nil {
		return unescaped, true
	}
	return rest, true
}
