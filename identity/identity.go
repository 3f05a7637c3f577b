// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/crowncast/middleware"
)

// ErrUnresolved means the network address could not be determined. A vote
// must be rejected in that case, never admitted with a degraded identity.
var ErrUnresolved = errors.New("voter identity unresolved")

// Identity is the resolved per-request voter identity triple, plus the
// client's voter mark. Fingerprint and HardwareID are opaque, client-supplied
// and unverified; the address is what the server observed.
type Identity struct {
	Address     string
	Fingerprint string
	HardwareID  string
	VoterID     string
}

// Resolve derives an Identity from the request and the client-supplied
// fingerprint fields. The address comes from forwarding headers or
// RemoteAddr; fingerprint falls back to the hardware signature when absent.
// voterID is a client mark only - when empty the server assigns a UUID so
// the audit row is still traceable.
func Resolve(r *http.Request, fingerprint, hardwareID, voterID string) (Identity, error) {
	addr := strings.TrimSpace(middleware.GetClientIP(r))
	if addr == "" {
		return Identity{}, ErrUnresolved
	}

	fingerprint = strings.TrimSpace(fingerprint)
	if fingerprint == "" {
		fingerprint = strings.TrimSpace(hardwareID)
	}

	if voterID == "" {
		voterID = uuid.NewString()
	}

	return Identity{
		Address:     addr,
		Fingerprint: fingerprint,
		HardwareID:  strings.TrimSpace(hardwareID),
		VoterID:     voterID,
	}, nil
}
