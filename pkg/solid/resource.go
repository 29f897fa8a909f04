// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package solid

// Info is the server-reported metadata for a resource: its URL plus
// the advertised access-control links. A server implements one scheme
// in practice, but nothing here assumes that; the dispatcher probes
// the ACR link first.
type Info struct {
	URL string

	// ACRURL is the linked Access Control Resource (ACP scheme),
	// empty when the server did not advertise one.
	ACRURL string

	// ACLURL is the linked ACL document (WAC scheme), empty when the
	// server did not advertise one.
	ACLURL string
}

// HasLinkedACR reports whether the server advertised an ACR.
func (i Info) HasLinkedACR() bool { return i.ACRURL != "" }

// HasLinkedACL reports whether the server advertised an ACL.
func (i Info) HasLinkedACL() bool { return i.ACLURL != "" }
