// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package rdf

// RDF core vocabulary.
const (
	RDFType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
)

// ACP (Access Control Policy) vocabulary, http://www.w3.org/ns/solid/acp#.
const (
	ACPAccessControlResource = "http://www.w3.org/ns/solid/acp#AccessControlResource"
	ACPAccessControl         = "http://www.w3.org/ns/solid/acp#AccessControl"
	ACPPolicy                = "http://www.w3.org/ns/solid/acp#Policy"
	ACPMatcher               = "http://www.w3.org/ns/solid/acp#Matcher"

	ACPResource            = "http://www.w3.org/ns/solid/acp#resource"
	ACPAccessControlRel    = "http://www.w3.org/ns/solid/acp#accessControl"
	ACPMemberAccessControl = "http://www.w3.org/ns/solid/acp#memberAccessControl"

	ACPApply         = "http://www.w3.org/ns/solid/acp#apply"
	ACPApplyMembers  = "http://www.w3.org/ns/solid/acp#applyMembers"
	ACPAccess        = "http://www.w3.org/ns/solid/acp#access"
	ACPAccessMembers = "http://www.w3.org/ns/solid/acp#accessMembers"

	ACPAllow  = "http://www.w3.org/ns/solid/acp#allow"
	ACPDeny   = "http://www.w3.org/ns/solid/acp#deny"
	ACPAllOf  = "http://www.w3.org/ns/solid/acp#allOf"
	ACPAnyOf  = "http://www.w3.org/ns/solid/acp#anyOf"
	ACPNoneOf = "http://www.w3.org/ns/solid/acp#noneOf"

	ACPAgent  = "http://www.w3.org/ns/solid/acp#agent"
	ACPGroup  = "http://www.w3.org/ns/solid/acp#group"
	ACPClient = "http://www.w3.org/ns/solid/acp#client"

	ACPPublicAgent        = "http://www.w3.org/ns/solid/acp#PublicAgent"
	ACPAuthenticatedAgent = "http://www.w3.org/ns/solid/acp#AuthenticatedAgent"
	ACPCreatorAgent       = "http://www.w3.org/ns/solid/acp#CreatorAgent"
	ACPPublicClient       = "http://www.w3.org/ns/solid/acp#PublicClient"
)

// WAC / ACL vocabulary, http://www.w3.org/ns/auth/acl#.
const (
	ACLAuthorization      = "http://www.w3.org/ns/auth/acl#Authorization"
	ACLAccessTo           = "http://www.w3.org/ns/auth/acl#accessTo"
	ACLDefault            = "http://www.w3.org/ns/auth/acl#default"
	ACLAgent              = "http://www.w3.org/ns/auth/acl#agent"
	ACLAgentGroup         = "http://www.w3.org/ns/auth/acl#agentGroup"
	ACLAgentClass         = "http://www.w3.org/ns/auth/acl#agentClass"
	ACLMode               = "http://www.w3.org/ns/auth/acl#mode"
	ACLAuthenticatedAgent = "http://www.w3.org/ns/auth/acl#AuthenticatedAgent"

	ACLRead    = "http://www.w3.org/ns/auth/acl#Read"
	ACLAppend  = "http://www.w3.org/ns/auth/acl#Append"
	ACLWrite   = "http://www.w3.org/ns/auth/acl#Write"
	ACLControl = "http://www.w3.org/ns/auth/acl#Control"
)

// FOAF vocabulary.
const (
	FOAFAgent = "http://xmlns.com/foaf/0.1/Agent"
)
