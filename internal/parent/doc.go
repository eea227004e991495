// Package parent resolves entity-type parentage and derives the fields a
// synthetic parent entity can inherit from its children.
//
// The parentage CSV lists a parent code in column 0 and a child class name
// in column 1. A row with an empty parent code adds another child to the
// previous parent:
//
//	Account,AccountLocalCertificate
//	,AccountCloudCertificate
//	Agreement,AgreementDraft
//
// Children sharing a class name are variants of one logical entity. Fields
// present in every variant are inheritable; the parent receives the union
// of the inheritable fields of all its class groups.
package parent
