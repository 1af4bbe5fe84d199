// Package catalog holds the fixed, ordered set of vulnerability signatures
// used by the scan engine. Each rule pairs a case-insensitive single-line
// pattern with a severity, a category label, and a remediation message.
package catalog
